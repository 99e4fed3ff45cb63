// Package dashboard implements the full-screen NecoMind view and the loop that
// drives it.
//
// # Architecture
//
// The package has no knowledge of a real terminal or of the host it samples.
// Everything external is injected:
//
//	Terminal - entered once at startup and always left on the way out
//	Input    - polled once per iteration with a short timeout
//	Renderer - receives a Frame per iteration and draws it
//	Source   - refreshed whenever the tick interval has elapsed
//
// # Iteration
//
// Each pass of Loop.Run does the following, in order:
//
//  1. Poll for one input event; 'q' ends the loop cleanly
//  2. Refresh CPU and memory if a full tick has passed since the last refresh
//  3. Build a Frame from the static stats text and the current Usage
//  4. Render it; a render failure ends the loop with an error
//
// # Restoration
//
// Run is the only place the terminal is acquired. Its deferred guard calls
// Terminal.Leave on every exit path, including a panic, which is re-raised
// once the terminal has been restored.
//
// # Layout
//
// The frame is split 50/50. The left column holds the banner; the right holds
// the Info panel followed by the CPU, Memory and Swap gauges and the palette
// strip. Below 80 columns only the right column is drawn.
package dashboard
