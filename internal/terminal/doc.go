// Package terminal owns the controlling terminal for the dashboard.
//
//	Session  - raw mode, alternate screen, mouse capture and cursor, with a
//	           Leave that undoes all of it and is safe to call on any path
//	Keyboard - stdin reader with a bounded Poll that yields zero or one Event
//	Screen   - writes a whole frame in one write, homed at the top-left cell
package terminal
