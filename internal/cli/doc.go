// Package cli implements the necomind command-line interface.
//
// # Command Structure
//
//	necomind                      - Live dashboard (quit with q)
//	necomind info [--json|--yaml] - One-shot snapshot of the same data
//	necomind version [--short]    - Build information
//
// # Flag Handling
//
// Global flags (--config, --no-color, --log-level, --log-file, --interval,
// --poll, --gpu-timeout) live on the root command. They are merged with
// NECOMIND_* environment variables and the config file by internal/config in
// the root PersistentPreRunE, so every command sees the same *config.Config.
//
// # Errors and Exit Codes
//
// Commands return errors instead of printing them. Execute prints the error
// once, after the dashboard has handed the terminal back, and exits 1 (or the
// code carried by an errors.ExitError).
//
// # Signals
//
// Execute runs commands under a context cancelled by SIGINT or SIGTERM. The
// dashboard treats cancellation as a clean quit.
package cli
