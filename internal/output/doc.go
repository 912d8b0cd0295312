// Package output provides structured output handling for the cowsay CLI.
//
// Figures and listings are written either as plain text for people or as
// JSON for scripts and agents, selected by the --json flag.
//
// # Printer
//
// The Printer is the primary interface for command output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// A rendered figure, headed by the cow name
//	printer.Figure("tux", rendered)
//
//	// For error output
//	printer.Error(err)
//
// # JSON Mode
//
// When JSON mode is enabled, all output is structured:
//
//	// Figure: {"cow": "...", "output": "..."}
//	// Error:  {"error": "message", "code": N}
//
// # Styling
//
// Human-readable output is styled with lipgloss. Styles are cleared when the
// writer is not a terminal or when --color never is given, so piped output
// never carries escape codes.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags, unknown cow, bad settings)
//	output.ExitSystemError // 2: System error (unreadable or corrupt cowfile)
package output
