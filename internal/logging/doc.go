// Package logger provides leveled logging for trick commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed with a colored level tag.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two persistent flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only WarnfAlways output is shown. User-facing results and
// failures are rendered by the cmd package, not by the logger.
//
// # Log Methods
//
//	Logger.Infof()       // Shown with --verbose or --debug
//	Logger.Debugf()      // Shown only with --debug
//	Logger.Warnf()       // Shown with --verbose or --debug
//	Logger.WarnfAlways() // Always shown
//	Logger.Errorf()      // Shown with --debug
//
// Passphrases must never be passed to any of these methods.
package logger
