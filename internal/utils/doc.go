// Package utils provides shared utility functions for the trick application.
//
// # Filesystem Utilities
//
//   - FindProjectRoot: walks up directories looking for a root marker
//   - ExpandHome: expands a leading ~ in configured paths
//   - WriteFileAtomic: temp-file-and-rename writes
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - EnvVarName: derives environment variable names from target names
//
// # Terminal and I/O Utilities
//
//   - ReadPassphrase, ReadPassphraseWithConfirm: no-echo prompts
//   - ReadStdin: reads piped data from standard input
//   - IsTerminal: checks if stdin is a terminal
package utils
