// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content by type (commands, paths, target names, errors)
// and adapt to the terminal. When colors are available, content is colorized.
// When NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations are used instead.
//
//	ui.Code.Sprint("trick init")       // Commands
//	ui.Path.Sprint(".trick/a.env.enc") // File paths
//	ui.Target.Sprint("db")             // Target names
//	ui.Success.Tag("encrypted")        // Per-file status labels
//	ui.Error.Sprint("✗")               // Error indicators
//	ui.Info.Sprint("→")                // Hints
//
// Without color, Code uses `backticks`, Target uses 'single quotes', and
// Muted uses (parentheses). Tag always keeps its [brackets].
package ui
