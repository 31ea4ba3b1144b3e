package utils

import (
	"regexp"
	"strings"

	"github.com/trick-cli/trick/internal/ui"
)

// targetNameRegex allows names that are safe to use as a file name in the
// passphrase directory.
var targetNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// IsValidTargetName checks if a target name is valid (alphanumeric, dots, hyphens, underscores).
func IsValidTargetName(name string) bool {
	if name == "" || len(name) > 128 {
		return false
	}
	return targetNameRegex.MatchString(name)
}
