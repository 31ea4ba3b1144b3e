package utils

import (
	"os"
	"testing"
)

func TestIsValidTargetName(t *testing.T) {
	valid := []string{"db", "prod-api", "certs.v2", "AWS_KEYS", "a"}
	invalid := []string{"", "-db", ".hidden", "../escape", "with space", "a/b", `a\b`}

	for _, name := range valid {
		if !IsValidTargetName(name) {
			t.Errorf("Expected %q to be valid", name)
		}
	}
	for _, name := range invalid {
		if IsValidTargetName(name) {
			t.Errorf("Expected %q to be invalid", name)
		}
	}
}

func TestFormatPaths(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	got := FormatPaths([]string{".trick/a.env.enc", ".trick/b.env.enc"})
	want := "\n    - .trick/a.env.enc\n    - .trick/b.env.enc\n"
	if got != want {
		t.Errorf("FormatPaths() = %q, want %q", got, want)
	}
}
