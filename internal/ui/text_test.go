package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Code.Sprint("trick encrypt")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "trick init", "`trick init`"},
		{"Path has no decoration", Path, ".trick/secret.env.enc", ".trick/secret.env.enc"},
		{"Flag has no decoration", Flag, "--target", "--target"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Target adds quotes", Target, "db", "'db'"},
		{"Muted adds parentheses", Muted, "default", "(default)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestTag(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	if got := Success.Tag("encrypted"); got != "[encrypted]" {
		t.Errorf("Success.Tag() = %q, want %q", got, "[encrypted]")
	}

	os.Unsetenv("NO_COLOR")
	color.NoColor = false
	got := Warning.Tag("skipped")
	if !strings.Contains(got, "[skipped]") || !strings.Contains(got, "\x1b[") {
		t.Errorf("Warning.Tag() with color = %q", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done"); got != "done\n" {
		t.Errorf("EnsureNewline() = %q", got)
	}
	if got := EnsureNewline("done\n"); got != "done\n" {
		t.Errorf("EnsureNewline() = %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("EnsureNewline() = %q", got)
	}
}

func TestIndent(t *testing.T) {
	got := Indent("a.env\nb.env\n", 4)
	want := "    a.env\n    b.env"
	if got != want {
		t.Errorf("Indent() = %q, want %q", got, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}
