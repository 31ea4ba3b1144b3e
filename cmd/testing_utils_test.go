package cmd

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/trick-cli/trick/internal/configs"
)

// testEnv is an initialized-or-not project directory the CLI runs in.
type testEnv struct {
	t             *testing.T
	dir           string
	passphraseDir string
}

// setupTestEnvironment changes into a fresh project directory and points the
// user settings at a temporary file whose passphrase directory is also
// temporary. Everything is restored when the test ends.
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}
	originalSettingsPath := configs.UserSettingsPath
	originalNoColor := color.NoColor

	tempDir := t.TempDir()
	projectDir := filepath.Join(tempDir, "project")
	userDir := filepath.Join(tempDir, "user")
	for _, dir := range []string{projectDir, userDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	env := &testEnv{
		t:             t,
		dir:           projectDir,
		passphraseDir: filepath.Join(userDir, "passphrases"),
	}

	settingsPath := filepath.Join(userDir, "config.toml")
	settings := "[defaults]\n" +
		"passphrase_directory = '" + env.passphraseDir + "'\n" +
		"iteration_count = 1000\n"
	if err := os.WriteFile(settingsPath, []byte(settings), 0600); err != nil {
		t.Fatalf("Failed to write user settings: %v", err)
	}

	if err := os.Chdir(projectDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	configs.UserSettingsPath = settingsPath
	color.NoColor = true

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserSettingsPath = originalSettingsPath
		color.NoColor = originalNoColor
	})

	return env
}

// path returns the absolute path of a project-relative file.
func (e *testEnv) path(rel string) string {
	return filepath.Join(e.dir, filepath.FromSlash(rel))
}

func (e *testEnv) writeFile(rel, content string) {
	e.t.Helper()
	path := e.path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func (e *testEnv) readFile(rel string) string {
	e.t.Helper()
	data, err := os.ReadFile(e.path(rel))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// mustRun runs the CLI and fails the test on a non-zero exit code.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	output, code := runCLI(args...)
	if code != 0 {
		e.t.Fatalf("trick %v exited with %d:\n%s", args, code, output)
	}
	return output
}

// initializeProject runs init in the project directory.
func (e *testEnv) initializeProject() {
	e.t.Helper()
	e.mustRun("init")
}

// runCLI runs a fresh command tree with args and returns the combined output
// and the exit code.
func runCLI(args ...string) (string, int) {
	var code int
	output, _ := captureOutput(func() error {
		code = run(context.Background(), args)
		return nil
	})
	return output, code
}

// withStdin replaces os.Stdin with a pipe carrying input for the duration of fn.
func withStdin(t *testing.T, input string, fn func()) {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	if _, err := writer.WriteString(input); err != nil {
		t.Fatalf("Failed to write to pipe: %v", err)
	}
	writer.Close()

	original := os.Stdin
	os.Stdin = reader
	defer func() {
		os.Stdin = original
		reader.Close()
	}()

	fn()
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}
