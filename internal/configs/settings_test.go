package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/trick-cli/trick/internal/errors"
)

func withUserSettingsPath(t *testing.T, path string) {
	t.Helper()
	original := UserSettingsPath
	UserSettingsPath = path
	t.Cleanup(func() {
		UserSettingsPath = original
	})
}

func TestLoadUserSettingsDefaults(t *testing.T) {
	withUserSettingsPath(t, filepath.Join(t.TempDir(), "config.toml"))

	settings, err := LoadUserSettings()
	if err != nil {
		t.Fatalf("LoadUserSettings failed: %v", err)
	}

	if settings.Defaults.RootDirectory != DefaultRootDirectory {
		t.Errorf("Expected root directory %q, got %q", DefaultRootDirectory, settings.Defaults.RootDirectory)
	}
	if settings.Defaults.PassphraseDirectory != DefaultPassphraseDirectory {
		t.Errorf("Expected passphrase directory %q, got %q", DefaultPassphraseDirectory, settings.Defaults.PassphraseDirectory)
	}
	if settings.Defaults.IterationCount != DefaultIterationCount {
		t.Errorf("Expected iteration count %d, got %d", DefaultIterationCount, settings.Defaults.IterationCount)
	}
}

func TestSaveAndLoadUserSettings(t *testing.T) {
	withUserSettingsPath(t, filepath.Join(t.TempDir(), "nested", "trick", "config.toml"))

	settings := &UserSettings{
		Defaults: Defaults{
			RootDirectory:       ".vault",
			PassphraseDirectory: "/secure/passphrases",
			IterationCount:      250000,
		},
	}
	if err := SaveUserSettings(settings); err != nil {
		t.Fatalf("SaveUserSettings failed: %v", err)
	}

	loaded, err := LoadUserSettings()
	if err != nil {
		t.Fatalf("LoadUserSettings failed: %v", err)
	}
	if *loaded != *settings {
		t.Errorf("Expected %+v, got %+v", settings, loaded)
	}
}

func TestLoadUserSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	withUserSettingsPath(t, path)

	content := "[defaults]\niteration_count = 300000\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	settings, err := LoadUserSettings()
	if err != nil {
		t.Fatalf("LoadUserSettings failed: %v", err)
	}
	if settings.Defaults.IterationCount != 300000 {
		t.Errorf("Expected iteration count 300000, got %d", settings.Defaults.IterationCount)
	}
	if settings.Defaults.RootDirectory != DefaultRootDirectory {
		t.Errorf("Expected default root directory, got %q", settings.Defaults.RootDirectory)
	}
}

func TestLoadUserSettingsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	withUserSettingsPath(t, path)

	if err := os.WriteFile(path, []byte("[defaults\n"), 0600); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	if _, err := LoadUserSettings(); err == nil {
		t.Fatal("Expected error for malformed TOML")
	}

	if err := os.WriteFile(path, []byte("[defaults]\niteration_count = -1\n"), 0600); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	if _, err := LoadUserSettings(); !errors.Is(err, kerrors.ErrInvalidIterationCount) {
		t.Fatalf("Expected ErrInvalidIterationCount, got %v", err)
	}
}

func TestResolveProjectWithRootFlag(t *testing.T) {
	dir := t.TempDir()

	project, err := ResolveProject(dir)
	if err != nil {
		t.Fatalf("ResolveProject failed: %v", err)
	}
	if project.ConfigPath != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Unexpected config path %q", project.ConfigPath)
	}

	_, err = ResolveProject(filepath.Join(dir, "missing"))
	if !errors.Is(err, kerrors.ErrRootNotFound) {
		t.Fatalf("Expected ErrRootNotFound, got %v", err)
	}
}

func TestResolveProjectWalksUp(t *testing.T) {
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})

	root := t.TempDir()
	nested := filepath.Join(root, "deploy", "k8s")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git: %v", err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}

	project, err := ResolveProject("")
	if err != nil {
		t.Fatalf("ResolveProject failed: %v", err)
	}

	want, _ := filepath.EvalSymlinks(root)
	got, _ := filepath.EvalSymlinks(project.Path)
	if got != want {
		t.Errorf("Expected project %q, got %q", want, got)
	}
}

func TestProjectPaths(t *testing.T) {
	project := ProjectAt("/work/app")
	config := DefaultConfig()
	config.RootDirectory = "secrets/store"

	if got := project.StorePath(config); got != filepath.Join("/work/app", "secrets", "store") {
		t.Errorf("Unexpected store path %q", got)
	}
	if got := project.AuditLogPath(config); got != filepath.Join("/work/app", "secrets", "store", "audit.jsonl") {
		t.Errorf("Unexpected audit log path %q", got)
	}
}
