package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/utils"
)

// RootMarkers are the entries that mark a project root, nearest first.
var RootMarkers = []string{ConfigFileName, ".git"}

// UserSettingsPath is the user-level settings file. It is resolved once at
// startup and may be overridden in tests.
var UserSettingsPath string

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fall back to the working directory so commands that never read
		// user settings still work on systems without a config dir.
		configDir = "."
	}
	UserSettingsPath = filepath.Join(configDir, "trick", "config.toml")
}

// UserSettings holds per-user defaults applied to new projects.
type UserSettings struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults seeds `trick init` and backs an unset passphrase location.
type Defaults struct {
	RootDirectory       string `toml:"root_directory"`
	PassphraseDirectory string `toml:"passphrase_directory"`
	IterationCount      int    `toml:"iteration_count"`
}

// DefaultUserSettings returns the built-in defaults.
func DefaultUserSettings() *UserSettings {
	return &UserSettings{
		Defaults: Defaults{
			RootDirectory:       DefaultRootDirectory,
			PassphraseDirectory: DefaultPassphraseDirectory,
			IterationCount:      DefaultIterationCount,
		},
	}
}

// LoadUserSettings loads the user settings file. Missing files and missing
// fields fall back to the built-in defaults.
func LoadUserSettings() (*UserSettings, error) {
	settings := DefaultUserSettings()

	if _, err := os.Stat(UserSettingsPath); os.IsNotExist(err) {
		return settings, nil
	}

	var loaded UserSettings
	if _, err := toml.DecodeFile(UserSettingsPath, &loaded); err != nil {
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}

	if loaded.Defaults.RootDirectory != "" {
		settings.Defaults.RootDirectory = loaded.Defaults.RootDirectory
	}
	if loaded.Defaults.PassphraseDirectory != "" {
		settings.Defaults.PassphraseDirectory = loaded.Defaults.PassphraseDirectory
	}
	if loaded.Defaults.IterationCount < 0 {
		return nil, fmt.Errorf("failed to load user settings: %w", kerrors.ErrInvalidIterationCount)
	}
	if loaded.Defaults.IterationCount > 0 {
		settings.Defaults.IterationCount = loaded.Defaults.IterationCount
	}

	return settings, nil
}

// SaveUserSettings writes the user settings file.
func SaveUserSettings(settings *UserSettings) error {
	if err := os.MkdirAll(filepath.Dir(UserSettingsPath), 0700); err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}

	file, err := os.Create(UserSettingsPath)
	if err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(settings); err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}
	return nil
}

// Project locates a project on disk.
type Project struct {
	Path       string
	ConfigPath string
}

// ProjectAt returns the project rooted at dir.
func ProjectAt(dir string) *Project {
	return &Project{
		Path:       dir,
		ConfigPath: filepath.Join(dir, ConfigFileName),
	}
}

// ResolveProject returns the project rooted at root when it is set, and
// otherwise walks up from the working directory to the nearest root marker.
func ResolveProject(root string) (*Project, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolving root %s: %w", root, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, &kerrors.RootNotFoundError{Start: abs}
		}
		return ProjectAt(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	projectPath, err := utils.FindProjectRoot(wd, RootMarkers)
	if err != nil {
		return nil, err
	}
	if projectPath == "" {
		return nil, &kerrors.RootNotFoundError{Start: wd}
	}

	return ProjectAt(projectPath), nil
}

// StorePath returns the absolute encrypted store directory.
func (p *Project) StorePath(config *Config) string {
	return filepath.Join(p.Path, filepath.FromSlash(config.RootDirectory))
}

// AuditLogPath returns the audit log location inside the store directory.
func (p *Project) AuditLogPath(config *Config) string {
	return filepath.Join(p.StorePath(config), "audit.jsonl")
}
