package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/configs"
	kerrors "github.com/trick-cli/trick/internal/errors"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Root is the directory to initialize. If empty, the working directory is used.
	Root string

	// IterationCount overrides the user default when positive.
	IterationCount int

	// RootDirectory overrides the user default store directory when set.
	RootDirectory string

	// PassphraseDirectory is written to the config when set. Otherwise the
	// user default applies at resolution time.
	PassphraseDirectory string

	// Settings supplies the user defaults. Nil means the built-in defaults.
	Settings *configs.UserSettings
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ProjectPath is the root path of the project.
	ProjectPath string

	// ConfigPath is the path of the created trick.config.json.
	ConfigPath string

	// StorePath is the absolute path of the encrypted store directory.
	StorePath string

	Config *configs.Config
}

// Init creates trick.config.json and the store directory.
//
// Unlike the other workflows, Init does not search parent directories: the
// project is created exactly where it is asked for.
//
// Returns ErrProjectAlreadyInitialized if the config file already exists.
// Returns ErrInvalidIterationCount or ErrInvalidRootDirectory for bad overrides.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	settings := opts.Settings
	if settings == nil {
		settings = configs.DefaultUserSettings()
	}

	dir := opts.Root
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &kerrors.RootNotFoundError{Start: dir}
	}

	if opts.IterationCount < 0 {
		return nil, fmt.Errorf("%w: got %d", kerrors.ErrInvalidIterationCount, opts.IterationCount)
	}

	rootDirectory := settings.Defaults.RootDirectory
	if opts.RootDirectory != "" {
		rootDirectory = opts.RootDirectory
	}
	if err := validateRootDirectory(rootDirectory); err != nil {
		return nil, err
	}

	project := configs.ProjectAt(dir)

	err = configs.UpdateContext(ctx, project.ConfigPath, func(config *configs.Config) (bool, error) {
		if _, err := os.Stat(project.ConfigPath); err == nil {
			return false, kerrors.ErrProjectAlreadyInitialized
		}

		config.RootDirectory = filepath.ToSlash(filepath.Clean(rootDirectory))
		config.PassphraseDirectory = opts.PassphraseDirectory
		config.Encryption.IterationCount = settings.Defaults.IterationCount
		if opts.IterationCount > 0 {
			config.Encryption.IterationCount = opts.IterationCount
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	config, err := configs.Load(project.ConfigPath)
	if err != nil {
		return nil, err
	}

	storePath := project.StorePath(config)
	if err := os.MkdirAll(storePath, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	logAudit(project, config, audit.NewEntry("init"))

	return &InitResult{
		ProjectPath: project.Path,
		ConfigPath:  project.ConfigPath,
		StorePath:   storePath,
		Config:      config,
	}, nil
}
