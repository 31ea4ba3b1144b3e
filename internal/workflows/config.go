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

// ConfigOptions configures the config workflow. Nil fields are left alone.
type ConfigOptions struct {
	Root string

	IterationCount      *int
	RootDirectory       *string
	PassphraseDirectory *string
	PassphraseFile      *string
}

// HasChanges reports whether any setting was requested.
func (o ConfigOptions) HasChanges() bool {
	return o.IterationCount != nil || o.RootDirectory != nil ||
		o.PassphraseDirectory != nil || o.PassphraseFile != nil
}

// ConfigResult contains the config after the operation.
type ConfigResult struct {
	ConfigPath string
	Config     *configs.Config

	// Exists is false when no config file was found and defaults are shown.
	Exists bool

	// Changed lists the JSON names of settings that were modified.
	Changed []string
}

// ShowConfig returns the effective project config.
func ShowConfig(ctx context.Context, opts ConfigOptions) (*ConfigResult, error) {
	project, config, err := openProject(opts.Root)
	if err != nil {
		return nil, err
	}

	_, statErr := os.Stat(project.ConfigPath)
	return &ConfigResult{
		ConfigPath: project.ConfigPath,
		Config:     config,
		Exists:     statErr == nil,
	}, nil
}

// SetConfig applies the requested settings. Changing root_directory does not
// move existing artifacts.
//
// Returns ErrInvalidIterationCount for a non-positive iteration count.
// Returns ErrInvalidRootDirectory for an absolute or escaping store directory.
func SetConfig(ctx context.Context, opts ConfigOptions) (*ConfigResult, error) {
	if opts.IterationCount != nil && *opts.IterationCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", kerrors.ErrInvalidIterationCount, *opts.IterationCount)
	}
	if opts.RootDirectory != nil {
		if err := validateRootDirectory(*opts.RootDirectory); err != nil {
			return nil, err
		}
	}

	result := &ConfigResult{Exists: true}

	project, config, err := updateProject(ctx, opts.Root, func(_ *configs.Project, config *configs.Config) (bool, error) {
		if opts.IterationCount != nil && config.Encryption.IterationCount != *opts.IterationCount {
			config.Encryption.IterationCount = *opts.IterationCount
			result.Changed = append(result.Changed, "encryption.iteration_count")
		}
		if opts.RootDirectory != nil {
			dir := filepath.ToSlash(filepath.Clean(*opts.RootDirectory))
			if config.RootDirectory != dir {
				config.RootDirectory = dir
				result.Changed = append(result.Changed, "root_directory")
			}
		}
		if opts.PassphraseDirectory != nil && config.PassphraseDirectory != *opts.PassphraseDirectory {
			config.PassphraseDirectory = *opts.PassphraseDirectory
			result.Changed = append(result.Changed, "passphrase_directory")
		}
		if opts.PassphraseFile != nil && config.PassphraseFilePath != *opts.PassphraseFile {
			config.PassphraseFilePath = *opts.PassphraseFile
			result.Changed = append(result.Changed, "passphrase_file_path")
		}
		return len(result.Changed) > 0, nil
	})
	if err != nil {
		return nil, err
	}

	result.ConfigPath = project.ConfigPath
	result.Config = config

	for _, setting := range result.Changed {
		entry := audit.NewEntry("config")
		entry.Setting = setting
		logAudit(project, config, entry)
	}

	return result, nil
}
