package workflows

import (
	"context"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/configs"
	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/secrets"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	Root   string
	Target string

	// Files are paths or doublestar globs, relative to the working directory.
	Files []string
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Target string
	configs.AddResult
}

// Add creates a target or adds files to an existing one. Files the target
// already tracks are skipped.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	result := &AddResult{Target: opts.Target}

	project, config, err := updateProject(ctx, opts.Root, func(project *configs.Project, config *configs.Config) (bool, error) {
		files, err := resolveArgs(opts.Root, project, config, opts.Files)
		if err != nil {
			return false, err
		}

		added, err := config.AddFiles(opts.Target, files)
		if err != nil {
			return false, err
		}
		result.AddResult = added
		return added.Dirty(), nil
	})
	if err != nil {
		return nil, err
	}

	if result.Dirty() {
		entry := audit.NewEntry("add")
		entry.Targets = []string{opts.Target}
		entry.Files = result.Added
		logAudit(project, config, entry)
	}

	return result, nil
}

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	Root   string
	Target string
	Files  []string

	// RemoveTarget deletes the whole target instead of individual files.
	RemoveTarget bool
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	Target        string
	TargetRemoved bool
	configs.RemoveResult
}

// Remove removes files from a target, or the target itself.
//
// Returns TargetNotFoundError if the target does not exist.
// Returns ErrNoFilesGiven if neither files nor RemoveTarget were given.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	if !opts.RemoveTarget && len(opts.Files) == 0 {
		return nil, kerrors.ErrNoFilesGiven
	}

	result := &RemoveResult{Target: opts.Target}

	project, config, err := updateProject(ctx, opts.Root, func(project *configs.Project, config *configs.Config) (bool, error) {
		if opts.RemoveTarget {
			if err := config.RemoveTarget(opts.Target); err != nil {
				return false, err
			}
			result.TargetRemoved = true
			return true, nil
		}

		files, err := resolveArgs(opts.Root, project, config, opts.Files)
		if err != nil {
			return false, err
		}

		removed, err := config.RemoveFiles(opts.Target, files)
		if err != nil {
			return false, err
		}
		result.RemoveResult = removed
		return removed.Dirty(), nil
	})
	if err != nil {
		return nil, err
	}

	if result.TargetRemoved || result.Dirty() {
		entry := audit.NewEntry("remove")
		entry.Targets = []string{opts.Target}
		entry.Files = result.Removed
		logAudit(project, config, entry)
	}

	return result, nil
}

// ListOptions configures the list workflow.
type ListOptions struct {
	Root string
}

// ListResult contains every target in declaration order.
type ListResult struct {
	ConfigPath string
	Targets    []configs.TargetEntry
}

// List returns the targets of the project.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	project, config, err := openProject(opts.Root)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		ConfigPath: project.ConfigPath,
		Targets:    config.ListTargets(),
	}, nil
}

func resolveArgs(root string, project *configs.Project, config *configs.Config, args []string) ([]string, error) {
	dir, err := argumentDir(root, project)
	if err != nil {
		return nil, err
	}
	return secrets.ResolveFiles(args, dir, project.Path, config.RootDirectory)
}
