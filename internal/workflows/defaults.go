package workflows

import (
	"context"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/configs"
	kerrors "github.com/trick-cli/trick/internal/errors"
)

// DefaultsOptions configures the default-target workflows.
type DefaultsOptions struct {
	Root    string
	Targets []string
}

// DefaultsResult reports the default list after the operation.
type DefaultsResult struct {
	Defaults []string

	// Changed is false when the operation was a no-op.
	Changed bool
}

// SetDefaults replaces the default target list.
//
// Returns TargetNotFoundError if any name is not a target.
func SetDefaults(ctx context.Context, opts DefaultsOptions) (*DefaultsResult, error) {
	if len(opts.Targets) == 0 {
		return nil, kerrors.ErrNoTargetSpecified
	}
	return changeDefaults(ctx, opts, "set-default", func(config *configs.Config) (bool, error) {
		return config.SetDefaults(opts.Targets)
	})
}

// AddDefault appends targets to the default list. Targets that are
// already defaults are left alone.
func AddDefault(ctx context.Context, opts DefaultsOptions) (*DefaultsResult, error) {
	if len(opts.Targets) == 0 {
		return nil, kerrors.ErrNoTargetSpecified
	}
	return changeDefaults(ctx, opts, "add-default", func(config *configs.Config) (bool, error) {
		dirty := false
		for _, name := range opts.Targets {
			added, err := config.AddDefault(name)
			if err != nil {
				return false, err
			}
			dirty = dirty || added
		}
		return dirty, nil
	})
}

// RemoveDefault drops targets from the default list. The targets
// themselves are kept.
func RemoveDefault(ctx context.Context, opts DefaultsOptions) (*DefaultsResult, error) {
	if len(opts.Targets) == 0 {
		return nil, kerrors.ErrNoTargetSpecified
	}
	return changeDefaults(ctx, opts, "remove-default", func(config *configs.Config) (bool, error) {
		dirty := false
		for _, name := range opts.Targets {
			dirty = config.RemoveDefault(name) || dirty
		}
		return dirty, nil
	})
}

// GetDefaults returns the default target list.
func GetDefaults(ctx context.Context, opts DefaultsOptions) (*DefaultsResult, error) {
	_, config, err := openProject(opts.Root)
	if err != nil {
		return nil, err
	}
	return &DefaultsResult{Defaults: config.DefaultTargetNames}, nil
}

func changeDefaults(ctx context.Context, opts DefaultsOptions, op string, mutate configs.Mutator) (*DefaultsResult, error) {
	result := &DefaultsResult{}

	project, config, err := updateProject(ctx, opts.Root, func(_ *configs.Project, config *configs.Config) (bool, error) {
		changed, err := mutate(config)
		if err != nil {
			return false, err
		}
		result.Changed = changed
		return changed, nil
	})
	if err != nil {
		return nil, err
	}

	result.Defaults = config.DefaultTargetNames
	if result.Changed {
		entry := audit.NewEntry(op)
		entry.Targets = opts.Targets
		logAudit(project, config, entry)
	}
	return result, nil
}
