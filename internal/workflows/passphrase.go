package workflows

import (
	"context"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/configs"
	"github.com/trick-cli/trick/internal/passphrase"
)

// SetPassphraseOptions configures the set-passphrase workflow.
type SetPassphraseOptions struct {
	Root       string
	Target     string
	Passphrase string
	Settings   *configs.UserSettings
}

// SetPassphraseResult contains the outcome of a set-passphrase operation.
type SetPassphraseResult struct {
	// Path is the passphrase file that was written.
	Path   string
	Source passphrase.Source

	// TargetExists is false when the passphrase was stored for a target the
	// config does not know yet.
	TargetExists bool
}

// SetPassphrase stores the passphrase for a target where encrypt and
// decrypt will look for it.
//
// Returns ErrEmptyPassphrase if the passphrase is blank.
// Returns ErrInvalidTargetName if the target name cannot be a file name.
func SetPassphrase(ctx context.Context, opts SetPassphraseOptions) (*SetPassphraseResult, error) {
	project, config, err := openProject(opts.Root)
	if err != nil {
		return nil, err
	}

	resolver := passphrase.NewResolver(opts.Settings)
	path, err := resolver.Store(config, opts.Target, opts.Passphrase)
	if err != nil {
		return nil, err
	}
	_, source, err := resolver.Location(config, opts.Target)
	if err != nil {
		return nil, err
	}

	entry := audit.NewEntry("set-passphrase")
	entry.Targets = []string{opts.Target}
	logAudit(project, config, entry)

	return &SetPassphraseResult{
		Path:         path,
		Source:       source,
		TargetExists: config.HasTarget(opts.Target),
	}, nil
}
