package workflows

import (
	"context"
	"fmt"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/configs"
	"github.com/trick-cli/trick/internal/passphrase"
	"github.com/trick-cli/trick/internal/secrets"
)

// CryptOptions configures the encrypt and decrypt workflows.
type CryptOptions struct {
	Root string

	// Targets to process. If empty, the configured defaults are used.
	Targets []string

	// Settings supplies the fallback passphrase directory.
	Settings *configs.UserSettings

	// LookupEnv overrides os.LookupEnv for passphrase resolution.
	LookupEnv func(string) (string, bool)

	// Progress is called after each file, in processing order.
	Progress func(target string, file secrets.FileResult)
}

// CryptResult contains the files processed per target. On failure it holds
// what was completed before the failing file.
type CryptResult struct {
	ProjectPath string
	Targets     []TargetFiles
}

// TargetFiles lists the files processed for one target.
type TargetFiles struct {
	Name  string
	Files []secrets.FileResult
}

// Files returns every processed file across targets.
func (r *CryptResult) Files() []secrets.FileResult {
	var files []secrets.FileResult
	for _, t := range r.Targets {
		files = append(files, t.Files...)
	}
	return files
}

type batchFunc func(store *secrets.Store, files []string, passphrase string, iterations int, progress secrets.Progress) ([]secrets.FileResult, error)

// Encrypt encrypts the files of each selected target into the store.
//
// Targets are processed in order, files in declaration order. The first
// failure stops the run; files already encrypted stay encrypted.
//
// Returns ErrNoTargetSpecified if no target was given and no default is set.
// Returns TargetNotFoundError if a named target does not exist.
// Returns PassphraseFileNotFoundError or PassphraseNotFoundError if a
// target's passphrase cannot be found.
// Returns EncryptError for the first file that fails.
func Encrypt(ctx context.Context, opts CryptOptions) (*CryptResult, error) {
	return run(ctx, opts, "encrypt", (*secrets.Store).EncryptFiles)
}

// Decrypt restores the files of each selected target from the store, with
// the same ordering and failure semantics as Encrypt.
//
// Returns DecryptError for the first artifact that is missing or does not
// decrypt.
func Decrypt(ctx context.Context, opts CryptOptions) (*CryptResult, error) {
	return run(ctx, opts, "decrypt", (*secrets.Store).DecryptFiles)
}

func run(ctx context.Context, opts CryptOptions, op string, batch batchFunc) (*CryptResult, error) {
	project, config, err := openProject(opts.Root)
	if err != nil {
		return nil, err
	}

	names, err := selectTargets(config, opts.Targets)
	if err != nil {
		return nil, err
	}

	resolver := passphrase.NewResolver(opts.Settings)
	if opts.LookupEnv != nil {
		resolver.LookupEnv = opts.LookupEnv
	}

	store := secrets.NewStore(project.Path, config.RootDirectory)
	result := &CryptResult{ProjectPath: project.Path}

	defer func() {
		files := result.Files()
		if len(files) == 0 {
			return
		}
		entry := audit.NewEntry(op)
		for _, t := range result.Targets {
			entry.Targets = append(entry.Targets, t.Name)
		}
		for _, f := range files {
			entry.Files = append(entry.Files, f.Source)
		}
		logAudit(project, config, entry)
	}()

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		target, err := config.GetTarget(name)
		if err != nil {
			return result, err
		}

		pass, err := resolver.Resolve(config, name)
		if err != nil {
			return result, err
		}

		progress := func(file secrets.FileResult) {
			if opts.Progress != nil {
				opts.Progress(name, file)
			}
		}

		done, err := batch(store, target.Files, pass, config.Encryption.IterationCount, progress)
		result.Targets = append(result.Targets, TargetFiles{Name: name, Files: done})
		if err != nil {
			return result, fmt.Errorf("%s target %s: %w", op, name, err)
		}
	}

	return result, nil
}
