// Package workflows provides high-level orchestration for trick commands.
//
// Workflows coordinate the configs, passphrase, secrets and audit packages
// to implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Locating the project and loading its config
//   - Running config changes through one locked load-mutate-save cycle
//   - Resolving passphrases and running the encryption pass
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Init: creates trick.config.json and the store directory
//   - Add, Remove, List: manage targets and their files
//   - SetDefaults, AddDefault, RemoveDefault, GetDefaults: the default targets
//   - Encrypt, Decrypt: the encryption pass over one or more targets
//   - ShowConfig, SetConfig: inspect and edit project settings
//   - SetPassphrase: store a target passphrase
//   - Log: read and filter the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	var notFound *kerrors.PassphraseFileNotFoundError
//	if errors.As(err, &notFound) {
//	    // Suggest trick set-passphrase
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It bounds the wait for the config lock and is checked between targets.
package workflows
