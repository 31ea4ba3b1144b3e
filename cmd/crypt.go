package cmd

import (
	"context"
	"strings"

	"github.com/trick-cli/trick/internal/configs"
	"github.com/trick-cli/trick/internal/secrets"
	"github.com/trick-cli/trick/internal/ui"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
)

type cryptWorkflow func(ctx context.Context, opts workflows.CryptOptions) (*workflows.CryptResult, error)

// cryptCommand describes one direction of the encryption pass.
type cryptCommand struct {
	use      string
	short    string
	long     string
	spinner  string
	tag      string
	verb     string
	workflow cryptWorkflow
	// line renders one processed file.
	line func(file secrets.FileResult) string
}

func newEncryptCommand(opts *globalOptions) *cobra.Command {
	return newCryptCommand(opts, cryptCommand{
		use:   "encrypt [targets...]",
		short: "Encrypt the files of one or more targets into the store",
		long: `Encrypts every file of the given targets into the store directory,
writing <store>/<file>.enc for each file. Without arguments the default
targets are encrypted.

The passphrase of each target is read from TRICK_PASSPHRASE_<TARGET>, the
configured passphrase file, or the passphrase directory, in that order.

Examples:
  trick encrypt
  trick encrypt db api`,
		spinner:  "Encrypting files...",
		tag:      "encrypted",
		verb:     "Encrypted",
		workflow: workflows.Encrypt,
		line: func(file secrets.FileResult) string {
			return ui.Path.Sprint(file.Source) + " -> " + ui.Path.Sprint(file.Artifact)
		},
	})
}

func newDecryptCommand(opts *globalOptions) *cobra.Command {
	return newCryptCommand(opts, cryptCommand{
		use:   "decrypt [targets...]",
		short: "Decrypt the files of one or more targets from the store",
		long: `Restores every file of the given targets from its artifact in the
store directory. Existing files are overwritten. Without arguments the
default targets are decrypted.

Examples:
  trick decrypt
  trick decrypt db`,
		spinner:  "Decrypting files...",
		tag:      "decrypted",
		verb:     "Decrypted",
		workflow: workflows.Decrypt,
		line: func(file secrets.FileResult) string {
			return ui.Path.Sprint(file.Artifact) + " -> " + ui.Path.Sprint(file.Source)
		},
	})
}

func newCryptCommand(opts *globalOptions, crypt cryptCommand) *cobra.Command {
	return &cobra.Command{
		Use:   crypt.use,
		Short: crypt.short,
		Long:  crypt.long,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting %s command", cmd.Name())

			settings, err := configs.LoadUserSettings()
			if err != nil {
				return err
			}

			spinner, cleanup := startSpinner(crypt.spinner, opts)
			defer cleanup()

			// Lines are collected into the final message so the files that
			// were processed are reported even when a later file fails.
			var lines strings.Builder
			progress := func(target string, file secrets.FileResult) {
				Logger.Debugf("%s %s for target %s", crypt.verb, file.Source, target)
				lines.WriteString(ui.Success.Tag(crypt.tag) + " " + crypt.line(file) + "\n")
			}

			result, err := crypt.workflow(cmd.Context(), workflows.CryptOptions{
				Root:     opts.root,
				Targets:  args,
				Settings: settings,
				Progress: progress,
			})
			spinner.FinalMSG = lines.String()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(result.Targets))
			for _, t := range result.Targets {
				names = append(names, ui.Target.Sprint(t.Name))
			}
			spinner.FinalMSG += ui.Success.Sprint("✓") + " " + crypt.verb + " " +
				plural(len(result.Files()), "file") + " for " + strings.Join(names, ", ")
			return nil
		},
	}
}
