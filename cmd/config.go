package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/ui"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the project configuration",
		Long: `Without flags, prints the path and contents of trick.config.json.
With flags, updates the given settings.

Changing --root-directory does not move existing encrypted files.

Examples:
  trick config
  trick config --iteration-count 200000
  trick config --passphrase-file ~/.config/trick/passphrases.json`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config command")

			configOpts, err := configOptionsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			configOpts.Root = opts.root

			if !configOpts.HasChanges() {
				return showConfig(cmd, configOpts)
			}

			result, err := workflows.SetConfig(cmd.Context(), configOpts)
			if err != nil {
				return err
			}

			if len(result.Changed) == 0 {
				fmt.Println(ui.Info.Sprint("ℹ") + " Configuration unchanged")
				return nil
			}
			for _, setting := range result.Changed {
				fmt.Println(ui.Success.Sprint("✓") + " Updated " + ui.Code.Sprint(setting))
			}
			return nil
		},
	}

	configCmd.Flags().Int("iteration-count", 0, "PBKDF2 iteration count")
	configCmd.Flags().String("root-directory", "", "encrypted store directory, relative to the project root")
	configCmd.Flags().String("passphrase-directory", "", "directory holding one passphrase file per target")
	configCmd.Flags().String("passphrase-file", "", "JSON file mapping target names to passphrases")

	return configCmd
}

// configOptionsFromFlags sets only the options whose flags were given, so an
// explicit empty value clears a setting.
func configOptionsFromFlags(flags *pflag.FlagSet) (workflows.ConfigOptions, error) {
	var (
		configOpts workflows.ConfigOptions
		parseErr   error
	)

	flags.Visit(func(flag *pflag.Flag) {
		value := flag.Value.String()
		switch flag.Name {
		case "iteration-count":
			n, err := strconv.Atoi(value)
			if err != nil {
				parseErr = fmt.Errorf("%w: --iteration-count %q", kerrors.ErrInvalidUsage, value)
				return
			}
			configOpts.IterationCount = &n
		case "root-directory":
			configOpts.RootDirectory = &value
		case "passphrase-directory":
			configOpts.PassphraseDirectory = &value
		case "passphrase-file":
			configOpts.PassphraseFile = &value
		}
	})

	return configOpts, parseErr
}

func showConfig(cmd *cobra.Command, opts workflows.ConfigOptions) error {
	result, err := workflows.ShowConfig(cmd.Context(), opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	if result.Exists {
		fmt.Println(ui.Muted.Sprint(result.ConfigPath))
	} else {
		fmt.Println(ui.Muted.Sprint(result.ConfigPath+" does not exist, showing defaults"))
	}
	fmt.Println(string(data))
	return nil
}
