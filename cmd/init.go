package cmd

import (
	"fmt"

	"github.com/trick-cli/trick/internal/configs"
	"github.com/trick-cli/trick/internal/ui"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
)

func newInitCommand(opts *globalOptions) *cobra.Command {
	var (
		iterationCount      int
		rootDirectory       string
		passphraseDirectory string
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a trick project",
		Long: `Creates trick.config.json and the encrypted store directory.

The project is created in the directory given with --root, or in the
current directory. Defaults come from the user settings file and can be
overridden with flags.

Examples:
  trick init
  trick init --iteration-count 200000
  trick init --root-directory secrets --passphrase-directory ~/.trick`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting init command")

			settings, err := configs.LoadUserSettings()
			if err != nil {
				return err
			}
			Logger.Debugf("Loaded user settings from %s", configs.UserSettingsPath)

			result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
				Root:                opts.root,
				IterationCount:      iterationCount,
				RootDirectory:       rootDirectory,
				PassphraseDirectory: passphraseDirectory,
				Settings:            settings,
			})
			if err != nil {
				return err
			}

			Logger.Infof("Created %s", result.ConfigPath)
			fmt.Println(ui.Success.Sprint("✓") + " Initialized trick project at " + ui.Path.Sprint(result.ProjectPath))
			fmt.Println("  config: " + ui.Path.Sprint(result.ConfigPath))
			fmt.Println("  store:  " + ui.Path.Sprint(result.StorePath))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("trick add <target> <files...>") + " to track credential files")
			return nil
		},
	}

	initCmd.Flags().IntVar(&iterationCount, "iteration-count", 0, "PBKDF2 iteration count (default from user settings)")
	initCmd.Flags().StringVar(&rootDirectory, "root-directory", "", "encrypted store directory, relative to the project root")
	initCmd.Flags().StringVar(&passphraseDirectory, "passphrase-directory", "", "directory holding one passphrase file per target")

	return initCmd
}
