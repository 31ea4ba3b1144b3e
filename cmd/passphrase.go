package cmd

import (
	"fmt"
	"strings"

	"github.com/trick-cli/trick/internal/configs"
	"github.com/trick-cli/trick/internal/ui"
	"github.com/trick-cli/trick/internal/utils"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
)

func newSetPassphraseCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-passphrase <target> [passphrase]",
		Short: "Store the passphrase of a target",
		Long: `Stores the passphrase of a target in the configured passphrase file, or
in the passphrase directory.

The passphrase is taken from the argument, else from piped stdin, else it
is prompted for twice without echo.

Examples:
  trick set-passphrase db
  echo "$DB_PASSPHRASE" | trick set-passphrase db`,
		Args: rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting set-passphrase command")
			target := args[0]

			settings, err := configs.LoadUserSettings()
			if err != nil {
				return err
			}

			passphrase, err := readPassphraseInput(target, args[1:])
			if err != nil {
				return err
			}

			result, err := workflows.SetPassphrase(cmd.Context(), workflows.SetPassphraseOptions{
				Root:       opts.root,
				Target:     target,
				Passphrase: passphrase,
				Settings:   settings,
			})
			if err != nil {
				return err
			}

			fmt.Println(ui.Success.Sprint("✓") + " Stored passphrase for " + ui.Target.Sprint(target) +
				" in " + string(result.Source) + " " + ui.Path.Sprint(result.Path))
			if !result.TargetExists {
				fmt.Println(ui.Warning.Sprint("⚠") + " " + ui.Target.Sprint(target) + " is not a target yet")
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("trick add "+target+" <files...>") + " to create it")
			}
			return nil
		},
	}
}

func readPassphraseInput(target string, args []string) (string, error) {
	if len(args) > 0 {
		Logger.Debugf("Reading passphrase from argument")
		return args[0], nil
	}

	if !utils.IsTerminal() {
		Logger.Debugf("Reading passphrase from stdin")
		data, err := utils.ReadStdin()
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	Logger.Debugf("Prompting for passphrase")
	passphrase, err := utils.ReadPassphraseWithConfirm(fmt.Sprintf("Passphrase for %s: ", target))
	if err != nil {
		return "", err
	}
	return string(passphrase), nil
}
