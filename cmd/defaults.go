package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/trick-cli/trick/internal/ui"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
)

type defaultsWorkflow func(ctx context.Context, opts workflows.DefaultsOptions) (*workflows.DefaultsResult, error)

func newSetDefaultCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <targets...>",
		Short: "Replace the default targets",
		Long: `Sets the targets encrypt and decrypt use when no target is named.

Examples:
  trick set-default db
  trick set-default db api`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefaults(cmd, opts, args, workflows.SetDefaults)
		},
	}
}

func newAddDefaultCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-default <target>",
		Short: "Add a target to the default targets",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefaults(cmd, opts, args, workflows.AddDefault)
		},
	}
}

func newRemoveDefaultCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-default <target>",
		Short: "Remove a target from the default targets",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefaults(cmd, opts, args, workflows.RemoveDefault)
		},
	}
}

func newGetDefaultCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "get-default",
		Aliases: []string{"list-defaults"},
		Short:   "Print the default targets",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting get-default command")

			result, err := workflows.GetDefaults(cmd.Context(), workflows.DefaultsOptions{Root: opts.root})
			if err != nil {
				return err
			}

			if len(result.Defaults) == 0 {
				fmt.Println("No default targets set.")
				return nil
			}
			for _, name := range result.Defaults {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func runDefaults(cmd *cobra.Command, opts *globalOptions, args []string, workflow defaultsWorkflow) error {
	Logger.Infof("Starting %s command", cmd.Name())

	result, err := workflow(cmd.Context(), workflows.DefaultsOptions{
		Root:    opts.root,
		Targets: args,
	})
	if err != nil {
		return err
	}

	if !result.Changed {
		fmt.Println(ui.Info.Sprint("ℹ") + " Default targets unchanged")
	} else {
		fmt.Println(ui.Success.Sprint("✓") + " Default targets updated")
	}
	fmt.Println("  " + formatDefaults(result.Defaults))
	return nil
}

func formatDefaults(names []string) string {
	if len(names) == 0 {
		return ui.Muted.Sprint("none")
	}
	formatted := make([]string, len(names))
	for i, name := range names {
		formatted[i] = ui.Target.Sprint(name)
	}
	return strings.Join(formatted, ", ")
}
