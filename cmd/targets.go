package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/trick-cli/trick/internal/ui"
	"github.com/trick-cli/trick/internal/utils"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
)

func newAddCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <target> [files...]",
		Short: "Add files to a target",
		Long: `Adds files to a target, creating the target if it does not exist.

Files are paths or glob patterns (e.g. "config/*.env" or "**/.env"),
relative to the current directory, or to the project root when --root is
given. The first target created becomes the default target.

Examples:
  trick add db .env
  trick add api config/api.key "deploy/**/*.pem"`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting add command")

			result, err := workflows.Add(cmd.Context(), workflows.AddOptions{
				Root:   opts.root,
				Target: args[0],
				Files:  args[1:],
			})
			if err != nil {
				return err
			}

			if result.Created {
				fmt.Println(ui.Success.Sprint("✓") + " Created target " + ui.Target.Sprint(result.Target))
			}
			for _, file := range result.Added {
				fmt.Println("  " + ui.Success.Tag("added") + " " + ui.Path.Sprint(file))
			}
			for _, file := range result.Skipped {
				fmt.Println("  " + ui.Muted.Tag("skipped") + " " + ui.Path.Sprint(file) + " is already tracked")
			}
			if result.BecameDefault {
				fmt.Println(ui.Info.Sprint("ℹ") + " " + ui.Target.Sprint(result.Target) + " is now the default target")
			}
			if !result.Created && len(result.Added) == 0 {
				fmt.Println(ui.Info.Sprint("ℹ") + " Nothing to add to " + ui.Target.Sprint(result.Target))
			}
			return nil
		},
	}
}

func newRemoveCommand(opts *globalOptions) *cobra.Command {
	var removeTarget bool

	removeCmd := &cobra.Command{
		Use:   "remove <target> [files...]",
		Short: "Remove files or a whole target",
		Long: `Removes files from a target. With --target the whole target is removed
and dropped from the default targets. Encrypted artifacts are left in place.

Examples:
  trick remove db .env
  trick remove --target db`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting remove command")

			result, err := workflows.Remove(cmd.Context(), workflows.RemoveOptions{
				Root:         opts.root,
				Target:       args[0],
				Files:        args[1:],
				RemoveTarget: removeTarget,
			})
			if err != nil {
				return err
			}

			if result.TargetRemoved {
				fmt.Println(ui.Success.Sprint("✓") + " Removed target " + ui.Target.Sprint(result.Target))
				return nil
			}
			for _, file := range result.Removed {
				fmt.Println("  " + ui.Success.Tag("removed") + " " + ui.Path.Sprint(file))
			}
			for _, file := range result.NotFound {
				fmt.Println("  " + ui.Warning.Tag("not found") + " " + ui.Path.Sprint(file) + " is not tracked by " + ui.Target.Sprint(result.Target))
			}
			return nil
		},
	}

	removeCmd.Flags().BoolVarP(&removeTarget, "target", "t", false, "remove the whole target")

	return removeCmd
}

func newListCommand(opts *globalOptions) *cobra.Command {
	var asJSON bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List targets and their files",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting list command")

			result, err := workflows.List(cmd.Context(), workflows.ListOptions{Root: opts.root})
			if err != nil {
				return err
			}
			Logger.Debugf("Read %d targets from %s", len(result.Targets), result.ConfigPath)

			if asJSON {
				data, err := json.MarshalIndent(result.Targets, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal targets to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(result.Targets) == 0 {
				fmt.Println("No targets found.")
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("trick add <target> <files...>") + " to create one")
				return nil
			}

			for _, target := range result.Targets {
				line := ui.Target.Sprint(target.Name)
				if target.Default {
					line += " " + ui.Muted.Sprint("default")
				}
				fmt.Print(line + utils.FormatPaths(target.Files))
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON array")

	return listCmd
}
