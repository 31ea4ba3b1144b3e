package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/workflows"

	"github.com/spf13/cobra"
)

type logFlags struct {
	limit     int
	reverse   bool
	user      string
	operation string
	target    string
	since     string
	until     string
	oneline   bool
	json      bool
}

func newLogCommand(opts *globalOptions) *cobra.Command {
	var flags logFlags

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "View the audit log",
		Long: `Displays the audit log kept in the store directory.

Shows who performed what operation and when. Use filters to narrow down
the results.

Examples:
  trick log                              # View full log
  trick log -n 10                        # Last 10 entries
  trick log --reverse                    # Most recent first
  trick log --operation encrypt,decrypt  # Filter by operation
  trick log --target db                  # Filter by target
  trick log --since 2024-01-01           # Filter by date
  trick log --json                       # JSON output`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, opts, flags)
		},
	}

	logCmd.Flags().IntVarP(&flags.limit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&flags.reverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&flags.user, "user", "", "filter by user")
	logCmd.Flags().StringVar(&flags.operation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&flags.target, "target", "", "filter by target")
	logCmd.Flags().StringVar(&flags.since, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&flags.until, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&flags.oneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&flags.json, "json", false, "output as JSON array")

	return logCmd
}

func runLog(cmd *cobra.Command, opts *globalOptions, flags logFlags) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", opts)
	defer cleanup()

	result, err := workflows.Log(cmd.Context(), workflows.LogOptions{
		Root:       opts.root,
		Limit:      flags.limit,
		Reverse:    flags.reverse,
		User:       flags.user,
		Operations: flags.operation,
		Target:     flags.target,
		Since:      flags.since,
		Until:      flags.until,
	})
	if err != nil {
		return err
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			spinner.FinalMSG = "No audit log entries found."
		} else {
			spinner.FinalMSG = "No audit log entries found matching the filters."
		}
		return nil
	}

	if flags.json {
		data, err := json.MarshalIndent(result.Entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		spinner.FinalMSG = string(data)
		return nil
	}

	if flags.oneline {
		spinner.FinalMSG = formatLogOneline(result.Entries)
		return nil
	}

	spinner.FinalMSG = formatLogDefault(result.Entries)
	return nil
}

func formatLogOneline(entries []audit.Entry) string {
	var out string
	for _, e := range entries {
		date := workflows.FormatDate(e.Timestamp)
		details := workflows.FormatDetailsOneline(e)
		out += fmt.Sprintf("%s %s %s %s\n", date, e.User, e.Operation, details)
	}
	return out
}

func formatLogDefault(entries []audit.Entry) string {
	var out string
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		details := workflows.FormatDetails(e)
		out += fmt.Sprintf("%-19s  %-20s  %-14s  %s\n", datetime, e.User, e.Operation, details)
	}
	return out
}
