package cmd

import (
	"context"
	"fmt"
	"os"

	kerrors "github.com/trick-cli/trick/internal/errors"
	logger "github.com/trick-cli/trick/internal/logging"

	"github.com/spf13/cobra"
)

// Logger is configured from the persistent flags before each command runs.
var Logger logger.Logger

// globalOptions holds the persistent flags of one command tree.
type globalOptions struct {
	verbose bool
	debug   bool
	root    string
}

// commandConstructor builds one subcommand bound to the tree's global options.
type commandConstructor func(opts *globalOptions) *cobra.Command

var commands = []commandConstructor{
	newInitCommand,
	newAddCommand,
	newRemoveCommand,
	newEncryptCommand,
	newDecryptCommand,
	newListCommand,
	newSetDefaultCommand,
	newAddDefaultCommand,
	newRemoveDefaultCommand,
	newGetDefaultCommand,
	newConfigCommand,
	newSetPassphraseCommand,
	newLogCommand,
}

// NewRootCommand returns a fresh trick command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "trick",
		Short: "Trick - Encrypt project credential files with per-target passphrases.",
		Long: `Trick keeps credential files out of version control by encrypting them
into a store directory that can be committed instead.

Files are grouped into named targets. Each target has its own passphrase,
read from an environment variable, a passphrase file, or a passphrase
directory. The cipher is compatible with:

  openssl enc -aes-256-cbc -salt -pbkdf2 -iter N -md sha256

Run 'trick help <command>' for more details on a specific command.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: opts.verbose,
				Debug:   opts.debug,
			}
			Logger.Debugf("Initializing trick command: %s", cmd.CommandPath())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&opts.root, "root", "r", "", "project root directory (default: nearest ancestor with trick.config.json or .git)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", kerrors.ErrInvalidUsage, err)
	})

	for _, newCommand := range commands {
		rootCmd.AddCommand(newCommand(opts))
	}

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(context.Background(), os.Args[1:])
}

func run(ctx context.Context, args []string) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		Logger.Errorf("Command failed: %v", err)
		renderError(os.Stderr, err)
	}
	return kerrors.ExitCode(err)
}
