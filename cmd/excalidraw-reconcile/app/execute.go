package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/OP439/excalidraw/pkg/constants"
)

// Execute runs the CLI with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Reconcile collaborative whiteboard snapshots",
		Version: a.version,
		Long: `excalidraw-reconcile merges remote element batches into a local scene
snapshot the way a collaborative whiteboard client does.

Each element carries a version and a random nonce. The higher version wins,
equal versions fall back to the lower nonce, and elements the local user is
editing, resizing or dragging are never replaced. The merged scene is then
ordered by fractional index, and colliding or malformed order keys are
regenerated.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	if a.in != nil {
		rootCmd.SetIn(a.in)
	}
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	if a.errOut != nil {
		rootCmd.SetErr(a.errOut)
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Add global flags. Values are applied in setupCommand only when the
	// flag was given, so they override the environment and config file.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/"+constants.ConfigFileName+".yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "report format: table, json, yaml, wide")
	flags.String("input-format", "", "snapshot encoding: json, yaml (default from file extension)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.Bool("metrics", false, "print reconciliation metrics to stderr after the run")

	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfig(path)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.applyFlags(cmd)

	if !a.customLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	return nil
}

// applyFlags copies explicitly set flags into the config.
func (a *App) applyFlags(cmd *cobra.Command) {
	changed := cmd.Flags().Changed

	if changed("verbose") {
		a.config.Verbose = mustGetBool(cmd, "verbose")
	}
	if changed("quiet") {
		a.config.Quiet = mustGetBool(cmd, "quiet")
	}
	if changed("no-color") {
		a.config.NoColor = mustGetBool(cmd, "no-color")
	}
	if changed("format") {
		a.config.Format = mustGetString(cmd, "format")
	}
	if changed("input-format") {
		a.config.InputFormat = mustGetString(cmd, "input-format")
	}
	if changed("log-level") {
		a.config.LogLevel = mustGetString(cmd, "log-level")
	}
	if changed("metrics") {
		a.config.Metrics = mustGetBool(cmd, "metrics")
	}
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewMergeCommand())
	rootCmd.AddCommand(a.NewValidateCommand())
	rootCmd.AddCommand(a.NewRepairCommand())

	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
