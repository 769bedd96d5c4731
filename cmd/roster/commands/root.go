// Package commands implements the CLI commands for roster.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/roster/internal/app"
	"go.trai.ch/roster/internal/build"
)

// CLI represents the command line interface for roster.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, in io.Reader, opts app.RunOptions) error
	Inspect(ctx context.Context, path string, log app.LogOptions) error
}

// Defaults holds the flag values used when a flag is not given.
type Defaults struct {
	Seed     string
	LogLevel string
	LogJSON  bool
}

// New creates a new CLI instance with the given app.
func New(a Application, defaults Defaults) *CLI {
	rootCmd := &cobra.Command{
		Use:           "roster",
		Short:         "An interactive employee directory",
		Long:          "Reads Add, List, All and Quit commands from standard input until Quit or end of input.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("seed", "s", defaults.Seed, "Preload the directory from a YAML seed file")
	rootCmd.PersistentFlags().String("log-level", defaults.LogLevel, "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", defaults.LogJSON, "Write diagnostic logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		seed, _ := cmd.Flags().GetString("seed")
		return c.app.Run(cmd.Context(), cmd.InOrStdin(), app.RunOptions{
			Seed: seed,
			Log:  logOptions(cmd),
		})
	}

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetIn sets the stream the interactive session reads commands from.
func (c *CLI) SetIn(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func logOptions(cmd *cobra.Command) app.LogOptions {
	level, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("log-json")
	return app.LogOptions{Level: level, JSON: asJSON}
}
