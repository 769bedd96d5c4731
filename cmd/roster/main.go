// Package main is the entry point for the roster employee directory.
package main

import (
	"context"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/roster/cmd/roster/commands"
	"go.trai.ch/roster/internal/app"
	_ "go.trai.ch/roster/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}

	components.Console.SetOutput(stdout)
	components.Logger.SetOutput(stderr)

	// 2. Interface - CLI
	cli := commands.New(components.App, commands.Defaults{
		Seed:     components.Settings.Seed,
		LogLevel: components.Settings.LogLevel,
		LogJSON:  components.Settings.LogJSON,
	})
	cli.SetArgs(args)
	cli.SetIn(stdin)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
