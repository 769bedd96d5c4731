// Package app implements the application layer for roster.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/roster/internal/core/ports"
	"go.trai.ch/roster/internal/engine/session"
	"go.trai.ch/zerr"
)

// App wires the session to its adapters.
type App struct {
	console ports.Console
	logger  ports.Logger
	seeds   ports.SeedLoader
}

// New creates a new App instance.
func New(console ports.Console, log ports.Logger, seeds ports.SeedLoader) *App {
	return &App{
		console: console,
		logger:  log,
		seeds:   seeds,
	}
}

// LogOptions configures diagnostic logging.
type LogOptions struct {
	Level string
	JSON  bool
}

// RunOptions configures an interactive session.
type RunOptions struct {
	Seed string
	Log  LogOptions
}

// Run starts an interactive session reading commands from in.
// The directory starts empty, or with the entries of opts.Seed.
func (a *App) Run(ctx context.Context, in io.Reader, opts RunOptions) error {
	if err := a.configureLogging(opts.Log); err != nil {
		return err
	}

	dir, err := a.directory(opts.Seed)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("session started with %d department(s)", dir.Len()))
	if err := session.New(dir, a.console, a.logger).Run(ctx, in); err != nil {
		return zerr.Wrap(err, "session ended unexpectedly")
	}
	return nil
}

// Inspect validates the seed file at path and prints its summary table.
func (a *App) Inspect(_ context.Context, path string, log LogOptions) error {
	if err := a.configureLogging(log); err != nil {
		return err
	}

	dir, err := a.directory(path)
	if err != nil {
		return err
	}
	return a.console.Summary(dir)
}

func (a *App) directory(seed string) (*domain.Directory, error) {
	if seed == "" {
		return domain.NewDirectory(), nil
	}

	dir, err := a.seeds.Load(seed)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load seed")
	}
	return dir, nil
}

func (a *App) configureLogging(opts LogOptions) error {
	if opts.Level != "" {
		if err := a.logger.SetLevel(opts.Level); err != nil {
			return err
		}
	}
	a.logger.SetJSON(opts.JSON)
	return nil
}
