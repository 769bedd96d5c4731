package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roster/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/roster/internal/adapters/console" //nolint:depguard // Wired in app layer
	"go.trai.ch/roster/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/roster/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the command line layer needs from the graph.
type Components struct {
	App      *App
	Logger   ports.Logger
	Console  ports.Console
	Settings *config.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			console.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	out, err := graft.Dep[ports.Console](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	seeds, err := graft.Dep[ports.SeedLoader](ctx)
	if err != nil {
		return nil, err
	}

	return New(out, log, seeds), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	out, err := graft.Dep[ports.Console](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Console:  out,
		Settings: settings,
	}, nil
}
