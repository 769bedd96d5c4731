package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roster/internal/adapters/logger"
	"go.trai.ch/roster/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the seed loader Graft node.
	NodeID graft.ID = "adapter.seed_loader"
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.SeedLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SeedLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			return LoadSettings()
		},
	})
}
