package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roster/internal/core/ports"
)

// NodeID is the unique identifier for the console Graft node.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.Console]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Console, error) {
			return New(nil), nil
		},
	})
}
