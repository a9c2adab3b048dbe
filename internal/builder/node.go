package builder

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the builder registry Graft node.
const NodeID graft.ID = "builder.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (*Registry, error) {
			// Builder packages have registered from init by the time the graph runs.
			defaultRegistry.Seal()
			return defaultRegistry, nil
		},
	})
}
