package hostinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/corebuild/internal/core/ports"
)

// NodeID is the unique identifier for the host platform detector Graft node.
const NodeID graft.ID = "adapter.hostinfo"

func init() {
	graft.Register(graft.Node[ports.PlatformDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformDetector, error) {
			return NewDetector(), nil
		},
	})
}
