package blob

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/corebuild/internal/adapters/config"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
)

// NodeID is the unique identifier for the blob store Graft node.
const NodeID graft.ID = "adapter.blob"

func init() {
	graft.Register(graft.Node[ports.BlobStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.BlobStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(domain.BlobsPath(settings.StoreDir)), nil
		},
	})
}
