package corestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/corebuild/internal/adapters/blob"
	"go.trai.ch/corebuild/internal/adapters/config"
	"go.trai.ch/corebuild/internal/adapters/metadata"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
)

// NodeID is the unique identifier for the core store Graft node.
const NodeID graft.ID = "adapter.corestore"

func init() {
	graft.Register(graft.Node[ports.CoreStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, metadata.NodeID, blob.NodeID},
		Run: func(ctx context.Context) (ports.CoreStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			meta, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}
			blobs, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(meta, blobs, domain.UploadLockPath(settings.StoreDir)), nil
		},
	})
}
