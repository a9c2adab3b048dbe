package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the settings Graft node.
	NodeID graft.ID = "adapter.config"
	// ReaderNodeID is the unique identifier for the configuration file reader Graft node.
	ReaderNodeID graft.ID = "adapter.config.reader"
)

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Settings, error) {
			return NewLoader().Load()
		},
	})

	graft.Register(graft.Node[ports.ConfigurationReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigurationReader, error) {
			return FileReader{}, nil
		},
	})
}
