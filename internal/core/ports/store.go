package ports

import (
	"context"
	"io"

	"go.trai.ch/corebuild/internal/core/domain"
)

// MetadataStore persists core and configuration records.
type MetadataStore interface {
	LatestCore(ctx context.Context, platform domain.Platform, minVersion int) (*domain.Core, error)
	MaxCoreVersion(ctx context.Context, platform domain.Platform) (int, error)
	HasCore(ctx context.Context, platform domain.Platform, version int) (bool, error)
	InsertCore(ctx context.Context, core *domain.Core) error
	ListCores(ctx context.Context, platform domain.Platform) ([]domain.Core, error)
	GetConfiguration(ctx context.Context, id string) (*domain.BuildConfiguration, error)
	PutConfiguration(ctx context.Context, cfg *domain.BuildConfiguration) error
	ListConfigurations(ctx context.Context) ([]domain.BuildConfiguration, error)
	Close() error
}

// BlobStore stores immutable content addressed by digest.
type BlobStore interface {
	Put(ctx context.Context, content io.Reader) (digest string, size int64, err error)
	Get(ctx context.Context, digest string) ([]byte, error)
	Has(ctx context.Context, digest string) (bool, error)
}
