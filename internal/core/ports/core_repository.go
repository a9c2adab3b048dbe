package ports

import (
	"context"
	"io"

	"go.trai.ch/corebuild/internal/core/domain"
)

//go:generate mockgen -source=core_repository.go -destination=mocks/mock_core_repository.go -package=mocks

// CoreRepository locates cores and build configurations and fetches core content.
type CoreRepository interface {
	// FindCore returns the highest version core for platform whose version is
	// at least minVersion. It returns domain.ErrCoreNotFound when none matches.
	FindCore(ctx context.Context, platform domain.Platform, minVersion int) (*domain.Core, error)
	// FetchContent returns the full payload of core.
	FetchContent(ctx context.Context, core *domain.Core) ([]byte, error)
	// FindConfiguration returns the factory configuration with the given id.
	// It returns domain.ErrConfigurationNotFound when none matches.
	FindConfiguration(ctx context.Context, id string) (*domain.BuildConfiguration, error)
}

// CoreStore is a CoreRepository that also manages its records.
type CoreStore interface {
	CoreRepository
	// UploadCore stores content as a new core version. A zero version is
	// assigned the next free version for the platform.
	UploadCore(ctx context.Context, platform domain.Platform, version int, content io.Reader) (*domain.Core, error)
	// ListCores returns all cores, optionally filtered by platform.
	ListCores(ctx context.Context, platform domain.Platform) ([]domain.Core, error)
	// SaveConfiguration inserts or replaces a configuration record.
	SaveConfiguration(ctx context.Context, cfg *domain.BuildConfiguration) error
	// ListConfigurations returns every configuration record.
	ListConfigurations(ctx context.Context) ([]domain.BuildConfiguration, error)
	// Close releases the underlying stores.
	Close() error
}
