// Package corestore combines the metadata and blob stores into a core repository.
package corestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const lockRetryInterval = 50 * time.Millisecond

// Store implements ports.CoreStore.
type Store struct {
	meta     ports.MetadataStore
	blobs    ports.BlobStore
	lockPath string
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used for upload timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store. Uploads serialize on a file lock at lockPath so
// concurrent processes never assign the same version twice.
func New(meta ports.MetadataStore, blobs ports.BlobStore, lockPath string, opts ...Option) *Store {
	s := &Store{
		meta:     meta,
		blobs:    blobs,
		lockPath: lockPath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindCore returns the highest version core for platform at or above minVersion.
func (s *Store) FindCore(ctx context.Context, platform domain.Platform, minVersion int) (*domain.Core, error) {
	return s.meta.LatestCore(ctx, platform, minVersion)
}

// FetchContent reads the full payload of core from the blob store.
func (s *Store) FetchContent(ctx context.Context, core *domain.Core) ([]byte, error) {
	data, err := s.blobs.Get(ctx, core.Digest)
	if err != nil {
		return nil, zerr.With(err, "core", core.String())
	}
	if int64(len(data)) != core.Size {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrBlobCorrupt, "core size does not match its record"),
			"core", core.String()), "size", len(data))
	}
	return data, nil
}

// FindConfiguration returns the factory configuration with id.
func (s *Store) FindConfiguration(ctx context.Context, id string) (*domain.BuildConfiguration, error) {
	cfg, err := s.meta.GetConfiguration(ctx, id)
	if err != nil {
		return nil, err
	}
	if cfg.Kind != domain.KindFactory {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrConfigurationNotFound, "configuration is not a factory"),
			"id", id), "kind", string(cfg.Kind))
	}
	return cfg, nil
}

// UploadCore stores content as a core for platform. A zero version selects
// one past the highest stored version.
func (s *Store) UploadCore(ctx context.Context, platform domain.Platform, version int, content io.Reader) (*domain.Core, error) {
	if err := platform.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCoreVersion, "version must not be negative"), "version", version)
	}

	lock, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Close() }()

	// The version is settled before content is stored; rejected uploads write no blob.
	if version == 0 {
		latest, err := s.meta.MaxCoreVersion(ctx, platform)
		if err != nil {
			return nil, err
		}
		version = latest + 1
	} else {
		exists, err := s.meta.HasCore(ctx, platform, version)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrCoreVersionExists, "core version is already stored"),
				"core", fmt.Sprintf("%s@%d", platform, version))
		}
	}

	ref, size, err := s.blobs.Put(ctx, content)
	if err != nil {
		return nil, err
	}

	core := &domain.Core{
		Platform:   platform,
		Version:    version,
		Digest:     ref,
		Size:       size,
		UploadedAt: s.now().UTC(),
	}
	if err := s.meta.InsertCore(ctx, core); err != nil {
		return nil, err
	}
	return core, nil
}

// ListCores returns stored cores, all platforms when platform is empty.
func (s *Store) ListCores(ctx context.Context, platform domain.Platform) ([]domain.Core, error) {
	return s.meta.ListCores(ctx, platform)
}

// SaveConfiguration inserts or replaces a configuration record.
func (s *Store) SaveConfiguration(ctx context.Context, cfg *domain.BuildConfiguration) error {
	if cfg.ID == "" {
		return zerr.Wrap(domain.ErrInvalidConfiguration, "configuration id is required")
	}
	if cfg.Kind != domain.KindFactory && cfg.Kind != domain.KindOperation {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfiguration, "kind must be factory or operation"),
			"kind", string(cfg.Kind))
	}
	return s.meta.PutConfiguration(ctx, cfg)
}

// ListConfigurations returns every configuration record.
func (s *Store) ListConfigurations(ctx context.Context) ([]domain.BuildConfiguration, error) {
	return s.meta.ListConfigurations(ctx)
}

// Close closes the metadata store.
func (s *Store) Close() error {
	return s.meta.Close()
}

// acquire takes the upload lock. The lock file stays on disk after release.
func (s *Store) acquire(ctx context.Context) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(s.lockPath), domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreLockFailed, err), "path", s.lockPath)
	}

	fl := flock.New(s.lockPath)
	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreLockFailed, err), "path", s.lockPath)
	}
	if !locked {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreLockFailed, "lock not acquired"), "path", s.lockPath)
	}
	return fl, nil
}
