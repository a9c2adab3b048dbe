// Package app implements the application layer for corebuild.
package app

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settings   *domain.Settings
	store      ports.CoreStore
	workspaces ports.WorkspaceManager
	registry   *builder.Registry
	detector   ports.PlatformDetector
	reader     ports.ConfigurationReader
	logger     ports.Logger
	tracer     ports.Tracer
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	store ports.CoreStore,
	workspaces ports.WorkspaceManager,
	registry *builder.Registry,
	detector ports.PlatformDetector,
	reader ports.ConfigurationReader,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		settings:   settings,
		store:      store,
		workspaces: workspaces,
		registry:   registry,
		detector:   detector,
		reader:     reader,
		logger:     log,
		tracer:     tracer,
	}
}

// ResolvePlatform parses name, or falls back to the configured default and
// then to the host platform when name is empty.
func (a *App) ResolvePlatform(ctx context.Context, name string) (domain.Platform, error) {
	if strings.TrimSpace(name) != "" {
		return domain.ParsePlatform(name)
	}
	if a.settings.DefaultPlatform != "" {
		return a.settings.DefaultPlatform, nil
	}
	p, err := a.detector.Detect(ctx)
	if err != nil {
		return "", zerr.Wrap(err, "detect host platform")
	}
	a.logger.Debug("using host platform", "platform", p.String())
	return p, nil
}

// UploadCore stores the file at path as a core for platform. A zero version
// selects the next free version.
func (a *App) UploadCore(ctx context.Context, platform domain.Platform, version int, path string) (*domain.Core, error) {
	ctx, span := a.tracer.Start(ctx, "core.upload")
	defer span.End()
	span.SetAttribute("platform", platform.String())

	//nolint:gosec // Path is chosen by the operator
	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "open core file"), "path", path)
	}
	defer func() { _ = f.Close() }()

	core, err := a.store.UploadCore(ctx, platform, version, f)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("version", core.Version)
	a.logger.Info("core uploaded", "core", core.String(), "size", core.Size, "digest", core.Digest)
	return core, nil
}

// ListCores returns stored cores, all platforms when platform is empty.
func (a *App) ListCores(ctx context.Context, platform domain.Platform) ([]domain.Core, error) {
	return a.store.ListCores(ctx, platform)
}

// AddConfigurations imports every configuration record in the file at path
// and returns how many were saved.
func (a *App) AddConfigurations(ctx context.Context, path string) (int, error) {
	configs, err := a.reader.ReadConfigurations(path)
	if err != nil {
		return 0, err
	}

	for i := range configs {
		if err := a.store.SaveConfiguration(ctx, &configs[i]); err != nil {
			return i, zerr.With(err, "id", configs[i].ID)
		}
		a.logger.Debug("configuration saved", "id", configs[i].ID, "kind", string(configs[i].Kind))
	}

	a.logger.Info("configurations imported", "count", len(configs), "path", path)
	return len(configs), nil
}

// ListConfigurations returns every stored configuration record.
func (a *App) ListConfigurations(ctx context.Context) ([]domain.BuildConfiguration, error) {
	return a.store.ListConfigurations(ctx)
}

// Platforms returns the platforms with a registered builder.
func (a *App) Platforms() []domain.Platform {
	return a.registry.Platforms()
}

// Close releases the core store.
func (a *App) Close() error {
	return a.store.Close()
}
