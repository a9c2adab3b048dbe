// Package staging prepares a single platform build: it owns the build's
// workspace, stages the newest matching core into it and resolves the
// factory configuration the builder will embed.
package staging

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/corebuild/internal/adapters/telemetry" //nolint:depguard // Default tracer
	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// State is the lifecycle position of a Build.
type State int

const (
	// StateUninitialized is a build whose core has not been staged yet.
	StateUninitialized State = iota
	// StateLoaded is a build with a staged core, ready for patching.
	StateLoaded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	default:
		return "uninitialized"
	}
}

// Build stages one core for one platform. A Build is single use and must not
// be shared between goroutines.
type Build struct {
	repo   ports.CoreRepository
	ws     ports.Workspace
	logger ports.Logger
	tracer ports.Tracer

	platform      domain.Platform
	minVersion    int
	core          *domain.Core
	factoryConfig *domain.BuildConfiguration
	checksum      uint64
	state         State
}

// Option configures a Build.
type Option func(*options)

type options struct {
	platform   domain.Platform
	minVersion int
	logger     ports.Logger
	tracer     ports.Tracer
}

// WithPlatform sets the target platform at construction.
func WithPlatform(p domain.Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithMinVersion ignores cores older than v.
func WithMinVersion(v int) Option {
	return func(o *options) {
		o.minVersion = v
	}
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTracer sets the tracer.
func WithTracer(t ports.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// New creates a Build and its workspace. The workspace exists and is
// writable when New returns.
func New(workspaces ports.WorkspaceManager, repo ports.CoreRepository, opts ...Option) (*Build, error) {
	o := options{
		logger: nopLogger{},
		tracer: telemetry.NewNoOpTracer(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.platform != "" {
		if err := o.platform.Validate(); err != nil {
			return nil, err
		}
	}
	if o.minVersion < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCoreVersion, "minimum version must not be negative"),
			"min_version", o.minVersion)
	}

	ws, err := workspaces.Create()
	if err != nil {
		return nil, err
	}

	o.logger.Debug("workspace created", "path", ws.Path())

	return &Build{
		repo:       repo,
		ws:         ws,
		logger:     o.logger,
		tracer:     o.tracer,
		platform:   o.platform,
		minVersion: o.minVersion,
	}, nil
}

// Factory returns a new builder for platform from the default registry.
func Factory(platform domain.Platform) (ports.Builder, error) {
	return builder.Factory(platform)
}

// SetPlatform assigns the target platform. A platform can be set once;
// setting the same value again is allowed.
func (b *Build) SetPlatform(p domain.Platform) error {
	if b.state == StateLoaded {
		return zerr.Wrap(domain.ErrAlreadyLoaded, "cannot change platform")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if b.platform != "" && b.platform != p {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrPlatformAlreadySet, "cannot change platform"),
			"current", b.platform.String()), "requested", p.String())
	}
	b.platform = p
	return nil
}

// Load stages the highest version core for the build's platform and, when
// sel is not nil, resolves the factory configuration it names.
//
// The core is fully fetched before it is written, and the write is atomic, so
// a failed Load never leaves a partial core in the workspace.
func (b *Build) Load(ctx context.Context, sel *domain.Selector) (err error) {
	if b.platform == "" {
		return domain.ErrPlatformNotSet
	}
	if b.state == StateLoaded {
		return domain.ErrAlreadyLoaded
	}

	ctx, span := b.tracer.Start(ctx, "build.load")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("platform", b.platform.String())

	core, err := b.repo.FindCore(ctx, b.platform, b.minVersion)
	if errors.Is(err, domain.ErrCoreNotFound) {
		return zerr.Wrap(err, fmt.Sprintf("core for %s not found", b.platform))
	}
	if err != nil {
		return err
	}
	span.SetAttribute("core.version", core.Version)

	content, err := b.repo.FetchContent(ctx, core)
	if err != nil {
		return err
	}

	sum, err := b.ws.WriteCore(content)
	if err != nil {
		return err
	}
	span.SetAttribute("core.checksum", sum)

	b.logger.Debug("core staged",
		"platform", b.platform.String(), "version", core.Version, "size", len(content), "path", b.ws.CorePath())

	var cfg *domain.BuildConfiguration
	if sel != nil {
		cfg, err = b.repo.FindConfiguration(ctx, sel.ID)
		if err != nil {
			return err
		}
		span.SetAttribute("configuration", cfg.ID)
	}

	// Nothing is recorded until every lookup succeeded.
	b.core = core
	b.checksum = sum
	b.factoryConfig = cfg
	b.state = StateLoaded
	return nil
}

// Platform returns the target platform, empty until set.
func (b *Build) Platform() domain.Platform {
	return b.platform
}

// Workspace returns the build's workspace directory.
func (b *Build) Workspace() string {
	return b.ws.Path()
}

// CorePath returns where the core is staged.
func (b *Build) CorePath() string {
	return b.ws.CorePath()
}

// Core returns the staged core record, nil before Load.
func (b *Build) Core() *domain.Core {
	return b.core
}

// FactoryConfig returns the resolved configuration, nil when none was selected.
func (b *Build) FactoryConfig() *domain.BuildConfiguration {
	return b.factoryConfig
}

// State returns the lifecycle state.
func (b *Build) State() State {
	return b.state
}

// Checksum returns the xxhash64 of the staged core, zero before Load.
func (b *Build) Checksum() uint64 {
	return b.checksum
}

// VerifyStaged re-reads the staged core and compares it with the checksum
// recorded when it was written.
func (b *Build) VerifyStaged() error {
	if b.state != StateLoaded {
		return domain.ErrNotLoaded
	}
	data, err := b.ws.ReadCore()
	if err != nil {
		return err
	}
	if got := checksum(data); got != b.checksum {
		return zerr.With(zerr.Wrap(domain.ErrStagedCoreMismatch, "staged core changed"), "path", b.ws.CorePath())
	}
	return nil
}

// Job returns the builder input for a loaded build.
func (b *Build) Job() (*domain.Job, error) {
	if b.state != StateLoaded {
		return nil, domain.ErrNotLoaded
	}
	out, err := b.ws.OutputDir()
	if err != nil {
		return nil, err
	}
	return &domain.Job{
		Platform:      b.platform,
		Core:          b.core,
		CorePath:      b.ws.CorePath(),
		WorkDir:       b.ws.Path(),
		OutputDir:     out,
		Configuration: b.factoryConfig,
	}, nil
}

// Close removes the workspace.
func (b *Build) Close() error {
	return b.ws.Remove()
}
