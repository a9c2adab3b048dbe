package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/corebuild/internal/engine/staging"
	"go.trai.ch/corebuild/internal/fsutil"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BuildRequest describes one platform build.
type BuildRequest struct {
	// Platform to build. Empty selects the default platform.
	Platform string
	// ConfigID selects a factory configuration. Empty builds without one.
	ConfigID string
	// MinVersion ignores older cores.
	MinVersion int
	// OutputDir receives a copy of the artifact. Empty leaves the artifact
	// in the workspace, which is then kept.
	OutputDir string
	// Keep leaves the workspace in place after the build.
	Keep bool
}

// BuildResult reports a finished build.
type BuildResult struct {
	Platform      domain.Platform
	Core          *domain.Core
	Configuration *domain.BuildConfiguration
	Artifact      *domain.Artifact
	Workspace     string
}

// Build stages the newest core for the requested platform and patches it
// into an artifact.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, req BuildRequest) (result *BuildResult, err error) {
	platform, err := a.ResolvePlatform(ctx, req.Platform)
	if err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "build")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("platform", platform.String())

	// Unknown platforms fail before a workspace is created.
	patcher, err := a.registry.Factory(platform)
	if err != nil {
		return nil, err
	}

	b, err := staging.New(a.workspaces, a.store,
		staging.WithPlatform(platform),
		staging.WithMinVersion(req.MinVersion),
		staging.WithLogger(a.logger),
		staging.WithTracer(a.tracer),
	)
	if err != nil {
		return nil, err
	}

	keep := req.Keep || req.OutputDir == ""
	defer func() {
		if keep && err == nil {
			return
		}
		if closeErr := b.Close(); closeErr != nil {
			a.logger.Warn("failed to remove workspace", "path", b.Workspace(), "error", closeErr.Error())
		}
	}()

	if err := b.Load(ctx, domain.SelectByID(req.ConfigID)); err != nil {
		return nil, err
	}
	if cfg := b.FactoryConfig(); cfg != nil && !cfg.Good {
		a.logger.Warn("configuration is not marked good", "id", cfg.ID)
	}
	if err := b.VerifyStaged(); err != nil {
		return nil, err
	}

	job, err := b.Job()
	if err != nil {
		return nil, err
	}

	artifact, err := a.patch(ctx, patcher, job)
	if err != nil {
		return nil, err
	}

	if req.OutputDir != "" {
		artifact, err = publish(artifact, req.OutputDir)
		if err != nil {
			return nil, err
		}
	}

	a.logger.Info("build finished",
		"platform", platform.String(), "core", b.Core().String(), "artifact", artifact.Path)

	return &BuildResult{
		Platform:      platform,
		Core:          b.Core(),
		Configuration: b.FactoryConfig(),
		Artifact:      artifact,
		Workspace:     b.Workspace(),
	}, nil
}

// BuildMany runs reqs concurrently, at most settings.Concurrency at a time.
// Every request runs to completion; results are index aligned with reqs and
// nil for failed builds.
func (a *App) BuildMany(ctx context.Context, reqs []BuildRequest) ([]*BuildResult, error) {
	results := make([]*BuildResult, len(reqs))
	errs := make([]error, len(reqs))

	g := new(errgroup.Group)
	g.SetLimit(max(a.settings.Concurrency, 1))

	for i, req := range reqs {
		g.Go(func() error {
			res, err := a.Build(ctx, req)
			if err != nil {
				a.logger.Error(zerr.With(err, "platform", req.Platform))
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return results, errors.Join(domain.ErrBuildFailed, err)
	}
	return results, nil
}

func (a *App) patch(ctx context.Context, patcher ports.Builder, job *domain.Job) (*domain.Artifact, error) {
	ctx, span := a.tracer.Start(ctx, "build.patch")
	defer span.End()

	artifact, err := patcher.Patch(ctx, job)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrPatchFailed) || errors.Is(err, domain.ErrInvalidCoreArchive) {
			return nil, err
		}
		return nil, zerr.With(errors.Join(domain.ErrPatchFailed, err), "platform", job.Platform.String())
	}
	span.SetAttribute("artifact.digest", artifact.Digest)
	return artifact, nil
}

// publish copies the artifact into dir and returns the copy.
func publish(artifact *domain.Artifact, dir string) (*domain.Artifact, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPatchFailed, err), "output", dir)
	}
	dst := filepath.Join(dir, filepath.Base(artifact.Path))
	if err := fsutil.CopyFileAtomic(artifact.Path, dst, domain.FilePerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPatchFailed, err), "output", dst)
	}

	published := *artifact
	published.Path = dst
	return &published, nil
}
