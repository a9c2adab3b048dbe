// Package linux builds Linux installers from a staged core.
package linux

import (
	"context"

	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/builder/archive"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var layout = archive.Layout{
	ConfigEntry:  ".config.json",
	ArtifactName: "installer-linux.zip",
}

func init() {
	builder.MustRegister(domain.PlatformLinux, New)
}

// Builder packages Linux cores.
type Builder struct{}

// New returns a Linux builder.
func New() ports.Builder {
	return &Builder{}
}

// Platform returns domain.PlatformLinux.
func (b *Builder) Platform() domain.Platform {
	return domain.PlatformLinux
}

// Patch repacks the staged core with the resolved configuration.
func (b *Builder) Patch(ctx context.Context, job *domain.Job) (*domain.Artifact, error) {
	if job.Platform != domain.PlatformLinux {
		return nil, zerr.With(zerr.Wrap(domain.ErrPatchFailed, "job targets another platform"),
			"platform", job.Platform.String())
	}
	return archive.Pack(ctx, job, layout)
}
