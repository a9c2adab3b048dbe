// Package osx builds macOS installers from a staged core.
package osx

import (
	"context"

	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/builder/archive"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var layout = archive.Layout{
	ConfigEntry:  "Contents/Resources/config.json",
	ArtifactName: "installer-osx.zip",
}

func init() {
	builder.MustRegister(domain.PlatformOSX, New)
}

// Builder packages macOS cores.
type Builder struct{}

// New returns a macOS builder.
func New() ports.Builder {
	return &Builder{}
}

// Platform returns domain.PlatformOSX.
func (b *Builder) Platform() domain.Platform {
	return domain.PlatformOSX
}

// Patch repacks the staged core with the resolved configuration.
func (b *Builder) Patch(ctx context.Context, job *domain.Job) (*domain.Artifact, error) {
	if job.Platform != domain.PlatformOSX {
		return nil, zerr.With(zerr.Wrap(domain.ErrPatchFailed, "job targets another platform"),
			"platform", job.Platform.String())
	}
	return archive.Pack(ctx, job, layout)
}
