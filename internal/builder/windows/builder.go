// Package windows builds Windows installers from a staged core.
package windows

import (
	"context"

	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/builder/archive"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var layout = archive.Layout{
	ConfigEntry:  "config.json",
	ArtifactName: "installer-windows.zip",
}

func init() {
	builder.MustRegister(domain.PlatformWindows, New)
}

// Builder packages Windows cores.
type Builder struct{}

// New returns a Windows builder.
func New() ports.Builder {
	return &Builder{}
}

// Platform returns domain.PlatformWindows.
func (b *Builder) Platform() domain.Platform {
	return domain.PlatformWindows
}

// Patch repacks the staged core with the resolved configuration.
func (b *Builder) Patch(ctx context.Context, job *domain.Job) (*domain.Artifact, error) {
	if job.Platform != domain.PlatformWindows {
		return nil, zerr.With(zerr.Wrap(domain.ErrPatchFailed, "job targets another platform"),
			"platform", job.Platform.String())
	}
	return archive.Pack(ctx, job, layout)
}
