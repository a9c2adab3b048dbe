package ports

import (
	"context"

	"go.trai.ch/corebuild/internal/core/domain"
)

//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// Builder turns a staged core into a platform deliverable.
type Builder interface {
	// Platform returns the platform this builder targets.
	Platform() domain.Platform
	// Patch produces an artifact from the job's staged core.
	Patch(ctx context.Context, job *domain.Job) (*domain.Artifact, error)
}

// PlatformDetector reports the platform of the running host.
type PlatformDetector interface {
	Detect(ctx context.Context) (domain.Platform, error)
}
