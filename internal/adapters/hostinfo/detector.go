// Package hostinfo detects the platform of the running host.
package hostinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
	"go.trai.ch/corebuild/internal/core/domain"
)

// Detector implements ports.PlatformDetector with gopsutil.
type Detector struct {
	info func(ctx context.Context) (*host.InfoStat, error)
}

// NewDetector returns a Detector reading the host information.
func NewDetector() *Detector {
	return &Detector{info: host.InfoWithContext}
}

// Detect returns the host platform. It falls back to runtime.GOOS when the
// host information is unavailable.
func (d *Detector) Detect(ctx context.Context) (domain.Platform, error) {
	goos := runtime.GOOS
	if stat, err := d.info(ctx); err == nil && stat.OS != "" {
		goos = stat.OS
	}
	return domain.ParsePlatform(string(domain.PlatformFromGOOS(goos)))
}
