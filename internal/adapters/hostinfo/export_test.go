package hostinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/host"
)

// NewDetectorWithInfo returns a Detector backed by info.
func NewDetectorWithInfo(info func(ctx context.Context) (*host.InfoStat, error)) *Detector {
	return &Detector{info: info}
}
