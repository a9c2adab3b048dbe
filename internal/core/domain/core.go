package domain

import (
	"fmt"
	"time"
)

// Core is a versioned binary payload for one platform.
// Digest references the content in the blob store.
type Core struct {
	Platform   Platform
	Version    int
	Digest     string
	Size       int64
	UploadedAt time.Time
}

// String returns a short human readable description of the core.
func (c *Core) String() string {
	return fmt.Sprintf("%s@%d", c.Platform, c.Version)
}
