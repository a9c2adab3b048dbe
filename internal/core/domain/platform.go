package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies a build target such as "linux" or "osx".
type Platform string

// Known platforms shipped with a builder.
const (
	PlatformLinux   Platform = "linux"
	PlatformOSX     Platform = "osx"
	PlatformWindows Platform = "windows"
)

var platformPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ParsePlatform normalizes s and validates it as a platform identifier.
// Identifiers are lower-case; whether a builder or core exists for the
// platform is not checked here.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports whether p is a well-formed platform identifier.
func (p Platform) Validate() error {
	if !platformPattern.MatchString(string(p)) {
		return zerr.With(zerr.Wrap(ErrInvalidPlatform, "invalid platform identifier"), "platform", string(p))
	}
	return nil
}

// String returns the identifier.
func (p Platform) String() string {
	return string(p)
}

// PlatformFromGOOS maps a Go operating system name to a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformOSX
	default:
		return Platform(strings.ToLower(goos))
	}
}
