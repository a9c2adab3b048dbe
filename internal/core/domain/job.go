package domain

// Job is the input handed to a platform builder once a build is loaded.
type Job struct {
	Platform      Platform
	Core          *Core
	CorePath      string
	WorkDir       string
	OutputDir     string
	Configuration *BuildConfiguration
}

// Artifact is the deliverable produced by a builder.
type Artifact struct {
	Platform Platform
	Path     string
	Size     int64
	Digest   string
}
