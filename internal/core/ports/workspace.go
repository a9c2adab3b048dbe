package ports

//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks

// WorkspaceManager creates build workspaces.
type WorkspaceManager interface {
	// Create makes a new, uniquely named workspace directory.
	Create() (Workspace, error)
}

// Workspace is a temporary directory owned by a single build.
type Workspace interface {
	// Path returns the workspace directory.
	Path() string
	// CorePath returns the location of the staged core.
	CorePath() string
	// OutputDir returns the builder output directory, creating it if needed.
	OutputDir() (string, error)
	// WriteCore atomically replaces the staged core and returns its checksum.
	WriteCore(data []byte) (uint64, error)
	// ReadCore returns the staged core.
	ReadCore() ([]byte, error)
	// Remove deletes the workspace and everything in it.
	Remove() error
}
