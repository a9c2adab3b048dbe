package domain

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogFormatPretty renders colored, human readable lines.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	// StoreDir holds the metadata database and the blob store.
	StoreDir string
	// WorkspaceRoot is the parent directory for build workspaces.
	WorkspaceRoot string
	// Concurrency bounds the number of builds running at once.
	Concurrency int
	// DefaultPlatform is used when a command does not name a platform.
	DefaultPlatform Platform
	// LogFormat selects the log handler.
	LogFormat LogFormat
	// Debug enables debug level logging.
	Debug bool
}
