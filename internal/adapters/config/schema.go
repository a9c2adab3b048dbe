package config

// Settingsfile represents the structure of corebuild.yaml.
type Settingsfile struct {
	Store           string `yaml:"store"`
	WorkspaceRoot   string `yaml:"workspace_root"`
	Concurrency     int    `yaml:"concurrency"`
	DefaultPlatform string `yaml:"default_platform"`
	Log             LogDTO `yaml:"log"`
}

// LogDTO represents the log section of the settings file.
type LogDTO struct {
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

// Configurationfile represents a file of build configuration records to import.
type Configurationfile struct {
	Configurations []ConfigurationDTO `yaml:"configurations"`
}

// ConfigurationDTO represents one build configuration record.
type ConfigurationDTO struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Kind   string            `yaml:"kind"`
	Path   []string          `yaml:"path"`
	Good   bool              `yaml:"good"`
	Params map[string]string `yaml:"params"`
}
