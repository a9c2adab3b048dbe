package domain

// ConfigurationKind distinguishes resolvable factory records from the
// operation records that group them.
type ConfigurationKind string

const (
	// KindFactory is a build configuration that can be selected for a build.
	KindFactory ConfigurationKind = "factory"
	// KindOperation is a grouping record referenced from a factory's path.
	KindOperation ConfigurationKind = "operation"
)

// BuildConfiguration is a named configuration record that parameterizes a build.
type BuildConfiguration struct {
	ID     string            `yaml:"id" json:"id"`
	Name   string            `yaml:"name" json:"name"`
	Kind   ConfigurationKind `yaml:"kind" json:"kind"`
	Path   []string          `yaml:"path,omitempty" json:"path,omitempty"`
	Good   bool              `yaml:"good" json:"good"`
	Params map[string]string `yaml:"params,omitempty" json:"params,omitempty"`
}

// Selector identifies a BuildConfiguration by id. A nil *Selector means
// no configuration is requested.
type Selector struct {
	ID string
}

// SelectByID returns a selector for id, or nil when id is empty.
func SelectByID(id string) *Selector {
	if id == "" {
		return nil
	}
	return &Selector{ID: id}
}
