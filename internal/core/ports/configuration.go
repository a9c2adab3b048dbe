package ports

import "go.trai.ch/corebuild/internal/core/domain"

// ConfigurationReader parses a build configuration import file.
type ConfigurationReader interface {
	ReadConfigurations(path string) ([]domain.BuildConfiguration, error)
}
