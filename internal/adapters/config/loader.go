// Package config loads corebuild settings and build configuration files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads settings from a YAML file and fills in defaults.
type Loader struct {
	configHome string
	dataHome   string
	tempDir    string
}

// Option configures a Loader.
type Option func(*Loader)

// WithDirs overrides the XDG config and data directories.
func WithDirs(configHome, dataHome string) Option {
	return func(l *Loader) {
		l.configHome = configHome
		l.dataHome = dataHome
	}
}

// NewLoader creates a Loader rooted at the XDG base directories.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		configHome: xdg.ConfigHome,
		dataHome:   xdg.DataHome,
		tempDir:    os.TempDir(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the settings file location. COREBUILD_CONFIG takes precedence.
func (l *Loader) Path() string {
	if p := os.Getenv(domain.ConfigEnvVar); p != "" {
		return p
	}
	return filepath.Join(l.configHome, domain.AppName, domain.ConfigFileName)
}

// Load reads the settings file at Path. A missing file yields the defaults.
func (l *Loader) Load() (*domain.Settings, error) {
	return l.LoadFile(l.Path())
}

// LoadFile reads settings from path. A missing file yields the defaults.
func (l *Loader) LoadFile(path string) (*domain.Settings, error) {
	var file Settingsfile

	//nolint:gosec // Path is chosen by the operator
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
		}
	}

	settings, err := l.resolve(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

func (l *Loader) resolve(file *Settingsfile) (*domain.Settings, error) {
	settings := &domain.Settings{
		StoreDir:      file.Store,
		WorkspaceRoot: file.WorkspaceRoot,
		Concurrency:   file.Concurrency,
		LogFormat:     domain.LogFormat(file.Log.Format),
		Debug:         file.Log.Debug,
	}

	if settings.StoreDir == "" {
		settings.StoreDir = filepath.Join(l.dataHome, domain.AppName)
	}
	if settings.WorkspaceRoot == "" {
		settings.WorkspaceRoot = l.tempDir
	}

	switch {
	case settings.Concurrency < 0:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "concurrency must not be negative"),
			"concurrency", settings.Concurrency)
	case settings.Concurrency == 0:
		settings.Concurrency = runtime.NumCPU()
	}

	switch settings.LogFormat {
	case "":
		settings.LogFormat = domain.LogFormatPretty
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "log format must be pretty or json"),
			"format", file.Log.Format)
	}

	if file.DefaultPlatform != "" {
		p, err := domain.ParsePlatform(file.DefaultPlatform)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrInvalidSettings.Error())
		}
		settings.DefaultPlatform = p
	}

	return settings, nil
}

// LoadConfigurations reads build configuration records from a YAML file.
func LoadConfigurations(path string) ([]domain.BuildConfiguration, error) {
	//nolint:gosec // Path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Configurationfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	configs := make([]domain.BuildConfiguration, 0, len(file.Configurations))
	seen := make(map[string]struct{}, len(file.Configurations))

	for i, dto := range file.Configurations {
		cfg, err := dto.toDomain()
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "index", i)
		}
		if _, dup := seen[cfg.ID]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfiguration, "duplicate configuration id"), "id", cfg.ID)
		}
		seen[cfg.ID] = struct{}{}
		configs = append(configs, cfg)
	}

	return configs, nil
}

func (d *ConfigurationDTO) toDomain() (domain.BuildConfiguration, error) {
	if d.ID == "" {
		return domain.BuildConfiguration{}, zerr.Wrap(domain.ErrInvalidConfiguration, "configuration id is required")
	}

	kind := domain.ConfigurationKind(d.Kind)
	switch kind {
	case "":
		kind = domain.KindFactory
	case domain.KindFactory, domain.KindOperation:
	default:
		return domain.BuildConfiguration{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidConfiguration, "kind must be factory or operation"), "kind", d.Kind)
	}

	return domain.BuildConfiguration{
		ID:     d.ID,
		Name:   d.Name,
		Kind:   kind,
		Path:   d.Path,
		Good:   d.Good,
		Params: d.Params,
	}, nil
}

// FileReader implements ports.ConfigurationReader over LoadConfigurations.
type FileReader struct{}

// ReadConfigurations reads the configuration records stored at path.
func (FileReader) ReadConfigurations(path string) ([]domain.BuildConfiguration, error) {
	return LoadConfigurations(path)
}
