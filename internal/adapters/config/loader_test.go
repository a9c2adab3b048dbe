package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/corebuild/internal/adapters/config"
	"go.trai.ch/corebuild/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	loader := config.NewLoader(config.WithDirs(filepath.Join(dir, "config"), filepath.Join(dir, "data")))

	settings, err := loader.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "corebuild"), settings.StoreDir)
	assert.Equal(t, os.TempDir(), settings.WorkspaceRoot)
	assert.Equal(t, runtime.NumCPU(), settings.Concurrency)
	assert.Equal(t, domain.LogFormatPretty, settings.LogFormat)
	assert.Empty(t, settings.DefaultPlatform)
	assert.False(t, settings.Debug)
}

func TestLoadFile_Values(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "corebuild.yaml", `
store: /srv/corebuild
workspace_root: /scratch
concurrency: 3
default_platform: OSX
log:
  format: json
  debug: true
`)

	settings, err := config.NewLoader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/corebuild", settings.StoreDir)
	assert.Equal(t, "/scratch", settings.WorkspaceRoot)
	assert.Equal(t, 3, settings.Concurrency)
	assert.Equal(t, domain.PlatformOSX, settings.DefaultPlatform)
	assert.Equal(t, domain.LogFormatJSON, settings.LogFormat)
	assert.True(t, settings.Debug)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "store: [", wantErr: domain.ErrConfigParseFailed},
		{name: "negative concurrency", content: "concurrency: -1", wantErr: domain.ErrInvalidSettings},
		{name: "unknown log format", content: "log:\n  format: xml", wantErr: domain.ErrInvalidSettings},
		{name: "bad platform", content: "default_platform: \"linux/arm\"", wantErr: domain.ErrInvalidPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "corebuild.yaml", tt.content)

			_, err := config.NewLoader().LoadFile(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "concurrency: 7\n")
	t.Setenv(domain.ConfigEnvVar, path)

	loader := config.NewLoader()
	assert.Equal(t, path, loader.Path())

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, settings.Concurrency)
}

func TestPath_XDGDefault(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	loader := config.NewLoader(config.WithDirs("/home/u/.config", "/home/u/.local/share"))

	assert.Equal(t, filepath.Join("/home/u/.config", "corebuild", "corebuild.yaml"), loader.Path())
}

func TestLoadConfigurations(t *testing.T) {
	path := writeFile(t, t.TempDir(), "configs.yaml", `
configurations:
  - id: op-1
    name: Field operation
    kind: operation
  - id: fac-1
    name: Office laptop
    kind: factory
    path: [op-1]
    good: true
    params:
      server: collector.example.org
  - id: fac-2
`)

	configs, err := config.LoadConfigurations(path)
	require.NoError(t, err)
	require.Len(t, configs, 3)

	assert.Equal(t, domain.KindOperation, configs[0].Kind)
	assert.Equal(t, domain.BuildConfiguration{
		ID:     "fac-1",
		Name:   "Office laptop",
		Kind:   domain.KindFactory,
		Path:   []string{"op-1"},
		Good:   true,
		Params: map[string]string{"server": "collector.example.org"},
	}, configs[1])
	assert.Equal(t, domain.KindFactory, configs[2].Kind, "kind defaults to factory")
}

func TestLoadConfigurations_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing id", content: "configurations:\n  - name: x\n"},
		{name: "unknown kind", content: "configurations:\n  - id: a\n    kind: bogus\n"},
		{name: "duplicate id", content: "configurations:\n  - id: a\n  - id: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "configs.yaml", tt.content)

			_, err := config.LoadConfigurations(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration), "got %v", err)
		})
	}
}

func TestLoadConfigurations_MissingFile(t *testing.T) {
	_, err := config.LoadConfigurations(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileReader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "configs.yaml", "configurations:\n  - id: fac-1\n")

	configs, err := config.FileReader{}.ReadConfigurations(path)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "fac-1", configs[0].ID)
}
