package windows_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/core/domain"

	_ "go.trai.ch/corebuild/internal/builder/windows"
)

func TestPatch_ConfigEntry(t *testing.T) {
	core := filepath.Join(t.TempDir(), "core")
	f, err := os.Create(core)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	_, err = w.Create("payload")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	b, err := builder.Factory(domain.PlatformWindows)
	require.NoError(t, err)

	artifact, err := b.Patch(t.Context(), &domain.Job{
		Platform:      domain.PlatformWindows,
		CorePath:      core,
		OutputDir:     t.TempDir(),
		Configuration: &domain.BuildConfiguration{ID: "fac-1", Kind: domain.KindFactory},
	})
	require.NoError(t, err)
	assert.Equal(t, "installer-windows.zip", filepath.Base(artifact.Path))

	r, err := zip.OpenReader(artifact.Path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	var found bool
	for _, entry := range r.File {
		if entry.Name == "config.json" {
			found = true
		}
	}
	assert.True(t, found, "configuration entry missing")
}
