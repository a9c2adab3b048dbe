package archive_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/corebuild/internal/builder/archive"
	"go.trai.ch/corebuild/internal/core/domain"
)

var layout = archive.Layout{ConfigEntry: "etc/config.json", ArtifactName: "installer-test.zip"}

func writeCore(t *testing.T, entries map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "core")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func readEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	out := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		out[f.Name] = string(data)
	}
	return out
}

func newJob(t *testing.T, corePath string, cfg *domain.BuildConfiguration) *domain.Job {
	t.Helper()
	return &domain.Job{
		Platform: domain.PlatformLinux,
		Core: &domain.Core{
			Platform:   domain.PlatformLinux,
			Version:    42,
			UploadedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		CorePath:      corePath,
		OutputDir:     t.TempDir(),
		Configuration: cfg,
	}
}

func TestPack_EmbedsConfiguration(t *testing.T) {
	core := writeCore(t, map[string]string{
		"bin/agent":       "\xff\xfe binary",
		"etc/config.json": `{"stale":true}`,
	})
	job := newJob(t, core, &domain.BuildConfiguration{
		ID:     "fac-1",
		Name:   "Office",
		Kind:   domain.KindFactory,
		Path:   []string{"op-1"},
		Params: map[string]string{"server": "collector.example.org"},
	})

	artifact, err := archive.Pack(t.Context(), job, layout)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(job.OutputDir, "installer-test.zip"), artifact.Path)
	assert.Equal(t, domain.PlatformLinux, artifact.Platform)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), artifact.Size)
	assert.Equal(t, digest.FromBytes(data).String(), artifact.Digest)

	entries := readEntries(t, artifact.Path)
	require.Len(t, entries, 2)
	assert.Equal(t, "\xff\xfe binary", entries["bin/agent"])

	var embedded map[string]any
	require.NoError(t, json.Unmarshal([]byte(entries["etc/config.json"]), &embedded))
	assert.Equal(t, "fac-1", embedded["id"])
	assert.Equal(t, "linux", embedded["platform"])
	assert.InDelta(t, 42, embedded["core_version"], 0)
	assert.NotContains(t, embedded, "stale")
}

func TestPack_WithoutConfiguration(t *testing.T) {
	core := writeCore(t, map[string]string{"a.txt": "a", "etc/config.json": "keep"})
	job := newJob(t, core, nil)

	artifact, err := archive.Pack(t.Context(), job, layout)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a.txt": "a", "etc/config.json": "keep"}, readEntries(t, artifact.Path))
}

func TestPack_Deterministic(t *testing.T) {
	core := writeCore(t, map[string]string{"a.txt": "a"})
	cfg := &domain.BuildConfiguration{ID: "fac-1", Kind: domain.KindFactory}

	first, err := archive.Pack(t.Context(), newJob(t, core, cfg), layout)
	require.NoError(t, err)
	second, err := archive.Pack(t.Context(), newJob(t, core, cfg), layout)
	require.NoError(t, err)

	assert.Equal(t, first.Digest, second.Digest)
}

func TestPack_InvalidCore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o600))

	_, err := archive.Pack(t.Context(), newJob(t, path, nil), layout)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCoreArchive))
}

func TestPack_Cancelled(t *testing.T) {
	core := writeCore(t, map[string]string{"a.txt": "a"})
	job := newJob(t, core, nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := archive.Pack(ctx, job, layout)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(job.OutputDir, layout.ArtifactName))
	assert.True(t, os.IsNotExist(statErr))
}
