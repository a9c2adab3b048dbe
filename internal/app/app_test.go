package app_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/corebuild/internal/adapters/blob"
	"go.trai.ch/corebuild/internal/adapters/config"
	"go.trai.ch/corebuild/internal/adapters/corestore"
	"go.trai.ch/corebuild/internal/adapters/metadata"
	"go.trai.ch/corebuild/internal/adapters/telemetry"
	"go.trai.ch/corebuild/internal/adapters/workspace"
	"go.trai.ch/corebuild/internal/app"
	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/builder/linux"
	"go.trai.ch/corebuild/internal/builder/osx"
	"go.trai.ch/corebuild/internal/builder/windows"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/corebuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app        *app.App
	store      *corestore.Store
	logger     *mocks.MockLogger
	detector   *mocks.MockPlatformDetector
	workspaces string
	settings   *domain.Settings
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	registry := builder.NewRegistry()
	require.NoError(t, registry.Register(domain.PlatformLinux, linux.New))
	require.NoError(t, registry.Register(domain.PlatformOSX, osx.New))
	require.NoError(t, registry.Register(domain.PlatformWindows, windows.New))
	return newHarnessWith(t, gomock.NewController(t), registry)
}

func newHarnessWith(t *testing.T, ctrl *gomock.Controller, registry *builder.Registry) *harness {
	t.Helper()
	root := t.TempDir()
	meta, err := metadata.Open(t.Context(), domain.MetadataPath(root))
	require.NoError(t, err)
	store := corestore.New(meta, blob.NewStore(domain.BlobsPath(root)), domain.UploadLockPath(root))

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	detector := mocks.NewMockPlatformDetector(ctrl)
	wsRoot := filepath.Join(root, "workspaces")
	settings := &domain.Settings{StoreDir: root, WorkspaceRoot: wsRoot, Concurrency: 2}

	a := app.New(settings, store, workspace.NewManager(wsRoot), registry, detector,
		config.FileReader{}, log, telemetry.NewNoOpTracer())
	t.Cleanup(func() { _ = a.Close() })

	return &harness{app: a, store: store, logger: log, detector: detector, workspaces: wsRoot, settings: settings}
}

func coreArchive(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("bin/agent")
	require.NoError(t, err)
	_, err = f.Write([]byte{0x00, 0xff, 0x10})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func (h *harness) upload(t *testing.T, platform domain.Platform, version int) *domain.Core {
	t.Helper()
	path := filepath.Join(t.TempDir(), "core.zip")
	require.NoError(t, os.WriteFile(path, coreArchive(t), 0o600))
	core, err := h.app.UploadCore(t.Context(), platform, version, path)
	require.NoError(t, err)
	return core
}

func (h *harness) remainingWorkspaces(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(h.workspaces)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func TestBuild_WithConfiguration(t *testing.T) {
	h := newHarness(t)
	h.upload(t, domain.PlatformLinux, 0)
	core := h.upload(t, domain.PlatformLinux, 0)
	require.Equal(t, 2, core.Version)

	require.NoError(t, h.store.SaveConfiguration(t.Context(), &domain.BuildConfiguration{
		ID: "fac-1", Name: "Office", Kind: domain.KindFactory,
	}))
	h.logger.EXPECT().Warn("configuration is not marked good", "id", "fac-1")

	out := filepath.Join(t.TempDir(), "dist")
	res, err := h.app.Build(t.Context(), app.BuildRequest{Platform: "Linux", ConfigID: "fac-1", OutputDir: out})
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformLinux, res.Platform)
	assert.Equal(t, 2, res.Core.Version)
	assert.Equal(t, "fac-1", res.Configuration.ID)
	assert.Equal(t, filepath.Join(out, "installer-linux.zip"), res.Artifact.Path)
	assert.FileExists(t, res.Artifact.Path)
	assert.Equal(t, 0, h.remainingWorkspaces(t), "workspace removed after publishing")
}

func TestBuild_KeepsWorkspaceWithoutOutputDir(t *testing.T) {
	h := newHarness(t)
	h.upload(t, domain.PlatformOSX, 5)

	res, err := h.app.Build(t.Context(), app.BuildRequest{Platform: "osx"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(res.Workspace, domain.OutputDirName, "installer-osx.zip"), res.Artifact.Path)
	assert.FileExists(t, res.Artifact.Path)
	assert.Nil(t, res.Configuration)
}

func TestBuild_CoreNotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.app.Build(t.Context(), app.BuildRequest{Platform: "windows", OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCoreNotFound))
	assert.Contains(t, err.Error(), "core for windows not found")
	assert.Equal(t, 0, h.remainingWorkspaces(t), "failed builds clean up")
}

func TestBuild_UnknownPlatform(t *testing.T) {
	h := newHarness(t)

	_, err := h.app.Build(t.Context(), app.BuildRequest{Platform: "amiga"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPlatform))
	assert.Equal(t, 0, h.remainingWorkspaces(t), "no workspace for unknown platforms")
}

func TestBuild_InvalidCoreArchive(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "core.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xde, 0xad, 0xbe, 0xef}, 0o600))
	_, err := h.app.UploadCore(t.Context(), domain.PlatformLinux, 1, path)
	require.NoError(t, err)

	_, err = h.app.Build(t.Context(), app.BuildRequest{Platform: "linux", OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCoreArchive))
}

func TestBuild_PatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	patcher := mocks.NewMockBuilder(ctrl)
	patcher.EXPECT().Patch(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	registry := builder.NewRegistry()
	require.NoError(t, registry.Register(domain.PlatformLinux, func() ports.Builder { return patcher }))

	h := newHarnessWith(t, ctrl, registry)
	h.upload(t, domain.PlatformLinux, 1)

	_, err := h.app.Build(t.Context(), app.BuildRequest{Platform: "linux", OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPatchFailed))
	assert.Equal(t, 0, h.remainingWorkspaces(t))
}

func TestResolvePlatform(t *testing.T) {
	h := newHarness(t)

	p, err := h.app.ResolvePlatform(t.Context(), " OSX ")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformOSX, p)

	h.detector.EXPECT().Detect(gomock.Any()).Return(domain.PlatformWindows, nil)
	p, err = h.app.ResolvePlatform(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformWindows, p)

	h.settings.DefaultPlatform = domain.PlatformLinux
	p, err = h.app.ResolvePlatform(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformLinux, p)

	_, err = h.app.ResolvePlatform(t.Context(), "not valid")
	assert.True(t, errors.Is(err, domain.ErrInvalidPlatform))
}

func TestBuildMany(t *testing.T) {
	h := newHarness(t)
	h.upload(t, domain.PlatformLinux, 1)
	h.upload(t, domain.PlatformOSX, 1)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	out := t.TempDir()
	results, err := h.app.BuildMany(t.Context(), []app.BuildRequest{
		{Platform: "linux", OutputDir: out},
		{Platform: "osx", OutputDir: out},
		{Platform: "windows", OutputDir: out},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	assert.True(t, errors.Is(err, domain.ErrCoreNotFound))

	require.Len(t, results, 3)
	assert.NotNil(t, results[0])
	assert.NotNil(t, results[1])
	assert.Nil(t, results[2])
	assert.FileExists(t, filepath.Join(out, "installer-linux.zip"))
	assert.FileExists(t, filepath.Join(out, "installer-osx.zip"))
}

func TestUploadAndListCores(t *testing.T) {
	h := newHarness(t)
	h.upload(t, domain.PlatformLinux, 3)
	h.upload(t, domain.PlatformOSX, 1)

	cores, err := h.app.ListCores(t.Context(), domain.PlatformLinux)
	require.NoError(t, err)
	require.Len(t, cores, 1)
	assert.Equal(t, "linux@3", cores[0].String())

	_, err = h.app.UploadCore(t.Context(), domain.PlatformLinux, 0, filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAddConfigurations(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "configs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
configurations:
  - id: op-1
    kind: operation
  - id: fac-1
    path: [op-1]
    good: true
`), 0o600))

	n, err := h.app.AddConfigurations(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	configs, err := h.app.ListConfigurations(t.Context())
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "fac-1", configs[0].ID)
	assert.Equal(t, domain.KindFactory, configs[0].Kind)
}

func TestPlatforms(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, []domain.Platform{"linux", "osx", "windows"}, h.app.Platforms())
}

func TestComponents(t *testing.T) {
	h := newHarness(t)
	c := app.NewComponents(h.app, h.logger, h.settings)
	assert.Same(t, h.app, c.App)
	assert.Same(t, h.settings, c.Settings)
}
