package workspace_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/corebuild/internal/adapters/workspace"
	"go.trai.ch/corebuild/internal/core/domain"
)

func frozenClock() time.Time {
	return time.Unix(42, 0)
}

func TestCreate_UniqueWithinSameTick(t *testing.T) {
	mgr := workspace.NewManager(t.TempDir(), workspace.WithClock(frozenClock))

	a, err := mgr.Create()
	require.NoError(t, err)
	b, err := mgr.Create()
	require.NoError(t, err)

	assert.NotEqual(t, a.Path(), b.Path())
	assert.True(t, strings.HasPrefix(filepath.Base(a.Path()), "corebuild-42-"))
}

func TestCreate_DirectoryIsUsable(t *testing.T) {
	mgr := workspace.NewManager(t.TempDir())

	ws, err := mgr.Create()
	require.NoError(t, err)

	info, err := os.Stat(ws.Path())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	probe := filepath.Join(ws.Path(), "probe")
	require.NoError(t, os.WriteFile(probe, []byte("ok"), 0o600))
	got, err := os.ReadFile(probe)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(got))
}

func TestCreate_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "root")
	mgr := workspace.NewManager(root)

	ws, err := mgr.Create()
	require.NoError(t, err)
	assert.Equal(t, root, filepath.Dir(ws.Path()))
}

func TestCreate_Failure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := workspace.NewManager(blocker).Create()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceCreateFailed))
}

func TestNewManager_DefaultRoot(t *testing.T) {
	assert.Equal(t, os.TempDir(), workspace.NewManager("").Root())
}

func TestWorkspace_CoreRoundTrip(t *testing.T) {
	ws, err := workspace.NewManager(t.TempDir()).Create()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(ws.Path(), "core"), ws.CorePath())

	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x80}
	sum, err := ws.WriteCore(data)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(data), sum)

	for range 3 {
		got, err := ws.ReadCore()
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}
}

func TestWorkspace_ReadCoreMissing(t *testing.T) {
	ws, err := workspace.NewManager(t.TempDir()).Create()
	require.NoError(t, err)

	_, err = ws.ReadCore()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceReadFailed))
}

func TestWorkspace_OutputDirAndRemove(t *testing.T) {
	ws, err := workspace.NewManager(t.TempDir()).Create()
	require.NoError(t, err)

	out, err := ws.OutputDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.Path(), "output"), out)
	assert.DirExists(t, out)

	require.NoError(t, ws.Remove())
	assert.NoDirExists(t, ws.Path())
}
