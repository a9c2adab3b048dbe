// Package workspace manages the temporary directories builds stage cores in.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/corebuild/internal/fsutil"
	"go.trai.ch/zerr"
)

// Manager creates workspaces below a root directory.
type Manager struct {
	root  string
	now   func() time.Time
	newID func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the clock used in workspace names.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager. An empty root selects os.TempDir().
func NewManager(root string, opts ...Option) *Manager {
	if root == "" {
		root = os.TempDir()
	}
	m := &Manager{
		root:  root,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the directory workspaces are created in.
func (m *Manager) Root() string {
	return m.root
}

// Create makes a new workspace directory. The name combines the clock, the
// process id and a random uuid, so workspaces created in the same tick by
// the same process still differ.
func (m *Manager) Create() (ports.Workspace, error) {
	if err := os.MkdirAll(m.root, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "root", m.root)
	}

	name := fmt.Sprintf("%s%d-%d-%s", domain.WorkspacePrefix, m.now().Unix(), os.Getpid(), m.newID())
	dir := filepath.Join(m.root, name)

	if err := os.Mkdir(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "path", dir)
	}

	return &Workspace{dir: dir}, nil
}

// Workspace is a directory owned by one build.
type Workspace struct {
	dir string
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.dir
}

// CorePath returns the staged core location.
func (w *Workspace) CorePath() string {
	return filepath.Join(w.dir, domain.CoreFileName)
}

// OutputDir returns the builder output directory, creating it on first use.
func (w *Workspace) OutputDir() (string, error) {
	dir := filepath.Join(w.dir, domain.OutputDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrWorkspaceWriteFailed, err), "path", dir)
	}
	return dir, nil
}

// WriteCore replaces the staged core with data and returns its xxhash64.
func (w *Workspace) WriteCore(data []byte) (uint64, error) {
	path := w.CorePath()
	if err := fsutil.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrWorkspaceWriteFailed, err), "path", path)
	}
	return xxhash.Sum64(data), nil
}

// ReadCore returns the staged core.
func (w *Workspace) ReadCore() ([]byte, error) {
	path := w.CorePath()
	data, err := os.ReadFile(path) //nolint:gosec // path is inside the workspace
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkspaceReadFailed, err), "path", path)
	}
	return data, nil
}

// Remove deletes the workspace directory.
func (w *Workspace) Remove() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return zerr.With(errors.Join(domain.ErrWorkspaceRemoveFailed, err), "path", w.dir)
	}
	return nil
}
