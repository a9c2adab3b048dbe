// Package blob implements a content addressable blob store on the local filesystem.
package blob

import (
	"context"
	// Registers sha256 for go-digest.
	_ "crypto/sha256"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store keeps each blob at <root>/<algorithm>/<encoded digest>.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Put copies content into the store and returns its digest and size.
// Storing content that is already present is a no-op.
func (s *Store) Put(_ context.Context, content io.Reader) (string, int64, error) {
	dir := filepath.Join(s.root, string(digest.Canonical))
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", 0, zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", 0, zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", dir)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath) //nolint:gosec // tmpPath comes from os.CreateTemp
		}
	}()

	digester := digest.Canonical.Digester()
	size, err := io.Copy(io.MultiWriter(tmp, digester.Hash()), content)
	if err != nil {
		_ = tmp.Close()
		return "", 0, zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "copy blob content")
	}
	if err := tmp.Close(); err != nil {
		return "", 0, zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "close blob")
	}

	d := digester.Digest()
	final := s.path(d)

	if _, err := os.Stat(final); err == nil {
		return d.String(), size, nil
	}

	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		return "", 0, zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", tmpPath)
	}
	if err := os.Rename(tmpPath, final); err != nil {
		return "", 0, zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", final)
	}
	committed = true

	return d.String(), size, nil
}

// Get returns the content for ref after verifying it against the digest.
func (s *Store) Get(_ context.Context, ref string) ([]byte, error) {
	d, err := parse(ref)
	if err != nil {
		return nil, err
	}

	path := s.path(d)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a validated digest
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBlobNotFound, "no content stored for digest"), "digest", ref)
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", path)
	}

	verifier := d.Verifier()
	_, _ = verifier.Write(data)
	if !verifier.Verified() {
		return nil, zerr.With(zerr.Wrap(domain.ErrBlobCorrupt, "stored content failed verification"), "digest", ref)
	}

	return data, nil
}

// Has reports whether content for ref is stored.
func (s *Store) Has(_ context.Context, ref string) (bool, error) {
	d, err := parse(ref)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(s.path(d))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "digest", ref)
	}
}

func (s *Store) path(d digest.Digest) string {
	return filepath.Join(s.root, string(d.Algorithm()), d.Encoded())
}

func parse(ref string) (digest.Digest, error) {
	d, err := digest.Parse(ref)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrInvalidDigest, err), "digest", ref)
	}
	return d, nil
}
