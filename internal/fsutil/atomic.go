// Package fsutil holds small filesystem helpers shared by the adapters.
package fsutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// WriteAtomic writes r to path through a temporary file in the same
// directory and renames it into place, so readers never observe a partial
// file. The temporary file is removed on failure.
func WriteAtomic(path string, r io.Reader, perm os.FileMode) (retErr error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()

	defer func() {
		if retErr != nil {
			_ = os.Remove(tmpPath) //nolint:gosec // tmpPath comes from os.CreateTemp
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "chmod temp file")
	}

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "write temp file")
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "sync temp file")
	}

	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "close temp file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.Wrap(err, "rename temp file")
	}

	return nil
}

// WriteFileAtomic is WriteAtomic for an in-memory payload.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return WriteAtomic(path, bytes.NewReader(data), perm)
}

// CopyFileAtomic copies src to dst with WriteAtomic.
func CopyFileAtomic(src, dst string, perm os.FileMode) error {
	f, err := os.Open(src) //nolint:gosec // paths come from the build workspace
	if err != nil {
		return zerr.Wrap(err, "open source")
	}
	defer func() { _ = f.Close() }()

	return WriteAtomic(dst, f, perm)
}
