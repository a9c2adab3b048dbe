// Package archive repacks a staged core archive into a platform installer.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/fsutil"
	"go.trai.ch/zerr"

	_ "crypto/sha256" // registers digest.SHA256
)

// Layout places the configuration entry and names the artifact for one platform.
type Layout struct {
	// ConfigEntry is the archive path of the embedded configuration.
	ConfigEntry string
	// ArtifactName is the file name written to the job's output directory.
	ArtifactName string
}

// embeddedConfig is the JSON document written into the installer.
type embeddedConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Path        []string          `json:"path,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
	Platform    string            `json:"platform"`
	CoreVersion int               `json:"core_version"`
}

// Pack copies every entry of the job's staged core into a new archive, embeds
// the resolved configuration at layout.ConfigEntry and writes the result
// atomically into the job's output directory.
func Pack(ctx context.Context, job *domain.Job, layout Layout) (*domain.Artifact, error) {
	reader, err := zip.OpenReader(job.CorePath)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidCoreArchive, err), "path", job.CorePath)
	}
	defer func() { _ = reader.Close() }()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, f := range reader.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if job.Configuration != nil && f.Name == layout.ConfigEntry {
			continue
		}
		if err := writer.Copy(f); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrInvalidCoreArchive, err), "entry", f.Name)
		}
	}

	if job.Configuration != nil {
		if err := writeConfig(writer, job, layout.ConfigEntry); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPatchFailed, err), "platform", job.Platform.String())
	}

	out := filepath.Join(job.OutputDir, layout.ArtifactName)
	if err := fsutil.WriteFileAtomic(out, buf.Bytes(), domain.FilePerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPatchFailed, err), "path", out)
	}

	return &domain.Artifact{
		Platform: job.Platform,
		Path:     out,
		Size:     int64(buf.Len()),
		Digest:   digest.FromBytes(buf.Bytes()).String(),
	}, nil
}

func writeConfig(w *zip.Writer, job *domain.Job, name string) error {
	cfg := job.Configuration
	doc := embeddedConfig{
		ID:       cfg.ID,
		Name:     cfg.Name,
		Path:     cfg.Path,
		Params:   cfg.Params,
		Platform: job.Platform.String(),
	}

	var modified time.Time
	if job.Core != nil {
		doc.CoreVersion = job.Core.Version
		modified = job.Core.UploadedAt
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrPatchFailed, err), "configuration", cfg.ID)
	}

	entry, err := w.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return zerr.With(errors.Join(domain.ErrPatchFailed, err), "entry", name)
	}
	if _, err := entry.Write(data); err != nil {
		return zerr.With(errors.Join(domain.ErrPatchFailed, err), "entry", name)
	}
	return nil
}
