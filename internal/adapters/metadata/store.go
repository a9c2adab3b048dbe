// Package metadata stores core and build configuration records in SQLite.
package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/zerr"

	// Register the pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS cores (
		platform    TEXT    NOT NULL,
		version     INTEGER NOT NULL,
		digest      TEXT    NOT NULL,
		size        INTEGER NOT NULL,
		uploaded_at INTEGER NOT NULL,
		PRIMARY KEY (platform, version)
	)`,
	`CREATE TABLE IF NOT EXISTS configurations (
		id     TEXT    PRIMARY KEY,
		name   TEXT    NOT NULL,
		kind   TEXT    NOT NULL,
		path   TEXT    NOT NULL,
		good   INTEGER NOT NULL,
		params TEXT    NOT NULL
	)`,
}

// Store implements ports.MetadataStore.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreOpenFailed, err), "path", path)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(30000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreOpenFailed, err), "path", path)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, zerr.With(errors.Join(domain.ErrStoreOpenFailed, err), "path", path)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LatestCore returns the highest version core for platform at or above minVersion.
func (s *Store) LatestCore(ctx context.Context, platform domain.Platform, minVersion int) (*domain.Core, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT platform, version, digest, size, uploaded_at FROM cores
		 WHERE platform = ? AND version >= ?
		 ORDER BY version DESC LIMIT 1`,
		string(platform), minVersion)

	core, err := scanCore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrCoreNotFound, "no stored core matches"),
			"platform", string(platform)), "min_version", minVersion)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "platform", string(platform))
	}
	return core, nil
}

// MaxCoreVersion returns the highest stored version for platform, or 0.
func (s *Store) MaxCoreVersion(ctx context.Context, platform domain.Platform) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM cores WHERE platform = ?`,
		string(platform)).Scan(&version)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "platform", string(platform))
	}
	return version, nil
}

// HasCore reports whether a core with platform and version is stored.
func (s *Store) HasCore(ctx context.Context, platform domain.Platform, version int) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cores WHERE platform = ? AND version = ?`,
		string(platform), version).Scan(&n)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "platform", string(platform))
	}
	return n > 0, nil
}

// InsertCore adds a core record. An existing (platform, version) pair is rejected.
func (s *Store) InsertCore(ctx context.Context, core *domain.Core) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cores (platform, version, digest, size, uploaded_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (platform, version) DO NOTHING`,
		string(core.Platform), core.Version, core.Digest, core.Size, core.UploadedAt.UnixNano())
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "core", core.String())
	}

	n, err := res.RowsAffected()
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "core", core.String())
	}
	if n == 0 {
		return zerr.With(zerr.Wrap(domain.ErrCoreVersionExists, "core version is already stored"), "core", core.String())
	}
	return nil
}

// ListCores returns cores ordered by platform and descending version.
// An empty platform lists every platform.
func (s *Store) ListCores(ctx context.Context, platform domain.Platform) ([]domain.Core, error) {
	query := `SELECT platform, version, digest, size, uploaded_at FROM cores`
	var args []any
	if platform != "" {
		query += ` WHERE platform = ?`
		args = append(args, string(platform))
	}
	query += ` ORDER BY platform ASC, version DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "list cores")
	}
	defer func() { _ = rows.Close() }()

	var cores []domain.Core
	for rows.Next() {
		core, err := scanCore(rows)
		if err != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "list cores")
		}
		cores = append(cores, *core)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "list cores")
	}
	return cores, nil
}

// GetConfiguration returns the configuration record with id, of any kind.
func (s *Store) GetConfiguration(ctx context.Context, id string) (*domain.BuildConfiguration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, path, good, params FROM configurations WHERE id = ?`, id)

	cfg, err := scanConfiguration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigurationNotFound, "no configuration with this id"), "id", id)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "id", id)
	}
	return cfg, nil
}

// PutConfiguration inserts cfg or replaces the record with the same id.
func (s *Store) PutConfiguration(ctx context.Context, cfg *domain.BuildConfiguration) error {
	path, err := json.Marshal(cfg.Path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "id", cfg.ID)
	}
	params, err := json.Marshal(cfg.Params)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "id", cfg.ID)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO configurations (id, name, kind, path, good, params)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name, kind = excluded.kind, path = excluded.path,
		   good = excluded.good, params = excluded.params`,
		cfg.ID, cfg.Name, string(cfg.Kind), string(path), cfg.Good, string(params))
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "id", cfg.ID)
	}
	return nil
}

// ListConfigurations returns every configuration ordered by id.
func (s *Store) ListConfigurations(ctx context.Context) ([]domain.BuildConfiguration, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, path, good, params FROM configurations ORDER BY id`)
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "list configurations")
	}
	defer func() { _ = rows.Close() }()

	var configs []domain.BuildConfiguration
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "list configurations")
		}
		configs = append(configs, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "list configurations")
	}
	return configs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCore(row scanner) (*domain.Core, error) {
	var (
		core       domain.Core
		platform   string
		uploadedAt int64
	)
	if err := row.Scan(&platform, &core.Version, &core.Digest, &core.Size, &uploadedAt); err != nil {
		return nil, err
	}
	core.Platform = domain.Platform(platform)
	core.UploadedAt = time.Unix(0, uploadedAt).UTC()
	return &core, nil
}

func scanConfiguration(row scanner) (*domain.BuildConfiguration, error) {
	var (
		cfg          domain.BuildConfiguration
		kind         string
		path, params string
	)
	if err := row.Scan(&cfg.ID, &cfg.Name, &kind, &path, &cfg.Good, &params); err != nil {
		return nil, err
	}
	cfg.Kind = domain.ConfigurationKind(kind)
	if err := json.Unmarshal([]byte(path), &cfg.Path); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(params), &cfg.Params); err != nil {
		return nil, err
	}
	return &cfg, nil
}
