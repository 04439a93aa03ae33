package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite implements Store on top of a single-file embedded database.
// Deleting the file resets all caching with no other side effects.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (creating if necessary) the database file at path.
// The parent directory is created if it doesn't exist. An unopenable
// file is an error; callers must not silently continue without caching.
func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	// A single connection serializes concurrent writers and keeps the
	// busy-timeout handling out of the callers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	return &SQLite{db: db, path: path}, nil
}

// EnsureTable creates the point-size table if it does not exist.
func (s *SQLite) EnsureTable(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS point_sizes (
		CacheKey  TEXT PRIMARY KEY,
		PointSize INTEGER NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure table: %w", err)
	}
	return nil
}

// Get looks up key. A missing key is reported as found=false, not an error.
func (s *SQLite) Get(ctx context.Context, key string) (int, bool, error) {
	var value int
	err := s.db.QueryRowContext(ctx,
		`SELECT PointSize FROM point_sizes WHERE CacheKey = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Put upserts the value for key. Writing an existing key replaces its value.
func (s *SQLite) Put(ctx context.Context, key string, value int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO point_sizes (CacheKey, PointSize) VALUES (?, ?)
		 ON CONFLICT(CacheKey) DO UPDATE SET PointSize = excluded.PointSize`,
		key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.path
}

// Count returns the number of cached entries, for the "cache stats" command.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM point_sizes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Close closes the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ensure SQLite implements Store.
var _ Store = (*SQLite)(nil)
