// Package store keeps named builds in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

// Sentinels matched with errors.Is.
var (
	ErrNotFound  = errors.New("saved build not found")
	ErrEmptyName = errors.New(messages.StoreEmptyName)
)

// SavedBuild is one named build. Query is the share encoding of the build.
type SavedBuild struct {
	Name           string    `json:"name"`
	Query          string    `json:"query"`
	CatalogVersion string    `json:"catalog_version"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Store is a handle on the saved build database. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the database at path, creating parent directories.
// A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(messages.StoreEmptyPath)
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf(messages.StoreOpenFmt, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, fmt.Errorf(messages.StoreOpenFmt, path, err)
	}

	db, err := sql.Open("sqlite", expanded)
	if err != nil {
		return nil, fmt.Errorf(messages.StoreOpenFmt, path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(messages.StoreOpenFmt, path, err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(messages.StoreOpenFmt, path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS builds (
		name TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		catalog_version TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`)
	return err
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts b or replaces the build with the same name. CreatedAt survives
// replacement; UpdatedAt is always refreshed.
func (s *Store) Save(ctx context.Context, b SavedBuild) (SavedBuild, error) {
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return SavedBuild{}, ErrEmptyName
	}
	now := formatTime(s.now())
	created := now
	if !b.CreatedAt.IsZero() {
		created = formatTime(b.CreatedAt)
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO builds (name, query, catalog_version, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			query = excluded.query,
			catalog_version = excluded.catalog_version,
			note = excluded.note,
			updated_at = excluded.updated_at`,
		name, b.Query, b.CatalogVersion, b.Note, created, now)
	if err != nil {
		return SavedBuild{}, fmt.Errorf(messages.StoreSaveFmt, name, err)
	}
	return s.Get(ctx, name)
}

// Get returns the build saved under name.
func (s *Store) Get(ctx context.Context, name string) (SavedBuild, error) {
	row := s.db.QueryRowContext(ctx, `SELECT name, query, catalog_version, note, created_at, updated_at
		FROM builds WHERE name = ?`, name)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedBuild{}, fmt.Errorf("%w: "+messages.StoreNotFoundFmt, ErrNotFound, name)
	}
	if err != nil {
		return SavedBuild{}, fmt.Errorf(messages.StoreQueryFmt, err)
	}
	return b, nil
}

// List returns every saved build ordered by name.
func (s *Store) List(ctx context.Context) ([]SavedBuild, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, query, catalog_version, note, created_at, updated_at
		FROM builds ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf(messages.StoreQueryFmt, err)
	}
	defer func() { _ = rows.Close() }()

	var out []SavedBuild
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf(messages.StoreQueryFmt, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(messages.StoreQueryFmt, err)
	}
	return out, nil
}

// Delete removes the build saved under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM builds WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf(messages.StoreDeleteFmt, name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf(messages.StoreDeleteFmt, name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: "+messages.StoreNotFoundFmt, ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(row scanner) (SavedBuild, error) {
	var (
		b                SavedBuild
		created, updated string
	)
	if err := row.Scan(&b.Name, &b.Query, &b.CatalogVersion, &b.Note, &created, &updated); err != nil {
		return SavedBuild{}, err
	}
	var err error
	if b.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return SavedBuild{}, err
	}
	if b.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return SavedBuild{}, err
	}
	return b, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
