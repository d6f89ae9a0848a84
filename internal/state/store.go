// Package state keeps the history of scaffolded projects in a SQLite database.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// timeLayout is fixed width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ProjectRecord is one project created by the init command.
type ProjectRecord struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Path      string
	GUI       string
	Git       bool
}

// Store manages the SQLite database of project history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location below the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}

	return filepath.Join(dir, "nih-bootstrap", "history.db"), nil
}

// Open opens or creates the SQLite database at the given path and runs migrations.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close() //nolint:errcheck,gosec // best-effort cleanup on error path
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close() //nolint:errcheck,gosec // best-effort cleanup on error path
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores rec. A missing ID or CreatedAt is filled in; the stored
// record is returned.
func (s *Store) Record(ctx context.Context, rec ProjectRecord) (*ProjectRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	rec.CreatedAt = rec.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, path, gui, git, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.Path, rec.GUI, rec.Git, rec.CreatedAt.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}

	return &rec, nil
}

const selectProjects = `SELECT id, name, path, gui, git, created_at FROM projects`

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*ProjectRecord, error) {
	var r ProjectRecord
	var createdAt string

	if err := row.Scan(&r.ID, &r.Name, &r.Path, &r.GUI, &r.Git, &createdAt); err != nil {
		return nil, err
	}

	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	r.CreatedAt = t

	return &r, nil
}

// List returns up to limit projects, newest first. A limit of zero or less
// returns every project.
func (s *Store) List(ctx context.Context, limit int) ([]ProjectRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, selectProjects+`
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck,gosec // defer close is best-effort

	var records []ProjectRecord
	for rows.Next() {
		r, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project record: %w", err)
		}

		records = append(records, *r)
	}

	return records, rows.Err()
}

// Prune keeps only the keepN most recent projects.
func (s *Store) Prune(ctx context.Context, keepN int) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM projects
		WHERE id NOT IN (
			SELECT id FROM projects
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)
	`, keepN)
	if err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}

	return nil
}

// migrate runs schema migrations.
func (s *Store) migrate(ctx context.Context) error {
	currentVersion := s.getSchemaVersion(ctx)

	migrations := []func(context.Context, *sql.Tx) error{
		migrateV1,
	}

	for i := currentVersion; i < len(migrations); i++ {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i+1, err)
		}

		if err := migrations[i](ctx, tx); err != nil {
			_ = tx.Rollback() //nolint:errcheck,gosec // rollback best-effort on migration failure
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
			_ = tx.Rollback() //nolint:errcheck,gosec // rollback best-effort
			return fmt.Errorf("updating schema version: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			_ = tx.Rollback() //nolint:errcheck,gosec // rollback best-effort
			return fmt.Errorf("inserting schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i+1, err)
		}
	}

	return nil
}

// getSchemaVersion returns the current schema version, or 0 if the schema_version table doesn't exist.
func (s *Store) getSchemaVersion(ctx context.Context) int {
	var tableName string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'`).Scan(&tableName)
	if err != nil {
		return 0
	}

	var version int
	if err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&version); err != nil {
		return 0
	}

	return version
}

// parseTime parses a timestamp string from SQLite, trying multiple formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse time %q", s)
}

// migrateV1 creates the initial schema.
func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			path        TEXT NOT NULL,
			gui         TEXT NOT NULL,
			git         BOOLEAN NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_created
			ON projects(created_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	return nil
}
