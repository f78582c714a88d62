// Package sqlite provides SQLite-backed local storage for capture
// history. The database lives in the jobscope data directory and is
// the first place duplicate lookups check before going remote.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/jobscope-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CaptureStore = (*Store)(nil)

// Store is a SQLite-backed capture store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.jobscope/data/captures.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".jobscope", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "captures.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies any pending .up.sql migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_captures.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Record inserts or updates the capture keyed by job URL. An existing
// row keeps its identifier and first-saved timestamp.
func (s *Store) Record(ctx context.Context, capture *domain.CaptureRecord) error {
	if capture == nil || capture.JobURL == "" {
		return fmt.Errorf("capture with job url is required: %w", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO captures (id, job_url, page_id, page_url, company, title, saved_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(job_url) DO UPDATE SET
			page_id = excluded.page_id,
			page_url = excluded.page_url,
			company = excluded.company,
			title = excluded.title,
			updated_at = excluded.updated_at
	`,
		capture.ID,
		capture.JobURL,
		capture.PageID,
		capture.PageURL,
		capture.Company,
		capture.Title,
		capture.SavedAt.UTC(),
		capture.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording capture: %w", err)
	}
	return nil
}

// FindByJobURL returns the capture for a job URL.
func (s *Store) FindByJobURL(ctx context.Context, jobURL string) (*domain.CaptureRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, job_url, page_id, page_url, company, title, saved_at, updated_at
		FROM captures
		WHERE job_url = ?
	`, jobURL)

	rec, err := scanCapture(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("capture for %q: %w", jobURL, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding capture: %w", err)
	}
	return rec, nil
}

// List returns captures ordered by most recently saved.
func (s *Store) List(ctx context.Context, limit int) ([]*domain.CaptureRecord, error) {
	query := `
		SELECT id, job_url, page_id, page_url, company, title, saved_at, updated_at
		FROM captures
		ORDER BY updated_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("listing captures: %w", err)
	}
	defer rows.Close()

	var out []*domain.CaptureRecord
	for rows.Next() {
		rec, err := scanCapture(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning capture: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating captures: %w", err)
	}
	return out, nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanCapture.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCapture(row rowScanner) (*domain.CaptureRecord, error) {
	var rec domain.CaptureRecord
	var savedAt, updatedAt time.Time
	if err := row.Scan(
		&rec.ID,
		&rec.JobURL,
		&rec.PageID,
		&rec.PageURL,
		&rec.Company,
		&rec.Title,
		&savedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	rec.SavedAt = savedAt
	rec.UpdatedAt = updatedAt
	return &rec, nil
}
