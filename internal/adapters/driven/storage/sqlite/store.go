package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/scopegen/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
)

// DatabaseFile is the database filename inside the data directory.
const DatabaseFile = "scopegen.db"

// Store is a SQLite-backed store that exposes the version tracker and the
// generation history through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.scopegen/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".scopegen", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

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

// VersionStore returns a VersionStore backed by this store.
func (s *Store) VersionStore() driven.VersionStore {
	return &versionStore{store: s}
}

// GenerationLog returns a GenerationLog backed by this store.
func (s *Store) GenerationLog() driven.GenerationLog {
	return &generationLog{store: s}
}

// migrate runs all pending migrations.
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
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Version Store ====================

// versionStore implements driven.VersionStore.
type versionStore struct {
	store *Store
}

var _ driven.VersionStore = (*versionStore)(nil)

// Load returns every counter in the tracker.
func (s *versionStore) Load(ctx context.Context) (map[string]int, error) {
	rows, err := s.store.db.QueryContext(ctx, `SELECT base_name, next_revision FROM version_counters`)
	if err != nil {
		return nil, fmt.Errorf("querying version counters: %w", err)
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var base string
		var next int
		if err := rows.Scan(&base, &next); err != nil {
			return nil, fmt.Errorf("scanning version counter: %w", err)
		}
		counters[base] = next
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating version counters: %w", err)
	}
	return counters, nil
}

// Save upserts every counter in one transaction. Stored counters never
// decrease.
func (s *versionStore) Save(ctx context.Context, counters map[string]int) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO version_counters (base_name, next_revision, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(base_name) DO UPDATE SET
			next_revision = MAX(version_counters.next_revision, excluded.next_revision),
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("preparing counter upsert: %w", err)
	}
	defer stmt.Close()

	for base, next := range counters {
		if next < 0 {
			return fmt.Errorf("%w: negative revision for %q", domain.ErrInvalidInput, base)
		}
		if _, err := stmt.ExecContext(ctx, base, next); err != nil {
			return fmt.Errorf("saving counter %q: %w", base, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing counters: %w", err)
	}
	return nil
}

// ==================== Generation Log ====================

// generationLog implements driven.GenerationLog.
type generationLog struct {
	store *Store
}

var _ driven.GenerationLog = (*generationLog)(nil)

// Append records a generation.
func (l *generationLog) Append(ctx context.Context, rec domain.GenerationRecord) error {
	if rec.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO generations (id, property_name, base_name, version, filename, equipment_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.PropertyName, rec.BaseName, rec.Version, rec.Filename, rec.EquipmentCount,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting generation: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first. A limit of zero or less
// returns every record.
func (l *generationLog) Recent(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := l.store.db.QueryContext(ctx, `
		SELECT id, property_name, base_name, version, filename, equipment_count, created_at
		FROM generations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var records []domain.GenerationRecord
	for rows.Next() {
		rec, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generations: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row scanner) (*domain.GenerationRecord, error) {
	var rec domain.GenerationRecord
	var created string
	err := row.Scan(&rec.ID, &rec.PropertyName, &rec.BaseName, &rec.Version,
		&rec.Filename, &rec.EquipmentCount, &created)
	if err != nil {
		return nil, fmt.Errorf("scanning generation: %w", err)
	}
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	return &rec, nil
}
