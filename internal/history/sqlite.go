package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists generation records in a SQLite database.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath, including
// any missing parent directories. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create history store directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		page_name TEXT NOT NULL,
		page_type TEXT NOT NULL DEFAULT '',
		framework TEXT NOT NULL DEFAULT '',
		template_id TEXT NOT NULL DEFAULT '',
		outcome TEXT NOT NULL,
		total_size INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL DEFAULT 0,
		components TEXT NOT NULL DEFAULT '',
		warnings INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generations_page ON generations(page_name);
	CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("initialize history schema: %w", err)
	}
	return nil
}

// Append adds a record, assigning an ID and creation time when absent.
func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations
			(id, page_name, page_type, framework, template_id, outcome,
			 total_size, score, components, warnings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PageName, rec.PageType, rec.Framework, rec.TemplateID,
		rec.Outcome, rec.TotalSize, rec.Score, rec.Components, rec.Warnings,
		rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("append generation record: %w", err)
	}
	return nil
}

// List returns the newest records first; limit <= 0 returns all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, page_name, page_type, framework, template_id, outcome,
		       total_size, score, components, warnings, created_at
		FROM generations
		ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list generation records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ByPage returns the records for one page name, newest first.
func (s *SQLiteStore) ByPage(ctx context.Context, pageName string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, page_name, page_type, framework, template_id, outcome,
		       total_size, score, components, warnings, created_at
		FROM generations
		WHERE page_name = ?
		ORDER BY created_at DESC, rowid DESC`,
		pageName,
	)
	if err != nil {
		return nil, fmt.Errorf("list records for page %q: %w", pageName, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Range returns the records created within [start, end], oldest first.
func (s *SQLiteStore) Range(ctx context.Context, start, end time.Time) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, page_name, page_type, framework, template_id, outcome,
		       total_size, score, components, warnings, created_at
		FROM generations
		WHERE created_at >= ? AND created_at <= ?
		ORDER BY created_at ASC, rowid ASC`,
		start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("list records in range: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Prune deletes records created before the cutoff, returning the count.
func (s *SQLiteStore) Prune(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM generations WHERE created_at < ?`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune generation records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune generation records: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var recs []Record
	for rows.Next() {
		var rec Record
		var createdAt int64
		err := rows.Scan(&rec.ID, &rec.PageName, &rec.PageType, &rec.Framework,
			&rec.TemplateID, &rec.Outcome, &rec.TotalSize, &rec.Score,
			&rec.Components, &rec.Warnings, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan generation record: %w", err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0).UTC()
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generation records: %w", err)
	}
	return recs, nil
}
