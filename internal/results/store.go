// Package results persists rendered tool outputs so a prior
// invocation can be replayed by id. This is invocation replay, not a
// cache of remote state: entries are written after rendering and read
// back verbatim.
package results

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id         TEXT PRIMARY KEY,
	tool       TEXT NOT NULL,
	output     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
`

// Result is one stored tool invocation.
type Result struct {
	ID        string
	Tool      string
	Output    string
	CreatedAt time.Time
}

// Store is a sqlite-backed result store.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the result store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize results schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records the rendered output of one invocation.
func (s *Store) Save(id, tool, output string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO results (id, tool, output, created_at) VALUES (?, ?, ?, ?)",
		id, tool, output, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", id, err)
	}
	return nil
}

// Get returns a stored result by invocation id.
func (s *Store) Get(id string) (*Result, error) {
	var result Result
	var created int64
	err := s.db.QueryRow(
		"SELECT id, tool, output, created_at FROM results WHERE id = ?", id,
	).Scan(&result.ID, &result.Tool, &result.Output, &created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no stored result with id %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result %s: %w", id, err)
	}
	result.CreatedAt = time.Unix(created, 0)
	return &result, nil
}

// Recent returns the most recent results, newest first.
func (s *Store) Recent(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		"SELECT id, tool, output, created_at FROM results ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var result Result
		var created int64
		if err := rows.Scan(&result.ID, &result.Tool, &result.Output, &created); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		result.CreatedAt = time.Unix(created, 0)
		results = append(results, result)
	}
	return results, rows.Err()
}

// Prune deletes results older than the given age.
func (s *Store) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).Unix()
	res, err := s.db.Exec("DELETE FROM results WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune results: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
