// Package history persists successful pronunciation lookups in a local
// SQLite database so earlier conversions can be reviewed without repeating
// endpoint calls.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// Entry is one stored lookup.
type Entry struct {
	Word                string
	Pronunciation       string
	PronunciationTelugu string
	CreatedAt           time.Time
}

// Store is the lookup history database.
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS lookups (
		id integer PRIMARY KEY AUTOINCREMENT,
		word text NOT NULL,
		pronunciation text NOT NULL,
		pronunciation_telugu text NOT NULL,
		created_at integer NOT NULL
	)`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Record stores the successful results of a batch. Error results are not
// history, they are skipped.
func (s *Store) Record(results []pronounce.WordResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO lookups (word, pronunciation, pronunciation_telugu, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, r := range results {
		if r.IsError() {
			continue
		}
		if _, err := stmt.Exec(r.Word, r.Pronunciation, r.PronunciationTelugu, now); err != nil {
			return fmt.Errorf("failed to insert lookup for %q: %w", r.Word, err)
		}
	}

	return tx.Commit()
}

// Recent returns the most recent n lookups, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT word, pronunciation, pronunciation_telugu, created_at
		FROM lookups ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.Word, &e.Pronunciation, &e.PronunciationTelugu, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
