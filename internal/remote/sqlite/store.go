package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/trainlog/internal/models"
)

// Store is a file-backed entry store. It plays the remote-store role for
// setups without a database server, which is also what the tests run
// against.
type Store struct {
	path string
	db   *sql.DB
}

func New(path string) *Store {
	return &Store{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	date       TEXT NOT NULL,
	activity   TEXT NOT NULL,
	exercises  TEXT NOT NULL DEFAULT '[]',
	segments   TEXT NOT NULL DEFAULT '[]',
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_entries_owner_date ON entries (owner_id, date DESC);
`

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent, so a fresh path works without an
	// explicit init step.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ListEntries(ctx context.Context, ownerID string) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, owner_id, date, activity, exercises, segments, notes
FROM entries WHERE owner_id = ?
ORDER BY date DESC, created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) InsertEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	exercises, segments, err := encodeSlots(entry)
	if err != nil {
		return models.Entry{}, err
	}

	entry.ID = uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO entries (id, owner_id, date, activity, exercises, segments, notes)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.OwnerID, entry.Date, string(entry.Activity), exercises, segments, entry.Notes)
	if err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (s *Store) DeleteEntry(ctx context.Context, ownerID, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE owner_id = ? AND id = ?`, ownerID, id)
	return err
}

func encodeSlots(entry models.Entry) (exercises, segments string, err error) {
	ex, err := json.Marshal(entry.Exercises)
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize exercises: %w", err)
	}
	seg, err := json.Marshal(entry.Segments)
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize segments: %w", err)
	}
	return string(ex), string(seg), nil
}

func scanEntry(rows *sql.Rows) (models.Entry, error) {
	var e models.Entry
	var activity, exercises, segments string
	if err := rows.Scan(&e.ID, &e.OwnerID, &e.Date, &activity, &exercises, &segments, &e.Notes); err != nil {
		return models.Entry{}, err
	}
	e.Activity = models.ActivityType(activity)
	if err := json.Unmarshal([]byte(exercises), &e.Exercises); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse exercises for entry %s: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(segments), &e.Segments); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse segments for entry %s: %w", e.ID, err)
	}
	return e, nil
}
