package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/julianstephens/trainlog/internal/models"
)

// Store persists entries in PostgreSQL, keyed by owner and id, the way the
// hosted deployment does.
type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{connStr: connStr}
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	owner_id   TEXT NOT NULL,
	date       DATE NOT NULL,
	activity   TEXT NOT NULL,
	exercises  JSONB NOT NULL DEFAULT '[]',
	segments   JSONB NOT NULL DEFAULT '[]',
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_entries_owner_date ON entries (owner_id, date DESC);
`

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Keep the pool small; a CLI process issues one statement at a time.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := s.db.Ping(); err != nil {
		if strings.Contains(err.Error(), "SSL is not enabled on the server") {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ListEntries(ctx context.Context, ownerID string) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, owner_id, to_char(date, 'YYYY-MM-DD'), activity, exercises, segments, notes
FROM entries WHERE owner_id = $1
ORDER BY date DESC, created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		var activity string
		var exercises, segments []byte
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Date, &activity, &exercises, &segments, &e.Notes); err != nil {
			return nil, err
		}
		e.Activity = models.ActivityType(activity)
		if err := json.Unmarshal(exercises, &e.Exercises); err != nil {
			return nil, fmt.Errorf("failed to parse exercises for entry %s: %w", e.ID, err)
		}
		if err := json.Unmarshal(segments, &e.Segments); err != nil {
			return nil, fmt.Errorf("failed to parse segments for entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) InsertEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	exercises, err := json.Marshal(entry.Exercises)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to serialize exercises: %w", err)
	}
	segments, err := json.Marshal(entry.Segments)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to serialize segments: %w", err)
	}

	// The store assigns the id; never fabricate one client-side.
	row := s.db.QueryRowContext(ctx, `
INSERT INTO entries (owner_id, date, activity, exercises, segments, notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`,
		entry.OwnerID, entry.Date, string(entry.Activity), exercises, segments, entry.Notes)
	if err := row.Scan(&entry.ID); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (s *Store) DeleteEntry(ctx context.Context, ownerID, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return err
}
