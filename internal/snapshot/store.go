// Package snapshot persists the most recent ingested dataset so stats survive
// a restart without re-uploading the export archive. The stored blob is the
// records-by-kind dataset plus its export identifier; re-aggregating it yields
// the same stats shape as a fresh ingestion.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // cgo-free sqlite driver

	"lindash/internal/models"
)

// currentKey is the single row holding the active snapshot.
const currentKey = "current"

const queryTimeout = 10 * time.Second

// Store is a single-blob snapshot store backed by a local sqlite file.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	// A single writer is plenty for one blob.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTable(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// NewWithDB wraps an existing connection; used by tests.
func NewWithDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) createTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		export_id TEXT NOT NULL,
		data BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// Save replaces the current snapshot with the given dataset.
func (s *Store) Save(d *models.Dataset) error {
	blob, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err = s.db.ExecContext(ctx, `INSERT INTO snapshots (id, export_id, data, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			export_id = excluded.export_id,
			data = excluded.data,
			created_at = excluded.created_at`,
		currentKey, d.ExportID, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Current returns the persisted dataset, or nil when no snapshot exists.
func (s *Store) Current() (*models.Dataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var blob []byte
	err := s.db.GetContext(ctx, &blob, `SELECT data FROM snapshots WHERE id = ?`, currentKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var d models.Dataset
	if err := json.Unmarshal(blob, &d); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &d, nil
}

// Clear removes the current snapshot.
func (s *Store) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, currentKey); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}

// Ping checks the store connection, for health reporting.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
