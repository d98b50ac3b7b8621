// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package directory indexes the published people records in a local SQLite
// database and answers the same searches the site's directory page offers:
// exact state, exact city, and a normalized substring of name or description.
package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/roster/pkg/types"
)

const dbFile = "roster.db"

// Store manages the directory SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
	logger     *zap.Logger
}

// NewStore opens or creates the database at cfg.IndexDir/roster.db and
// creates the schema if it does not exist.
func NewStore(cfg types.RosterConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
		logger:     logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			seq INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			state TEXT NOT NULL,
			city TEXT NOT NULL,
			description TEXT NOT NULL,
			name_norm TEXT NOT NULL,
			state_norm TEXT NOT NULL,
			city_norm TEXT NOT NULL,
			desc_norm TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_people_state ON people(state)`,
		`CREATE INDEX IF NOT EXISTS idx_people_state_city ON people(state, city)`,
		`CREATE TABLE IF NOT EXISTS index_status (
			source TEXT PRIMARY KEY,
			file_mod_time TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds the outcome of an indexing run.
type IngestSummary struct {
	Indexed int
	Skipped bool
}

// Ingest loads people_index.json from peoplePath and replaces the indexed
// records with it. When the file's modification time matches the last run the
// index is left alone.
func (s *Store) Ingest(ctx context.Context, peoplePath string, w io.Writer) (IngestSummary, error) {
	info, err := os.Stat(peoplePath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading people index %s: %w", peoplePath, err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	var stored string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM index_status WHERE source = ?`, peoplePath,
	).Scan(&stored)
	if err == nil && stored == modTime {
		fmt.Fprintf(w, "skipped %s (unchanged)\n", peoplePath)
		return IngestSummary{Skipped: true}, nil
	}

	data, err := os.ReadFile(peoplePath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading people index %s: %w", peoplePath, err)
	}
	var people []types.PersonRecord
	if err := json.Unmarshal(data, &people); err != nil {
		return IngestSummary{}, fmt.Errorf("parsing people index %s: %w", peoplePath, err)
	}

	if err := s.replace(ctx, peoplePath, people, modTime); err != nil {
		return IngestSummary{}, err
	}

	fmt.Fprintf(w, "indexed %d people from %s\n", len(people), peoplePath)
	s.logger.Info("directory indexed",
		zap.String("source", peoplePath),
		zap.Int("people", len(people)),
	)
	return IngestSummary{Indexed: len(people)}, nil
}

func (s *Store) replace(ctx context.Context, source string, people []types.PersonRecord, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM people`); err != nil {
		return fmt.Errorf("clearing people: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO people (seq, id, name, state, city, description, name_norm, state_norm, city_norm, desc_norm)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range people {
		if _, err := stmt.ExecContext(ctx,
			i+1, p.ID, p.Name, p.State, p.City, p.Desc,
			p.NameNorm, p.StateNorm, p.CityNorm, p.DescNorm,
		); err != nil {
			return fmt.Errorf("inserting person %s: %w", p.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO index_status (source, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(source) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		source, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating index status: %w", err)
	}

	return tx.Commit()
}
