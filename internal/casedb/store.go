// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package casedb indexes extracted case records in SQLite with a
// full-text index over the free-text fields, and exports them as YAML,
// JSON or an XLSX workbook.
package casedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/nyappeal/pkg/types"
)

// DefaultMaxResults limits query results when neither the config nor the
// query names a limit.
const DefaultMaxResults = 20

// searchFields are the free-text fields covered by the FTS5 table.
var searchFields = []types.FieldKey{
	types.FieldCourt,
	types.FieldCounty,
	types.FieldKeywords,
	types.FieldGroundsForAppeal,
	types.FieldCrimes,
	types.FieldJudges,
	types.FieldHarmlessError,
}

// column returns the SQL column name for a field.
func column(k types.FieldKey) string {
	return strings.ToLower(string(k))
}

func columnList(keys []types.FieldKey, prefix string) string {
	cols := make([]string, len(keys))
	for i, k := range keys {
		cols[i] = prefix + column(k)
	}
	return strings.Join(cols, ", ")
}

// Store manages the case index database.
type Store struct {
	db         *sql.DB
	path       string
	maxResults int
}

// NewStore opens or creates the case index at cfg.DBPath, creating the
// parent directory and the schema if they do not exist.
func NewStore(cfg types.CaseIndexConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("case index path is required")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	s := &Store{db: db, path: cfg.DBPath, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	var cols strings.Builder
	for _, k := range types.Fields {
		if k == types.FieldFile {
			continue
		}
		fmt.Fprintf(&cols, ",\n\t\t\t%s TEXT NOT NULL DEFAULT ''", column(k))
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS cases (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			indexed_at TEXT NOT NULL,
			file TEXT NOT NULL UNIQUE` + cols.String() + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_court ON cases(court)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_county ON cases(county)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_civilcriminal ON cases(civilcriminal)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='cases_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		return nil
	}

	fts := columnList(searchFields, "")
	newVals := columnList(searchFields, "new.")
	oldVals := columnList(searchFields, "old.")
	ftsStatements := []string{
		`CREATE VIRTUAL TABLE cases_fts USING fts5(` + fts + `, content=cases, content_rowid=rowid)`,
		`CREATE TRIGGER cases_ai AFTER INSERT ON cases BEGIN
			INSERT INTO cases_fts(rowid, ` + fts + `) VALUES (new.rowid, ` + newVals + `);
		END`,
		`CREATE TRIGGER cases_ad AFTER DELETE ON cases BEGIN
			INSERT INTO cases_fts(cases_fts, rowid, ` + fts + `) VALUES ('delete', old.rowid, ` + oldVals + `);
		END`,
		`CREATE TRIGGER cases_au AFTER UPDATE ON cases BEGIN
			INSERT INTO cases_fts(cases_fts, rowid, ` + fts + `) VALUES ('delete', old.rowid, ` + oldVals + `);
			INSERT INTO cases_fts(rowid, ` + fts + `) VALUES (new.rowid, ` + newVals + `);
		END`,
	}
	for _, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	return nil
}

// Upsert stores rec under its File value. A record for the same file
// from an earlier run is replaced.
func (s *Store) Upsert(ctx context.Context, runID string, rec types.Record) error {
	file := rec[types.FieldFile]
	if file == "" {
		return fmt.Errorf("record has no %s value", types.FieldFile)
	}

	cols := columnList(types.Fields, "")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(types.Fields)+2), ", ")

	var updates []string
	for _, k := range types.Fields {
		if k == types.FieldFile {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s=excluded.%s", column(k), column(k)))
	}

	args := []any{runID, time.Now().UTC().Format(time.RFC3339)}
	for _, v := range rec.Values() {
		args = append(args, v)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cases (run_id, indexed_at, `+cols+`) VALUES (`+placeholders+`)
		 ON CONFLICT(file) DO UPDATE SET
			run_id=excluded.run_id, indexed_at=excluded.indexed_at, `+strings.Join(updates, ", "),
		args...,
	)
	if err != nil {
		return fmt.Errorf("upserting case %s: %w", file, err)
	}
	return nil
}

// Count returns the number of indexed cases.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM cases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cases: %w", err)
	}
	return n, nil
}
