// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bank persists question records in a local SQLite database and
// serves full-text and structured queries over them.
package bank

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

const (
	recordsDir = "records"
	indexDir   = "index"
	dbFile     = "questions.db"

	recordsSuffix = "-questions.yaml"
)

// Store manages the question bank SQLite database.
type Store struct {
	db         *sql.DB
	bankDir    string
	maxResults int
}

// NewStore opens or creates the question bank database at
// bankDir/index/questions.db, creating the schema if needed.
func NewStore(cfg types.BankConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.BankDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		bankDir:    cfg.BankDir,
		maxResults: maxResults,
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
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			indexed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			doc_id TEXT NOT NULL REFERENCES documents(id),
			major TEXT,
			section TEXT,
			minor TEXT,
			smallest TEXT,
			number TEXT NOT NULL,
			year TEXT NOT NULL,
			body TEXT NOT NULL,
			explanation TEXT,
			answer TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_doc_id ON questions(doc_id)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_major ON questions(major)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_year ON questions(year)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			doc_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='questions_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE questions_fts USING fts5(body, explanation, content=questions, content_rowid=rowid)`,
			`CREATE TRIGGER questions_ai AFTER INSERT ON questions BEGIN
				INSERT INTO questions_fts(rowid, body, explanation) VALUES (new.rowid, new.body, new.explanation);
			END`,
			`CREATE TRIGGER questions_ad AFTER DELETE ON questions BEGIN
				INSERT INTO questions_fts(questions_fts, rowid, body, explanation) VALUES('delete', old.rowid, old.body, old.explanation);
			END`,
			`CREATE TRIGGER questions_au AFTER UPDATE ON questions BEGIN
				INSERT INTO questions_fts(questions_fts, rowid, body, explanation) VALUES('delete', old.rowid, old.body, old.explanation);
				INSERT INTO questions_fts(rowid, body, explanation) VALUES (new.rowid, new.body, new.explanation);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a bank indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of record files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// HasFailures reports whether any record files failed.
func (s IngestSummary) HasFailures() bool {
	return s.Failed > 0
}

// Ingest reads record YAML files from bankDir/records/ and populates the
// database, skipping unchanged files and replacing changed ones.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	recDir := filepath.Join(s.bankDir, recordsDir)

	entries, err := os.ReadDir(recDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading records directory %s: %w", recDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordsSuffix) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		docID := strings.TrimSuffix(entry.Name(), recordsSuffix)
		filePath := filepath.Join(recDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE doc_id = ?`, docID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", docID)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}

		var result types.ParseResult
		if err := yaml.Unmarshal(data, &result); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", docID, err)
			summary.Failed++
			continue
		}

		if err := s.ingestDocument(ctx, docID, result.Questions, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d questions)\n", docID, len(result.Questions))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d questions)\n", docID, len(result.Questions))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestDocument(ctx context.Context, docID string, questions []types.QuestionRecord, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE doc_id = ?`, docID); err != nil {
			return fmt.Errorf("deleting old questions: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, indexed_at) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET indexed_at=excluded.indexed_at`,
		docID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO questions (id, doc_id, major, section, minor, smallest, number, year, body, explanation, answer)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range questions {
		_, err := stmt.ExecContext(ctx,
			stableID(docID, q.Number, q.Body), docID,
			q.Major, q.Section, q.Minor, q.Smallest,
			q.Number, q.Year, q.Body, q.Explanation, q.Answer,
		)
		if err != nil {
			return fmt.Errorf("inserting question %s: %w", q.Number, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (doc_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(doc_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		docID, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// stableID generates a deterministic question ID from document ID, number,
// and body. The ID is the first 12 hex characters of the SHA-256 digest.
func stableID(docID, number, body string) string {
	h := sha256.New()
	h.Write([]byte(docID))
	h.Write([]byte(number))
	h.Write([]byte(body))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
