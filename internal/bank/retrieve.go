// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bank

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// QueryOptions holds parameters for question bank queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over body and explanation.
	Query string

	// Major filters by top hierarchy label.
	Major string

	// Year filters by era tag (e.g. "R3").
	Year string

	// Answer filters by answer symbol (〇 or ×).
	Answer string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Major == "" && q.Year == "" && q.Answer == ""
}

// QueryResult is a QuestionRecord with its source document ID.
type QueryResult struct {
	types.QuestionRecord
	DocID string `json:"doc_id" yaml:"doc_id"`
}

// Retrieve queries the bank with optional full-text search and structured
// filters. Full-text queries rank by relevance; structured-only queries
// sort by document, then numeric question number.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT q.doc_id, q.major, q.section, q.minor, q.smallest,
				q.number, q.year, q.body, q.explanation, q.answer
			FROM questions_fts
			JOIN questions q ON q.rowid = questions_fts.rowid
			WHERE questions_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT q.doc_id, q.major, q.section, q.minor, q.smallest,
				q.number, q.year, q.body, q.explanation, q.answer
			FROM questions q
			WHERE 1=1`)
	}

	if opts.Major != "" {
		qb.WriteString(` AND q.major = ?`)
		args = append(args, opts.Major)
	}
	if opts.Year != "" {
		qb.WriteString(` AND q.year = ?`)
		args = append(args, opts.Year)
	}
	if opts.Answer != "" {
		qb.WriteString(` AND q.answer = ?`)
		args = append(args, opts.Answer)
	}

	if useFTS {
		qb.WriteString(` ORDER BY questions_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY q.doc_id, CAST(q.number AS INTEGER)`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying question bank: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr          QueryResult
			explanation sql.NullString
		)
		if err := rows.Scan(
			&qr.DocID, &qr.Major, &qr.Section, &qr.Minor, &qr.Smallest,
			&qr.Number, &qr.Year, &qr.Body, &explanation, &qr.Answer,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if explanation.Valid {
			qr.Explanation = explanation.String
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}

// MajorCount is one histogram bucket in Stats output.
type MajorCount struct {
	Major string
	Count int
}

// Stats summarizes the bank contents: totals, the answer tally, and the
// per-major-hierarchy histogram in descending count order.
type Stats struct {
	Documents int
	Questions int
	Correct   int
	Wrong     int
	ByMajor   []MajorCount
}

// Stats computes bank-wide statistics.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM documents`,
	).Scan(&st.Documents); err != nil {
		return Stats{}, fmt.Errorf("counting documents: %w", err)
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*),
			coalesce(sum(answer = ?), 0),
			coalesce(sum(answer != ?), 0)
		 FROM questions`,
		types.AnswerCorrect, types.AnswerCorrect,
	).Scan(&st.Questions, &st.Correct, &st.Wrong); err != nil {
		return Stats{}, fmt.Errorf("counting questions: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT major, count(*) FROM questions GROUP BY major ORDER BY count(*) DESC, major`,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("building histogram: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mc MajorCount
		if err := rows.Scan(&mc.Major, &mc.Count); err != nil {
			return Stats{}, fmt.Errorf("scanning histogram row: %w", err)
		}
		st.ByMajor = append(st.ByMajor, mc)
	}

	return st, rows.Err()
}
