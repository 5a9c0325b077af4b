// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the takken-extractor pipeline.
package types

// Canonical answer symbols. Circle-family glyphs (○, 〇) are normalized to
// AnswerCorrect during detection; the cross glyph passes through unchanged.
const (
	AnswerCorrect = "〇"
	AnswerWrong   = "×"
)

// Defaults applied at finalization time when a question block never yielded
// a year or answer line.
const (
	DefaultYear   = "R6"
	DefaultAnswer = AnswerWrong
)

// QuestionRecord is one extracted exam question. Field order matches the
// nine-column output row: hierarchy labels, number, year, body, explanation,
// answer.
type QuestionRecord struct {
	// Major is the top hierarchy label (e.g. 宅建業法).
	Major string `json:"major" yaml:"major"`

	// Section is the second hierarchy label (e.g. Section 1 宅建業法の適用).
	Section string `json:"section" yaml:"section"`

	// Minor is the third hierarchy label (e.g. 「宅地建物取引業」とは).
	Minor string `json:"minor" yaml:"minor"`

	// Smallest is the fourth hierarchy label (e.g. 1-1「宅地」とは).
	Smallest string `json:"smallest" yaml:"smallest"`

	// Number is the normalized question number within the workbook.
	Number string `json:"number" yaml:"number"`

	// Year is the era-tagged exam year (e.g. "R3", "H25"). Never empty in
	// committed output; DefaultYear applies when no year line was found.
	Year string `json:"year" yaml:"year"`

	// Body is the accumulated question text.
	Body string `json:"body" yaml:"body"`

	// Explanation is the accumulated 解説 text. May be empty.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// Answer is 〇 or ×. Never empty in committed output; DefaultAnswer
	// applies when no answer line was found.
	Answer string `json:"answer" yaml:"answer"`
}

// ParseResult holds the output of parsing a single source document.
type ParseResult struct {
	// SourceID identifies the source document (PDF basename without extension).
	SourceID string `json:"source_id" yaml:"source_id"`

	// Questions contains the committed records in input order.
	Questions []QuestionRecord `json:"questions" yaml:"questions"`
}
