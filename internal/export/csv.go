// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes question records to CSV, XLSX, and YAML, and
// prints extraction summaries.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// Header is the fixed nine-column output header, matching the workbook's
// own vocabulary.
var Header = []string{
	"大項目", "中項目", "小項目", "最小項目", "問題番号",
	"出題年度", "問題", "解説", "回答",
}

// utf8BOM makes the CSV open correctly in Excel on Windows.
const utf8BOM = "\xEF\xBB\xBF"

// row flattens a record into the fixed column order.
func row(r types.QuestionRecord) []string {
	return []string{
		r.Major, r.Section, r.Minor, r.Smallest, r.Number,
		r.Year, r.Body, r.Explanation, r.Answer,
	}
}

// WriteCSV writes the records to path as a BOM-prefixed UTF-8 CSV with the
// fixed header row.
func WriteCSV(records []types.QuestionRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(row(r)); err != nil {
			return fmt.Errorf("writing record %s: %w", r.Number, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
