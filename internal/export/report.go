// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// Summary aggregates counts over a set of committed records.
type Summary struct {
	Total   int
	Correct int
	Wrong   int

	// ByMajor counts records per top hierarchy label. Records with no
	// major label are grouped under the empty key.
	ByMajor map[string]int
}

// Summarize tallies answers and the per-major-hierarchy histogram.
func Summarize(records []types.QuestionRecord) Summary {
	s := Summary{
		Total:   len(records),
		ByMajor: make(map[string]int),
	}
	for _, r := range records {
		if r.Answer == types.AnswerCorrect {
			s.Correct++
		} else {
			s.Wrong++
		}
		s.ByMajor[r.Major]++
	}
	return s
}

// WriteSummary prints the extraction summary to w: total counts, the 〇/×
// tally, and the per-major histogram in sorted label order.
func WriteSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\n抽出完了: %d問\n", s.Total)
	fmt.Fprintf(w, "正解問題: %d\n", s.Correct)
	fmt.Fprintf(w, "不正解問題: %d\n", s.Wrong)

	labels := make([]string, 0, len(s.ByMajor))
	for label := range s.ByMajor {
		if label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return
	}
	sort.Strings(labels)

	fmt.Fprintln(w, "\nセクション別問題数:")
	for _, label := range labels {
		fmt.Fprintf(w, "  %s: %d問\n", label, s.ByMajor[label])
	}
}
