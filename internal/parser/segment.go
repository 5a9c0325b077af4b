// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// explanationMarker introduces an explanation block within a question.
const explanationMarker = "解説"

// segmenter is the per-parse state: the hierarchy tracker, the in-progress
// record, and the committed records. One segmenter serves exactly one Parse
// call; there is no package-level parse state.
type segmenter struct {
	hier          tracker
	current       *types.QuestionRecord
	records       []types.QuestionRecord
	defaultYear   string
	defaultAnswer string
}

// Parse runs a single forward pass over the cleaned text and returns the
// committed question records in input order. Empty input yields no records.
func Parse(text string, cfg types.ParserConfig) []types.QuestionRecord {
	s := &segmenter{
		defaultYear:   cfg.DefaultYear,
		defaultAnswer: cfg.DefaultAnswer,
	}
	if s.defaultYear == "" {
		s.defaultYear = types.DefaultYear
	}
	if s.defaultAnswer == "" {
		s.defaultAnswer = types.DefaultAnswer
	}

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			i++
			continue
		}

		if lv, label, ok := matchHierarchy(line); ok {
			s.hier.apply(lv, label)
			i++
			continue
		}

		if number, rest, ok := matchQuestion(line); ok {
			s.finalize()
			s.open(number, rest)
			i++
			continue
		}

		// Noise before the first question header.
		if s.current == nil {
			i++
			continue
		}

		if s.current.Year == "" {
			if year, ok := matchYear(line); ok {
				s.current.Year = year
				i++
				continue
			}
		}

		if s.current.Answer == "" {
			if answer, ok := matchAnswer(line); ok {
				s.current.Answer = answer
				i++
				continue
			}
		}

		if isIgnorable(line) {
			i++
			continue
		}

		if strings.Contains(line, explanationMarker) {
			explanation, next := collectExplanation(line, lines, i)
			if explanation != "" {
				s.current.Explanation = explanation
			}
			// Resume at the stopping line so an answer or header that
			// terminated the block is classified exactly once.
			i = next
			continue
		}

		s.appendBody(line)
		i++
	}

	s.finalize()
	return s.records
}

// open starts a new record with the current hierarchy snapshot. The header
// remainder seeds the body.
func (s *segmenter) open(number, rest string) {
	snap := s.hier.snapshot()
	s.current = &types.QuestionRecord{
		Major:    snap[levelMajor],
		Section:  snap[levelSection],
		Minor:    snap[levelMinor],
		Smallest: snap[levelSmallest],
		Number:   number,
		Body:     rest,
	}
}

// appendBody adds a continuation line to the open record's body, inserting
// a space unless the body already ends in a full stop.
func (s *segmenter) appendBody(line string) {
	if s.current.Body != "" && !strings.HasSuffix(s.current.Body, "。") {
		s.current.Body += " "
	}
	s.current.Body += line
}

// finalize commits the open record, if any. Records missing a number or
// body are dropped silently; absent year and answer fields receive their
// defaults. The record is copied into the result so later mutation of the
// working record cannot alter committed output.
func (s *segmenter) finalize() {
	if s.current == nil {
		return
	}
	if s.current.Number != "" && s.current.Body != "" {
		if s.current.Year == "" {
			s.current.Year = s.defaultYear
		}
		if s.current.Answer == "" {
			s.current.Answer = s.defaultAnswer
		}
		s.records = append(s.records, *s.current)
	}
	s.current = nil
}

// collectExplanation gathers an explanation block starting at the marker
// line. Any text trailing the marker on the same line is kept unless it is
// empty or a lone closing-bracket artifact. Scanning then continues forward
// until a question header, an answer line, or a blank line; the stopping
// line is not consumed. It returns the space-joined text and the index of
// the first unconsumed line.
func collectExplanation(line string, lines []string, start int) (string, int) {
	var parts []string

	if idx := strings.Index(line, explanationMarker); idx >= 0 {
		rest := strings.TrimSpace(line[idx+len(explanationMarker):])
		if rest != "" && rest != "】" && rest != "】：" {
			parts = append(parts, rest)
		}
	}

	i := start + 1
	for ; i < len(lines); i++ {
		next := strings.TrimSpace(lines[i])

		if next == "" {
			break
		}
		if _, _, ok := matchQuestion(next); ok {
			break
		}
		if _, ok := matchAnswer(next); ok {
			break
		}

		if !isIgnorable(next) {
			parts = append(parts, next)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " ")), i
}
