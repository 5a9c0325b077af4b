// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parser converts extracted workbook text into question records.
// The parser is a single forward pass over the line sequence: heading lines
// update the hierarchy tracker, question-header lines open records, and the
// remaining lines are routed to year, answer, explanation, or body fields
// through ordered pattern banks.
package parser

import (
	"regexp"
	"strings"
)

// NormalizeDigits maps every full-width decimal digit (U+FF10–FF19) to its
// ASCII counterpart. All other characters pass through unchanged. Idempotent.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return '0' + (r - '０')
		}
		return r
	}, s)
}

// disallowedRe matches any character outside the allow-listed set of word,
// whitespace, punctuation, bracket, and decoration characters. Everything
// it matches is stripped during cleanup. \p{L}\p{N} rather than \w because
// Go's \w is ASCII-only and would drop every kana and kanji.
var disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_ \t　\r\n。、．，：；！？「」『』（）〈〉【】○×〇▲△□■◆●・\-=]`)

// spaceRunRe collapses runs of spaces, tabs, and full-width spaces within a line.
var spaceRunRe = regexp.MustCompile(`[ \t　]+`)

// blankRunRe collapses runs of blank lines down to a single blank line.
var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Clean normalizes raw extracted text for parsing: full-width digits become
// ASCII, characters outside the allow-list are stripped, space runs collapse
// to a single space, and blank-line runs collapse to one blank line. Line
// boundaries are preserved; the segmenter depends on them.
func Clean(text string) string {
	text = NormalizeDigits(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = disallowedRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
