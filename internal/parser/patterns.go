// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// level identifies one of the four nested hierarchy slots, ordered from
// broadest to narrowest.
type level int

const (
	levelMajor level = iota
	levelSection
	levelMinor
	levelSmallest
	numLevels
)

func (l level) String() string {
	switch l {
	case levelMajor:
		return "major"
	case levelSection:
		return "section"
	case levelMinor:
		return "minor"
	case levelSmallest:
		return "smallest"
	}
	return "unknown"
}

// rule is one entry in a pattern bank. When capture is true the first
// submatch becomes the extracted value; otherwise the whole line does.
type rule struct {
	re      *regexp.Regexp
	capture bool
}

// hierarchyRules holds the ranked recognition rules per hierarchy level.
// Matching walks levels in order (major first) and rules in priority order
// within each level; the first hit anywhere wins.
var hierarchyRules = [numLevels][]rule{
	levelMajor: {
		{re: regexp.MustCompile(`第[一二三四五六七八九十０-９0-9]+章\s*[：:]\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`第?[一二三四五六七八九十０-９0-9]+\s*[章編部]\s*[：:]?\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`宅建業法|権利関係|税・その他|法令上の制限`)},
	},
	levelSection: {
		{re: regexp.MustCompile(`(?i)Section\s*[０-９0-9]+\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`第[０-９0-9一二三四五六七八九十]+節\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`[０-９0-9]+[．.]\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`■\s*(.+)`), capture: true},
	},
	levelMinor: {
		{re: regexp.MustCompile(`[０-９0-9一二三四五六七八九十]+[｜|]\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`[０-９0-9]+[-－]\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`●\s*(.+)`), capture: true},
	},
	levelSmallest: {
		{re: regexp.MustCompile(`[０-９0-9]+-[０-９0-9]+\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`[０-９0-9]+\.\s*[０-９0-9]+\s*(.+)`), capture: true},
		{re: regexp.MustCompile(`▶\s*(.+)`), capture: true},
	},
}

// matchHierarchy classifies a heading line. It returns the matched level and
// extracted label, or ok=false when no rule in any bank matches.
func matchHierarchy(line string) (lv level, label string, ok bool) {
	for lv := levelMajor; lv < numLevels; lv++ {
		for _, r := range hierarchyRules[lv] {
			m := r.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if r.capture {
				return lv, strings.TrimSpace(m[1]), true
			}
			return lv, strings.TrimSpace(line), true
		}
	}
	return 0, "", false
}

// questionRules are the ranked question-header shapes. Every shape captures
// the numeral and the remainder text.
var questionRules = []*regexp.Regexp{
	regexp.MustCompile(`^([０-９0-9]+)[．.。：:\s]+(.+)`),
	regexp.MustCompile(`^問\s*([０-９0-9]+)[．.。：:\s]*(.+)`),
	regexp.MustCompile(`^第?\s*([０-９0-9]+)\s*問[．.。：:\s]*(.+)`),
	regexp.MustCompile(`^\[([０-９0-9]+)\][．.。：:\s]*(.+)`),
	regexp.MustCompile(`^【([０-９0-9]+)】[．.。：:\s]*(.+)`),
	regexp.MustCompile(`^([０-９0-9]+)\s*[)）][．.。：:\s]*(.+)`),
}

// Question numbers outside this range fail the validity gate and the rule
// is treated as a non-match.
const (
	minQuestionNumber = 1
	maxQuestionNumber = 1000
)

// matchQuestion detects a question-header line. It returns the normalized
// number and the remainder text. A captured numeral that does not parse, or
// falls outside [1,1000], rejects the rule and the next shape is tried.
func matchQuestion(line string) (number, rest string, ok bool) {
	for _, re := range questionRules {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		num := NormalizeDigits(m[1])
		n, err := strconv.Atoi(num)
		if err != nil || n < minQuestionNumber || n > maxQuestionNumber {
			continue
		}
		return num, strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// answerRules are the ranked answer-line shapes. Each captures one of the
// binary answer glyphs.
var answerRules = []*regexp.Regexp{
	regexp.MustCompile(`^[答回正解][：:]\s*([○×〇])`),
	regexp.MustCompile(`^[答回正解]\s*([○×〇])`),
	regexp.MustCompile(`^([○×〇])\s*$`),
	regexp.MustCompile(`答え?[：:]?\s*([○×〇])`),
	regexp.MustCompile(`正解[：:]?\s*([○×〇])`),
}

// matchAnswer detects an answer line and returns the canonical symbol:
// circle-family glyphs normalize to 〇, the cross passes through.
func matchAnswer(line string) (string, bool) {
	for _, re := range answerRules {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] == "○" {
			return types.AnswerCorrect, true
		}
		return m[1], true
	}
	return "", false
}

// yearKind selects the era-tagging policy for a matched year rule.
type yearKind int

const (
	yearReiwa      yearKind = iota // era-letter or era-name prefixed 令和 numeral
	yearHeisei                     // era-letter or era-name prefixed 平成 numeral
	yearContextual                 // bare N年 numeral, era inferred from range
	yearGregorian                  // two-digit Gregorian-style numeral
)

// yearRules are the ranked year-token shapes, each bound to a tagging policy.
var yearRules = []struct {
	re   *regexp.Regexp
	kind yearKind
}{
	{regexp.MustCompile(`[Rr]([0-9０-９]+)`), yearReiwa},
	{regexp.MustCompile(`令和([0-9０-９]+)`), yearReiwa},
	{regexp.MustCompile(`[Hh]([0-9０-９]+)`), yearHeisei},
	{regexp.MustCompile(`平成([0-9０-９]+)`), yearHeisei},
	{regexp.MustCompile(`([0-9０-９]+)年`), yearContextual},
	{regexp.MustCompile(`20([0-9０-９]{2})`), yearGregorian},
	{regexp.MustCompile(`^([0-9０-９]{2})$`), yearGregorian},
}

// matchYear detects a year token and returns its era tag. Two-digit
// Gregorian numerals ≥19 fall in 令和 (offset -18), earlier ones in 平成
// (offset +12). A bare N年 numeral is assigned 令和 for 1-6 and 平成 for
// 1-31; outside both ranges the rule is a non-match.
func matchYear(line string) (string, bool) {
	for _, yr := range yearRules {
		m := yr.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(NormalizeDigits(m[1]))
		if err != nil {
			continue
		}
		switch yr.kind {
		case yearReiwa:
			return "R" + strconv.Itoa(n), true
		case yearHeisei:
			return "H" + strconv.Itoa(n), true
		case yearGregorian:
			if n >= 19 {
				return "R" + strconv.Itoa(n-18), true
			}
			return "H" + strconv.Itoa(n+12), true
		case yearContextual:
			if n >= 1 && n <= 6 {
				return "R" + strconv.Itoa(n), true
			}
			if n >= 1 && n <= 31 {
				return "H" + strconv.Itoa(n), true
			}
		}
	}
	return "", false
}

// Ignorable-line predicates, shared by body and explanation accumulation.
var (
	digitsOnlyRe     = regexp.MustCompile(`^[0-9０-９]+$`)
	decorationOnlyRe = regexp.MustCompile(`^[・●○▲△□■◆\-=\s]+$`)
	pageHeaderRe     = regexp.MustCompile(`^(ページ|Page|[0-9]+/[0-9]+|第[0-9０-９]+章)`)
	figureHeadingRe  = regexp.MustCompile(`^表[①②③④⑤]`)
)

// isIgnorable reports whether a line is decorative noise that must never be
// appended to a body or explanation: too short, digits-only, bullet-glyph
// runs, page headers/footers, or numbered figure headings.
func isIgnorable(line string) bool {
	if len([]rune(line)) < 3 {
		return true
	}
	return digitsOnlyRe.MatchString(line) ||
		decorationOnlyRe.MatchString(line) ||
		pageHeaderRe.MatchString(line) ||
		figureHeadingRe.MatchString(line)
}
