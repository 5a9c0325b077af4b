// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"
	"testing"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

func parseLines(t *testing.T, lines ...string) []types.QuestionRecord {
	t.Helper()
	return Parse(strings.Join(lines, "\n"), types.ParserConfig{})
}

func TestParse_SingleQuestion(t *testing.T) {
	records := parseLines(t,
		"宅建業法",
		"問1 宅地建物取引業の免許を受けた者でなければ",
		"宅地の売買の媒介を業として営むことが",
		"できない。",
		"正解：○",
	)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]

	if r.Major != "宅建業法" {
		t.Errorf("major = %q, want %q", r.Major, "宅建業法")
	}
	if r.Number != "1" {
		t.Errorf("number = %q, want %q", r.Number, "1")
	}
	wantBody := "宅地建物取引業の免許を受けた者でなければ 宅地の売買の媒介を業として営むことが できない。"
	if r.Body != wantBody {
		t.Errorf("body = %q, want %q", r.Body, wantBody)
	}
	if r.Answer != types.AnswerCorrect {
		t.Errorf("answer = %q, want %q", r.Answer, types.AnswerCorrect)
	}
	if r.Year != types.DefaultYear {
		t.Errorf("year = %q, want default %q", r.Year, types.DefaultYear)
	}
}

func TestParse_BodyJoining(t *testing.T) {
	// A body ending in a full stop takes the next line without a space.
	records := parseLines(t,
		"問1 免許の有効期間は五年である。",
		"更新を受けようとする者がいる。",
	)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := "免許の有効期間は五年である。更新を受けようとする者がいる。"
	if records[0].Body != want {
		t.Errorf("body = %q, want %q", records[0].Body, want)
	}
}

func TestParse_YearAndAnswerCapture(t *testing.T) {
	records := parseLines(t,
		"問2 営業保証金を供託した旨の届出が必要である。",
		"R3",
		"×",
	)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Year != "R3" {
		t.Errorf("year = %q, want R3", records[0].Year)
	}
	if records[0].Answer != types.AnswerWrong {
		t.Errorf("answer = %q, want ×", records[0].Answer)
	}
}

func TestParse_RecordOrderAndHierarchyClearing(t *testing.T) {
	records := parseLines(t,
		"宅建業法",
		"■ 免許制度",
		"問1 一つ目の問題文がここに入る。",
		"○",
		"権利関係",
		"問2 二つ目の問題文がここに入る。",
		"×",
	)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Number != "1" || records[1].Number != "2" {
		t.Errorf("record order = %q, %q; want 1, 2", records[0].Number, records[1].Number)
	}
	if records[0].Major != "宅建業法" || records[0].Section != "免許制度" {
		t.Errorf("first record hierarchy = (%q, %q)", records[0].Major, records[0].Section)
	}
	// The new major heading clears the section for the second record.
	if records[1].Major != "権利関係" {
		t.Errorf("second record major = %q, want 権利関係", records[1].Major)
	}
	if records[1].Section != "" {
		t.Errorf("second record section = %q, want cleared", records[1].Section)
	}
}

func TestParse_HierarchySnapshotFrozen(t *testing.T) {
	records := parseLines(t,
		"宅建業法",
		"問1 この問題は最初の大項目に属する。",
		"○",
		"権利関係",
		"問2 この問題は次の大項目に属する。",
	)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Major != "宅建業法" {
		t.Errorf("first record major = %q, want 宅建業法", records[0].Major)
	}
	if records[1].Major != "権利関係" {
		t.Errorf("second record major = %q, want 権利関係", records[1].Major)
	}
}

func TestParse_PreQuestionNoiseDiscarded(t *testing.T) {
	records := parseLines(t,
		"はしがきの文章がここに続いている。",
		"本書の使い方について説明する。",
		"問1 最初の問題文である。",
		"○",
	)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if strings.Contains(records[0].Body, "はしがき") {
		t.Errorf("pre-question noise leaked into body: %q", records[0].Body)
	}
}

func TestParse_ExplanationCollection(t *testing.T) {
	records := parseLines(t,
		"問2 宅建業の免許は国土交通大臣が与える場合がある。",
		"【解説】免許権者は事務所の設置状況により異なる",
		"複数の都道府県に事務所を設ける場合は大臣免許となる",
		"●●",
		"正解：○",
	)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]

	// The marker-line remainder keeps its text; the short decorative line
	// is dropped; the answer line stops collection and is still captured.
	want := "】免許権者は事務所の設置状況により異なる 複数の都道府県に事務所を設ける場合は大臣免許となる"
	if r.Explanation != want {
		t.Errorf("explanation = %q, want %q", r.Explanation, want)
	}
	if r.Answer != types.AnswerCorrect {
		t.Errorf("answer = %q, want 〇 (stopping line must still be classified)", r.Answer)
	}
}

func TestParse_ExplanationStopsAtBlankLine(t *testing.T) {
	// Explanations end at a paragraph break; body accumulation does not.
	records := parseLines(t,
		"問3 案内所に標識を掲げる必要がある。",
		"解説：標識の掲示は案内所にも及ぶ",
		"",
		"この行は問題文の続きとなる。",
	)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if strings.Contains(r.Explanation, "続き") {
		t.Errorf("explanation crossed a blank line: %q", r.Explanation)
	}
	if !strings.Contains(r.Body, "この行は問題文の続きとなる。") {
		t.Errorf("post-blank line missing from body: %q", r.Body)
	}
}

func TestParse_ExplanationStopsAtNextQuestion(t *testing.T) {
	records := parseLines(t,
		"問4 最初の問題文である。",
		"解説：一つ目の解説である",
		"問5 次の問題文である。",
		"×",
	)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Explanation != "：一つ目の解説である" {
		t.Errorf("explanation = %q", records[0].Explanation)
	}
	if records[1].Number != "5" {
		t.Errorf("stopping header not reprocessed: second number = %q", records[1].Number)
	}
}

func TestParse_LatestExplanationWins(t *testing.T) {
	records := parseLines(t,
		"問6 問題文がここに入っている。",
		"解説：最初の解説である",
		"",
		"追加の問題文が続いている。",
		"解説：最新の解説である",
	)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Explanation != "：最新の解説である" {
		t.Errorf("explanation = %q, want the most recent block", records[0].Explanation)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if records := Parse("", types.ParserConfig{}); len(records) != 0 {
		t.Errorf("empty input produced %d records", len(records))
	}
}

func TestParse_CustomDefaults(t *testing.T) {
	records := Parse("問1 問題文がここに入る。", types.ParserConfig{
		DefaultYear:   "R5",
		DefaultAnswer: types.AnswerCorrect,
	})
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Year != "R5" || records[0].Answer != types.AnswerCorrect {
		t.Errorf("defaults = (%q, %q), want (R5, 〇)", records[0].Year, records[0].Answer)
	}
}

func TestFinalize_DropsIncompleteRecord(t *testing.T) {
	s := &segmenter{defaultYear: types.DefaultYear, defaultAnswer: types.DefaultAnswer}
	s.current = &types.QuestionRecord{Number: "9"} // no body
	s.finalize()
	if len(s.records) != 0 {
		t.Errorf("record without body was committed")
	}
	if s.current != nil {
		t.Error("current record not cleared")
	}
}

func TestParse_CommittedRecordsAreCopies(t *testing.T) {
	records := parseLines(t,
		"問1 最初の問題文である。",
		"○",
		"問2 次の問題文である。",
	)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	records[0].Body = "mutated"
	fresh := parseLines(t,
		"問1 最初の問題文である。",
		"○",
		"問2 次の問題文である。",
	)
	if fresh[0].Body == "mutated" {
		t.Error("committed records share state across parses")
	}
}
