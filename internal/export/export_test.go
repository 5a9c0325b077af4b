// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

func sampleRecords() []types.QuestionRecord {
	return []types.QuestionRecord{
		{
			Major:   "宅建業法",
			Section: "免許制度",
			Number:  "1",
			Year:    "R3",
			Body:    "宅地建物取引業を営むには免許が必要である。",
			Answer:  types.AnswerCorrect,
		},
		{
			Major:       "権利関係",
			Number:      "2",
			Year:        "H25",
			Body:        "意思表示に関する問題である。",
			Explanation: "詐欺による意思表示は取り消すことができる",
			Answer:      types.AnswerWrong,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(sampleRecords(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte("\xEF\xBB\xBF")), "CSV should start with a UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF")))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header + 2 records")

	assert.Equal(t, "大項目", rows[0][0])
	assert.Equal(t, "回答", rows[0][8])
	assert.Equal(t, "1", rows[1][4])
	assert.Equal(t, types.AnswerCorrect, rows[1][8])
	assert.Equal(t, "詐欺による意思表示は取り消すことができる", rows[2][7])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(sampleRecords(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size(), "workbook file should not be empty")
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	result := types.ParseResult{SourceID: "takken-2026", Questions: sampleRecords()}
	require.NoError(t, WriteYAML(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.ParseResult
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "takken-2026", got.SourceID)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "1", got.Questions[0].Number)
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Correct)
	assert.Equal(t, 1, s.Wrong)
	assert.Equal(t, 1, s.ByMajor["宅建業法"])
	assert.Equal(t, 1, s.ByMajor["権利関係"])
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, Summarize(sampleRecords()))

	out := buf.String()
	for _, want := range []string{"抽出完了: 2問", "正解問題: 1", "不正解問題: 1", "宅建業法: 1問"} {
		assert.True(t, strings.Contains(out, want), "summary output missing %q:\n%s", want, out)
	}
}
