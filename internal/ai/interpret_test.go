package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusuke-koga/claimgate/pkg/report"
)

func TestExtractJSON_ArrayAmidProse(t *testing.T) {
	text := "here is the result:\n" +
		`[{"date":"2024/5/1","person":"customer","summary":"late delivery","detail":"..."}]` +
		"\nthanks"

	span, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `[{"date":"2024/5/1","person":"customer","summary":"late delivery","detail":"..."}]`, span)
}

func TestExtractJSON_ObjectWithCodeFence(t *testing.T) {
	text := "```json\n{\"title\":\"納期遅延の改善\"}\n```"
	span, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"納期遅延の改善"}`, span)
}

func TestExtractJSON_GreedyToLastCloserOfSameFamily(t *testing.T) {
	// Nested arrays: the span runs to the LAST closing bracket.
	text := `noise [1, [2, 3]] trailing`
	span, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `[1, [2, 3]]`, span)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON("the model refused to answer")
	require.ErrorIs(t, err, ErrNoJSONFound)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractJSON_OpenerWithoutCloser(t *testing.T) {
	_, err := ExtractJSON("starts an object { but never finishes")
	require.ErrorIs(t, err, ErrNoJSONFound)
}

func TestDecodeJSON_History(t *testing.T) {
	text := "prose before\n" +
		`[{"date":"2024/5/1","person":"顧客","summary":"配送遅延","detail":"天候による遅れ"}]`

	var history []report.HistoryEntry
	require.NoError(t, DecodeJSON(text, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "2024/5/1", history[0].Date)
	assert.Equal(t, "顧客", history[0].Person)
	assert.Equal(t, "配送遅延", history[0].Summary)
}

func TestDecodeJSON_VisualSheet(t *testing.T) {
	text := `{
		"title": "迅速対応で信頼回復",
		"summary": "配送遅延への対応経緯",
		"rootCause": "繁忙期の輸送力不足",
		"causeAnalysis": "需要予測が実績と乖離",
		"countermeasures": [
			{"title": "輸送枠の事前確保", "content": "繁忙期前に確保", "priority": "高"}
		],
		"expectedEffect": "遅延率の半減"
	}`

	var sheet report.VisualSheet
	require.NoError(t, DecodeJSON(text, &sheet))
	assert.Equal(t, "迅速対応で信頼回復", sheet.Title)
	require.Len(t, sheet.Countermeasures, 1)
	assert.Equal(t, report.PriorityHigh, sheet.Countermeasures[0].Priority)
}

func TestDecodeJSON_SpanDoesNotParse(t *testing.T) {
	var v any
	err := DecodeJSON(`broken {"title": "x", "oops": } end`, &v)
	require.ErrorIs(t, err, ErrUnparsableJSON)
	require.ErrorIs(t, err, ErrMalformedResponse)
	require.NotErrorIs(t, err, ErrNoJSONFound)
}

func TestDecodeJSON_WrongShape(t *testing.T) {
	// Valid JSON, but not a history array.
	var history []report.HistoryEntry
	err := DecodeJSON(`{"unexpected": "object"}`, &history)
	require.ErrorIs(t, err, ErrUnparsableJSON)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	// Never splits a multi-byte rune.
	assert.Equal(t, "あ", Truncate("ああ", 4))
}
