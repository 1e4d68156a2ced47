package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusuke-koga/claimgate/internal/prompt"
	"github.com/yusuke-koga/claimgate/pkg/report"
)

func defaultBuilder() prompt.Builder {
	return prompt.NewBuilder(prompt.DefaultMinLogChars, prompt.DefaultMaxLogChars)
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"summarize", "suggestCause", "suggestCountermeasure", "generateVisualSheet"} {
		a, ok := prompt.ParseAction(s)
		assert.True(t, ok)
		assert.Equal(t, prompt.Action(s), a)
	}

	for _, s := range []string{"", "Summarize", "doSomethingElse", "summarize "} {
		_, ok := prompt.ParseAction(s)
		assert.False(t, ok, "%q must not parse", s)
	}
}

func TestBuild_SummarizeLengthBounds(t *testing.T) {
	b := defaultBuilder()

	_, err := b.Build(prompt.ActionSummarize, prompt.Payload{LogText: "short"})
	require.ErrorIs(t, err, prompt.ErrLogTooShort)
	assert.Contains(t, err.Error(), "minimum 10")

	_, err = b.Build(prompt.ActionSummarize, prompt.Payload{LogText: strings.Repeat("あ", 50001)})
	require.ErrorIs(t, err, prompt.ErrLogTooLong)
	assert.Contains(t, err.Error(), "maximum 50000")

	// Boundaries are inclusive.
	p, err := b.Build(prompt.ActionSummarize, prompt.Payload{LogText: strings.Repeat("a", 10)})
	require.NoError(t, err)
	assert.Equal(t, prompt.ShapeJSON, p.Shape)

	_, err = b.Build(prompt.ActionSummarize, prompt.Payload{LogText: strings.Repeat("a", 50000)})
	require.NoError(t, err)
}

func TestBuild_SummarizeEmbedsLog(t *testing.T) {
	logText := "5月1日に顧客から配送遅延のクレームを受けた。"
	p, err := defaultBuilder().Build(prompt.ActionSummarize, prompt.Payload{LogText: logText})
	require.NoError(t, err)

	assert.Contains(t, p.Text, "【対応ログ】\n"+logText)
	assert.Contains(t, p.Text, "必ず有効なJSONのみを出力し")
}

func TestBuild_SuggestCauseHistoryLines(t *testing.T) {
	p, err := defaultBuilder().Build(prompt.ActionSuggestCause, prompt.Payload{
		History: []report.HistoryEntry{
			{Date: "2024/5/1", Summary: "late delivery", Detail: "weather delay"},
			{Date: "2024/5/2", Summary: "apology call", Detail: "agreed refund"},
		},
		LogText: "raw log text here",
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.ShapeText, p.Shape)
	assert.Contains(t, p.Text, "2024/5/1: late delivery - weather delay\n2024/5/2: apology call - agreed refund")
	assert.Contains(t, p.Text, "【元のログ】\nraw log text here")
}

func TestBuild_SuggestCausePlaceholders(t *testing.T) {
	p, err := defaultBuilder().Build(prompt.ActionSuggestCause, prompt.Payload{})
	require.NoError(t, err)

	assert.Contains(t, p.Text, "【経緯データ】\n経緯データなし")
	assert.Contains(t, p.Text, "【元のログ】\n（なし）")
}

func TestBuild_SuggestCountermeasureOmitsDetail(t *testing.T) {
	p, err := defaultBuilder().Build(prompt.ActionSuggestCountermeasure, prompt.Payload{
		History: []report.HistoryEntry{
			{Date: "2024/5/1", Summary: "late delivery", Detail: "weather delay"},
		},
		Cause: "carrier capacity shortage",
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.ShapeText, p.Shape)
	assert.Contains(t, p.Text, "2024/5/1: late delivery\n")
	assert.NotContains(t, p.Text, "weather delay")
	assert.Contains(t, p.Text, "【原因】\ncarrier capacity shortage")
	assert.Contains(t, p.Text, "【元のログ】\n（なし）")
}

func TestBuild_VisualSheet(t *testing.T) {
	p, err := defaultBuilder().Build(prompt.ActionGenerateVisualSheet, prompt.Payload{
		History: []report.HistoryEntry{
			{Date: "2024/5/1", Summary: "late delivery", Detail: "weather delay"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.ShapeJSON, p.Shape)
	assert.Contains(t, p.Text, `"countermeasures"`)
	assert.Contains(t, p.Text, "2024/5/1: late delivery - weather delay")
	assert.Contains(t, p.Text, "【原因（ユーザー入力）】\n（未入力）")
	assert.Contains(t, p.Text, "【対策（ユーザー入力）】\n（未入力）")
}

func TestBuild_Deterministic(t *testing.T) {
	payload := prompt.Payload{
		History: []report.HistoryEntry{{Date: "2024/5/1", Summary: "s", Detail: "d"}},
		LogText: "some log text here",
		Cause:   "cause",
	}
	b := defaultBuilder()
	p1, err := b.Build(prompt.ActionSuggestCountermeasure, payload)
	require.NoError(t, err)
	p2, err := b.Build(prompt.ActionSuggestCountermeasure, payload)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestBuild_UnknownAction(t *testing.T) {
	_, err := defaultBuilder().Build(prompt.Action("doSomethingElse"), prompt.Payload{})
	require.ErrorIs(t, err, prompt.ErrUnknownAction)
}

func TestPayload_Sanitized(t *testing.T) {
	p := prompt.Payload{
		LogText: "  <b>log</b> javascript:x  ",
		Cause:   "cause onload=y",
		History: []report.HistoryEntry{
			{Date: "<2024/5/1>", Person: "顧客", Summary: "late <delivery>", Detail: "ok"},
		},
	}
	s := p.Sanitized()

	assert.Equal(t, "blog/b x", s.LogText)
	assert.Equal(t, "cause y", s.Cause)
	assert.Equal(t, "2024/5/1", s.History[0].Date)
	assert.Equal(t, "late delivery", s.History[0].Summary)
	assert.Equal(t, "顧客", s.History[0].Person)

	// Original payload untouched.
	assert.Equal(t, "<2024/5/1>", p.History[0].Date)
}
