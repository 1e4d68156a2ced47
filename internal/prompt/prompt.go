// Package prompt maps a gateway action and its payload to the exact prompt
// text sent upstream, and declares which response shape the model was
// instructed to produce. Template wording and field order are part of the
// contract with the model: the instructions tell it precisely what to emit,
// and the interpreter depends on that. Treat the templates as versioned
// fixtures, not incidental strings.
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yusuke-koga/claimgate/internal/sanitize"
	"github.com/yusuke-koga/claimgate/pkg/report"
)

// Action identifies one of the four gateway operations.
type Action string

const (
	ActionSummarize             Action = "summarize"
	ActionSuggestCause          Action = "suggestCause"
	ActionSuggestCountermeasure Action = "suggestCountermeasure"
	ActionGenerateVisualSheet   Action = "generateVisualSheet"
)

// ParseAction validates an action tag from the wire.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionSummarize, ActionSuggestCause, ActionSuggestCountermeasure, ActionGenerateVisualSheet:
		return Action(s), true
	default:
		return "", false
	}
}

// Shape declares how the model's textual output is to be interpreted.
type Shape string

const (
	ShapeText Shape = "text"
	ShapeJSON Shape = "json"
)

// Payload is the union of fields a gateway request may carry. Each action
// reads only the fields relevant to it; absent fields render as documented
// placeholders, never as empty interpolations.
type Payload struct {
	LogText        string
	History        []report.HistoryEntry
	Cause          string
	Countermeasure string
}

// Sanitized returns a copy of the payload with every free-text field run
// through sanitize.Clean.
func (p Payload) Sanitized() Payload {
	out := Payload{
		LogText:        sanitize.Clean(p.LogText),
		Cause:          sanitize.Clean(p.Cause),
		Countermeasure: sanitize.Clean(p.Countermeasure),
	}
	if p.History != nil {
		out.History = make([]report.HistoryEntry, len(p.History))
		for i, h := range p.History {
			out.History[i] = report.HistoryEntry{
				Date:    sanitize.Clean(h.Date),
				Person:  sanitize.Clean(h.Person),
				Summary: sanitize.Clean(h.Summary),
				Detail:  sanitize.Clean(h.Detail),
			}
		}
	}
	return out
}

// Prompt is the built prompt text plus the response shape negotiated in it.
type Prompt struct {
	Text  string
	Shape Shape
}

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrLogTooShort   = errors.New("log text too short")
	ErrLogTooLong    = errors.New("log text too long")
)

// Rendered when the corresponding payload field is absent. The model is
// told explicitly that a section has no data rather than being handed an
// empty section.
const (
	placeholderNoHistory  = "経緯データなし"
	placeholderNotEntered = "（未入力）"
	placeholderNone       = "（なし）"
)

// Default bounds for the summarize action's log text, in characters.
const (
	DefaultMinLogChars = 10
	DefaultMaxLogChars = 50000
)

// Builder builds prompts. The zero value is not usable; use NewBuilder.
type Builder struct {
	minLogChars int
	maxLogChars int
}

// NewBuilder creates a Builder with the given summarize log-text bounds.
// Non-positive bounds fall back to the defaults.
func NewBuilder(minLogChars, maxLogChars int) Builder {
	if minLogChars <= 0 {
		minLogChars = DefaultMinLogChars
	}
	if maxLogChars <= 0 {
		maxLogChars = DefaultMaxLogChars
	}
	return Builder{minLogChars: minLogChars, maxLogChars: maxLogChars}
}

// Build maps (action, payload) to the prompt for that action. The payload
// must already be sanitized; Build is deterministic given its inputs.
// Summarize enforces the log-text length bounds; the other actions always
// render, substituting placeholders for absent fields.
func (b Builder) Build(action Action, p Payload) (Prompt, error) {
	switch action {
	case ActionSummarize:
		n := utf8.RuneCountInString(p.LogText)
		if n < b.minLogChars {
			return Prompt{}, fmt.Errorf("%w: %d chars, minimum %d", ErrLogTooShort, n, b.minLogChars)
		}
		if n > b.maxLogChars {
			return Prompt{}, fmt.Errorf("%w: %d chars, maximum %d", ErrLogTooLong, n, b.maxLogChars)
		}
		return Prompt{
			Text:  fmt.Sprintf(summarizeTemplate, p.LogText),
			Shape: ShapeJSON,
		}, nil

	case ActionSuggestCause:
		return Prompt{
			Text: fmt.Sprintf(suggestCauseTemplate,
				historyLines(p.History, true),
				orPlaceholder(p.LogText, placeholderNone)),
			Shape: ShapeText,
		}, nil

	case ActionSuggestCountermeasure:
		return Prompt{
			Text: fmt.Sprintf(suggestCountermeasureTemplate,
				historyLines(p.History, false),
				orPlaceholder(p.Cause, placeholderNotEntered),
				orPlaceholder(p.LogText, placeholderNone)),
			Shape: ShapeText,
		}, nil

	case ActionGenerateVisualSheet:
		return Prompt{
			Text: fmt.Sprintf(visualSheetTemplate,
				historyLines(p.History, true),
				orPlaceholder(p.Cause, placeholderNotEntered),
				orPlaceholder(p.Countermeasure, placeholderNotEntered),
				orPlaceholder(p.LogText, placeholderNone)),
			Shape: ShapeJSON,
		}, nil

	default:
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// historyLines serializes history entries one per line as "date: summary"
// or, with detail, "date: summary - detail".
func historyLines(history []report.HistoryEntry, withDetail bool) string {
	if len(history) == 0 {
		return placeholderNoHistory
	}
	lines := make([]string, len(history))
	for i, h := range history {
		if withDetail {
			lines[i] = fmt.Sprintf("%s: %s - %s", h.Date, h.Summary, h.Detail)
		} else {
			lines[i] = fmt.Sprintf("%s: %s", h.Date, h.Summary)
		}
	}
	return strings.Join(lines, "\n")
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
