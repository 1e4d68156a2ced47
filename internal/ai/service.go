package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/yusuke-koga/claimgate/internal/prompt"
	"github.com/yusuke-koga/claimgate/pkg/report"
)

// Service runs one gateway action end to end: sanitize, build the prompt,
// invoke the model under the hard timeout, interpret the response. It holds
// no per-request state; every failure is terminal for the request and
// nothing is retried.
type Service struct {
	provider Provider
	builder  prompt.Builder
	timeout  time.Duration
}

// NewService creates a Service calling provider with the given per-request
// timeout.
func NewService(provider Provider, builder prompt.Builder, timeout time.Duration) *Service {
	return &Service{provider: provider, builder: builder, timeout: timeout}
}

// Process executes action against the model and returns the action's result:
// raw text for the text-shaped actions, []report.HistoryEntry for summarize,
// report.VisualSheet for generateVisualSheet.
func (s *Service) Process(ctx context.Context, action prompt.Action, payload prompt.Payload) (any, error) {
	built, err := s.builder.Build(action, payload.Sanitized())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := s.generate(ctx, built.Text)
	if err != nil {
		return nil, err
	}
	slog.Debug("model responded",
		"action", string(action),
		"provider", s.provider.Name(),
		"duration_ms", time.Since(start).Milliseconds(),
		"response_chars", utf8.RuneCountInString(text),
	)

	if built.Shape == prompt.ShapeText {
		return text, nil
	}

	switch action {
	case prompt.ActionSummarize:
		var history []report.HistoryEntry
		if err := DecodeJSON(text, &history); err != nil {
			return nil, err
		}
		return history, nil
	case prompt.ActionGenerateVisualSheet:
		var sheet report.VisualSheet
		if err := DecodeJSON(text, &sheet); err != nil {
			return nil, err
		}
		return sheet, nil
	default:
		return nil, fmt.Errorf("%w: json shape for %q", prompt.ErrUnknownAction, action)
	}
}

// generate races the upstream call against the timeout. The call runs in
// its own goroutine with a buffered channel: if the deadline wins, the late
// result is discarded when it eventually arrives. Cancellation via ctx is
// advisory; the transport may keep consuming resources after we have
// already answered.
func (s *Service) generate(ctx context.Context, promptText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, err := s.provider.Generate(ctx, promptText)
		ch <- outcome{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrInferenceTimeout
		}
		return "", ctx.Err()
	case out := <-ch:
		if out.err != nil {
			if errors.Is(out.err, context.DeadlineExceeded) {
				return "", ErrInferenceTimeout
			}
			return "", out.err
		}
		return out.text, nil
	}
}

// Truncate shortens s to at most maxBytes without splitting UTF-8 runes.
// Used to cap upstream error detail before it is echoed anywhere.
func Truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
