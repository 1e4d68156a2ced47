package handler

import (
	"errors"
	"net/http"

	"github.com/yusuke-koga/claimgate/internal/ai"
	"github.com/yusuke-koga/claimgate/internal/prompt"
)

// classify translates any processing failure into the (status, code,
// message) triple the caller sees. First match wins; the order runs from
// the most specific kinds to the catch-all. It always produces a result and
// never exposes internal detail beyond the short messages below — raw
// upstream text stays in the logs.
func classify(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, prompt.ErrLogTooShort):
		return http.StatusBadRequest, "LOG_TEXT_TOO_SHORT",
			"Log text is too short: " + trimCause(err, prompt.ErrLogTooShort)
	case errors.Is(err, prompt.ErrLogTooLong):
		return http.StatusBadRequest, "LOG_TEXT_TOO_LONG",
			"Log text is too long: " + trimCause(err, prompt.ErrLogTooLong)
	case errors.Is(err, prompt.ErrUnknownAction):
		return http.StatusBadRequest, "INVALID_REQUEST", "Unknown action"

	case errors.Is(err, ai.ErrInferenceTimeout):
		return http.StatusGatewayTimeout, "AI_INFERENCE_TIMEOUT",
			"The AI did not answer in time. Please retry."
	case errors.Is(err, ai.ErrInvalidAPIKey):
		return http.StatusUnauthorized, "INVALID_API_KEY",
			"The configured API key was rejected by the AI service"
	case errors.Is(err, ai.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "UPSTREAM_QUOTA_EXCEEDED",
			"The AI service quota is exhausted. Please retry later."
	case errors.Is(err, ai.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE",
			"The AI service could not be reached. Please retry later."
	case errors.Is(err, ai.ErrMalformedResponse):
		return http.StatusInternalServerError, "MALFORMED_AI_RESPONSE",
			"The AI response could not be parsed. Please retry."

	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR",
			"An unexpected error occurred. Please retry."
	}
}

// trimCause renders the detail a validation error carries beyond its
// sentinel prefix, e.g. "5 chars, minimum 10". Validation messages are
// produced by this codebase, so echoing them is safe.
func trimCause(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
