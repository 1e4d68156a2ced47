package ai

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAPIKey       = errors.New("upstream rejected the api key")
	ErrQuotaExceeded       = errors.New("upstream quota exceeded")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInferenceTimeout    = errors.New("ai inference timeout")

	// ErrMalformedResponse covers every way the model's output can fail to
	// match the negotiated shape. The wrapped variants stay distinct so
	// logs can tell "no JSON at all" from "JSON that would not parse";
	// both classify the same at the boundary.
	ErrMalformedResponse = errors.New("malformed model response")
	ErrNoJSONFound       = fmt.Errorf("%w: no json found", ErrMalformedResponse)
	ErrUnparsableJSON    = fmt.Errorf("%w: parse error", ErrMalformedResponse)
	ErrEmptyResponse     = fmt.Errorf("%w: empty response", ErrMalformedResponse)
)
