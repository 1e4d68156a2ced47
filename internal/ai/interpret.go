package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON locates the JSON document embedded in the model's output.
// Models are instructed to emit only JSON, but routinely wrap it in prose,
// so the span is taken from the first opening bracket to the last closing
// bracket of the same family. The span itself is not parsed here.
func ExtractJSON(text string) (string, error) {
	start := strings.IndexAny(text, "[{")
	if start < 0 {
		return "", ErrNoJSONFound
	}

	closer := byte(']')
	if text[start] == '{' {
		closer = '}'
	}
	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return "", ErrNoJSONFound
	}

	return text[start : end+1], nil
}

// DecodeJSON extracts the embedded JSON span and strictly unmarshals it
// into v. A span that exists but does not parse into v is reported as
// ErrUnparsableJSON, distinct from ErrNoJSONFound.
func DecodeJSON(text string, v any) error {
	span, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableJSON, err)
	}
	return nil
}
