// Package sanitize strips characters and patterns that are unsafe to embed
// in a generated prompt or to redisplay in the client.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// Clean removes angle brackets, javascript: protocol prefixes and inline
// event-handler attribute patterns, then trims surrounding whitespace.
// Stripping repeats until a fixed point so removals cannot reassemble a
// banned pattern from the surrounding text. Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	for {
		next := strip(s)
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
}

func strip(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsProtocolRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	return s
}
