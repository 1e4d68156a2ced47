package middleware

import (
	"net/http"
	"strings"
)

// UnknownIdentity is the shared bucket for callers whose address cannot be
// derived from forwarding headers. Callers behind the same proxy without
// such headers all land here and share one rate-limit budget. That is a
// known precision limitation of header-derived identity, not something the
// limiter tries to compensate for.
const UnknownIdentity = "unknown"

// ClientIdentity derives the rate-limiting key from the request: the first
// entry of X-Forwarded-For, else X-Real-IP, else UnknownIdentity.
func ClientIdentity(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}
	return UnknownIdentity
}
