package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/yusuke-koga/claimgate/internal/api/response"
)

// Recovery converts a panic into the gateway's failure envelope. The stack
// goes to the log only; the caller sees a pre-classified message.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					"request_id", GetRequestID(r),
					"error", err,
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Error(w, http.StatusInternalServerError,
					"INTERNAL_ERROR", "An unexpected error occurred. Please retry.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
