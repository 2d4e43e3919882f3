package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// MsgRequestTimeout is the error sent when a request runs past its deadline.
const MsgRequestTimeout = "Request timed out"

// Timeout cancels the request context after d. A handler that gives up on
// the deadline without writing gets a 504 envelope.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			if !wrapped.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(wrapped, http.StatusGatewayTimeout, MsgRequestTimeout)
			}
		})
	}
}
