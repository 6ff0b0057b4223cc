package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const timeoutBody = `{"error": "Request timeout", "message": "The request took too long to process"}`

// TimeoutMiddleware adds request timeout to prevent long-running requests.
// A request still running when timeout elapses gets a 503 with timeoutBody.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		logged := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Context().Err() == context.DeadlineExceeded {
				zap.S().Warnw("Request timeout",
					"path", r.URL.Path,
					"method", r.Method,
					"timeout", timeout)
			}
		})
		return http.TimeoutHandler(logged, timeout, timeoutBody)
	}
}
