package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// slowRequest is the duration above which a request is logged as a warning
const slowRequest = 1 * time.Second

// LoggingMiddleware tags each request with an id and logs its outcome
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		startTime := time.Now()
		requestID := uuid.New().String()
		w.Header().Set(RequestIDHeader, requestID)

		// Wrap response writer to capture status code
		wrappedWriter := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrappedWriter, r)

		duration := time.Since(startTime)
		fields := []interface{}{
			"requestId", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"user", r.Header.Get("User"),
			"status", wrappedWriter.statusCode,
			"duration", duration,
		}
		if duration > slowRequest {
			zap.S().Warnw("Slow request detected", fields...)
			return
		}
		zap.S().Infow("request", fields...)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
