package api

import (
	"time"

	"github.com/gorilla/mux"
)

// Use installs the middleware stack shared by every route of r: request
// logging, then the request timeout. CORS wraps the whole router instead (see
// CORSMiddleware) because mux only runs middleware on a matched route.
func Use(r *mux.Router, requestTimeout time.Duration) {
	r.Use(LoggingMiddleware)
	if requestTimeout > 0 {
		r.Use(TimeoutMiddleware(requestTimeout))
	}
}
