package handlers

import (
	"net/http"

	"github.com/linesmerrill/chatroom-api/api"
	"github.com/linesmerrill/chatroom-api/presence"
)

// Status exported for testing purposes
type Status struct {
	Presence *presence.Manager
}

// StatusHandler records a heartbeat for the participant named in the User header
func (s Status) StatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := s.Presence.Heartbeat(ctx, r.Header.Get(userHeader)); err != nil {
		writeError(w, "failed to update status", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
