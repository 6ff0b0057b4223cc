package handlers

import (
	"net/http"

	"github.com/linesmerrill/chatroom-api/api"
	"github.com/linesmerrill/chatroom-api/models"
	"github.com/linesmerrill/chatroom-api/presence"
)

// Participant exported for testing purposes
type Participant struct {
	Presence *presence.Manager
}

// CreateParticipantHandler registers a participant and announces the join
func (p Participant) CreateParticipantHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ParticipantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "failed to decode request body", err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	participant, err := p.Presence.Register(ctx, req.Name)
	if err != nil {
		writeError(w, "failed to register participant", err)
		return
	}

	writeJSON(w, http.StatusCreated, participant)
}

// ParticipantsHandler returns every participant currently in the room
func (p Participant) ParticipantsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	participants, err := p.Presence.List(ctx)
	if err != nil {
		writeError(w, "failed to get participants", err)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}
