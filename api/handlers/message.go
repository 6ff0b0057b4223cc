package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/chatroom-api/api"
	"github.com/linesmerrill/chatroom-api/messaging"
	"github.com/linesmerrill/chatroom-api/models"
)

// Message exported for testing purposes
type Message struct {
	Router *messaging.Router
}

// CreateMessageHandler posts a message on behalf of the participant named in the User header
func (m Message) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "failed to decode request body", err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	msg, err := m.Router.Post(ctx, r.Header.Get(userHeader), req.To, req.Text, req.Type)
	if err != nil {
		writeError(w, "failed to post message", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// MessagesHandler returns the messages visible to the participant named in
// the User header, optionally limited to the last ?limit=N
func (m Message) MessagesHandler(w http.ResponseWriter, r *http.Request) {
	limit := messaging.ParseLimit(r.URL.Query().Get("limit"))
	user := r.Header.Get(userHeader)

	zap.S().Debugf("user: '%v', limit: %v", user, limit)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	messages, err := m.Router.ListVisible(ctx, user, limit)
	if err != nil {
		writeError(w, "failed to get messages", err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
