package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/chatroom-api/models"
)

func TestParticipant(t *testing.T) {
	assert.NoError(t, Participant(models.ParticipantRequest{Name: "alice"}))
}

func TestParticipantEmptyName(t *testing.T) {
	err := Participant(models.ParticipantRequest{})

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{`"name" is required`}, vErr.Details)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		req  models.MessageRequest
	}{
		{"public", models.MessageRequest{From: "alice", To: "Todos", Text: "oi", Type: models.MessageTypePublic}},
		{"private", models.MessageRequest{From: "alice", To: "bob", Text: "psst", Type: models.MessageTypePrivate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Message(tt.req))
		})
	}
}

func TestMessageCollectsEveryFailure(t *testing.T) {
	err := Message(models.MessageRequest{Type: "shout"})

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{
		`"from" is required`,
		`"to" is required`,
		`"text" is required`,
		`"type" must be one of [message, private_message]`,
	}, vErr.Details)
}

func TestMessageRejectsStatusType(t *testing.T) {
	err := Message(models.MessageRequest{From: "alice", To: "Todos", Text: "joined", Type: models.MessageTypeStatus})

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{`"type" must be one of [message, private_message]`}, vErr.Details)
}
