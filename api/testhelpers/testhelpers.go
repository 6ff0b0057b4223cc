package testhelpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linesmerrill/chatroom-api/databases/mocks"
)

// Store bundles the mocked participant and message collections
type Store struct {
	Participants *mocks.ParticipantDatabase
	Messages     *mocks.MessageDatabase
}

// NewStore returns a Store with fresh mocks
func NewStore() *Store {
	return &Store{
		Participants: &mocks.ParticipantDatabase{},
		Messages:     &mocks.MessageDatabase{},
	}
}

// JSONRequest builds a request with body encoded as JSON. A string body is
// sent verbatim so tests can post malformed payloads. user, when set, is sent
// in the User header.
func JSONRequest(t *testing.T, method, target string, body interface{}, user string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("User", user)
	}
	return req
}
