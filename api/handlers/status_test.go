package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/chatroom-api/api/handlers"
	"github.com/linesmerrill/chatroom-api/api/testhelpers"
)

func TestStatus_StatusHandler(t *testing.T) {
	store := testhelpers.NewStore()
	manager, _ := newServices(store)

	store.Participants.On("UpdateOne", mock.Anything, bson.M{"name": "alice"},
		bson.M{"$max": bson.M{"lastStatus": fixedNow.UnixMilli()}}).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	s := handlers.Status{Presence: manager}
	req := httptest.NewRequest("POST", "/status", nil)
	req.Header.Set("User", "alice")
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	store.Participants.AssertExpectations(t)
}

func TestStatus_StatusHandlerUnregistered(t *testing.T) {
	store := testhelpers.NewStore()
	manager, _ := newServices(store)

	store.Participants.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{}, nil)

	s := handlers.Status{Presence: manager}
	req := httptest.NewRequest("POST", "/status", nil)
	req.Header.Set("User", "ghost")
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStatus_StatusHandlerStoreFailure(t *testing.T) {
	store := testhelpers.NewStore()
	manager, _ := newServices(store)

	store.Participants.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("mocked-error"))

	s := handlers.Status{Presence: manager}
	req := httptest.NewRequest("POST", "/status", nil)
	req.Header.Set("User", "alice")
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
