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
	"github.com/linesmerrill/chatroom-api/models"
)

func TestMessage_CreateMessageHandler(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	store.Participants.On("FindOne", mock.Anything, bson.M{"name": "alice"}).Return(&models.Participant{Name: "alice"}, nil)
	store.Messages.On("InsertOne", mock.Anything, models.Message{
		From: "alice", To: "Todos", Text: "oi", Type: models.MessageTypePublic, Time: "13:45:09",
	}).Return(nil)

	m := handlers.Message{Router: router}
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr, testhelpers.JSONRequest(t, "POST", "/messages",
		map[string]string{"to": "Todos", "text": "oi", "type": "message"}, "alice"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"from":"alice","to":"Todos","text":"oi","type":"message","time":"13:45:09"}`, rr.Body.String())
}

func TestMessage_CreateMessageHandlerValidation(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	m := handlers.Message{Router: router}
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr, testhelpers.JSONRequest(t, "POST", "/messages",
		map[string]string{"to": "", "text": "oi", "type": "status"}, "alice"))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `["\"to\" is required", "\"type\" must be one of [message, private_message]"]`, rr.Body.String())
	store.Messages.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestMessage_CreateMessageHandlerMissingUser(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	m := handlers.Message{Router: router}
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr, testhelpers.JSONRequest(t, "POST", "/messages",
		map[string]string{"to": "Todos", "text": "oi", "type": "message"}, ""))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `["\"from\" is required"]`, rr.Body.String())
}

func TestMessage_CreateMessageHandlerUnregistered(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	store.Participants.On("FindOne", mock.Anything, bson.M{"name": "ghost"}).Return(nil, mongo.ErrNoDocuments)

	m := handlers.Message{Router: router}
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr, testhelpers.JSONRequest(t, "POST", "/messages",
		map[string]string{"to": "Todos", "text": "boo", "type": "message"}, "ghost"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMessage_CreateMessageHandlerStoreFailure(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	store.Participants.On("FindOne", mock.Anything, mock.Anything).Return(&models.Participant{Name: "alice"}, nil)
	store.Messages.On("InsertOne", mock.Anything, mock.Anything).Return(errors.New("mocked-error"))

	m := handlers.Message{Router: router}
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr, testhelpers.JSONRequest(t, "POST", "/messages",
		map[string]string{"to": "Todos", "text": "oi", "type": "message"}, "alice"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMessage_MessagesHandler(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	history := []models.Message{
		{From: "alice", To: "Todos", Text: "1", Type: models.MessageTypePublic, Time: "10:00:00"},
		{From: "alice", To: "bob", Text: "2", Type: models.MessageTypePrivate, Time: "10:00:01"},
		{From: "dave", To: "carol", Text: "3", Type: models.MessageTypePrivate, Time: "10:00:02"},
		{From: "carol", To: "Todos", Text: "4", Type: models.MessageTypePublic, Time: "10:00:03"},
	}
	store.Messages.On("Find", mock.Anything, bson.M{}).Return(history, nil)

	m := handlers.Message{Router: router}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"no limit", "/messages", `[
			{"from":"alice","to":"Todos","text":"1","type":"message","time":"10:00:00"},
			{"from":"alice","to":"bob","text":"2","type":"private_message","time":"10:00:01"},
			{"from":"carol","to":"Todos","text":"4","type":"message","time":"10:00:03"}]`},
		{"tail limit", "/messages?limit=2", `[
			{"from":"alice","to":"bob","text":"2","type":"private_message","time":"10:00:01"},
			{"from":"carol","to":"Todos","text":"4","type":"message","time":"10:00:03"}]`},
		{"unparsable limit", "/messages?limit=abc", `[
			{"from":"alice","to":"Todos","text":"1","type":"message","time":"10:00:00"},
			{"from":"alice","to":"bob","text":"2","type":"private_message","time":"10:00:01"},
			{"from":"carol","to":"Todos","text":"4","type":"message","time":"10:00:03"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			req.Header.Set("User", "bob")

			rr := httptest.NewRecorder()
			http.HandlerFunc(m.MessagesHandler).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.want, rr.Body.String())
		})
	}
}

func TestMessage_MessagesHandlerStoreFailure(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	store.Messages.On("Find", mock.Anything, bson.M{}).Return(nil, errors.New("mocked-error"))

	m := handlers.Message{Router: router}
	req := httptest.NewRequest("GET", "/messages", nil)
	req.Header.Set("User", "bob")
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.MessagesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMessage_CreateMessageHandlerShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{"text is a number", `{"to":"Todos","text":5,"type":"message"}`, `["\"text\" must be a string"]`},
		{"empty body", nil, `["\"to\" is required", "\"text\" is required", "\"type\" is required"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testhelpers.NewStore()
			_, router := newServices(store)

			m := handlers.Message{Router: router}
			rr := httptest.NewRecorder()
			http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr,
				testhelpers.JSONRequest(t, "POST", "/messages", tt.body, "alice"))

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.JSONEq(t, tt.want, rr.Body.String())
			store.Messages.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
		})
	}
}

func TestMessage_CreateMessageHandlerMalformedJSON(t *testing.T) {
	store := testhelpers.NewStore()
	_, router := newServices(store)

	m := handlers.Message{Router: router}
	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMessageHandler).ServeHTTP(rr,
		testhelpers.JSONRequest(t, "POST", "/messages", `{"to":"Todos",`, "alice"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
