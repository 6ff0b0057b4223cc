package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/chatroom-api/databases"
	"github.com/linesmerrill/chatroom-api/databases/mocks"
	"github.com/linesmerrill/chatroom-api/models"
)

func TestMessageDatabase_Find(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	stored := []models.Message{
		{From: "alice", To: "Todos", Text: "entra na sala...", Type: models.MessageTypeStatus, Time: "10:00:00"},
		{From: "alice", To: "Todos", Text: "oi", Type: models.MessageTypePublic, Time: "10:00:01"},
	}

	cursorHelper.
		On("All", context.Background(), mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Message)
		*arg = stored
	})
	cursorHelper.On("Close", context.Background()).Return(nil)

	// the third argument is the sort option
	collectionHelper.
		On("Find", context.Background(), bson.M{}, mock.Anything).
		Return(cursorHelper, nil)
	dbHelper.On("Collection", "messages").Return(collectionHelper)

	messageDba := databases.NewMessageDatabase(dbHelper)
	messages, err := messageDba.Find(context.Background(), bson.M{})

	assert.NoError(t, err)
	assert.Equal(t, stored, messages)
}

func TestMessageDatabase_FindCursorError(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("All", context.Background(), mock.Anything).Return(errors.New("mocked-error"))
	cursorHelper.On("Close", context.Background()).Return(nil)
	collectionHelper.
		On("Find", context.Background(), bson.M{}, mock.Anything).
		Return(cursorHelper, nil)
	dbHelper.On("Collection", "messages").Return(collectionHelper)

	messageDba := databases.NewMessageDatabase(dbHelper)
	messages, err := messageDba.Find(context.Background(), bson.M{})

	assert.Nil(t, messages)
	assert.EqualError(t, err, "mocked-error")
}

func TestMessageDatabase_InsertOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	msg := models.Message{From: "alice", To: "bob", Text: "psst", Type: models.MessageTypePrivate, Time: "10:00:00"}
	collectionHelper.On("InsertOne", context.Background(), msg).Return("id", nil)
	dbHelper.On("Collection", "messages").Return(collectionHelper)

	messageDba := databases.NewMessageDatabase(dbHelper)

	assert.NoError(t, messageDba.InsertOne(context.Background(), msg))
	collectionHelper.AssertExpectations(t)
}

func TestMessageDatabase_InsertMany(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	batch := []models.Message{
		{From: "alice", To: "Todos", Text: "saiu da sala", Type: models.MessageTypeStatus, Time: "10:00:00"},
		{From: "bob", To: "Todos", Text: "saiu da sala", Type: models.MessageTypeStatus, Time: "10:00:00"},
	}
	collectionHelper.
		On("InsertMany", context.Background(), []interface{}{batch[0], batch[1]}).
		Return([]interface{}{"1", "2"}, nil)
	dbHelper.On("Collection", "messages").Return(collectionHelper)

	messageDba := databases.NewMessageDatabase(dbHelper)

	assert.NoError(t, messageDba.InsertMany(context.Background(), batch))
	collectionHelper.AssertNumberOfCalls(t, "InsertMany", 1)
}

func TestMessageDatabase_InsertManyEmptyBatch(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}

	messageDba := databases.NewMessageDatabase(dbHelper)

	assert.NoError(t, messageDba.InsertMany(context.Background(), nil))
	dbHelper.AssertNotCalled(t, "Collection", mock.Anything)
}
