package databases

// go generate: mockery --name MessageDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/chatroom-api/models"
)

const messageName = "messages"

// MessageDatabase contains the methods to use with the message database.
// Messages are append-only, so there is no update or delete.
type MessageDatabase interface {
	Find(ctx context.Context, filter interface{}) ([]models.Message, error)
	InsertOne(ctx context.Context, message models.Message) error
	InsertMany(ctx context.Context, messages []models.Message) error
}

type messageDatabase struct {
	db DatabaseHelper
}

// NewMessageDatabase initializes a new instance of message database with the provided db connection
func NewMessageDatabase(db DatabaseHelper) MessageDatabase {
	return &messageDatabase{
		db: db,
	}
}

// Find returns the matching messages in insertion order
func (m *messageDatabase) Find(ctx context.Context, filter interface{}) ([]models.Message, error) {
	var messages []models.Message
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	curr, err := m.db.Collection(messageName).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &messages)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (m *messageDatabase) InsertOne(ctx context.Context, message models.Message) error {
	_, err := m.db.Collection(messageName).InsertOne(ctx, message)
	return err
}

// InsertMany writes messages in order. An empty batch is a no-op.
func (m *messageDatabase) InsertMany(ctx context.Context, messages []models.Message) error {
	if len(messages) == 0 {
		return nil
	}
	docs := make([]interface{}, len(messages))
	for i := range messages {
		docs[i] = messages[i]
	}
	_, err := m.db.Collection(messageName).InsertMany(ctx, docs)
	return err
}
