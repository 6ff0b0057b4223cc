package databases

// go generate: mockery --name ParticipantDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/chatroom-api/models"
)

const participantName = "participants"

// ParticipantDatabase contains the methods to use with the participant database
type ParticipantDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Participant, error)
	Find(ctx context.Context, filter interface{}) ([]models.Participant, error)
	InsertOne(ctx context.Context, participant models.Participant) error
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type participantDatabase struct {
	db DatabaseHelper
}

// NewParticipantDatabase initializes a new instance of participant database with the provided db connection
func NewParticipantDatabase(db DatabaseHelper) ParticipantDatabase {
	return &participantDatabase{
		db: db,
	}
}

// FindOne returns mongo.ErrNoDocuments when nothing matches filter
func (p *participantDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Participant, error) {
	participant := &models.Participant{}
	err := p.db.Collection(participantName).FindOne(ctx, filter).Decode(&participant)
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func (p *participantDatabase) Find(ctx context.Context, filter interface{}) ([]models.Participant, error) {
	var participants []models.Participant
	curr, err := p.db.Collection(participantName).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &participants)
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (p *participantDatabase) InsertOne(ctx context.Context, participant models.Participant) error {
	_, err := p.db.Collection(participantName).InsertOne(ctx, participant)
	return err
}

func (p *participantDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return p.db.Collection(participantName).UpdateOne(ctx, filter, update)
}

// DeleteOne returns the number of removed documents; removing nothing is not an error
func (p *participantDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	return p.db.Collection(participantName).DeleteOne(ctx, filter)
}

func (p *participantDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return p.db.Collection(participantName).DeleteMany(ctx, filter)
}

// EnsureIndexes creates the unique index on name that serializes concurrent registrations
func (p *participantDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := p.db.Collection(participantName).CreateIndex(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
