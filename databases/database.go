package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/linesmerrill/chatroom-api/config"
)

// DatabaseHelper contains the collection and client to be used to access the methods
// defined below
type DatabaseHelper interface {
	Collection(name string) CollectionHelper
	Client() ClientHelper
}

// CollectionHelper contains all the methods defined for collections in this project
type CollectionHelper interface {
	FindOne(ctx context.Context, filter interface{}) SingleResultHelper
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (CursorHelper, error)
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)
	InsertMany(ctx context.Context, documents []interface{}) ([]interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CreateIndex(ctx context.Context, model mongo.IndexModel) (string, error)
}

// SingleResultHelper contains a single method to decode the result
type SingleResultHelper interface {
	Decode(v interface{}) error
}

// CursorHelper contains the methods to drain and release a cursor
type CursorHelper interface {
	All(ctx context.Context, results interface{}) error
	Close(ctx context.Context) error
}

// ClientHelper defined to help at client creation inside main.go
type ClientHelper interface {
	Database(string) DatabaseHelper
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
}

type mongoClient struct {
	cl *mongo.Client
}

type mongoDatabase struct {
	db *mongo.Database
}

type mongoCollection struct {
	coll *mongo.Collection
}

type mongoSingleResult struct {
	sr *mongo.SingleResult
}

type mongoCursor struct {
	cr *mongo.Cursor
}

// NewClient uses the values from the config and returns a mongo client.
// Every operation issued through the client is bounded by conf.QueryTimeout.
func NewClient(conf *config.Config) (ClientHelper, error) {
	opts := options.Client().
		ApplyURI(conf.URL).
		SetTimeout(conf.QueryTimeout).
		SetServerSelectionTimeout(conf.QueryTimeout)
	c, err := mongo.NewClient(opts)

	return &mongoClient{cl: c}, err
}

// NewDatabase uses the client from NewClient and sets the database name
func NewDatabase(conf *config.Config, client ClientHelper) DatabaseHelper {
	return client.Database(conf.DatabaseName)
}

func (mc *mongoClient) Database(dbName string) DatabaseHelper {
	db := mc.cl.Database(dbName)
	return &mongoDatabase{db: db}
}

// Connect opens the connection pool and pings the primary so that an
// unreachable server is reported at startup rather than on the first request.
func (mc *mongoClient) Connect(ctx context.Context) error {
	if err := mc.cl.Connect(ctx); err != nil {
		return err
	}
	return mc.Ping(ctx)
}

func (mc *mongoClient) Disconnect(ctx context.Context) error {
	return mc.cl.Disconnect(ctx)
}

func (mc *mongoClient) Ping(ctx context.Context) error {
	return mc.cl.Ping(ctx, readpref.Primary())
}

func (md *mongoDatabase) Collection(colName string) CollectionHelper {
	collection := md.db.Collection(colName)
	return &mongoCollection{coll: collection}
}

func (md *mongoDatabase) Client() ClientHelper {
	client := md.db.Client()
	return &mongoClient{cl: client}
}

func (mc *mongoCollection) FindOne(ctx context.Context, filter interface{}) SingleResultHelper {
	singleResult := mc.coll.FindOne(ctx, filter)
	return &mongoSingleResult{sr: singleResult}
}

func (mc *mongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (CursorHelper, error) {
	cursor, err := mc.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{cr: cursor}, nil
}

func (mc *mongoCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := mc.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (mc *mongoCollection) InsertMany(ctx context.Context, documents []interface{}) ([]interface{}, error) {
	res, err := mc.coll.InsertMany(ctx, documents)
	if err != nil {
		return nil, err
	}
	return res.InsertedIDs, nil
}

func (mc *mongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return mc.coll.UpdateOne(ctx, filter, update)
}

func (mc *mongoCollection) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := mc.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (mc *mongoCollection) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	res, err := mc.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (mc *mongoCollection) CreateIndex(ctx context.Context, model mongo.IndexModel) (string, error) {
	return mc.coll.Indexes().CreateOne(ctx, model)
}

func (sr *mongoSingleResult) Decode(v interface{}) error {
	return sr.sr.Decode(v)
}

func (cr *mongoCursor) All(ctx context.Context, results interface{}) error {
	return cr.cr.All(ctx, results)
}

func (cr *mongoCursor) Close(ctx context.Context) error {
	return cr.cr.Close(ctx)
}
