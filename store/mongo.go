package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	HelpRequestOperator
	ChatOperator
	ForumOperator
	Watcher
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// newestFirst orders find results by creation time descending.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.M{"created_at": -1})
}

// logMalformedDocument records a document dropped from a query result.
// A broken document hides itself from lists; it does not fail them.
func logMalformedDocument(collection string, err error) {
	log.WithField("prefix", mongoLogPrefix).
		WithField("collection", collection).
		WithError(err).
		Warn("dropping malformed document from result")
}
