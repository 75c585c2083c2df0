package store

import (
	"context"
	"fmt"
	"time"

	"github.com/elowsky/screads/reads"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// insertBatchSize documents are buffered before each InsertMany.
const insertBatchSize = 500

const dialTimeout = 10 * time.Second

// Mongo is a Sink writing read documents to a MongoDB collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
	buf    []interface{}
}

// DialMongo connects to the server at uri and targets db.collection.
func DialMongo(uri, db, collection string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", uri, err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging %s: %w", uri, err)
	}
	return &Mongo{client: client, coll: client.Database(db).Collection(collection)}, nil
}

// EnsureIndexes creates the indexes the stats queries rely on. Safe to
// call on every run; existing indexes are left untouched.
func (s *Mongo) EnsureIndexes() error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "barcode", Value: 1}}},
		{Keys: bson.D{{Key: "library", Value: 1}, {Key: "read_num", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	_, err := s.coll.Indexes().CreateMany(context.Background(), models)
	if err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}
	return nil
}

func (s *Mongo) Emit(rec reads.Record) error {
	s.buf = append(s.buf, rec)
	if len(s.buf) >= insertBatchSize {
		return s.Flush()
	}
	return nil
}

// Flush writes all buffered documents.
func (s *Mongo) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	_, err := s.coll.InsertMany(context.Background(), s.buf)
	s.buf = s.buf[:0]
	if err != nil {
		return fmt.Errorf("inserting read documents: %w", err)
	}
	return nil
}

// Close flushes buffered documents and disconnects from the server.
func (s *Mongo) Close() error {
	err := s.Flush()
	if derr := s.client.Disconnect(context.Background()); err == nil {
		err = derr
	}
	return err
}
