package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect opens the client, verifies the connection and prepares the unique
// email index.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	store := &Store{
		client:   client,
		database: client.Database(database),
	}

	_, err = store.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) Products() *mongo.Collection {
	return s.database.Collection("products")
}

func (s *Store) Sales() *mongo.Collection {
	return s.database.Collection("sales")
}

func (s *Store) Users() *mongo.Collection {
	return s.database.Collection("users")
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
