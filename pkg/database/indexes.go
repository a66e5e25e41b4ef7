package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Safe to run on
// every startup; CreateMany is a no-op for indexes that already exist.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ensureUserIndexes(ctx, db); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := ensureTripIndexes(ctx, db); err != nil {
		return fmt.Errorf("trips indexes: %w", err)
	}
	if err := ensureSavedRouteIndexes(ctx, db); err != nil {
		return fmt.Errorf("saved_routes indexes: %w", err)
	}

	return nil
}

func ensureUserIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	_, err := db.Collection("users").Indexes().CreateMany(ctx, indexes)
	return err
}

func ensureTripIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// Owner listing, newest first.
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}

	_, err := db.Collection("trips").Indexes().CreateMany(ctx, indexes)
	return err
}

func ensureSavedRouteIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// (origin, destination) is the toggle key within one user's set.
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "origin", Value: 1}, {Key: "destination", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection("saved_routes").Indexes().CreateMany(ctx, indexes)
	return err
}
