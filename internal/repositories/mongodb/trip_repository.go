package mongodb

import (
	"context"
	"fmt"
	"time"

	"voyago/internal/models"
	"voyago/internal/repositories/interfaces"
	"voyago/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tripRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewTripRepository(db *mongo.Database, cache CacheService) interfaces.TripRepository {
	return &tripRepository{
		collection: db.Collection("trips"),
		cache:      cache,
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	r.invalidateListCache(ctx, trip.UserID.Hex())

	return nil
}

func (r *tripRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trip %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error) {
	// Try cache first
	if trips := r.listFromCache(ctx, userID.Hex()); trips != nil {
		return trips, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer cursor.Close(ctx)

	trips := make([]*models.Trip, 0)
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	r.cacheList(ctx, userID.Hex(), trips)

	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	var trip models.Trip
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("trip %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return fmt.Errorf("failed to update trip: %w", err)
	}

	r.invalidateListCache(ctx, trip.UserID.Hex())

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	var trip models.Trip
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("trip %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	r.invalidateListCache(ctx, trip.UserID.Hex())

	return nil
}

// Cache helpers
func (r *tripRepository) cacheList(ctx context.Context, userID string, trips []*models.Trip) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, utils.CacheKeyTripsPrefix+userID, trips, utils.CacheTripsTTL)
}

func (r *tripRepository) listFromCache(ctx context.Context, userID string) []*models.Trip {
	if r.cache == nil {
		return nil
	}
	var trips []*models.Trip
	if err := r.cache.Get(ctx, utils.CacheKeyTripsPrefix+userID, &trips); err != nil {
		return nil
	}
	return trips
}

func (r *tripRepository) invalidateListCache(ctx context.Context, userID string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, utils.CacheKeyTripsPrefix+userID)
}
