package mongodb

import (
	"context"
	"fmt"
	"time"

	"voyago/internal/models"
	"voyago/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type savedRouteRepository struct {
	collection *mongo.Collection
}

func NewSavedRouteRepository(db *mongo.Database) interfaces.SavedRouteRepository {
	return &savedRouteRepository{
		collection: db.Collection("saved_routes"),
	}
}

func (r *savedRouteRepository) Create(ctx context.Context, route *models.SavedRoute) error {
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, route)
	if err != nil {
		return fmt.Errorf("failed to create saved route: %w", err)
	}

	return nil
}

func (r *savedRouteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SavedRoute, error) {
	var route models.SavedRoute
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("saved route %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get saved route: %w", err)
	}

	return &route, nil
}

func (r *savedRouteRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SavedRoute, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved routes: %w", err)
	}
	defer cursor.Close(ctx)

	routes := make([]*models.SavedRoute, 0)
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode saved routes: %w", err)
	}

	return routes, nil
}

func (r *savedRouteRepository) FindByKey(ctx context.Context, userID primitive.ObjectID, origin, destination string) (*models.SavedRoute, error) {
	var route models.SavedRoute
	err := r.collection.FindOne(ctx, bson.M{
		"user_id":     userID,
		"origin":      origin,
		"destination": destination,
	}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("saved route %s -> %s: %w", origin, destination, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find saved route: %w", err)
	}

	return &route, nil
}

func (r *savedRouteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete saved route: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("saved route %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}
