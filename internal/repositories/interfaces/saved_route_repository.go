package interfaces

import (
	"context"

	"voyago/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedRouteRepository interface {
	Create(ctx context.Context, route *models.SavedRoute) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SavedRoute, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SavedRoute, error)
	// FindByKey looks a route up by its (origin, destination) toggle key.
	FindByKey(ctx context.Context, userID primitive.ObjectID, origin, destination string) (*models.SavedRoute, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
