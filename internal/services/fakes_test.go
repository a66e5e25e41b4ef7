package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"voyago/internal/models"
	"voyago/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	for _, user := range r.users {
		if user.Phone == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user with phone %s: %w", phone, interfaces.ErrNotFound)
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	for key, value := range updates {
		switch key {
		case "name":
			user.Name = value.(string)
		case "two_wheelers":
			user.TwoWheelers = value.([]models.Vehicle)
		case "four_wheelers":
			user.FourWheelers = value.([]models.Vehicle)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

type fakeTripRepo struct {
	trips map[primitive.ObjectID]*models.Trip
	seq   int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[primitive.ObjectID]*models.Trip{}}
}

func (r *fakeTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	r.seq++
	trip.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	trip.UpdatedAt = trip.CreatedAt
	clone := *trip
	r.trips[trip.ID] = &clone
	return nil
}

func (r *fakeTripRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	clone := *trip
	return &clone, nil
}

func (r *fakeTripRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error) {
	trips := make([]*models.Trip, 0)
	for _, trip := range r.trips {
		if trip.UserID == userID {
			clone := *trip
			trips = append(trips, &clone)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

func (r *fakeTripRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	trip, ok := r.trips[id]
	if !ok {
		return fmt.Errorf("trip %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	for key, value := range updates {
		switch key {
		case "origin":
			trip.Origin = value.(string)
		case "destination":
			trip.Destination = value.(string)
		case "status":
			trip.Status = value.(models.TripStatus)
		case "stops":
			trip.Stops = value.([]models.Stop)
		case "distance_meters":
			trip.DistanceMeters = value.(float64)
		case "travelers":
			trip.Travelers = value.(int)
		}
	}
	trip.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTripRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.trips[id]; !ok {
		return fmt.Errorf("trip %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	delete(r.trips, id)
	return nil
}

type fakeSavedRouteRepo struct {
	routes map[primitive.ObjectID]*models.SavedRoute
}

func newFakeSavedRouteRepo() *fakeSavedRouteRepo {
	return &fakeSavedRouteRepo{routes: map[primitive.ObjectID]*models.SavedRoute{}}
}

func (r *fakeSavedRouteRepo) Create(ctx context.Context, route *models.SavedRoute) error {
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()
	clone := *route
	r.routes[route.ID] = &clone
	return nil
}

func (r *fakeSavedRouteRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SavedRoute, error) {
	route, ok := r.routes[id]
	if !ok {
		return nil, fmt.Errorf("saved route %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	clone := *route
	return &clone, nil
}

func (r *fakeSavedRouteRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SavedRoute, error) {
	routes := make([]*models.SavedRoute, 0)
	for _, route := range r.routes {
		if route.UserID == userID {
			clone := *route
			routes = append(routes, &clone)
		}
	}
	return routes, nil
}

func (r *fakeSavedRouteRepo) FindByKey(ctx context.Context, userID primitive.ObjectID, origin, destination string) (*models.SavedRoute, error) {
	for _, route := range r.routes {
		if route.UserID == userID && route.Origin == origin && route.Destination == destination {
			clone := *route
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("saved route %s -> %s: %w", origin, destination, interfaces.ErrNotFound)
}

func (r *fakeSavedRouteRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.routes[id]; !ok {
		return fmt.Errorf("saved route %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	delete(r.routes, id)
	return nil
}
