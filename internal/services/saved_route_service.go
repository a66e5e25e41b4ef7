package services

import (
	"context"
	"errors"

	"voyago/internal/models"
	"voyago/internal/repositories/interfaces"
	"voyago/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedRouteService interface {
	// Toggle bookmarks the (origin, destination) pair, or removes the
	// bookmark if one already exists. It reports whether the route is
	// saved after the call.
	Toggle(ctx context.Context, userID primitive.ObjectID, req *ToggleRouteRequest) (*ToggleRouteResult, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]*models.SavedRoute, error)
	Delete(ctx context.Context, userID, routeID primitive.ObjectID) error
}

type ToggleRouteRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	StayName    string `json:"stayName"`
}

type ToggleRouteResult struct {
	Saved bool               `json:"saved"`
	Route *models.SavedRoute `json:"route,omitempty"`
}

type savedRouteService struct {
	routeRepo interfaces.SavedRouteRepository
	logger    *logger.Logger
}

func NewSavedRouteService(routeRepo interfaces.SavedRouteRepository, log *logger.Logger) SavedRouteService {
	return &savedRouteService{
		routeRepo: routeRepo,
		logger:    log,
	}
}

func (s *savedRouteService) Toggle(ctx context.Context, userID primitive.ObjectID, req *ToggleRouteRequest) (*ToggleRouteResult, error) {
	existing, err := s.routeRepo.FindByKey(ctx, userID, req.Origin, req.Destination)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.routeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		s.logger.LogUserAction(userID, "route_unsaved", map[string]interface{}{
			"origin":      req.Origin,
			"destination": req.Destination,
		})
		return &ToggleRouteResult{Saved: false}, nil
	}

	route := &models.SavedRoute{
		UserID:      userID,
		Origin:      req.Origin,
		Destination: req.Destination,
		StayName:    req.StayName,
	}
	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(userID, "route_saved", map[string]interface{}{
		"origin":      req.Origin,
		"destination": req.Destination,
	})

	return &ToggleRouteResult{Saved: true, Route: route}, nil
}

func (s *savedRouteService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.SavedRoute, error) {
	return s.routeRepo.ListByUser(ctx, userID)
}

func (s *savedRouteService) Delete(ctx context.Context, userID, routeID primitive.ObjectID) error {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		return err
	}
	if route.UserID != userID {
		return ErrForbidden
	}
	return s.routeRepo.Delete(ctx, routeID)
}
