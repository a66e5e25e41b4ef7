package services

import (
	"context"
	"fmt"

	"voyago/internal/models"
	"voyago/internal/repositories/interfaces"
	"voyago/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripService interface {
	Create(ctx context.Context, userID primitive.ObjectID, req *CreateTripRequest) (*models.Trip, error)
	Get(ctx context.Context, userID, tripID primitive.ObjectID) (*models.Trip, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error)
	Update(ctx context.Context, userID, tripID primitive.ObjectID, req *UpdateTripRequest) (*models.Trip, error)
	UpdateStatus(ctx context.Context, userID, tripID primitive.ObjectID, status models.TripStatus) (*models.Trip, error)
	Delete(ctx context.Context, userID, tripID primitive.ObjectID) error
}

type CreateTripRequest struct {
	Origin        string          `json:"origin" validate:"required"`
	Destination   string          `json:"destination" validate:"required"`
	StartDate     string          `json:"startDate"`
	StartTime     string          `json:"startTime"`
	Vehicle       string          `json:"vehicle"`
	CustomVehicle string          `json:"customVehicle"`
	Travelers     int             `json:"travelers" validate:"omitempty,min=1"`
	TripType      models.TripType `json:"tripType"`
	Stops         []models.Stop   `json:"stops"`
	// DistanceMeters is set when the trip is recorded at the end of live
	// navigation, zero for trips planned ahead of time.
	DistanceMeters float64 `json:"distanceMeters"`
}

// UpdateTripRequest carries the editable fields. Pointers distinguish
// "leave unchanged" from "set to zero value".
type UpdateTripRequest struct {
	Origin         *string          `json:"origin"`
	Destination    *string          `json:"destination"`
	StartDate      *string          `json:"startDate"`
	StartTime      *string          `json:"startTime"`
	Vehicle        *string          `json:"vehicle"`
	CustomVehicle  *string          `json:"customVehicle"`
	Travelers      *int             `json:"travelers"`
	TripType       *models.TripType `json:"tripType"`
	Stops          *[]models.Stop   `json:"stops"`
	DistanceMeters *float64         `json:"distanceMeters"`
}

type tripService struct {
	tripRepo interfaces.TripRepository
	logger   *logger.Logger
}

func NewTripService(tripRepo interfaces.TripRepository, log *logger.Logger) TripService {
	return &tripService{
		tripRepo: tripRepo,
		logger:   log,
	}
}

func (s *tripService) Create(ctx context.Context, userID primitive.ObjectID, req *CreateTripRequest) (*models.Trip, error) {
	tripType := req.TripType
	if tripType == "" {
		tripType = models.TripTypeOneWay
	}
	if !tripType.IsValid() {
		return nil, fmt.Errorf("unknown trip type %q", req.TripType)
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	stops := req.Stops
	if stops == nil {
		stops = []models.Stop{}
	}

	trip := &models.Trip{
		UserID:         userID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		StartTime:      req.StartTime,
		Vehicle:        req.Vehicle,
		CustomVehicle:  req.CustomVehicle,
		Travelers:      travelers,
		TripType:       tripType,
		Status:         models.TripStatusPlanned,
		Stops:          stops,
		DistanceMeters: req.DistanceMeters,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.logger.LogTripEvent(trip.ID, "trip_created", map[string]interface{}{
		"origin":      trip.Origin,
		"destination": trip.Destination,
	})

	return trip, nil
}

// Get loads the trip first and only then checks ownership, so a missing trip
// reports not-found rather than leaking the authorization decision.
func (s *tripService) Get(ctx context.Context, userID, tripID primitive.ObjectID) (*models.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, ErrForbidden
	}
	return trip, nil
}

func (s *tripService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error) {
	return s.tripRepo.ListByUser(ctx, userID)
}

func (s *tripService) Update(ctx context.Context, userID, tripID primitive.ObjectID, req *UpdateTripRequest) (*models.Trip, error) {
	trip, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status == models.TripStatusCompleted {
		return nil, ErrTripImmutable
	}

	updates := map[string]interface{}{}
	if req.Origin != nil {
		updates["origin"] = *req.Origin
		trip.Origin = *req.Origin
	}
	if req.Destination != nil {
		updates["destination"] = *req.Destination
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
		trip.StartDate = *req.StartDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
		trip.StartTime = *req.StartTime
	}
	if req.Vehicle != nil {
		updates["vehicle"] = *req.Vehicle
		trip.Vehicle = *req.Vehicle
	}
	if req.CustomVehicle != nil {
		updates["custom_vehicle"] = *req.CustomVehicle
		trip.CustomVehicle = *req.CustomVehicle
	}
	if req.Travelers != nil {
		updates["travelers"] = *req.Travelers
		trip.Travelers = *req.Travelers
	}
	if req.TripType != nil {
		if !req.TripType.IsValid() {
			return nil, fmt.Errorf("unknown trip type %q", *req.TripType)
		}
		updates["trip_type"] = *req.TripType
		trip.TripType = *req.TripType
	}
	if req.Stops != nil {
		updates["stops"] = *req.Stops
		trip.Stops = *req.Stops
	}
	if req.DistanceMeters != nil {
		updates["distance_meters"] = *req.DistanceMeters
		trip.DistanceMeters = *req.DistanceMeters
	}

	if len(updates) == 0 {
		return trip, nil
	}

	if err := s.tripRepo.Update(ctx, tripID, updates); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) UpdateStatus(ctx context.Context, userID, tripID primitive.ObjectID, status models.TripStatus) (*models.Trip, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	trip, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.Update(ctx, tripID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	trip.Status = status

	s.logger.LogTripEvent(tripID, "trip_status_changed", map[string]interface{}{
		"status": string(status),
	})

	return trip, nil
}

func (s *tripService) Delete(ctx context.Context, userID, tripID primitive.ObjectID) error {
	if _, err := s.Get(ctx, userID, tripID); err != nil {
		return err
	}

	if err := s.tripRepo.Delete(ctx, tripID); err != nil {
		return err
	}

	s.logger.LogTripEvent(tripID, "trip_deleted", nil)
	return nil
}
