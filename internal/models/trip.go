package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripStatus string
type TripType string

const (
	TripStatusPlanned   TripStatus = "planned"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"

	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
)

func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusPlanned, TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

func (t TripType) IsValid() bool {
	return t == TripTypeOneWay || t == TripTypeRoundTrip
}

type GeoPoint struct {
	Latitude  float64 `json:"lat" bson:"lat"`
	Longitude float64 `json:"lng" bson:"lng"`
}

// Stop is one intermediate halt on a trip. Sequence order is visit order;
// reordering is not supported.
type Stop struct {
	Location GeoPoint `json:"location" bson:"location"`
	Name     string   `json:"name,omitempty" bson:"name,omitempty"`
	Stopover bool     `json:"stopover" bson:"stopover"`
}

type Trip struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	Origin         string             `json:"origin" bson:"origin" validate:"required"`
	Destination    string             `json:"destination" bson:"destination" validate:"required"`
	StartDate      string             `json:"startDate" bson:"start_date"`
	StartTime      string             `json:"startTime" bson:"start_time"`
	Vehicle        string             `json:"vehicle" bson:"vehicle"`
	CustomVehicle  string             `json:"customVehicle,omitempty" bson:"custom_vehicle,omitempty"`
	Travelers      int                `json:"travelers" bson:"travelers"`
	TripType       TripType           `json:"tripType" bson:"trip_type"`
	Status         TripStatus         `json:"status" bson:"status"`
	Stops          []Stop             `json:"stops" bson:"stops"`
	DistanceMeters float64            `json:"distanceMeters,omitempty" bson:"distance_meters,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
