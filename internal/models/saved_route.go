package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedRoute is one bookmarked (origin, destination) pair. The pair is the
// de-duplication key for the toggle add/remove interaction.
type SavedRoute struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Origin      string             `json:"origin" bson:"origin" validate:"required"`
	Destination string             `json:"destination" bson:"destination" validate:"required"`
	StayName    string             `json:"stayName,omitempty" bson:"stay_name,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
