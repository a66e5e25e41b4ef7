package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required,min=2,max=50"`
	Phone        string             `json:"phone" bson:"phone" validate:"required,phone"`
	Password     string             `json:"-" bson:"password"`
	TwoWheelers  []Vehicle          `json:"twoWheelers" bson:"two_wheelers"`
	FourWheelers []Vehicle          `json:"fourWheelers" bson:"four_wheelers"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// Vehicle is one registered vehicle. IDs are unique within each of the
// owner's two collections.
type Vehicle struct {
	ID                 string `json:"id" bson:"id" validate:"required"`
	RegistrationNumber string `json:"registrationNumber" bson:"registration_number" validate:"required"`
}

// HasVehicleID reports whether id is already used in the given collection.
func HasVehicleID(vehicles []Vehicle, id string) bool {
	for _, v := range vehicles {
		if v.ID == id {
			return true
		}
	}
	return false
}

// Sanitized returns a copy safe to return to clients.
func (u *User) Sanitized() *User {
	clone := *u
	clone.Password = ""
	return &clone
}
