package services

import "errors"

var (
	// ErrForbidden is returned when a user touches a resource they do not own.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrVehicleExists      = errors.New("vehicle id already registered")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidStatus      = errors.New("invalid trip status")
	ErrTripImmutable      = errors.New("completed trips cannot be edited")
)
