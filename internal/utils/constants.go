package utils

import "time"

// Application constants
const (
	AppName    = "Voyago"
	AppVersion = "1.0.0"

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8
	PasswordMaxLength  = 128

	// Planner
	DebounceSettle     = 300 * time.Millisecond
	NearbySearchRadius = 5000 // meters

	// Navigation
	StepProximityMeters = 40.0
	MaxWaypoints        = 10
)

// HTTP status strings
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrUserNotFound       = "user not found"
	ErrUserExists         = "user already exists"
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrValidationFailed   = "validation failed"
	ErrTripNotFound       = "trip not found"
	ErrRouteNotFound      = "saved route not found"
)

// Cache keys
const (
	CacheKeyUserPrefix        = "user:"
	CacheKeyTripsPrefix       = "trips:"
	CacheKeyClientStatePrefix = "client_state:"

	CacheUserTTL  = 15 * time.Minute
	CacheTripsTTL = 5 * time.Minute
)
