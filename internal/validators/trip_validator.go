package validators

import (
	"strconv"
	"strings"

	"voyago/internal/models"
	"voyago/internal/services"
)

func ValidateCreateTrip(req *services.CreateTripRequest) ValidationErrors {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	errors := ValidateStruct(req)

	if req.TripType != "" && !req.TripType.IsValid() {
		errors = append(errors, ValidationError{
			Field:   "tripType",
			Message: "must be one-way or round-trip",
		})
	}
	errors = append(errors, validateStops(req.Stops)...)
	return errors
}

func ValidateUpdateTrip(req *services.UpdateTripRequest) ValidationErrors {
	var errors ValidationErrors

	if req.Origin != nil && strings.TrimSpace(*req.Origin) == "" {
		errors = append(errors, ValidationError{Field: "origin", Message: "must not be empty"})
	}
	if req.Destination != nil && strings.TrimSpace(*req.Destination) == "" {
		errors = append(errors, ValidationError{Field: "destination", Message: "must not be empty"})
	}
	if req.Travelers != nil && *req.Travelers < 1 {
		errors = append(errors, ValidationError{Field: "travelers", Message: "must be at least 1"})
	}
	if req.TripType != nil && !req.TripType.IsValid() {
		errors = append(errors, ValidationError{Field: "tripType", Message: "must be one-way or round-trip"})
	}
	if req.Stops != nil {
		errors = append(errors, validateStops(*req.Stops)...)
	}
	return errors
}

func ValidateToggleRoute(req *services.ToggleRouteRequest) ValidationErrors {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	return ValidateStruct(req)
}

func validateStops(stops []models.Stop) ValidationErrors {
	var errors ValidationErrors
	for i, stop := range stops {
		lat := stop.Location.Latitude
		lng := stop.Location.Longitude
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			errors = append(errors, ValidationError{
				Field:   "stops",
				Message: "invalid coordinates at position " + strconv.Itoa(i),
			})
		}
	}
	return errors
}
