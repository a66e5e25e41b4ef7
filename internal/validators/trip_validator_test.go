package validators

import (
	"testing"

	"voyago/internal/models"
	"voyago/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateTrip(t *testing.T) {
	req := &services.CreateTripRequest{Origin: "  Bengaluru  ", Destination: "Mysuru"}
	errors := ValidateCreateTrip(req)
	assert.False(t, errors.HasErrors())
	assert.Equal(t, "Bengaluru", req.Origin, "origin should be trimmed")

	errors = ValidateCreateTrip(&services.CreateTripRequest{Destination: "Mysuru"})
	assert.True(t, errors.HasErrors())

	errors = ValidateCreateTrip(&services.CreateTripRequest{
		Origin: "A", Destination: "B", TripType: models.TripType("bogus"),
	})
	assert.True(t, errors.HasErrors())
}

func TestValidateCreateTripStops(t *testing.T) {
	errors := ValidateCreateTrip(&services.CreateTripRequest{
		Origin: "A", Destination: "B",
		Stops: []models.Stop{
			{Location: models.GeoPoint{Latitude: 12.9, Longitude: 77.6}},
			{Location: models.GeoPoint{Latitude: 99.0, Longitude: 77.6}},
		},
	})
	assert.True(t, errors.HasErrors())
	assert.Contains(t, errors.ToMap()["stops"], "position 1")
}

func TestValidateUpdateTrip(t *testing.T) {
	empty := "  "
	travelers := 0
	errors := ValidateUpdateTrip(&services.UpdateTripRequest{
		Origin:    &empty,
		Travelers: &travelers,
	})
	assert.Len(t, errors, 2)

	valid := "Coorg"
	assert.False(t, ValidateUpdateTrip(&services.UpdateTripRequest{Destination: &valid}).HasErrors())
}

func TestValidateSignup(t *testing.T) {
	req := &services.RegisterRequest{Name: "Asha", Phone: "+91 98765 43210", Password: "Str0ngpass"}
	errors := ValidateSignup(req)
	assert.False(t, errors.HasErrors())
	assert.Equal(t, "+919876543210", req.Phone, "phone should be normalized")

	errors = ValidateSignup(&services.RegisterRequest{Name: "A", Phone: "abc", Password: "short"})
	assert.True(t, errors.HasErrors())
}

func TestValidateVehicleLists(t *testing.T) {
	errors := ValidateVehicleLists(
		[]models.Vehicle{
			{ID: "veh_1", RegistrationNumber: "KA01AB1234"},
			{ID: "veh_1", RegistrationNumber: "KA01AB5678"},
		},
		nil,
	)
	assert.True(t, errors.HasErrors())

	// Same id across the two collections is fine.
	errors = ValidateVehicleLists(
		[]models.Vehicle{{ID: "veh_1", RegistrationNumber: "KA01AB1234"}},
		[]models.Vehicle{{ID: "veh_1", RegistrationNumber: "KA01XY9999"}},
	)
	assert.False(t, errors.HasErrors())
}
