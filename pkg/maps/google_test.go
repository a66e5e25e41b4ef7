package maps

import (
	"context"
	"errors"
	"testing"
	"time"

	"voyago/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmaps "googlemaps.github.io/maps"
)

type fakeGoogleAPI struct {
	autocompleteCalls int
	autocompleteResp  gmaps.AutocompleteResponse
	autocompleteErr   error

	nearbyCalls int
	nearbyReq   *gmaps.NearbySearchRequest
	nearbyResp  gmaps.PlacesSearchResponse
	nearbyErr   error

	textResp gmaps.PlacesSearchResponse
	textErr  error

	detailsResp gmaps.PlaceDetailsResult
	detailsErr  error

	directionsReq  *gmaps.DirectionsRequest
	directionsResp []gmaps.Route
	directionsErr  error

	geocodeResp []gmaps.GeocodingResult
	geocodeErr  error

	matrixResp *gmaps.DistanceMatrixResponse
	matrixErr  error
}

func (f *fakeGoogleAPI) PlaceAutocomplete(ctx context.Context, r *gmaps.PlaceAutocompleteRequest) (gmaps.AutocompleteResponse, error) {
	f.autocompleteCalls++
	return f.autocompleteResp, f.autocompleteErr
}

func (f *fakeGoogleAPI) TextSearch(ctx context.Context, r *gmaps.TextSearchRequest) (gmaps.PlacesSearchResponse, error) {
	return f.textResp, f.textErr
}

func (f *fakeGoogleAPI) NearbySearch(ctx context.Context, r *gmaps.NearbySearchRequest) (gmaps.PlacesSearchResponse, error) {
	f.nearbyCalls++
	f.nearbyReq = r
	return f.nearbyResp, f.nearbyErr
}

func (f *fakeGoogleAPI) PlaceDetails(ctx context.Context, r *gmaps.PlaceDetailsRequest) (gmaps.PlaceDetailsResult, error) {
	return f.detailsResp, f.detailsErr
}

func (f *fakeGoogleAPI) Directions(ctx context.Context, r *gmaps.DirectionsRequest) ([]gmaps.Route, []gmaps.GeocodedWaypoint, error) {
	f.directionsReq = r
	return f.directionsResp, nil, f.directionsErr
}

func (f *fakeGoogleAPI) ReverseGeocode(ctx context.Context, r *gmaps.GeocodingRequest) ([]gmaps.GeocodingResult, error) {
	return f.geocodeResp, f.geocodeErr
}

func (f *fakeGoogleAPI) DistanceMatrix(ctx context.Context, r *gmaps.DistanceMatrixRequest) (*gmaps.DistanceMatrixResponse, error) {
	return f.matrixResp, f.matrixErr
}

func newTestProvider(api googleAPI) *GoogleProvider {
	return &GoogleProvider{api: api, log: logger.NewNop()}
}

func TestGetPlacePredictionsShortInputSkipsNetwork(t *testing.T) {
	api := &fakeGoogleAPI{}
	provider := newTestProvider(api)

	for _, input := range []string{"", "a", "ab", "  ab  "} {
		predictions := provider.GetPlacePredictions(context.Background(), input)
		assert.Empty(t, predictions)
	}

	assert.Zero(t, api.autocompleteCalls, "short inputs must not reach the provider")
}

func TestGetPlacePredictionsMapsResults(t *testing.T) {
	api := &fakeGoogleAPI{
		autocompleteResp: gmaps.AutocompleteResponse{
			Predictions: []gmaps.AutocompletePrediction{
				{
					Description: "Lonavala, Maharashtra, India",
					PlaceID:     "place-1",
					StructuredFormatting: gmaps.AutocompleteStructuredFormatting{
						MainText:      "Lonavala",
						SecondaryText: "Maharashtra, India",
					},
				},
			},
		},
	}
	provider := newTestProvider(api)

	predictions := provider.GetPlacePredictions(context.Background(), "Lonavala")
	require.Len(t, predictions, 1)
	assert.Equal(t, "Lonavala", predictions[0].MainText)
	assert.Equal(t, "place-1", predictions[0].PlaceID)
	assert.Equal(t, "Maharashtra, India", predictions[0].SecondaryText)
	assert.Equal(t, 1, api.autocompleteCalls)
}

func TestGetPlacePredictionsFailureReturnsEmpty(t *testing.T) {
	api := &fakeGoogleAPI{autocompleteErr: errors.New("quota exceeded")}
	provider := newTestProvider(api)

	predictions := provider.GetPlacePredictions(context.Background(), "Lonavala")
	assert.NotNil(t, predictions)
	assert.Empty(t, predictions)
}

func TestSearchNearbyPlacesUsesLocationAndDefaults(t *testing.T) {
	api := &fakeGoogleAPI{
		nearbyResp: gmaps.PlacesSearchResponse{
			Results: []gmaps.PlacesSearchResult{
				{
					PlaceID:  "hotel-1",
					Name:     "Hilltop Stay",
					Vicinity: "Old Mumbai-Pune Hwy",
					Rating:   4.2,
					Geometry: gmaps.AddressGeometry{Location: gmaps.LatLng{Lat: 18.75, Lng: 73.40}},
				},
				{
					PlaceID:          "hotel-2",
					Name:             "Valley Resort",
					FormattedAddress: "Tungarli, Lonavala",
					Geometry:         gmaps.AddressGeometry{Location: gmaps.LatLng{Lat: 18.76, Lng: 73.41}},
				},
			},
		},
	}
	provider := newTestProvider(api)

	places := provider.SearchNearbyPlaces(context.Background(), "hotels", &Location{Latitude: 18.75, Longitude: 73.40}, 0)
	require.Len(t, places, 2)
	assert.Equal(t, "Old Mumbai-Pune Hwy", places[0].Vicinity)
	// FormattedAddress backfills a missing vicinity.
	assert.Equal(t, "Tungarli, Lonavala", places[1].Vicinity)
	require.NotNil(t, api.nearbyReq)
	assert.Equal(t, uint(DefaultSearchRadius), api.nearbyReq.Radius)
	assert.Equal(t, "hotels", api.nearbyReq.Keyword)
}

func TestSearchNearbyPlacesFailureReturnsEmpty(t *testing.T) {
	api := &fakeGoogleAPI{nearbyErr: errors.New("unavailable")}
	provider := newTestProvider(api)

	places := provider.SearchNearbyPlaces(context.Background(), "fuel", &Location{Latitude: 1, Longitude: 1}, 2000)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestGetPlaceDetailsFailureReturnsNil(t *testing.T) {
	api := &fakeGoogleAPI{detailsErr: errors.New("not found")}
	provider := newTestProvider(api)

	assert.Nil(t, provider.GetPlaceDetails(context.Background(), "missing"))
}

func TestGetDirectionsFlattensLegs(t *testing.T) {
	api := &fakeGoogleAPI{
		directionsResp: []gmaps.Route{
			{
				Summary: "NH 48",
				Legs: []*gmaps.Leg{
					{
						Distance: gmaps.Distance{Meters: 1000},
						Duration: 120 * time.Second,
						Steps: []*gmaps.Step{
							{
								HTMLInstructions: "Head north",
								Distance:         gmaps.Distance{Meters: 400},
								Duration:         60 * time.Second,
								EndLocation:      gmaps.LatLng{Lat: 18.76, Lng: 73.40},
							},
							{
								HTMLInstructions: "Turn <b>right</b> onto NH 48",
								Distance:         gmaps.Distance{Meters: 600},
								Duration:         60 * time.Second,
								EndLocation:      gmaps.LatLng{Lat: 18.77, Lng: 73.41},
							},
						},
					},
					{
						Distance: gmaps.Distance{Meters: 500},
						Duration: 60 * time.Second,
						Steps: []*gmaps.Step{
							{
								HTMLInstructions: "Arrive",
								Distance:         gmaps.Distance{Meters: 500},
								Duration:         60 * time.Second,
								EndLocation:      gmaps.LatLng{Lat: 18.78, Lng: 73.42},
							},
						},
					},
				},
			},
		},
	}
	provider := newTestProvider(api)

	route := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      TextEndpoint("Mumbai"),
		Destination: TextEndpoint("Lonavala"),
	})
	require.NotNil(t, route)
	assert.Len(t, route.Legs, 2)
	assert.Len(t, route.Steps(), 3)
	assert.InDelta(t, 1500, route.DistanceMeters, 1e-9)
	assert.Equal(t, 180, route.DurationSeconds)
	assert.Equal(t, "NH 48", route.Summary)

	steps := route.Steps()
	assert.Equal(t, "depart", steps[0].Maneuver)
	assert.Equal(t, "turn-right", steps[1].Maneuver)
	assert.Equal(t, "arrive", steps[2].Maneuver)
}

func TestInferManeuver(t *testing.T) {
	cases := map[string]string{
		"Turn <b>left</b> onto <b>MG Road</b>":     "turn-left",
		"Turn sharp left onto Residency Rd":        "turn-sharp-left",
		"Slight <b>right</b> toward NH 48":         "turn-slight-right",
		"Make a U-turn at Silk Board":              "uturn",
		"At the roundabout, take the 2nd exit":     "roundabout",
		"Merge onto NH 48":                         "merge",
		"Keep <b>right</b> at the fork":            "keep-right",
		"Continue onto Old Mumbai-Pune Hwy":        "straight",
		"Head <b>north</b> on Hosur Rd":            "depart",
		"Arrive at Lonavala":                       "arrive",
		"Board the train toward Pune":              "",
	}

	for instruction, want := range cases {
		assert.Equal(t, want, inferManeuver(instruction), instruction)
	}
}

func TestGetDirectionsWaypointEncoding(t *testing.T) {
	api := &fakeGoogleAPI{directionsResp: []gmaps.Route{{}}}
	provider := newTestProvider(api)

	provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      CoordsEndpoint(19.07, 72.87),
		Destination: TextEndpoint("Lonavala"),
		Waypoints: []Waypoint{
			{Location: Location{Latitude: 18.9, Longitude: 73.0}, Stopover: true},
			{Location: Location{Latitude: 18.8, Longitude: 73.2}, Stopover: false},
		},
	})

	require.NotNil(t, api.directionsReq)
	require.Len(t, api.directionsReq.Waypoints, 2)
	assert.NotContains(t, api.directionsReq.Waypoints[0], "via:")
	assert.Contains(t, api.directionsReq.Waypoints[1], "via:")
}

func TestGetDirectionsFailureReturnsNil(t *testing.T) {
	provider := newTestProvider(&fakeGoogleAPI{directionsErr: errors.New("no route")})

	route := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      TextEndpoint("A"),
		Destination: TextEndpoint("B"),
	})
	assert.Nil(t, route)

	// Missing endpoints never reach the provider.
	assert.Nil(t, provider.GetDirections(context.Background(), &DirectionsRequest{}))
	assert.Nil(t, provider.GetDirections(context.Background(), nil))
}

func TestReverseGeocodeSentinel(t *testing.T) {
	provider := newTestProvider(&fakeGoogleAPI{geocodeErr: errors.New("boom")})
	assert.Equal(t, UnknownLocation, provider.ReverseGeocode(context.Background(), 18.75, 73.40))

	provider = newTestProvider(&fakeGoogleAPI{})
	assert.Equal(t, UnknownLocation, provider.ReverseGeocode(context.Background(), 18.75, 73.40))

	provider = newTestProvider(&fakeGoogleAPI{
		geocodeResp: []gmaps.GeocodingResult{{FormattedAddress: "Lonavala, Maharashtra"}},
	})
	assert.Equal(t, "Lonavala, Maharashtra", provider.ReverseGeocode(context.Background(), 18.75, 73.40))
}

func TestDrivingDistance(t *testing.T) {
	provider := newTestProvider(&fakeGoogleAPI{
		matrixResp: &gmaps.DistanceMatrixResponse{
			Rows: []gmaps.DistanceMatrixElementsRow{
				{Elements: []*gmaps.DistanceMatrixElement{{Status: "OK", Distance: gmaps.Distance{Meters: 83000}}}},
			},
		},
	})

	meters, ok := provider.DrivingDistance(context.Background(), Location{Latitude: 19.07, Longitude: 72.87}, Location{Latitude: 18.75, Longitude: 73.40})
	require.True(t, ok)
	assert.InDelta(t, 83000, meters, 1e-9)

	provider = newTestProvider(&fakeGoogleAPI{
		matrixResp: &gmaps.DistanceMatrixResponse{
			Rows: []gmaps.DistanceMatrixElementsRow{
				{Elements: []*gmaps.DistanceMatrixElement{{Status: "ZERO_RESULTS"}}},
			},
		},
	})
	_, ok = provider.DrivingDistance(context.Background(), Location{}, Location{})
	assert.False(t, ok)
}
