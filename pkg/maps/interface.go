package maps

import "context"

// UnknownLocation is returned by ReverseGeocode when the provider cannot
// resolve an address. Callers may display it but must not treat it as a real
// address.
const UnknownLocation = "Unknown Location"

// DefaultSearchRadius is the nearby-search radius in meters when the caller
// does not specify one.
const DefaultSearchRadius = 5000

// Provider normalizes a third-party mapping backend. No operation returns an
// error: failures degrade to an empty slice, a nil result, or the
// UnknownLocation sentinel, so failure handling is uniform for every caller.
type Provider interface {
	GetPlacePredictions(ctx context.Context, input string) []Prediction
	SearchNearbyPlaces(ctx context.Context, keyword string, location *Location, radius uint) []Place
	GetPlaceDetails(ctx context.Context, placeID string) *PlaceDetails
	GetDirections(ctx context.Context, request *DirectionsRequest) *RouteResult
	ReverseGeocode(ctx context.Context, lat, lng float64) string
	CalculateDistance(lat1, lng1, lat2, lng2 float64) float64
}

type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Prediction is one autocomplete suggestion. Ephemeral; refreshed on every
// debounce cycle and never persisted.
type Prediction struct {
	Description   string `json:"description"`
	PlaceID       string `json:"place_id"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   float64  `json:"rating"`
	Geometry Location `json:"geometry"`
	Photos   []string `json:"photos,omitempty"` // provider photo references
}

type PlaceDetails struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Address  string   `json:"formatted_address"`
	Location Location `json:"geometry"`
	Rating   float64  `json:"rating"`
	Photos   []string `json:"photos,omitempty"`
}

// Endpoint is a route endpoint given either as free text or as coordinates.
type Endpoint struct {
	Text   string    `json:"text,omitempty"`
	Coords *Location `json:"coords,omitempty"`
}

func TextEndpoint(text string) Endpoint {
	return Endpoint{Text: text}
}

func CoordsEndpoint(lat, lng float64) Endpoint {
	return Endpoint{Coords: &Location{Latitude: lat, Longitude: lng}}
}

func (e Endpoint) IsZero() bool {
	return e.Text == "" && e.Coords == nil
}

// Waypoint is an intermediate point on a route. Order matters. Stopover
// distinguishes a physical stop from a shaping point.
type Waypoint struct {
	Location Location `json:"location"`
	Name     string   `json:"name,omitempty"`
	Stopover bool     `json:"stopover"`
}

type DirectionsRequest struct {
	Origin      Endpoint   `json:"origin"`
	Destination Endpoint   `json:"destination"`
	Waypoints   []Waypoint `json:"waypoints,omitempty"`
	Mode        string     `json:"mode,omitempty"` // driving, walking, bicycling, transit
}

// RouteResult is one computed route: a leg per stopover boundary, each leg an
// ordered sequence of turn-by-turn steps.
type RouteResult struct {
	Legs            []Leg   `json:"legs"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds int     `json:"duration_seconds"`
	Polyline        string  `json:"overview_polyline"`
	Summary         string  `json:"summary"`
}

type Leg struct {
	Steps           []Step  `json:"steps"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds int     `json:"duration_seconds"`
}

type Step struct {
	Instruction     string   `json:"instruction"`
	Maneuver        string   `json:"maneuver"`
	DistanceMeters  float64  `json:"distance_meters"`
	DurationSeconds int      `json:"duration_seconds"`
	EndLocation     Location `json:"end_location"`
}

// Steps flattens the route's legs into one ordered step sequence, the form
// the navigation step pointer walks.
func (r *RouteResult) Steps() []Step {
	if r == nil {
		return nil
	}
	var steps []Step
	for _, leg := range r.Legs {
		steps = append(steps, leg.Steps...)
	}
	return steps
}
