package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyago/pkg/geo"
	"voyago/pkg/logger"

	"googlemaps.github.io/maps"
)

// minPredictionInput is the autocomplete short-circuit: anything shorter
// returns an empty slice without touching the network.
const minPredictionInput = 3

// googleAPI is the slice of the Google Maps client the provider uses. Tests
// substitute a fake; *maps.Client satisfies it.
type googleAPI interface {
	PlaceAutocomplete(ctx context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error)
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
}

type GoogleProvider struct {
	api googleAPI
	log *logger.Logger
}

func NewGoogleProvider(apiKey string, log *logger.Logger) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleProvider{api: client, log: log}, nil
}

// GetPlacePredictions maps provider autocomplete results to normalized
// predictions. Inputs shorter than three characters short-circuit to an empty
// slice; provider failures also yield an empty slice.
func (g *GoogleProvider) GetPlacePredictions(ctx context.Context, input string) []Prediction {
	if len(strings.TrimSpace(input)) < minPredictionInput {
		return []Prediction{}
	}

	start := time.Now()
	resp, err := g.api.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: input,
	})
	g.log.LogProviderCall("place_autocomplete", time.Since(start), err)
	if err != nil {
		return []Prediction{}
	}

	predictions := make([]Prediction, len(resp.Predictions))
	for i, p := range resp.Predictions {
		predictions[i] = Prediction{
			Description:   p.Description,
			PlaceID:       p.PlaceID,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		}
	}

	return predictions
}

// SearchNearbyPlaces runs a nearby search around location, or a text search
// when no location is given. Callers cannot distinguish "no results" from
// "error"; the distinction is logged for diagnostics only.
func (g *GoogleProvider) SearchNearbyPlaces(ctx context.Context, keyword string, location *Location, radius uint) []Place {
	if radius == 0 {
		radius = DefaultSearchRadius
	}

	var (
		results []maps.PlacesSearchResult
		err     error
	)

	start := time.Now()
	if location != nil {
		var resp maps.PlacesSearchResponse
		resp, err = g.api.NearbySearch(ctx, &maps.NearbySearchRequest{
			Location: &maps.LatLng{Lat: location.Latitude, Lng: location.Longitude},
			Radius:   radius,
			Keyword:  keyword,
		})
		results = resp.Results
		g.log.LogProviderCall("nearby_search", time.Since(start), err)
	} else {
		var resp maps.PlacesSearchResponse
		resp, err = g.api.TextSearch(ctx, &maps.TextSearchRequest{
			Query:  keyword,
			Radius: radius,
		})
		results = resp.Results
		g.log.LogProviderCall("text_search", time.Since(start), err)
	}
	if err != nil {
		return []Place{}
	}

	places := make([]Place, len(results))
	for i, r := range results {
		vicinity := r.Vicinity
		if vicinity == "" {
			vicinity = r.FormattedAddress
		}
		places[i] = Place{
			ID:       r.PlaceID,
			Name:     r.Name,
			Vicinity: vicinity,
			Rating:   float64(r.Rating),
			Geometry: Location{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Photos: photoReferences(r.Photos),
		}
	}

	return places
}

// GetPlaceDetails returns the enriched place, or nil if the lookup fails or
// the place does not exist.
func (g *GoogleProvider) GetPlaceDetails(ctx context.Context, placeID string) *PlaceDetails {
	start := time.Now()
	resp, err := g.api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskPlaceID,
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskGeometry,
			maps.PlaceDetailsFieldMaskPhotos,
		},
	})
	g.log.LogProviderCall("place_details", time.Since(start), err)
	if err != nil {
		return nil
	}

	return &PlaceDetails{
		PlaceID: resp.PlaceID,
		Name:    resp.Name,
		Address: resp.FormattedAddress,
		Location: Location{
			Latitude:  resp.Geometry.Location.Lat,
			Longitude: resp.Geometry.Location.Lng,
		},
		Rating: float64(resp.Rating),
		Photos: photoReferences(resp.Photos),
	}
}

// GetDirections resolves a route through the ordered waypoints, or nil on
// failure. Non-stopover waypoints are passed as shaping points.
func (g *GoogleProvider) GetDirections(ctx context.Context, request *DirectionsRequest) *RouteResult {
	if request == nil || request.Origin.IsZero() || request.Destination.IsZero() {
		return nil
	}

	mode := request.Mode
	if mode == "" {
		mode = "driving"
	}

	req := &maps.DirectionsRequest{
		Origin:      endpointString(request.Origin),
		Destination: endpointString(request.Destination),
		Mode:        maps.Mode(mode),
	}

	if len(request.Waypoints) > 0 {
		waypoints := make([]string, len(request.Waypoints))
		for i, wp := range request.Waypoints {
			waypoints[i] = waypointString(wp)
		}
		req.Waypoints = waypoints
	}

	start := time.Now()
	routes, _, err := g.api.Directions(ctx, req)
	g.log.LogProviderCall("directions", time.Since(start), err)
	if err != nil || len(routes) == 0 {
		return nil
	}

	route := routes[0]
	result := &RouteResult{
		Summary:  route.Summary,
		Polyline: route.OverviewPolyline.Points,
	}

	for _, leg := range route.Legs {
		steps := make([]Step, len(leg.Steps))
		for i, step := range leg.Steps {
			steps[i] = Step{
				Instruction:     step.HTMLInstructions,
				Maneuver:        inferManeuver(step.HTMLInstructions),
				DistanceMeters:  float64(step.Distance.Meters),
				DurationSeconds: int(step.Duration.Seconds()),
				EndLocation: Location{
					Latitude:  step.EndLocation.Lat,
					Longitude: step.EndLocation.Lng,
				},
			}
		}

		result.Legs = append(result.Legs, Leg{
			Steps:           steps,
			DistanceMeters:  float64(leg.Distance.Meters),
			DurationSeconds: int(leg.Duration.Seconds()),
		})
		result.DistanceMeters += float64(leg.Distance.Meters)
		result.DurationSeconds += int(leg.Duration.Seconds())
	}

	return result
}

// ReverseGeocode returns a display address for the coordinates, or the
// UnknownLocation sentinel when resolution fails.
func (g *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	start := time.Now()
	results, err := g.api.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	g.log.LogProviderCall("reverse_geocode", time.Since(start), err)
	if err != nil || len(results) == 0 {
		return UnknownLocation
	}

	return results[0].FormattedAddress
}

// CalculateDistance is pure great-circle math; no provider call involved.
func (g *GoogleProvider) CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.Distance(lat1, lng1, lat2, lng2)
}

// DrivingDistance asks the distance-matrix service for the road distance in
// meters between two points. The second return is false when the provider
// cannot answer; callers fall back to great-circle distance.
func (g *GoogleProvider) DrivingDistance(ctx context.Context, origin, destination Location) (float64, bool) {
	start := time.Now()
	resp, err := g.api.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude)},
		Destinations: []string{fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude)},
		Mode:         maps.TravelModeDriving,
	})
	g.log.LogProviderCall("distance_matrix", time.Since(start), err)
	if err != nil || resp == nil || len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, false
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, false
	}

	return float64(element.Distance.Meters), true
}

func endpointString(e Endpoint) string {
	if e.Coords != nil {
		return fmt.Sprintf("%f,%f", e.Coords.Latitude, e.Coords.Longitude)
	}
	return e.Text
}

func waypointString(wp Waypoint) string {
	s := fmt.Sprintf("%f,%f", wp.Location.Latitude, wp.Location.Longitude)
	if !wp.Stopover {
		return "via:" + s
	}
	return s
}

// The Directions payload carries no maneuver field, so the normalized
// maneuver is inferred from the instruction text. Longer prefixes first:
// "turn sharp left" must win over "turn left".
var maneuverPrefixes = []struct {
	prefix   string
	maneuver string
}{
	{"turn sharp left", "turn-sharp-left"},
	{"turn sharp right", "turn-sharp-right"},
	{"turn slight left", "turn-slight-left"},
	{"turn slight right", "turn-slight-right"},
	{"turn left", "turn-left"},
	{"turn right", "turn-right"},
	{"slight left", "turn-slight-left"},
	{"slight right", "turn-slight-right"},
	{"make a u-turn", "uturn"},
	{"keep left", "keep-left"},
	{"keep right", "keep-right"},
	{"merge", "merge"},
	{"take the ramp", "ramp"},
	{"take the exit", "ramp"},
	{"at the roundabout", "roundabout"},
	{"continue", "straight"},
	{"head", "depart"},
	{"arrive", "arrive"},
}

func inferManeuver(instruction string) string {
	text := strings.ToLower(strings.TrimSpace(stripHTMLTags(instruction)))
	for _, m := range maneuverPrefixes {
		if strings.HasPrefix(text, m.prefix) {
			return m.maneuver
		}
	}
	return ""
}

func stripHTMLTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func photoReferences(photos []maps.Photo) []string {
	if len(photos) == 0 {
		return nil
	}
	refs := make([]string, len(photos))
	for i, p := range photos {
		refs[i] = p.PhotoReference
	}
	return refs
}
