package navigation

import (
	"context"
	"errors"
	"sort"
	"sync"

	"voyago/internal/config"
	"voyago/internal/models"
	"voyago/internal/services"
	"voyago/internal/utils"
	"voyago/pkg/logger"
	"voyago/pkg/maps"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrRouteUnavailable = errors.New("route could not be computed")
	ErrNotTracking      = errors.New("navigation is not active")
	ErrAlreadyTracking  = errors.New("navigation is already active")
	ErrTooManyStops     = errors.New("stop limit reached")
)

// ProgressSink receives live navigation progress. Implemented by the
// websocket hub; nil disables publishing.
type ProgressSink interface {
	PublishPosition(tripID string, lat, lng float64, stepIndex int)
	PublishStep(tripID string, stepIndex int, instruction string)
	PublishTripEnded(tripID string)
}

// TripSaver persists the finished trip. Satisfied by services.TripService.
type TripSaver interface {
	Create(ctx context.Context, userID primitive.ObjectID, req *services.CreateTripRequest) (*models.Trip, error)
	UpdateStatus(ctx context.Context, userID, tripID primitive.ObjectID, status models.TripStatus) (*models.Trip, error)
}

// StopSuggestion is one nearby-search result annotated with its distance
// from the live position.
type StopSuggestion struct {
	Place          maps.Place `json:"place"`
	DistanceMeters float64    `json:"distance_meters"`
}

// Tracker runs one live navigation session: it holds the active route,
// consumes position updates one at a time, advances the turn-by-turn step
// pointer, and finalizes the session into a persisted trip.
type Tracker struct {
	provider      maps.Provider
	saver         TripSaver
	sink          ProgressSink
	logger        *logger.Logger
	stepProximity float64
	searchRadius  uint

	mu          sync.Mutex
	active      bool
	liveID      string
	userID      primitive.ObjectID
	details     models.TripDetails
	origin      maps.Endpoint
	destination maps.Endpoint
	waypoints   []maps.Waypoint
	route       *maps.RouteResult
	steps       []maps.Step
	stepIndex   int
	position    *maps.Location
	traveled    float64
	autoCenter  bool
}

// NewTracker builds a disarmed tracker. A nil config falls back to the
// built-in proximity and radius defaults.
func NewTracker(provider maps.Provider, saver TripSaver, sink ProgressSink, log *logger.Logger, cfg *config.PlannerConfig) *Tracker {
	proximity := utils.StepProximityMeters
	radius := uint(utils.NearbySearchRadius)
	if cfg != nil {
		if cfg.StepProximity > 0 {
			proximity = cfg.StepProximity
		}
		if cfg.SearchRadius > 0 {
			radius = cfg.SearchRadius
		}
	}

	return &Tracker{
		provider:      provider,
		saver:         saver,
		sink:          sink,
		logger:        log,
		stepProximity: proximity,
		searchRadius:  radius,
	}
}

// Start computes the initial route and arms the tracker. The live session id
// identifies the trip to progress watchers before anything is persisted.
func (t *Tracker) Start(ctx context.Context, userID primitive.ObjectID, details models.TripDetails, origin, destination maps.Endpoint) error {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return ErrAlreadyTracking
	}
	t.mu.Unlock()

	route := t.provider.GetDirections(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        details.Mode,
	})
	if route == nil {
		return ErrRouteUnavailable
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = true
	t.liveID = uuid.NewString()
	t.userID = userID
	t.details = details
	t.origin = origin
	t.destination = destination
	t.waypoints = nil
	t.route = route
	t.steps = route.Steps()
	t.stepIndex = 0
	t.position = nil
	t.traveled = 0
	t.autoCenter = true

	t.logger.WithField("live_id", t.liveID).Info("Navigation started")
	return nil
}

// Run consumes position updates until the context is cancelled or the
// source closes. Updates are handled strictly one at a time.
func (t *Tracker) Run(ctx context.Context, positions <-chan maps.Location) {
	for {
		select {
		case <-ctx.Done():
			return
		case position, ok := <-positions:
			if !ok {
				return
			}
			t.HandlePosition(position)
		}
	}
}

// HandlePosition processes one position update: it accumulates traveled
// distance, advances the step pointer when the current step's end is within
// the proximity threshold, and publishes progress. The pointer never moves
// backward and never advances by more than one per update; position updates
// never trigger a route request.
func (t *Tracker) HandlePosition(position maps.Location) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}

	if t.position != nil {
		t.traveled += t.provider.CalculateDistance(
			t.position.Latitude, t.position.Longitude,
			position.Latitude, position.Longitude,
		)
	}
	t.position = &position

	advanced := false
	var instruction string
	if t.stepIndex < len(t.steps)-1 {
		end := t.steps[t.stepIndex].EndLocation
		distance := t.provider.CalculateDistance(
			position.Latitude, position.Longitude,
			end.Latitude, end.Longitude,
		)
		if distance < t.stepProximity {
			t.stepIndex++
			advanced = true
			instruction = t.steps[t.stepIndex].Instruction
		}
	}

	liveID := t.liveID
	stepIndex := t.stepIndex
	t.mu.Unlock()

	if t.sink == nil {
		return
	}
	t.sink.PublishPosition(liveID, position.Latitude, position.Longitude, stepIndex)
	if advanced {
		t.sink.PublishStep(liveID, stepIndex, instruction)
	}
}

// SetDestination replaces the destination and recomputes the route.
func (t *Tracker) SetDestination(ctx context.Context, destination maps.Endpoint) error {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return ErrNotTracking
	}
	t.destination = destination
	t.mu.Unlock()

	return t.reroute(ctx)
}

// SetOrigin replaces the origin and recomputes the route.
func (t *Tracker) SetOrigin(ctx context.Context, origin maps.Endpoint) error {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return ErrNotTracking
	}
	t.origin = origin
	t.mu.Unlock()

	return t.reroute(ctx)
}

// SearchStops finds places of the given category near the live position,
// annotated with distance from it and sorted nearest first.
func (t *Tracker) SearchStops(ctx context.Context, category string) ([]StopSuggestion, error) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return nil, ErrNotTracking
	}
	position := t.position
	t.mu.Unlock()

	if position == nil {
		return nil, ErrNotTracking
	}

	places := t.provider.SearchNearbyPlaces(ctx, category, position, t.searchRadius)

	suggestions := make([]StopSuggestion, 0, len(places))
	for _, place := range places {
		suggestions = append(suggestions, StopSuggestion{
			Place: place,
			DistanceMeters: t.provider.CalculateDistance(
				position.Latitude, position.Longitude,
				place.Geometry.Latitude, place.Geometry.Longitude,
			),
		})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].DistanceMeters < suggestions[j].DistanceMeters
	})
	return suggestions, nil
}

// AddStop appends one stopover waypoint and recomputes the route. Waypoints
// are append-only; there is no per-stop removal.
func (t *Tracker) AddStop(ctx context.Context, place maps.Place) error {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return ErrNotTracking
	}
	if len(t.waypoints) >= utils.MaxWaypoints {
		t.mu.Unlock()
		return ErrTooManyStops
	}
	t.waypoints = append(t.waypoints, maps.Waypoint{
		Location: place.Geometry,
		Name:     place.Name,
		Stopover: true,
	})
	t.mu.Unlock()

	return t.reroute(ctx)
}

// ClearStops removes every waypoint at once and recomputes the route.
func (t *Tracker) ClearStops(ctx context.Context) error {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return ErrNotTracking
	}
	if len(t.waypoints) == 0 {
		t.mu.Unlock()
		return nil
	}
	t.waypoints = nil
	t.mu.Unlock()

	return t.reroute(ctx)
}

func (t *Tracker) reroute(ctx context.Context) error {
	t.mu.Lock()
	request := &maps.DirectionsRequest{
		Origin:      t.origin,
		Destination: t.destination,
		Waypoints:   append([]maps.Waypoint(nil), t.waypoints...),
		Mode:        t.details.Mode,
	}
	t.mu.Unlock()

	route := t.provider.GetDirections(ctx, request)
	if route == nil {
		return ErrRouteUnavailable
	}

	t.mu.Lock()
	t.route = route
	t.steps = route.Steps()
	t.stepIndex = 0
	t.mu.Unlock()
	return nil
}

// NotePan records a manual map drag: the camera stops following the live
// position until Recenter.
func (t *Tracker) NotePan() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.autoCenter = false
}

// Recenter re-enables camera follow.
func (t *Tracker) Recenter() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.autoCenter = true
}

// Camera returns the point the camera should show: the live position while
// auto-centering, nil when the user has taken over.
func (t *Tracker) Camera() *maps.Location {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.autoCenter || t.position == nil {
		return nil
	}
	position := *t.position
	return &position
}

func (t *Tracker) StepIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stepIndex
}

func (t *Tracker) CurrentStep() *maps.Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stepIndex >= len(t.steps) {
		return nil
	}
	step := t.steps[t.stepIndex]
	return &step
}

func (t *Tracker) Route() *maps.RouteResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.route
}

func (t *Tracker) Waypoints() []maps.Waypoint {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]maps.Waypoint(nil), t.waypoints...)
}

func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// End finalizes the session: the in-flight context becomes a persisted,
// completed trip carrying the measured traveled distance and the stops
// actually added, and the tracker disarms.
func (t *Tracker) End(ctx context.Context) (*models.Trip, error) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return nil, ErrNotTracking
	}

	stops := make([]models.Stop, 0, len(t.waypoints))
	for _, waypoint := range t.waypoints {
		stops = append(stops, models.Stop{
			Location: models.GeoPoint{
				Latitude:  waypoint.Location.Latitude,
				Longitude: waypoint.Location.Longitude,
			},
			Name:     waypoint.Name,
			Stopover: waypoint.Stopover,
		})
	}

	request := &services.CreateTripRequest{
		Origin:         t.details.From,
		Destination:    t.details.To,
		Vehicle:        t.details.Vehicle,
		Travelers:      t.details.Travelers,
		TripType:       models.TripTypeOneWay,
		Stops:          stops,
		DistanceMeters: t.traveled,
	}
	userID := t.userID
	liveID := t.liveID

	t.active = false
	t.position = nil
	t.route = nil
	t.steps = nil
	t.stepIndex = 0
	t.waypoints = nil
	t.mu.Unlock()

	trip, err := t.saver.Create(ctx, userID, request)
	if err != nil {
		return nil, err
	}
	trip, err = t.saver.UpdateStatus(ctx, userID, trip.ID, models.TripStatusCompleted)
	if err != nil {
		return nil, err
	}

	if t.sink != nil {
		t.sink.PublishTripEnded(liveID)
	}
	t.logger.LogTripEvent(trip.ID, "navigation_ended", map[string]interface{}{
		"distance_meters": trip.DistanceMeters,
		"stops":           len(trip.Stops),
	})
	return trip, nil
}
