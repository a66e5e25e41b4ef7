package planner

import (
	"context"
	"errors"
	"sync"

	"voyago/internal/config"
	"voyago/internal/utils"
	"voyago/pkg/logger"
	"voyago/pkg/maps"
	"voyago/pkg/speech"
)

// Step is the wizard's position. Steps only move forward; Finish resets the
// whole flow rather than popping back.
type Step int

const (
	StepDestination Step = iota + 1
	StepStay
	StepAttractions
)

var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrStayRequired        = errors.New("stay location or selection is required")
	ErrLocationUnavailable = errors.New("current location could not be resolved")
	ErrNotOnStep           = errors.New("action not available on this step")
)

// RouteSaver toggles a saved route; the planner keys attraction bookmarks by
// (stay name, attraction name).
type RouteSaver interface {
	Toggle(ctx context.Context, origin, destination string) (saved bool, err error)
}

// Flow is the trip-planning wizard: destination, then stay selection, then
// attraction suggestions. All state is planner-local and discarded on
// Finish.
type Flow struct {
	provider     maps.Provider
	voice        *speech.SessionManager
	saver        RouteSaver
	logger       *logger.Logger
	searchRadius uint

	destDebounce *Debouncer
	stayDebounce *Debouncer

	mu               sync.Mutex
	step             Step
	destination      string
	destCoords       *maps.Location
	destPredictions  []maps.Prediction
	ownStay          bool
	stayQuery        string
	stayPredictions  []maps.Prediction
	stays            []maps.Place
	selectedStay     *maps.Place
	attractions      []maps.Place
	savedAttractions map[string]bool
	voiceErr         error
}

// NewFlow builds the wizard. A nil config falls back to the built-in settle
// and radius defaults.
func NewFlow(provider maps.Provider, voice *speech.SessionManager, saver RouteSaver, log *logger.Logger, cfg *config.PlannerConfig) *Flow {
	settle := utils.DebounceSettle
	radius := uint(utils.NearbySearchRadius)
	if cfg != nil {
		if cfg.DebounceSettle > 0 {
			settle = cfg.DebounceSettle
		}
		if cfg.SearchRadius > 0 {
			radius = cfg.SearchRadius
		}
	}

	return &Flow{
		provider:         provider,
		voice:            voice,
		saver:            saver,
		logger:           log,
		searchRadius:     radius,
		destDebounce:     NewDebouncer(settle),
		stayDebounce:     NewDebouncer(settle),
		step:             StepDestination,
		savedAttractions: map[string]bool{},
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// InputDestination registers a keystroke in the destination field. The
// prediction fetch fires after the input settles.
func (f *Flow) InputDestination(ctx context.Context, text string) {
	f.mu.Lock()
	f.destination = text
	f.mu.Unlock()

	f.destDebounce.Input(ctx, text, f.provider.GetPlacePredictions, func(predictions []maps.Prediction) {
		f.mu.Lock()
		f.destPredictions = predictions
		f.mu.Unlock()
	})
}

// InputStay registers a keystroke in the stay field.
func (f *Flow) InputStay(ctx context.Context, text string) {
	f.mu.Lock()
	f.stayQuery = text
	f.mu.Unlock()

	f.stayDebounce.Input(ctx, text, f.provider.GetPlacePredictions, func(predictions []maps.Prediction) {
		f.mu.Lock()
		f.stayPredictions = predictions
		f.mu.Unlock()
	})
}

func (f *Flow) DestinationPredictions() []maps.Prediction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.destPredictions
}

func (f *Flow) StayPredictions() []maps.Prediction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stayPredictions
}

// SelectDestination resolves a chosen prediction into the destination and
// its coordinates.
func (f *Flow) SelectDestination(ctx context.Context, prediction maps.Prediction) {
	f.destDebounce.Cancel()

	var coords *maps.Location
	if details := f.provider.GetPlaceDetails(ctx, prediction.PlaceID); details != nil {
		coords = &details.Location
	}

	f.mu.Lock()
	f.destination = prediction.Description
	f.destCoords = coords
	f.destPredictions = nil
	f.mu.Unlock()
}

// UseCurrentLocation resolves the device position into a destination via
// reverse geocoding. On failure the flow stays on the destination step and
// the caller may retry with fresh coordinates.
func (f *Flow) UseCurrentLocation(ctx context.Context, lat, lng float64) error {
	address := f.provider.ReverseGeocode(ctx, lat, lng)
	if address == maps.UnknownLocation {
		return ErrLocationUnavailable
	}

	f.mu.Lock()
	f.destination = address
	f.destCoords = &maps.Location{Latitude: lat, Longitude: lng}
	f.destPredictions = nil
	f.mu.Unlock()
	return nil
}

// StartVoiceDestination dictates into the destination field. Starting while
// another session is active stops it first.
func (f *Flow) StartVoiceDestination(ctx context.Context) error {
	f.recordVoiceError(nil)
	return f.voice.Start(ctx, func(transcript string) {
		f.InputDestination(ctx, transcript)
	}, f.recordVoiceError)
}

// StartVoiceStay dictates into the stay field.
func (f *Flow) StartVoiceStay(ctx context.Context) error {
	f.recordVoiceError(nil)
	return f.voice.Start(ctx, func(transcript string) {
		f.InputStay(ctx, transcript)
	}, f.recordVoiceError)
}

func (f *Flow) StopVoice() {
	f.voice.Stop()
}

// VoiceError reports the failure from the most recent dictation session.
// Start only reflects synchronous failures; a permission denial arrives
// asynchronously and lands here, where the UI can distinguish it from an
// unsupported recognizer.
func (f *Flow) VoiceError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.voiceErr
}

func (f *Flow) recordVoiceError(err error) {
	f.mu.Lock()
	f.voiceErr = err
	f.mu.Unlock()
}

// SetOwnStay flips the "planned my own stay" toggle.
func (f *Flow) SetOwnStay(own bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ownStay = own
}

func (f *Flow) SelectStay(place maps.Place) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selectedStay = &place
}

func (f *Flow) Stays() []maps.Place {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stays
}

func (f *Flow) Attractions() []maps.Place {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attractions
}

// Next advances the wizard one step. A blocked transition returns an error
// and the step does not move.
func (f *Flow) Next(ctx context.Context) error {
	f.mu.Lock()
	step := f.step
	f.mu.Unlock()

	switch step {
	case StepDestination:
		return f.enterStay(ctx)
	case StepStay:
		return f.enterAttractions(ctx)
	default:
		return ErrNotOnStep
	}
}

func (f *Flow) enterStay(ctx context.Context) error {
	f.mu.Lock()
	if f.destination == "" {
		f.mu.Unlock()
		return ErrDestinationRequired
	}
	ownStay := f.ownStay
	coords := f.destCoords
	f.step = StepStay
	f.mu.Unlock()

	if ownStay {
		return nil
	}

	// One lodging search per entry into the stay step.
	stays := f.provider.SearchNearbyPlaces(ctx, "lodging", coords, f.searchRadius)

	f.mu.Lock()
	f.stays = stays
	f.mu.Unlock()

	if len(stays) == 0 {
		f.logger.Warn("Lodging search returned no results")
	}
	return nil
}

func (f *Flow) enterAttractions(ctx context.Context) error {
	f.mu.Lock()
	blocked := (f.ownStay && f.stayQuery == "") || (!f.ownStay && f.selectedStay == nil)
	if blocked {
		f.mu.Unlock()
		return ErrStayRequired
	}
	coords := f.destCoords
	f.step = StepAttractions
	f.mu.Unlock()

	attractions := f.provider.SearchNearbyPlaces(ctx, "tourist attractions", coords, f.searchRadius)

	f.mu.Lock()
	f.attractions = attractions
	f.mu.Unlock()
	return nil
}

// StayName is the stay the user ended up with: the typed location when the
// own-stay toggle is on, otherwise the selected search result.
func (f *Flow) StayName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stayNameLocked()
}

func (f *Flow) stayNameLocked() string {
	if f.ownStay {
		return f.stayQuery
	}
	if f.selectedStay != nil {
		return f.selectedStay.Name
	}
	return ""
}

// ToggleAttraction bookmarks or un-bookmarks one suggested attraction,
// keyed by (stay name, attraction name). Reports whether the attraction is
// saved after the call.
func (f *Flow) ToggleAttraction(ctx context.Context, attraction maps.Place) (bool, error) {
	f.mu.Lock()
	if f.step != StepAttractions {
		f.mu.Unlock()
		return false, ErrNotOnStep
	}
	stayName := f.stayNameLocked()
	f.mu.Unlock()

	saved, err := f.saver.Toggle(ctx, stayName, attraction.Name)
	if err != nil {
		return false, err
	}

	f.mu.Lock()
	if saved {
		f.savedAttractions[attraction.Name] = true
	} else {
		delete(f.savedAttractions, attraction.Name)
	}
	f.mu.Unlock()
	return saved, nil
}

// IsAttractionSaved reports the local toggle state for one attraction.
func (f *Flow) IsAttractionSaved(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.savedAttractions[name]
}

// Finish leaves the wizard and discards all planner-local state. This is a
// full reset, not a step back.
func (f *Flow) Finish() {
	f.destDebounce.Cancel()
	f.stayDebounce.Cancel()
	f.voice.Stop()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepDestination
	f.destination = ""
	f.destCoords = nil
	f.destPredictions = nil
	f.ownStay = false
	f.stayQuery = ""
	f.stayPredictions = nil
	f.stays = nil
	f.selectedStay = nil
	f.attractions = nil
	f.savedAttractions = map[string]bool{}
	f.voiceErr = nil
}
