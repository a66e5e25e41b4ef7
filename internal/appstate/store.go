package appstate

import (
	"sync"

	"voyago/internal/models"
	"voyago/pkg/logger"
)

// Tab identifies the app's top-level tabs.
type Tab string

const (
	TabHome   Tab = "home"
	TabRoutes Tab = "routes"
	TabMap    Tab = "map"
	TabAlerts Tab = "alerts"
)

// State is the cross-screen snapshot. Values returned by the store are
// copies; mutation goes through Dispatch only.
type State struct {
	User             *models.User
	Trips            []*models.Trip
	SavedRoutes      []*models.SavedRoute
	ActiveTab        Tab
	ActiveModal      string
	NavigationTarget *models.TripDetails
}

// Store owns all cross-screen state. Screens read snapshots and dispatch
// actions; they never hold mutable references into the store.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []chan State
	logger      *logger.Logger
}

func NewStore(log *logger.Logger) *Store {
	return &Store{
		state: State{
			Trips:       []*models.Trip{},
			SavedRoutes: []*models.SavedRoute{},
			ActiveTab:   TabHome,
		},
		logger: log,
	}
}

// Snapshot returns a copy of the current state. Slice contents are shared
// but the slices themselves are fresh, so appends by callers cannot corrupt
// the store.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyState()
}

// Subscribe returns a channel receiving a snapshot after every dispatch.
// Slow subscribers miss intermediate states rather than blocking dispatch.
func (s *Store) Subscribe() <-chan State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Dispatch applies one action under the write lock and notifies subscribers.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	action.apply(&s.state)
	snapshot := s.copyState()
	subscribers := s.subscribers
	s.mu.Unlock()

	s.logger.WithField("action", action.Name()).Debug("State action dispatched")

	for _, ch := range subscribers {
		select {
		case ch <- snapshot:
		default:
			// Drop and replace the pending snapshot so the subscriber
			// always sees the latest state next.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

func (s *Store) copyState() State {
	snapshot := s.state
	snapshot.Trips = append([]*models.Trip(nil), s.state.Trips...)
	snapshot.SavedRoutes = append([]*models.SavedRoute(nil), s.state.SavedRoutes...)
	return snapshot
}
