package appstate

import (
	"voyago/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action is one state mutation. Implementations mutate the state under the
// store's write lock; they must not block or call back into the store.
type Action interface {
	Name() string
	apply(state *State)
}

type SetUser struct {
	User *models.User
}

func (a SetUser) Name() string { return "set_user" }

func (a SetUser) apply(state *State) {
	state.User = a.User
}

type SetTrips struct {
	Trips []*models.Trip
}

func (a SetTrips) Name() string { return "set_trips" }

// The caller's slice is copied: later in-place compactions must not
// reshuffle memory the dispatcher still holds.
func (a SetTrips) apply(state *State) {
	state.Trips = append([]*models.Trip{}, a.Trips...)
}

// AddTrip prepends, keeping the newest-first ordering the server uses.
type AddTrip struct {
	Trip *models.Trip
}

func (a AddTrip) Name() string { return "add_trip" }

func (a AddTrip) apply(state *State) {
	state.Trips = append([]*models.Trip{a.Trip}, state.Trips...)
}

type RemoveTrip struct {
	TripID primitive.ObjectID
}

func (a RemoveTrip) Name() string { return "remove_trip" }

func (a RemoveTrip) apply(state *State) {
	trips := state.Trips[:0]
	for _, trip := range state.Trips {
		if trip.ID != a.TripID {
			trips = append(trips, trip)
		}
	}
	state.Trips = trips
}

type SetSavedRoutes struct {
	Routes []*models.SavedRoute
}

func (a SetSavedRoutes) Name() string { return "set_saved_routes" }

func (a SetSavedRoutes) apply(state *State) {
	state.SavedRoutes = append([]*models.SavedRoute{}, a.Routes...)
}

// ToggleSavedRoute adds the route if its (origin, destination) pair is
// absent and removes it otherwise, mirroring the server-side toggle.
type ToggleSavedRoute struct {
	Route *models.SavedRoute
}

func (a ToggleSavedRoute) Name() string { return "toggle_saved_route" }

func (a ToggleSavedRoute) apply(state *State) {
	routes := state.SavedRoutes[:0]
	removed := false
	for _, route := range state.SavedRoutes {
		if route.Origin == a.Route.Origin && route.Destination == a.Route.Destination {
			removed = true
			continue
		}
		routes = append(routes, route)
	}
	if removed {
		state.SavedRoutes = routes
		return
	}
	state.SavedRoutes = append(state.SavedRoutes, a.Route)
}

// ReverseSavedRoute swaps origin and destination in memory only. The swap is
// never sent to the server, so a fresh load reverts it.
type ReverseSavedRoute struct {
	RouteID primitive.ObjectID
}

func (a ReverseSavedRoute) Name() string { return "reverse_saved_route" }

func (a ReverseSavedRoute) apply(state *State) {
	for i, route := range state.SavedRoutes {
		if route.ID == a.RouteID {
			reversed := *route
			reversed.Origin, reversed.Destination = route.Destination, route.Origin
			state.SavedRoutes[i] = &reversed
			return
		}
	}
}

type SetActiveTab struct {
	Tab Tab
}

func (a SetActiveTab) Name() string { return "set_active_tab" }

func (a SetActiveTab) apply(state *State) {
	state.ActiveTab = a.Tab
}

type SetModal struct {
	Modal string
}

func (a SetModal) Name() string { return "set_modal" }

func (a SetModal) apply(state *State) {
	state.ActiveModal = a.Modal
}

type SetNavigationTarget struct {
	Target *models.TripDetails
}

func (a SetNavigationTarget) Name() string { return "set_navigation_target" }

func (a SetNavigationTarget) apply(state *State) {
	state.NavigationTarget = a.Target
}
