package appstate

import (
	"testing"

	"voyago/internal/models"
	"voyago/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newStoreForTest() *Store {
	return NewStore(logger.NewNop())
}

func TestSnapshotIsIsolated(t *testing.T) {
	store := newStoreForTest()
	store.Dispatch(AddTrip{Trip: &models.Trip{ID: primitive.NewObjectID(), Origin: "A"}})

	snapshot := store.Snapshot()
	snapshot.Trips = append(snapshot.Trips, &models.Trip{Origin: "rogue"})

	assert.Len(t, store.Snapshot().Trips, 1)
}

func TestAddTripPrepends(t *testing.T) {
	store := newStoreForTest()
	first := &models.Trip{ID: primitive.NewObjectID(), Origin: "A"}
	second := &models.Trip{ID: primitive.NewObjectID(), Origin: "B"}

	store.Dispatch(AddTrip{Trip: first})
	store.Dispatch(AddTrip{Trip: second})

	trips := store.Snapshot().Trips
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
}

func TestRemoveTrip(t *testing.T) {
	store := newStoreForTest()
	trip := &models.Trip{ID: primitive.NewObjectID()}
	store.Dispatch(AddTrip{Trip: trip})

	store.Dispatch(RemoveTrip{TripID: trip.ID})
	assert.Empty(t, store.Snapshot().Trips)

	// Removing a missing trip is a no-op.
	store.Dispatch(RemoveTrip{TripID: primitive.NewObjectID()})
	assert.Empty(t, store.Snapshot().Trips)
}

func TestSetTripsCopiesCallerSlice(t *testing.T) {
	store := newStoreForTest()
	first := &models.Trip{ID: primitive.NewObjectID(), Origin: "A"}
	second := &models.Trip{ID: primitive.NewObjectID(), Origin: "B"}
	mine := []*models.Trip{first, second}

	store.Dispatch(SetTrips{Trips: mine})
	store.Dispatch(RemoveTrip{TripID: first.ID})

	// Compacting the store's slice must not reshuffle the caller's.
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, second.ID, mine[1].ID)
	require.Len(t, store.Snapshot().Trips, 1)
	assert.Equal(t, second.ID, store.Snapshot().Trips[0].ID)
}

func TestSetSavedRoutesCopiesCallerSlice(t *testing.T) {
	store := newStoreForTest()
	first := &models.SavedRoute{ID: primitive.NewObjectID(), Origin: "A", Destination: "B"}
	second := &models.SavedRoute{ID: primitive.NewObjectID(), Origin: "C", Destination: "D"}
	mine := []*models.SavedRoute{first, second}

	store.Dispatch(SetSavedRoutes{Routes: mine})
	store.Dispatch(ToggleSavedRoute{Route: &models.SavedRoute{Origin: "A", Destination: "B"}})

	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, second.ID, mine[1].ID)
	require.Len(t, store.Snapshot().SavedRoutes, 1)
}

func TestToggleSavedRouteRoundTrip(t *testing.T) {
	store := newStoreForTest()
	route := &models.SavedRoute{ID: primitive.NewObjectID(), Origin: "A", Destination: "B"}

	store.Dispatch(ToggleSavedRoute{Route: route})
	assert.Len(t, store.Snapshot().SavedRoutes, 1)

	store.Dispatch(ToggleSavedRoute{Route: route})
	assert.Empty(t, store.Snapshot().SavedRoutes)

	// Reversed pair is a distinct key.
	store.Dispatch(ToggleSavedRoute{Route: route})
	store.Dispatch(ToggleSavedRoute{Route: &models.SavedRoute{Origin: "B", Destination: "A"}})
	assert.Len(t, store.Snapshot().SavedRoutes, 2)
}

func TestReverseSavedRouteIsLocal(t *testing.T) {
	store := newStoreForTest()
	route := &models.SavedRoute{ID: primitive.NewObjectID(), Origin: "A", Destination: "B"}
	store.Dispatch(ToggleSavedRoute{Route: route})

	store.Dispatch(ReverseSavedRoute{RouteID: route.ID})

	routes := store.Snapshot().SavedRoutes
	require.Len(t, routes, 1)
	assert.Equal(t, "B", routes[0].Origin)
	assert.Equal(t, "A", routes[0].Destination)
	// The original value is untouched; only the store's view flipped.
	assert.Equal(t, "A", route.Origin)
}

func TestSubscribeSeesLatestState(t *testing.T) {
	store := newStoreForTest()
	updates := store.Subscribe()

	store.Dispatch(SetActiveTab{Tab: TabMap})
	snapshot := <-updates
	assert.Equal(t, TabMap, snapshot.ActiveTab)

	// A slow subscriber gets the newest snapshot, not a backlog.
	store.Dispatch(SetActiveTab{Tab: TabRoutes})
	store.Dispatch(SetActiveTab{Tab: TabAlerts})
	snapshot = <-updates
	assert.Equal(t, TabAlerts, snapshot.ActiveTab)
}

func TestSetNavigationTarget(t *testing.T) {
	store := newStoreForTest()
	target := &models.TripDetails{From: "A", To: "B", Travelers: 2}

	store.Dispatch(SetNavigationTarget{Target: target})
	assert.Equal(t, target, store.Snapshot().NavigationTarget)

	store.Dispatch(SetNavigationTarget{Target: nil})
	assert.Nil(t, store.Snapshot().NavigationTarget)
}
