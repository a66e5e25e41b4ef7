package clientstate

import (
	"context"
	"testing"

	"voyago/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryKV())
	ctx := context.Background()

	_, err := m.Screen(ctx)
	assert.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, m.SaveScreen(ctx, "planner"))
	screen, err := m.Screen(ctx)
	require.NoError(t, err)
	assert.Equal(t, "planner", screen)
}

func TestProfileRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryKV())
	ctx := context.Background()

	user := &models.User{
		Name:  "Asha",
		Phone: "+919876543210",
		TwoWheelers: []models.Vehicle{
			{ID: "veh_1", RegistrationNumber: "KA01AB1234"},
		},
	}
	require.NoError(t, m.SaveProfile(ctx, user))

	restored, err := m.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Name, restored.Name)
	require.Len(t, restored.TwoWheelers, 1)
	assert.Equal(t, "veh_1", restored.TwoWheelers[0].ID)

	require.NoError(t, m.ClearProfile(ctx))
	_, err = m.Profile(ctx)
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestTabAndTheme(t *testing.T) {
	m := NewManager(NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, m.SaveActiveTab(ctx, "map"))
	require.NoError(t, m.SaveTheme(ctx, "dark"))

	tab, err := m.ActiveTab(ctx)
	require.NoError(t, err)
	assert.Equal(t, "map", tab)

	theme, err := m.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}
