package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceSymmetric(t *testing.T) {
	points := [][4]float64{
		{18.7557, 73.4091, 18.5204, 73.8567}, // Lonavala -> Pune
		{19.0760, 72.8777, 28.7041, 77.1025}, // Mumbai -> Delhi
		{-33.8688, 151.2093, 51.5072, -0.1276},
		{0, 0, 0, 180},
	}

	for _, p := range points {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Distance(18.7557, 73.4091, 18.7557, 73.4091))
	assert.Zero(t, Distance(0, 0, 0, 0))
	assert.Zero(t, Distance(-90, 45, -90, 45))
}

func TestDistanceKnownValues(t *testing.T) {
	// Mumbai -> Pune, roughly 120 km great-circle.
	d := Distance(19.0760, 72.8777, 18.5204, 73.8567)
	require.InDelta(t, 119500, d, 2000)

	// One degree of latitude along a meridian is ~111.19 km.
	d = Distance(0, 0, 1, 0)
	require.InDelta(t, 111195, d, 100)
}

func TestHaversineAgreesWithSphericalLaw(t *testing.T) {
	points := [][4]float64{
		{18.7557, 73.4091, 18.5204, 73.8567},
		{19.0760, 72.8777, 28.7041, 77.1025},
		{40.7128, -74.0060, 34.0522, -118.2437},
		{10, 10, 10.001, 10.001},
	}

	for _, p := range points {
		h := Distance(p[0], p[1], p[2], p[3])
		s := SphericalDistance(p[0], p[1], p[2], p[3])
		// Relative agreement; the law-of-cosines form loses precision on
		// very short distances, hence the absolute floor.
		assert.InDelta(t, h, s, h*1e-6+0.01)
	}
}

func TestIsWithinRadius(t *testing.T) {
	assert.True(t, IsWithinRadius(18.75, 73.40, 18.7501, 73.4001, 50))
	assert.False(t, IsWithinRadius(18.75, 73.40, 18.76, 73.41, 50))
}

func TestBearingRange(t *testing.T) {
	b := Bearing(18.75, 73.40, 19.07, 72.87)
	assert.GreaterOrEqual(t, b, 0.0)
	assert.Less(t, b, 360.0)

	// Due north.
	assert.InDelta(t, 0, Bearing(0, 0, 1, 0), 1e-9)
	// Due east.
	assert.InDelta(t, 90, Bearing(0, 0, 0, 1), 1e-9)
}
