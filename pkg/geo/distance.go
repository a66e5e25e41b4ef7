package geo

import (
	"math"
)

const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two points in meters.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	return haversineDistance(lat1, lng1, lat2, lng2)
}

func haversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLng := lng2Rad - lng1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// SphericalDistance computes the same great-circle distance using the
// spherical law of cosines. Kept alongside the haversine form so the two can
// be cross-checked; they must agree within floating-point tolerance.
func SphericalDistance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLngRad := (lng2 - lng1) * math.Pi / 180

	cosCentral := math.Sin(lat1Rad)*math.Sin(lat2Rad) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLngRad)

	// Clamp against rounding drift before Acos.
	if cosCentral > 1 {
		cosCentral = 1
	} else if cosCentral < -1 {
		cosCentral = -1
	}

	return earthRadiusMeters * math.Acos(cosCentral)
}

// DistanceKM returns the great-circle distance in kilometers.
func DistanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	return Distance(lat1, lng1, lat2, lng2) / 1000
}

// IsWithinRadius reports whether a point lies within radiusMeters of a center.
func IsWithinRadius(centerLat, centerLng, pointLat, pointLng, radiusMeters float64) bool {
	return Distance(centerLat, centerLng, pointLat, pointLng) <= radiusMeters
}

// Bearing returns the initial bearing in degrees from the first point to the
// second, normalized to [0, 360).
func Bearing(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	y := math.Sin(dLng) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLng)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}
