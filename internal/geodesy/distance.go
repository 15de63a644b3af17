package geodesy

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadius is the spherical model radius in meters
const EarthRadius = 6371000.0

// Horizontal calculates great-circle distance between two points (meters)
func Horizontal(origin, destination orb.Point) float64 {
	lat1Rad := origin.Lat() * math.Pi / 180
	lat2Rad := destination.Lat() * math.Pi / 180
	deltaLat := (destination.Lat() - origin.Lat()) * math.Pi / 180
	deltaLon := (destination.Lon() - origin.Lon()) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// Distance returns the 3D distance between two points and the slope
// (rise over run) given the elevation change between them.
//
// With no horizontal displacement the slope is 0 when the elevation is
// unchanged and ±Inf otherwise, so it is never NaN.
func Distance(origin, destination orb.Point, elevationDelta float64) (float64, float64) {
	horizontal := Horizontal(origin, destination)
	distance := math.Sqrt(horizontal*horizontal + elevationDelta*elevationDelta)

	if horizontal == 0 {
		if elevationDelta == 0 {
			return distance, 0
		}
		return distance, math.Inf(int(math.Copysign(1, elevationDelta)))
	}

	return distance, elevationDelta / horizontal
}
