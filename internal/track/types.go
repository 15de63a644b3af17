package track

import (
	"time"

	"github.com/paulmach/orb"
)

// Fix is a single GPS sample as delivered by the track reader
type Fix struct {
	Position  orb.Point // lon/lat in decimal degrees
	Elevation float64   // meters
	Time      time.Time
}

// Interval holds the kinematics derived from two consecutive fixes
type Interval struct {
	Elapsed        float64 `json:"elapsed_s"`         // seconds since the previous fix
	Run            float64 `json:"run_s"`             // seconds since the first fix
	Distance       float64 `json:"distance_m"`        // 3D distance
	Slope          float64 `json:"slope"`             // rise over run
	ElevationDelta float64 `json:"elevation_delta_m"` // signed
	Velocity       float64 `json:"velocity_ms"`
}
