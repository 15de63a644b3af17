package gpx

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/planbiir/tourenergy/internal/track"
)

// Point represents a GPS track point with its origin in the file
type Point struct {
	Lat          float64
	Lon          float64
	Elevation    float64
	HasElevation bool
	Time         time.Time

	// Internal tracking for multi-segment files
	TrackIdx, SegIdx, PtIdx int
}

// Track is the ordered point sequence of a GPX file plus its tour name
type Track struct {
	Name   string
	Points []Point

	// Source bookkeeping
	TrackCount       int
	SegmentCount     int
	FromRoutes       bool // points were read from <rte> because no <trk> had any
	MissingElevation int
	MissingTime      int
}

// Fixes converts the points into the sequence the energy pipeline consumes
func (t *Track) Fixes() []track.Fix {
	fixes := make([]track.Fix, len(t.Points))
	for i, p := range t.Points {
		fixes[i] = track.Fix{
			Position:  orb.Point{p.Lon, p.Lat},
			Elevation: p.Elevation,
			Time:      p.Time,
		}
	}
	return fixes
}

// Path returns the track geometry as a line string
func (t *Track) Path() orb.LineString {
	ls := make(orb.LineString, len(t.Points))
	for i, p := range t.Points {
		ls[i] = orb.Point{p.Lon, p.Lat}
	}
	return ls
}

// Bound returns the bounding box of the track
func (t *Track) Bound() orb.Bound {
	return t.Path().Bound()
}

// Duration is the time between the first and the last point
func (t *Track) Duration() time.Duration {
	if len(t.Points) < 2 {
		return 0
	}
	return t.Points[len(t.Points)-1].Time.Sub(t.Points[0].Time)
}
