package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gpxgo "github.com/tkrajina/gpxgo/gpx"
)

var (
	// ErrNoPoints is returned for files without any track or route points
	ErrNoPoints = errors.New("no GPS points found in file")

	// ErrPartialElevation is returned when only some points carry <ele>
	ErrPartialElevation = errors.New("elevation missing on some points")
)

// timeDoc mirrors only the <time> elements of a GPX file. gpxgo truncates
// timestamps to whole seconds, so they are read a second time from here.
type timeDoc struct {
	Tracks []struct {
		Segments []struct {
			Points []timeElem `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
	Routes []struct {
		Points []timeElem `xml:"rtept"`
	} `xml:"rte"`
}

type timeElem struct {
	Time string `xml:"time"`
}

// Parse reads and parses a GPX file
func Parse(filename string) (*Track, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader
func ParseReader(r io.Reader) (*Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read GPX: %w", err)
	}

	g, err := gpxgo.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	var times timeDoc
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&times); err != nil {
		return nil, fmt.Errorf("failed to parse GPX timestamps: %w", err)
	}

	t, err := FromGPX(g)
	if err != nil {
		return nil, err
	}
	t.applyTimes(times)
	return t, nil
}

// applyTimes replaces the whole-second timestamps with the full precision
// values of the file
func (t *Track) applyTimes(doc timeDoc) {
	for i := range t.Points {
		p := &t.Points[i]

		var raw string
		if t.FromRoutes {
			if p.TrackIdx < len(doc.Routes) && p.PtIdx < len(doc.Routes[p.TrackIdx].Points) {
				raw = doc.Routes[p.TrackIdx].Points[p.PtIdx].Time
			}
		} else if p.TrackIdx < len(doc.Tracks) &&
			p.SegIdx < len(doc.Tracks[p.TrackIdx].Segments) &&
			p.PtIdx < len(doc.Tracks[p.TrackIdx].Segments[p.SegIdx].Points) {
			raw = doc.Tracks[p.TrackIdx].Segments[p.SegIdx].Points[p.PtIdx].Time
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			// leave gpxgo's value for formats RFC 3339 does not cover
			continue
		}
		p.Time = ts.UTC()
	}
}

// FromGPX flattens all tracks and segments in order. Routes are only used
// when the file has no track points at all.
func FromGPX(g *gpxgo.GPX) (*Track, error) {
	t := &Track{
		Name:       g.Name,
		TrackCount: len(g.Tracks),
	}

	for trackIdx := range g.Tracks {
		trk := &g.Tracks[trackIdx]
		if t.Name == "" {
			t.Name = trk.Name
		}
		t.SegmentCount += len(trk.Segments)

		for segIdx := range trk.Segments {
			for ptIdx := range trk.Segments[segIdx].Points {
				t.add(&trk.Segments[segIdx].Points[ptIdx], trackIdx, segIdx, ptIdx)
			}
		}
	}

	if len(t.Points) == 0 {
		for routeIdx := range g.Routes {
			rte := &g.Routes[routeIdx]
			if t.Name == "" {
				t.Name = rte.Name
			}
			for ptIdx := range rte.Points {
				t.add(&rte.Points[ptIdx], routeIdx, 0, ptIdx)
			}
		}
		t.FromRoutes = len(t.Points) > 0
	}

	if len(t.Points) == 0 {
		return nil, ErrNoPoints
	}

	// Files without any elevation are read as flat at 0 m, a mix would
	// turn every gap into a fake climb and drop
	if t.MissingElevation > 0 && t.MissingElevation < len(t.Points) {
		return nil, fmt.Errorf("%w: %d of %d points", ErrPartialElevation, t.MissingElevation, len(t.Points))
	}

	return t, nil
}

func (t *Track) add(p *gpxgo.GPXPoint, trackIdx, segIdx, ptIdx int) {
	point := Point{
		Lat:          p.Latitude,
		Lon:          p.Longitude,
		HasElevation: p.Elevation.NotNull(),
		Time:         p.Timestamp,
		TrackIdx:     trackIdx,
		SegIdx:       segIdx,
		PtIdx:        ptIdx,
	}
	if point.HasElevation {
		point.Elevation = p.Elevation.Value()
	} else {
		t.MissingElevation++
	}
	if point.Time.IsZero() {
		t.MissingTime++
	}

	t.Points = append(t.Points, point)
}
