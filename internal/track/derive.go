package track

import (
	"fmt"
	"math"
	"time"

	"github.com/planbiir/tourenergy/internal/errs"
	"github.com/planbiir/tourenergy/internal/geodesy"
)

// Elapsed returns the seconds between two timestamps with the sub-second
// part kept as a fraction. The whole-second part of the result must agree
// with the whole seconds of the duration itself.
func Elapsed(from, to time.Time) (float64, error) {
	if from.IsZero() || to.IsZero() {
		return 0, errs.New(errs.InvalidTimestamp, "missing timestamp")
	}

	diff := to.Sub(from)
	if diff < 0 {
		return 0, errs.New(errs.InvalidTimestamp, "timestamp %s precedes %s",
			to.Format(time.RFC3339Nano), from.Format(time.RFC3339Nano))
	}

	sec := int64(diff / time.Second)
	frac := diff % time.Second
	elapsed := float64(sec) + float64(frac)/float64(time.Second)

	if int64(math.Floor(elapsed)) != sec {
		return 0, errs.New(errs.InvalidTimestamp, "false seconds: %d != floor(%f)", sec, elapsed)
	}

	return elapsed, nil
}

// Derive builds one Interval per consecutive pair of fixes.
// The first fix only seeds the baseline and yields no interval.
func Derive(fixes []Fix) ([]Interval, error) {
	if len(fixes) < 2 {
		return nil, nil
	}

	intervals := make([]Interval, 0, len(fixes)-1)
	start := fixes[0].Time

	for i := 1; i < len(fixes); i++ {
		prev := fixes[i-1]
		curr := fixes[i]

		elapsed, err := Elapsed(prev.Time, curr.Time)
		if err != nil {
			return nil, fmt.Errorf("fix %d: %w", i, err)
		}

		run, err := Elapsed(start, curr.Time)
		if err != nil {
			return nil, fmt.Errorf("fix %d: %w", i, err)
		}

		elevationDelta := curr.Elevation - prev.Elevation
		distance, slope := geodesy.Distance(prev.Position, curr.Position, elevationDelta)

		var velocity float64
		switch {
		case elapsed == 0 && distance == 0:
			// stationary sample, nothing happened
			velocity = 0
		case elapsed == 0:
			return nil, errs.New(errs.Teleport,
				"fix %d: moved %.2fm with no elapsed time", i, distance)
		default:
			velocity = distance / elapsed
		}

		intervals = append(intervals, Interval{
			Elapsed:        elapsed,
			Run:            run,
			Distance:       distance,
			Slope:          slope,
			ElevationDelta: elevationDelta,
			Velocity:       velocity,
		})
	}

	return intervals, nil
}
