package tour

import (
	"fmt"

	"github.com/planbiir/tourenergy/internal/errs"
	"github.com/planbiir/tourenergy/internal/integrate"
	"github.com/planbiir/tourenergy/internal/physics"
	"github.com/planbiir/tourenergy/internal/track"
)

// Summarize derives the intervals of a tour, computes the energy for each
// of them and integrates it over the run time
func Summarize(name string, fixes []track.Fix, opts Options) (Result, error) {
	if len(fixes) < 2 {
		return Result{}, errs.New(errs.TooFewFixes, "need at least two fixes, got %d", len(fixes))
	}
	if opts.MassKg <= 0 {
		return Result{}, errs.New(errs.InvalidInput, "rider mass must be positive, got %g", opts.MassKg)
	}
	if opts.Method == "" {
		opts.Method = integrate.Trapezoidal
	}
	if opts.Model.Constants == (physics.Constants{}) {
		opts.Model = physics.NewModel(physics.DefaultConstants())
	}

	intervals, err := track.Derive(fixes)
	if err != nil {
		return Result{}, fmt.Errorf("deriving intervals: %w", err)
	}

	n := len(fixes)
	runTime := make([]float64, n)
	velocity := make([]float64, n)
	elevation := make([]float64, n)
	energy := make([]float64, n)
	elevation[0] = fixes[0].Elevation

	var ascent, descent, distance, maxSpeed float64

	for i, iv := range intervals {
		idx := i + 1
		runTime[idx] = iv.Run
		velocity[idx] = iv.Velocity
		elevation[idx] = fixes[idx].Elevation

		// Stationary zero-time samples cost nothing and have no acceleration
		if iv.Elapsed > 0 {
			e, err := opts.Model.Energy(velocity[idx-1], iv.Velocity, iv.Slope, opts.MassKg, iv.Elapsed)
			if err != nil {
				return Result{}, fmt.Errorf("interval %d: %w", idx, err)
			}
			energy[idx] = e
		}

		if iv.ElevationDelta > 0 {
			ascent += iv.ElevationDelta
		} else {
			descent += iv.ElevationDelta
		}
		distance += iv.Distance
		maxSpeed = max(maxSpeed, iv.Velocity)
	}

	total, err := integrate.Integrate(runTime, energy, opts.Method)
	if err != nil {
		return Result{}, fmt.Errorf("integrating energy: %w", err)
	}

	var speedSum float64
	for _, v := range velocity {
		speedSum += v
	}

	return Result{
		Name:              name,
		TotalEnergyJoules: total,
		TotalEnergyKcal:   total * KcalPerJoule,
		Method:            opts.Method,
		MeanSpeed:         speedSum / float64(n),
		MaxSpeed:          maxSpeed,
		Distance:          distance,
		Duration:          fixes[n-1].Time.Sub(fixes[0].Time),
		TotalAscent:       ascent,
		TotalDescent:      descent,
		RunTime:           runTime,
		Velocity:          velocity,
		Elevation:         elevation,
		Energy:            energy,
	}, nil
}
