package tour

import (
	"time"

	"github.com/planbiir/tourenergy/internal/integrate"
	"github.com/planbiir/tourenergy/internal/physics"
)

// KcalPerJoule converts joules to kilocalories
const KcalPerJoule = 0.000239006

// Options holds the parameters of a tour computation
type Options struct {
	MassKg float64          // rider plus bike, required
	Method integrate.Method // quadrature rule for the energy integral
	Model  physics.Model
}

// DefaultOptions returns trapezoidal integration with the default constants
func DefaultOptions(massKg float64) Options {
	return Options{
		MassKg: massKg,
		Method: integrate.Trapezoidal,
		Model:  physics.NewModel(physics.DefaultConstants()),
	}
}

// Result is the summary of one tour
type Result struct {
	Name string `json:"name"`

	// Energy
	TotalEnergyJoules float64          `json:"total_energy_j"`
	TotalEnergyKcal   float64          `json:"total_energy_kcal"`
	Method            integrate.Method `json:"method"`

	// Motion
	MeanSpeed float64       `json:"mean_speed_ms"`
	MaxSpeed  float64       `json:"max_speed_ms"`
	Distance  float64       `json:"distance_m"`
	Duration  time.Duration `json:"duration_ns"`

	// Elevation
	TotalAscent  float64 `json:"total_ascent_m"`
	TotalDescent float64 `json:"total_descent_m"` // negative

	// Series aligned with the input fixes, index 0 is the start
	RunTime   []float64 `json:"run_time_s,omitempty"`
	Velocity  []float64 `json:"velocity_ms,omitempty"`
	Elevation []float64 `json:"elevation_m,omitempty"`
	Energy    []float64 `json:"energy_j,omitempty"`
}
