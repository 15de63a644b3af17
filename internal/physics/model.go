package physics

import (
	"math"

	"github.com/planbiir/tourenergy/internal/errs"
)

// Constants holds the physical parameters of the force model
type Constants struct {
	Gravity           float64 // m/s²
	RollingResistance float64 // μ_RR, dimensionless
	DragCoefficient   float64 // c_w
	AirDensity        float64 // kg/m³
	FrontalArea       float64 // m²

	// Tolerance bounds |F_N² + F_H² - F_G²|
	Tolerance float64
}

// DefaultConstants returns the constants for an upright rider on a road bike
func DefaultConstants() Constants {
	return Constants{
		Gravity:           9.81,
		RollingResistance: 0.004,
		DragCoefficient:   1.1,
		AirDensity:        1.2,
		FrontalArea:       1.7 * 0.3, // body height × shoulder width
		Tolerance:         0.001,
	}
}

// EasyConstants returns round numbers for checking results by hand
func EasyConstants() Constants {
	return Constants{
		Gravity:           10,
		RollingResistance: 0.001,
		DragCoefficient:   1,
		AirDensity:        1,
		FrontalArea:       0.5,
		Tolerance:         0.001,
	}
}

// Forces is the decomposition of the forces acting on rider and bike
type Forces struct {
	Gravity    float64 `json:"gravity_n"`
	Normal     float64 `json:"normal_n"`      // perpendicular to the road
	AlongSlope float64 `json:"along_slope_n"` // positive uphill
	Rolling    float64 `json:"rolling_n"`
	Drag       float64 `json:"drag_n"`
	Resistive  float64 `json:"resistive_n"` // along slope + rolling + drag
}

// Model computes rider-supplied energy from interval kinematics
type Model struct {
	Constants Constants
}

// NewModel creates a force model with the given constants
func NewModel(c Constants) Model {
	return Model{Constants: c}
}

// Forces decomposes gravity on the given slope and adds rolling and air
// resistance at velocityIn. The decomposition must reconstruct gravity
// within Constants.Tolerance.
func (m Model) Forces(velocityIn, slope, massKg float64) (Forces, error) {
	c := m.Constants
	angle := math.Atan(slope)

	gravity := massKg * c.Gravity
	normal := math.Cos(angle) * gravity
	alongSlope := math.Sin(angle) * gravity

	eps := math.Abs(normal*normal + alongSlope*alongSlope - gravity*gravity)
	if !(eps <= c.Tolerance) {
		return Forces{}, errs.New(errs.PhysicsInconsistency,
			"force decomposition off by eps = %g (slope %g)", eps, slope)
	}

	rolling := normal * c.RollingResistance
	drag := 0.5 * c.DragCoefficient * c.AirDensity * c.FrontalArea * velocityIn * velocityIn

	return Forces{
		Gravity:    gravity,
		Normal:     normal,
		AlongSlope: alongSlope,
		Rolling:    rolling,
		Drag:       drag,
		Resistive:  alongSlope + rolling + drag,
	}, nil
}

// Energy returns the joules the rider must supply to go from velocityIn to
// velocityOut over elapsedSeconds on the given slope. Intervals where the
// required force is negative (braking, coasting downhill) cost nothing.
func (m Model) Energy(velocityIn, velocityOut, slope, massKg, elapsedSeconds float64) (float64, error) {
	if massKg <= 0 {
		return 0, errs.New(errs.InvalidInput, "mass must be positive, got %g", massKg)
	}
	if elapsedSeconds <= 0 {
		return 0, errs.New(errs.InvalidInput, "elapsed time must be positive, got %g", elapsedSeconds)
	}

	forces, err := m.Forces(velocityIn, slope, massKg)
	if err != nil {
		return 0, err
	}

	acceleration := (velocityOut - velocityIn) / elapsedSeconds
	required := massKg*acceleration + forces.Resistive
	if required < 0 {
		required = 0
	}

	way := 0.5 * (velocityIn + velocityOut) * elapsedSeconds

	return required * way, nil
}
