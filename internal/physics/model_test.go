package physics

import (
	"math"
	"testing"

	"github.com/planbiir/tourenergy/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergyFlatConstantSpeed(t *testing.T) {
	model := NewModel(DefaultConstants())

	energy, err := model.Energy(5, 5, 0, 80, 1)
	require.NoError(t, err)

	rolling := 80 * 9.81 * 0.004
	drag := 0.5 * 1.1 * 1.2 * 0.51 * 25
	assert.InDelta(t, (rolling+drag)*5, energy, 1e-9)
	assert.Greater(t, energy, 0.0)
}

func TestEnergyDownhillBrakingClamped(t *testing.T) {
	model := NewModel(DefaultConstants())

	energy, err := model.Energy(20, 5, -0.3, 80, 5)
	require.NoError(t, err)
	assert.Zero(t, energy)
}

func TestEnergyEasyConstants(t *testing.T) {
	model := NewModel(EasyConstants())

	// F = m*a + F_RR + F_L = 100*1 + 100*10*0.001 + 0.5*1*1*0.5*4 = 102
	// way = 0.5*(2+4)*2 = 6
	energy, err := model.Energy(2, 4, 0, 100, 2)
	require.NoError(t, err)
	assert.InDelta(t, 612.0, energy, 1e-9)
}

func TestEnergyUphillCostsMore(t *testing.T) {
	model := NewModel(DefaultConstants())

	flat, err := model.Energy(5, 5, 0, 80, 1)
	require.NoError(t, err)
	climb, err := model.Energy(5, 5, 0.08, 80, 1)
	require.NoError(t, err)

	assert.Greater(t, climb, flat)
}

func TestForcesDecomposition(t *testing.T) {
	model := NewModel(DefaultConstants())

	f, err := model.Forces(0, 0.1, 80)
	require.NoError(t, err)

	assert.InDelta(t, 80*9.81, f.Gravity, 1e-9)
	assert.InDelta(t, f.Gravity*f.Gravity, f.Normal*f.Normal+f.AlongSlope*f.AlongSlope, 1e-3)
	assert.Greater(t, f.AlongSlope, 0.0)
	assert.Zero(t, f.Drag)
	assert.InDelta(t, f.AlongSlope+f.Rolling, f.Resistive, 1e-12)
}

func TestForcesRejectsNaNSlope(t *testing.T) {
	model := NewModel(DefaultConstants())

	_, err := model.Forces(5, math.NaN(), 80)
	assert.ErrorIs(t, err, errs.ErrPhysicsInconsistency)
}

func TestForcesVerticalSlope(t *testing.T) {
	model := NewModel(DefaultConstants())

	f, err := model.Forces(0, math.Inf(1), 80)
	require.NoError(t, err)
	assert.InDelta(t, f.Gravity, f.AlongSlope, 1e-9)
}

func TestForcesToleranceExceeded(t *testing.T) {
	c := DefaultConstants()
	c.Tolerance = -1
	model := NewModel(c)

	_, err := model.Forces(5, 0.1, 80)
	assert.Equal(t, errs.PhysicsInconsistency, errs.KindOf(err))
}

func TestEnergyInvalidInput(t *testing.T) {
	model := NewModel(DefaultConstants())

	_, err := model.Energy(5, 5, 0, 0, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = model.Energy(5, 5, 0, 80, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
