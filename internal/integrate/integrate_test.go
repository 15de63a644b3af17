package integrate

import (
	"testing"

	"github.com/planbiir/tourenergy/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrapezoidalConstant(t *testing.T) {
	x := []float64{0, 0.5, 2, 3.25, 7}
	y := []float64{4, 4, 4, 4, 4}

	got, err := Integrate(x, y, Trapezoidal)
	require.NoError(t, err)
	assert.InDelta(t, 4*(7-0), got, 1e-12)
}

func TestTrapezoidalLinear(t *testing.T) {
	// ∫₀⁴ 2x dx = 16, exact for the trapezoid rule
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 2, 4, 6, 8}

	got, err := Integrate(x, y, Trapezoidal)
	require.NoError(t, err)
	assert.InDelta(t, 16.0, got, 1e-12)
}

func TestTrapezoidalUnsorted(t *testing.T) {
	_, err := Integrate([]float64{0, 2, 1}, []float64{1, 1, 1}, Trapezoidal)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestRectangle(t *testing.T) {
	x := []float64{0, 1, 3}
	y := []float64{2, 4, 6}

	// widths: 0.5, 1.5, 1.0
	got, err := Integrate(x, y, Rectangle)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*2+1.5*4+1.0*6, got, 1e-12)
}

func TestRectangleConstantMatchesSpan(t *testing.T) {
	x := []float64{1, 2, 4, 8}
	y := []float64{3, 3, 3, 3}

	got, err := Integrate(x, y, Rectangle)
	require.NoError(t, err)
	assert.InDelta(t, 3*(8-1), got, 1e-12)
}

func TestSingleSample(t *testing.T) {
	for _, m := range Methods {
		got, err := Integrate([]float64{1}, []float64{5}, m)
		require.NoError(t, err)
		assert.Zero(t, got, "method %s", m)
	}
}

func TestLengthMismatch(t *testing.T) {
	for _, m := range Methods {
		_, err := Integrate([]float64{1, 2}, []float64{1}, m)
		assert.ErrorIs(t, err, errs.ErrLengthMismatch)
	}
}

func TestUnknownMethod(t *testing.T) {
	_, err := Integrate([]float64{1, 2}, []float64{1, 2}, "simpson")
	assert.ErrorIs(t, err, errs.ErrUnknownMethod)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("rectangle")
	require.NoError(t, err)
	assert.Equal(t, Rectangle, m)

	_, err = ParseMethod("simpson")
	assert.ErrorIs(t, err, errs.ErrUnknownMethod)
}
