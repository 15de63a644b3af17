package integrate

import (
	"sort"

	"github.com/planbiir/tourenergy/internal/errs"
	gonumint "gonum.org/v1/gonum/integrate"
)

// Method names a quadrature rule
type Method string

const (
	Rectangle   Method = "rectangle"
	Trapezoidal Method = "trapezoidal"
)

// Methods lists the supported rules
var Methods = []Method{Rectangle, Trapezoidal}

// ParseMethod validates a method name coming from config or flags
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	switch m {
	case Rectangle, Trapezoidal:
		return m, nil
	}
	return "", errs.New(errs.UnknownMethod, "no such implementation for quadrature rule %q", name)
}

// Integrate approximates the area under the sampled curve y(x)
func Integrate(x, y []float64, method Method) (float64, error) {
	if len(x) != len(y) {
		return 0, errs.New(errs.LengthMismatch, "x and y must be the same length (%d != %d)", len(x), len(y))
	}

	switch method {
	case Rectangle:
		return rectangle(x, y), nil
	case Trapezoidal:
		return trapezoidal(x, y)
	default:
		return 0, errs.New(errs.UnknownMethod, "no such implementation for quadrature rule %q", method)
	}
}

// rectangle weights each sample by half the gap to each neighbor.
// Boundary samples only have one neighbor.
func rectangle(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		var width float64
		switch i {
		case 0:
			width = 0.5 * (x[1] - x[0])
		case n - 1:
			width = 0.5 * (x[n-1] - x[n-2])
		default:
			width = 0.5 * (x[i+1] - x[i-1])
		}
		sum += width * y[i]
	}
	return sum
}

// trapezoidal guards the inputs gonum panics on
func trapezoidal(x, y []float64) (float64, error) {
	if len(x) < 2 {
		return 0, nil
	}
	if !sort.Float64sAreSorted(x) {
		return 0, errs.New(errs.InvalidInput, "x must be non-decreasing for the trapezoidal rule")
	}
	return gonumint.Trapezoidal(x, y), nil
}
