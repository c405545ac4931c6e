package waves

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/reefhydro/internal/hydro"
)

// Gravity is the gravitational acceleration [m/s2].
const Gravity = 9.81

const (
	maxIterations = 100
	relTolerance  = 1e-10
)

// Frequency returns the angular wave frequency 2*pi/T [rad/s], or 0 for
// a non-positive period (unconfigured forcing).
func Frequency(period float64) float64 {
	if period <= 0 {
		return 0
	}
	return 2 * math.Pi / period
}

// DeepWaterLength returns the deep-water starting estimate g*T^2 used
// to seed the dispersion solve.
func DeepWaterLength(period float64) float64 {
	return Gravity * period * period
}

// Length solves the dispersion relation
//
//	L = (g*T^2 / 2*pi) * tanh(2*pi*h / L)
//
// for the wave length at a single node via Newton iteration. Dry nodes
// (depth <= 0) return 0 without invoking the solver.
func Length(depth, period float64) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("waves: period must be positive, got %f", period)
	}
	if depth <= 0 {
		return 0, nil
	}

	a := Gravity * period * period / (2 * math.Pi)
	b := 2 * math.Pi * depth

	l := DeepWaterLength(period)
	for i := 0; i < maxIterations; i++ {
		arg := b / l
		f := l - a*math.Tanh(arg)

		// d/dL of L - a*tanh(b/L) = 1 + a*b / (L^2 * cosh^2(b/L))
		cosh := math.Cosh(arg)
		df := 1 + a*b/(l*l*cosh*cosh)

		step := f / df
		l -= step

		if l <= 0 {
			// Overshoot below zero cannot happen for physical depths,
			// treat as divergence.
			break
		}
		if math.Abs(f) <= relTolerance*l && math.Abs(step) <= relTolerance*l {
			return l, nil
		}
	}
	return 0, &hydro.NodeError{Depth: depth, Wrapped: hydro.ErrNoConvergence}
}

// Number returns the wave number 2*pi/L, or 0 for a zero wave length.
func Number(length float64) float64 {
	if length <= 0 {
		return 0
	}
	return 2 * math.Pi / length
}

// Celerity returns the wave celerity L/T.
func Celerity(length, period float64) float64 {
	return length / period
}

// GroupCelerity returns n*c with n = 0.5*(1 + 2*k*h/sinh(k*h)).
// The k*h == 0 case (dry node convention) returns 0.
func GroupCelerity(length, depth, period float64) float64 {
	k := Number(length)
	kh := k * depth
	if kh <= 0 {
		return 0
	}
	n := 0.5 * (1 + 2*kh/math.Sinh(kh))
	return n * Celerity(length, period)
}

// Field holds per-node wave quantities, index-aligned with the
// bathymetry profile they were derived from.
type Field struct {
	Length        []float64
	Number        []float64
	Celerity      []float64
	GroupCelerity []float64
}

// Solve evaluates the wave field for the given depth profile and peak
// period. Nodes are independent and solved across a worker pool; output
// ordering is index-stable regardless of execution order.
//
// A node whose dispersion solve fails to converge is recorded as dry
// (all quantities zero) and reported in the joined error; the remaining
// nodes are still computed. The returned field is always usable.
func Solve(depths []float64, period float64) (*Field, error) {
	if period <= 0 {
		return nil, fmt.Errorf("waves: period must be positive, got %f", period)
	}

	n := len(depths)
	f := &Field{
		Length:        make([]float64, n),
		Number:        make([]float64, n),
		Celerity:      make([]float64, n),
		GroupCelerity: make([]float64, n),
	}

	nodeErrs := make([]error, n)
	parallelFor(n, 64, func(start, end int) {
		for i := start; i < end; i++ {
			l, err := Length(depths[i], period)
			if err != nil {
				var ne *hydro.NodeError
				if errors.As(err, &ne) {
					ne.Node = i
				}
				nodeErrs[i] = err
				continue
			}
			f.Length[i] = l
			f.Number[i] = Number(l)
			f.Celerity[i] = Celerity(l, period)
			f.GroupCelerity[i] = GroupCelerity(l, depths[i], period)
		}
	})

	return f, errors.Join(nodeErrs...)
}
