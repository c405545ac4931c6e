// Package reef implements the analytical one-dimensional hydrodynamic
// backend. It satisfies [hydro.Model] and derives wave mechanics from a
// cross-shore bathymetry profile via the linear-wave dispersion
// relation, for order-of-magnitude forcing estimates on a coral reef.
package reef

import (
	"fmt"
	"strings"

	"github.com/san-kum/reefhydro/internal/coral"
	"github.com/san-kum/reefhydro/internal/hydro"
	"github.com/san-kum/reefhydro/internal/waves"
)

// Config is the full configuration of a Reef1D model. Every field below
// the water level must be set before Initiate succeeds; the zero value
// of Dx, Tp and Bathymetry counts as unconfigured.
type Config struct {
	Bathymetry []float64 // depth at rest per node [m], positive down
	Dx         float64   // node spacing [m]
	Hs         float64   // significant wave height [m]
	Tp         float64   // peak wave period [s]

	// WaterLevel offsets the bathymetry to obtain depth. Fixed at 0 for
	// now, placeholder for tidal forcing.
	WaterLevel float64

	// Canopy geometry used by the velocity reduction.
	CanopyDiameter float64
	CanopyHeight   float64
	CanopyDensity  float64
}

func (c Config) validate() error {
	if len(c.Bathymetry) == 0 {
		return fmt.Errorf("reef1d: bathymetry unset: %w", hydro.ErrNotConfigured)
	}
	if c.Dx <= 0 {
		return fmt.Errorf("reef1d: node spacing must be positive, got %f: %w", c.Dx, hydro.ErrNotConfigured)
	}
	if c.Tp <= 0 {
		return fmt.Errorf("reef1d: peak wave period must be positive, got %f: %w", c.Tp, hydro.ErrNotConfigured)
	}
	if c.Hs < 0 {
		return fmt.Errorf("reef1d: significant wave height must be non-negative, got %f: %w", c.Hs, hydro.ErrNotConfigured)
	}
	return nil
}

// Reef1D is the analytical reef backend. It owns its bathymetry and
// forcing parameters for its lifetime; wave-field values are recomputed
// on each access, never cached as state.
type Reef1D struct {
	cfg     Config
	phase   hydro.Phase
	reducer Reducer

	// scratch buffers, allocated by Initiate, released by Finalise
	depth []float64
	curr  []float64
	wave  []float64
}

var _ hydro.Model = (*Reef1D)(nil)

// New returns an uninitiated Reef1D with the zero-velocity reducer.
func New(cfg Config) *Reef1D {
	return &Reef1D{cfg: cfg, reducer: zeroReducer{}}
}

// SetReducer replaces the velocity reduction. Must not be called while
// an Update is in flight.
func (r *Reef1D) SetReducer(red Reducer) {
	if red == nil {
		red = zeroReducer{}
	}
	r.reducer = red
}

// SetForcing updates the wave forcing between steps.
func (r *Reef1D) SetForcing(hs, tp float64) error {
	if tp <= 0 {
		return fmt.Errorf("reef1d: peak wave period must be positive, got %f: %w", tp, hydro.ErrNotConfigured)
	}
	if hs < 0 {
		return fmt.Errorf("reef1d: significant wave height must be non-negative, got %f: %w", hs, hydro.ErrNotConfigured)
	}
	r.cfg.Hs = hs
	r.cfg.Tp = tp
	return nil
}

// ConfigFile fails: the analytical backend has no file-based configuration.
func (r *Reef1D) ConfigFile() (string, error) {
	return "", fmt.Errorf("reef1d has no configuration file: %w", hydro.ErrNotImplemented)
}

// DefinitionFile fails: the analytical backend has no definition file.
func (r *Reef1D) DefinitionFile() (string, error) {
	return "", fmt.Errorf("reef1d has no definition file: %w", hydro.ErrNotImplemented)
}

// Space returns the node count of the profile.
func (r *Reef1D) Space() int {
	return len(r.cfg.Bathymetry)
}

// XCoordinates returns the cross-shore position of each node,
// evenly spaced at 0, dx, 2dx, ...
func (r *Reef1D) XCoordinates() []float64 {
	if r.Space() == 0 || r.cfg.Dx <= 0 {
		return nil
	}
	x := make([]float64, r.Space())
	for i := range x {
		x[i] = float64(i) * r.cfg.Dx
	}
	return x
}

// YCoordinates returns the single zero alongshore coordinate of the 1D domain.
func (r *Reef1D) YCoordinates() []float64 {
	return []float64{0}
}

// XYCoordinates pairs each x position with the zero y coordinate.
func (r *Reef1D) XYCoordinates() [][2]float64 {
	x := r.XCoordinates()
	if x == nil {
		return nil
	}
	y := r.YCoordinates()
	xy := make([][2]float64, len(x))
	for i := range x {
		xy[i] = [2]float64{x[i], y[0]}
	}
	return xy
}

// WaterLevel returns the still-water offset above the bathymetric datum.
func (r *Reef1D) WaterLevel() float64 {
	return r.cfg.WaterLevel
}

// Depth returns bathymetry + water level per node.
func (r *Reef1D) Depth() []float64 {
	d := make([]float64, len(r.cfg.Bathymetry))
	for i, b := range r.cfg.Bathymetry {
		d[i] = b + r.cfg.WaterLevel
	}
	return d
}

// WaterDepth returns the current depth series. It is backend-computed,
// identical to Depth, and fails while the bathymetry is unset.
func (r *Reef1D) WaterDepth() ([]float64, error) {
	if len(r.cfg.Bathymetry) == 0 {
		return nil, fmt.Errorf("reef1d: bathymetry unset: %w", hydro.ErrNotConfigured)
	}
	return r.Depth(), nil
}

// WavePeriod returns the peak wave period, uniform over the domain.
func (r *Reef1D) WavePeriod() float64 {
	return r.cfg.Tp
}

// WaveFrequency returns the angular frequency of the peak period, or 0
// while the period is unconfigured.
func (r *Reef1D) WaveFrequency() float64 {
	return waves.Frequency(r.cfg.Tp)
}

// WaveField solves the dispersion relation over the current depth
// profile. A non-nil error lists nodes that failed to converge; those
// are recorded as dry and the field remains usable.
func (r *Reef1D) WaveField() (*waves.Field, error) {
	if err := r.cfg.validate(); err != nil {
		return nil, err
	}
	return waves.Solve(r.Depth(), r.cfg.Tp)
}

// Settings composes a diagnostic report of the active configuration.
func (r *Reef1D) Settings() string {
	bathRange := "unset"
	domainLen := "unset"
	if n := len(r.cfg.Bathymetry); n > 0 {
		lo, hi := r.cfg.Bathymetry[0], r.cfg.Bathymetry[0]
		for _, b := range r.cfg.Bathymetry[1:] {
			if b < lo {
				lo = b
			}
			if b > hi {
				hi = b
			}
		}
		bathRange = fmt.Sprintf("%.2f to %.2f", lo, hi)
		if r.cfg.Dx > 0 {
			domainLen = fmt.Sprintf("%.1f", float64(n)*r.cfg.Dx)
		}
	}

	var b strings.Builder
	b.WriteString("One-dimensional analytical model of the hydrodynamics on a coral reef:\n")
	fmt.Fprintf(&b, "\tbathymetric cross-shore data : %d nodes\n", r.Space())
	fmt.Fprintf(&b, "\t\trange [m]  : %s\n", bathRange)
	fmt.Fprintf(&b, "\t\tlength [m] : %s\n", domainLen)
	fmt.Fprintf(&b, "\tsignificant wave height [m]  : %.2f\n", r.cfg.Hs)
	fmt.Fprintf(&b, "\tpeak wave period [s]         : %.2f", r.cfg.Tp)
	return b.String()
}

// Initiate validates the configuration and allocates the step buffers.
func (r *Reef1D) Initiate() error {
	if r.phase != hydro.Uninitiated {
		return fmt.Errorf("reef1d: initiate called while %s: %w", r.phase, hydro.ErrInvalidState)
	}
	if err := r.cfg.validate(); err != nil {
		return err
	}
	n := r.Space()
	r.depth = make([]float64, n)
	r.curr = make([]float64, n)
	r.wave = make([]float64, n)
	r.phase = hydro.Initiated
	return nil
}

// Update advances one step: it solves the wave field for the current
// depth profile, reduces it to per-node current and wave velocities,
// and aggregates them into the forcing for this step.
//
// A non-nil error carries per-node convergence failures; the returned
// forcing is still valid, with the failing nodes treated as dry.
func (r *Reef1D) Update(c *coral.Coral, stormCat int) (hydro.Forcing, error) {
	if r.phase != hydro.Initiated {
		return hydro.Forcing{}, fmt.Errorf("reef1d: update called while %s: %w", r.phase, hydro.ErrInvalidState)
	}
	if len(r.cfg.Bathymetry) != len(r.depth) {
		return hydro.Forcing{}, fmt.Errorf("reef1d: bathymetry has %d nodes but initiate allocated %d: %w",
			len(r.cfg.Bathymetry), len(r.depth), hydro.ErrDimensionMismatch)
	}

	for i, b := range r.cfg.Bathymetry {
		r.depth[i] = b + r.cfg.WaterLevel
	}

	field, solveErr := waves.Solve(r.depth, r.cfg.Tp)
	r.reducer.Reduce(field, r.depth, r.cfg.Hs, r.cfg.Tp, c, r.curr, r.wave)

	f := hydro.Forcing{Storm: stormCat > 0}
	if f.Storm {
		f.CurrentVelocity = maxOf(r.curr)
		f.WaveVelocity = maxOf(r.wave)
	} else {
		f.CurrentVelocity = meanOf(r.curr)
		f.WaveVelocity = meanOf(r.wave)
		f.WavePeriod = r.cfg.Tp
	}
	return f, solveErr
}

// Finalise releases the step buffers.
func (r *Reef1D) Finalise() error {
	if r.phase != hydro.Initiated {
		return fmt.Errorf("reef1d: finalise called while %s: %w", r.phase, hydro.ErrInvalidState)
	}
	r.depth = nil
	r.curr = nil
	r.wave = nil
	r.phase = hydro.Finalised
	return nil
}

func maxOf(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
