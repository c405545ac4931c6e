package hydro

import (
	"fmt"

	"github.com/san-kum/reefhydro/internal/coral"
)

// Model is the capability set every hydrodynamic backend must implement.
// Binding is checked at compile time by the package providing the
// backend; a missing capability is a build failure, not a runtime probe.
type Model interface {
	// ConfigFile returns the backend's configuration file path.
	// Analytical backends fail with ErrNotImplemented.
	ConfigFile() (string, error)

	// DefinitionFile returns the backend's model definition file path.
	// Analytical backends fail with ErrNotImplemented.
	DefinitionFile() (string, error)

	// Settings returns a human-readable summary of the active configuration.
	Settings() string

	// WaterDepth returns the current per-node water depth.
	WaterDepth() ([]float64, error)

	// Space returns the node count of the model domain.
	Space() int

	XCoordinates() []float64
	YCoordinates() []float64
	XYCoordinates() [][2]float64

	// Initiate prepares the backend for stepping. Called exactly once,
	// before the first Update.
	Initiate() error

	// Update advances one simulation step and returns the forcing for it.
	Update(c *coral.Coral, stormCat int) (Forcing, error)

	// Finalise releases backend resources. Called exactly once, after
	// the last Update.
	Finalise() error
}

// Forcing is the per-step output of a backend. Storm steps carry the
// maximum current and wave velocities over the domain; calm steps carry
// the mean current velocity, mean wave velocity and mean wave period.
type Forcing struct {
	Storm           bool
	CurrentVelocity float64 // max in storm, mean otherwise [m/s]
	WaveVelocity    float64 // max in storm, mean otherwise [m/s]
	WavePeriod      float64 // mean wave period, calm only [s]
}

// Values returns the forcing as a slice: two elements for a storm step,
// three for a calm step.
func (f Forcing) Values() []float64 {
	if f.Storm {
		return []float64{f.CurrentVelocity, f.WaveVelocity}
	}
	return []float64{f.CurrentVelocity, f.WaveVelocity, f.WavePeriod}
}

// Phase tracks the backend lifecycle: Uninitiated -> Initiated ->
// Finalised, with updates allowed only while Initiated.
type Phase int

const (
	Uninitiated Phase = iota
	Initiated
	Finalised
)

func (p Phase) String() string {
	switch p {
	case Uninitiated:
		return "uninitiated"
	case Initiated:
		return "initiated"
	case Finalised:
		return "finalised"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
