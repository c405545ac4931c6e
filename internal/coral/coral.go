// Package coral holds the coral descriptor passed through hydrodynamic
// backends. The hydrodynamics core never mutates it; backends read
// whatever scalar geometry they need.
package coral

// Coral describes the canopy geometry of a coral colony.
type Coral struct {
	Diameter float64 // representative canopy diameter [m]
	Height   float64 // canopy height above the bed [m]
	Density  float64 // colonies per unit bed area [1/m2]
}

// New returns a coral with a small massive-colony geometry.
func New() *Coral {
	return &Coral{
		Diameter: 0.1,
		Height:   0.1,
		Density:  10,
	}
}
