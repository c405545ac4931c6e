package reef

import (
	"math"

	"github.com/san-kum/reefhydro/internal/coral"
	"github.com/san-kum/reefhydro/internal/waves"
)

// Reducer turns the wave field into per-node current and wave velocity
// magnitudes. It is the extension point for canopy-resolving physics;
// the simplified model carries none of its own and defaults to zero
// velocities.
//
// Reduce writes into curr and wave, which are index-aligned with the
// depth profile and pre-sized by the caller.
type Reducer interface {
	Reduce(f *waves.Field, depth []float64, hs, tp float64, c *coral.Coral, curr, wave []float64)
}

// zeroReducer yields zero velocities everywhere.
type zeroReducer struct{}

func (zeroReducer) Reduce(_ *waves.Field, _ []float64, _, _ float64, _ *coral.Coral, curr, wave []float64) {
	for i := range curr {
		curr[i] = 0
		wave[i] = 0
	}
}

// OrbitalReducer estimates the near-bed wave orbital velocity from
// linear theory,
//
//	u = pi*Hs / (Tp * sinh(k*h))
//
// at each wet node. It carries no current model and no canopy drag;
// currents stay zero.
type OrbitalReducer struct{}

func (OrbitalReducer) Reduce(f *waves.Field, depth []float64, hs, tp float64, _ *coral.Coral, curr, wave []float64) {
	for i := range wave {
		curr[i] = 0
		wave[i] = 0
		if f == nil || i >= len(f.Number) {
			continue
		}
		kh := f.Number[i] * depth[i]
		if kh <= 0 {
			continue
		}
		wave[i] = math.Pi * hs / (tp * math.Sinh(kh))
	}
}
