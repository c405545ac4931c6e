// Package bathy generates synthetic cross-shore bathymetry profiles
// for demos and tests: a sloped fore-reef running up to a shallow reef
// flat, roughened with layered simplex noise.
package bathy

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds profile generation parameters.
type GenConfig struct {
	Nodes     int     // number of cross-shore nodes
	Seed      int64   // random seed (0 = random)
	Offshore  float64 // depth at the seaward end [m]
	FlatDepth float64 // depth over the reef flat [m]
	FlatFrac  float64 // fraction of the profile occupied by the flat (0-1)
	Roughness float64 // noise amplitude as a fraction of local depth
}

// DefaultGenConfig returns a fringing-reef style profile setup.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Nodes:     50,
		Seed:      0,
		Offshore:  30,
		FlatDepth: 1,
		FlatFrac:  0.3,
		Roughness: 0.1,
	}
}

// Generate builds a bathymetry profile, seaward node first. The same
// seed always produces the same profile.
func Generate(cfg GenConfig) []float64 {
	if cfg.Nodes < 1 {
		cfg.Nodes = 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)

	flatStart := int(float64(cfg.Nodes) * (1 - cfg.FlatFrac))
	if flatStart < 1 {
		flatStart = 1
	}

	bath := make([]float64, cfg.Nodes)
	for i := range bath {
		var depth float64
		if i < flatStart {
			// linear fore-reef slope from offshore depth to the flat
			frac := float64(i) / float64(flatStart)
			depth = cfg.Offshore + (cfg.FlatDepth-cfg.Offshore)*frac
		} else {
			depth = cfg.FlatDepth
		}

		// octave noise centered on zero, scaled by local depth
		n := octaveNoise(noise, float64(i)*0.15, 0.5, 3, 1.0, 0.5) - 0.5
		bath[i] = depth * (1 + 2*cfg.Roughness*n)
	}
	return bath
}

// octaveNoise sums octaves of simplex noise, normalized to [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}
