package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/reefhydro/internal/reef"
)

const (
	DefaultDx        = 10.0
	DefaultHs        = 1.5
	DefaultTp        = 8.0
	DefaultSteps     = 10
	DefaultCanDia    = 0.1
	DefaultCanHeight = 0.1
	DefaultCanDen    = 10.0
)

type Config struct {
	Model         string       `yaml:"model"`
	Bathymetry    []float64    `yaml:"bathymetry"`
	Dx            float64      `yaml:"dx"`
	Hs            float64      `yaml:"hs"`
	Tp            float64      `yaml:"tp"`
	WaterLevel    float64      `yaml:"water_level"`
	StormCategory int          `yaml:"storm_category"`
	Steps         int          `yaml:"steps"`
	Reducer       string       `yaml:"reducer"`
	Canopy        CanopyConfig `yaml:"canopy"`
}

type CanopyConfig struct {
	Diameter float64 `yaml:"diameter"`
	Height   float64 `yaml:"height"`
	Density  float64 `yaml:"density"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "reef1d",
		Bathymetry: []float64{5, 5, 5, 5, 5},
		Dx:         DefaultDx,
		Hs:         DefaultHs,
		Tp:         DefaultTp,
		Steps:      DefaultSteps,
		Reducer:    "zero",
		Canopy: CanopyConfig{
			Diameter: DefaultCanDia,
			Height:   DefaultCanHeight,
			Density:  DefaultCanDen,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Bathymetry) == 0 {
		return fmt.Errorf("config: bathymetry must have at least one node")
	}
	if c.Dx <= 0 {
		return fmt.Errorf("config: dx must be positive, got %f", c.Dx)
	}
	if c.Tp <= 0 {
		return fmt.Errorf("config: tp must be positive, got %f", c.Tp)
	}
	if c.Hs < 0 {
		return fmt.Errorf("config: hs must be non-negative, got %f", c.Hs)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: steps must be non-negative, got %d", c.Steps)
	}
	return nil
}

// ReefConfig maps the run configuration onto the backend configuration.
func (c *Config) ReefConfig() reef.Config {
	return reef.Config{
		Bathymetry:     c.Bathymetry,
		Dx:             c.Dx,
		Hs:             c.Hs,
		Tp:             c.Tp,
		WaterLevel:     c.WaterLevel,
		CanopyDiameter: c.Canopy.Diameter,
		CanopyHeight:   c.Canopy.Height,
		CanopyDensity:  c.Canopy.Density,
	}
}

// NewReducer resolves the configured reducer name. The empty name and
// "zero" select the default reducer (nil, which the backend maps to the
// zero reducer).
func (c *Config) NewReducer() (reef.Reducer, error) {
	switch c.Reducer {
	case "", "zero":
		return nil, nil
	case "orbital":
		return reef.OrbitalReducer{}, nil
	default:
		return nil, fmt.Errorf("config: unknown reducer: %s", c.Reducer)
	}
}
