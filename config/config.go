package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/billiard/physics"
)

// ErrInvalidConfig indicates a configuration value outside its valid range
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full run configuration
//
// File format (YAML):
//
//	table:
//	  radius: 7.5
//	  mode: flat-bottom
//	iterations: 30
//	start: {x: 2.0, y: 1.0, angle: 0.5}
//	output: simulation_data.txt
type Config struct {
	Table      TableConfig `yaml:"table"`
	Iterations int         `yaml:"iterations"`
	Start      StartConfig `yaml:"start"`
	Output     string      `yaml:"output"`
	Plot       bool        `yaml:"plot"`
	Sound      SoundConfig `yaml:"sound"`
	Log        LogConfig   `yaml:"log"`
}

// TableConfig describes the boundary
type TableConfig struct {
	Radius float64      `yaml:"radius"`
	Mode   physics.Mode `yaml:"mode"`
}

// StartConfig holds the initial conditions offered as defaults
type StartConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

// SoundConfig controls trajectory sonification
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	WAV     string  `yaml:"wav"`     // Export path, empty disables export
	Play    bool    `yaml:"play"`    // Live playback through the speaker
	ToneMs  int     `yaml:"tone_ms"` // Tone length per bounce
	BaseHz  float64 `yaml:"base_hz"` // Lowest arc pitch
	Volume  float64 `yaml:"volume"`  // Gain in [0, 1]
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Radius: 7.5,
			Mode:   physics.Full,
		},
		Iterations: 30,
		Start: StartConfig{
			X:     2.0,
			Y:     1.0,
			Angle: 0.5,
		},
		Output: "simulation_data.txt",
		Sound: SoundConfig{
			ToneMs: 60,
			BaseHz: 220,
			Volume: 0.5,
		},
	}
}

// Load reads a YAML file over the defaults; empty path returns defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks ranges; starting position is validated against the table at run time
func (c *Config) Validate() error {
	if err := c.PhysicsTable().Validate(); err != nil {
		return err
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Sound.ToneMs <= 0 {
		return fmt.Errorf("%w: sound.tone_ms %d", ErrInvalidConfig, c.Sound.ToneMs)
	}
	if c.Sound.BaseHz <= 0 {
		return fmt.Errorf("%w: sound.base_hz %g", ErrInvalidConfig, c.Sound.BaseHz)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume %g", ErrInvalidConfig, c.Sound.Volume)
	}
	return nil
}

// PhysicsTable returns the engine boundary
func (c *Config) PhysicsTable() physics.Table {
	return physics.Table{Radius: c.Table.Radius, Mode: c.Table.Mode}
}

// StartState returns the configured initial conditions, unvalidated
func (c *Config) StartState() physics.State {
	return physics.State{X: c.Start.X, Y: c.Start.Y, Angle: c.Start.Angle}
}
