package config

import (
	"os"
	"strconv"

	"github.com/lixenwraith/billiard/physics"
)

// Environment overrides, invalid values are ignored
const (
	EnvRadius       = "BILLIARD_RADIUS"
	EnvMode         = "BILLIARD_MODE"
	EnvIterations   = "BILLIARD_ITERATIONS"
	EnvOutput       = "BILLIARD_OUTPUT"
	EnvSoundEnabled = "BILLIARD_SOUND_ENABLED"
)

// ApplyEnv overlays environment variables onto c
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvRadius); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			c.Table.Radius = r
		}
	}

	if v := os.Getenv(EnvMode); v != "" {
		if m, err := physics.ParseMode(v); err == nil {
			c.Table.Mode = m
		}
	}

	if v := os.Getenv(EnvIterations); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Iterations = n
		}
	}

	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}

	if v := os.Getenv(EnvSoundEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Sound.Enabled = b
		}
	}
}
