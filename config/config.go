// Package config defines the settings snapshot consumed by the effects engine.
// Snapshots are immutable from the core's perspective; the host (or the demo
// binary) builds a new snapshot and delivers it via a config-change event.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings is one configuration snapshot
type Settings struct {
	// Feature toggles
	Explosions      bool `env:"POWERTYPE_EXPLOSIONS" envDefault:"true"`
	Blips           bool `env:"POWERTYPE_BLIPS" envDefault:"true"`
	Chars           bool `env:"POWERTYPE_CHARS" envDefault:"true"`
	Shake           bool `env:"POWERTYPE_SHAKE" envDefault:"true"`
	Sound           bool `env:"POWERTYPE_SOUND" envDefault:"true"`
	Fireworks       bool `env:"POWERTYPE_FIREWORKS" envDefault:"true"`
	ReducedEffects  bool `env:"POWERTYPE_REDUCED_EFFECTS" envDefault:"false"`
	EnableStatusBar bool `env:"POWERTYPE_STATUS_BAR" envDefault:"true"`

	// Numeric tuning
	ShakeAmplitude     int           `env:"POWERTYPE_SHAKE_AMPLITUDE" envDefault:"3"`
	ShakeDecay         time.Duration `env:"POWERTYPE_SHAKE_DECAY" envDefault:"1s"`
	BaseXP             int           `env:"POWERTYPE_BASE_XP" envDefault:"50"`
	ComboTimeout       time.Duration `env:"POWERTYPE_COMBO_TIMEOUT" envDefault:"10s"`
	PowerModeThreshold int           `env:"POWERTYPE_POWER_MODE_THRESHOLD" envDefault:"10"`
}

// Default returns the built-in settings snapshot
func Default() Settings {
	return Settings{
		Explosions:         true,
		Blips:              true,
		Chars:              true,
		Shake:              true,
		Sound:              true,
		Fireworks:          true,
		ReducedEffects:     false,
		EnableStatusBar:    true,
		ShakeAmplitude:     3,
		ShakeDecay:         time.Second,
		BaseXP:             50,
		ComboTimeout:       10 * time.Second,
		PowerModeThreshold: 10,
	}
}

// FromEnv builds a snapshot from POWERTYPE_* environment variables,
// falling back to the documented defaults for unset keys
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	return s.Normalize(), nil
}

// Normalize clamps out-of-range tuning values in place of erroring:
// configuration problems self-heal, they never surface as failures
func (s Settings) Normalize() Settings {
	if s.BaseXP < 1 {
		s.BaseXP = 1
	}
	if s.ComboTimeout <= 0 {
		s.ComboTimeout = 10 * time.Second
	}
	if s.PowerModeThreshold < 1 {
		s.PowerModeThreshold = 1
	}
	if s.ShakeAmplitude < 0 {
		s.ShakeAmplitude = 0
	}
	if s.ShakeDecay <= 0 {
		s.ShakeDecay = time.Second
	}
	return s
}
