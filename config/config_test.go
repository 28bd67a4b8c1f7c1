package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	s := Default()

	if !s.Explosions || !s.Blips || !s.Chars || !s.Shake || !s.Sound || !s.Fireworks {
		t.Errorf("effect toggles should default on: %+v", s)
	}
	if s.ReducedEffects {
		t.Errorf("reduced effects should default off")
	}
	if s.BaseXP != 50 {
		t.Errorf("BaseXP = %d, want 50", s.BaseXP)
	}
	if s.ComboTimeout != 10*time.Second {
		t.Errorf("ComboTimeout = %v, want 10s", s.ComboTimeout)
	}
	if s.PowerModeThreshold != 10 {
		t.Errorf("PowerModeThreshold = %d, want 10", s.PowerModeThreshold)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("POWERTYPE_BLIPS", "false")
	t.Setenv("POWERTYPE_BASE_XP", "75")
	t.Setenv("POWERTYPE_COMBO_TIMEOUT", "5s")
	t.Setenv("POWERTYPE_REDUCED_EFFECTS", "true")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if s.Blips {
		t.Errorf("Blips = true, want false")
	}
	if s.BaseXP != 75 {
		t.Errorf("BaseXP = %d, want 75", s.BaseXP)
	}
	if s.ComboTimeout != 5*time.Second {
		t.Errorf("ComboTimeout = %v, want 5s", s.ComboTimeout)
	}
	if !s.ReducedEffects {
		t.Errorf("ReducedEffects = false, want true")
	}
	// Unset keys fall back to defaults
	if !s.Explosions || s.PowerModeThreshold != 10 {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestNormalizeClampsTuning(t *testing.T) {
	s := Settings{
		BaseXP:             0,
		ComboTimeout:       -time.Second,
		PowerModeThreshold: 0,
		ShakeAmplitude:     -1,
		ShakeDecay:         0,
	}.Normalize()

	if s.BaseXP != 1 {
		t.Errorf("BaseXP = %d, want clamped 1", s.BaseXP)
	}
	if s.ComboTimeout != 10*time.Second {
		t.Errorf("ComboTimeout = %v, want 10s", s.ComboTimeout)
	}
	if s.PowerModeThreshold != 1 {
		t.Errorf("PowerModeThreshold = %d, want 1", s.PowerModeThreshold)
	}
	if s.ShakeAmplitude != 0 {
		t.Errorf("ShakeAmplitude = %d, want 0", s.ShakeAmplitude)
	}
	if s.ShakeDecay != time.Second {
		t.Errorf("ShakeDecay = %v, want 1s", s.ShakeDecay)
	}
}
