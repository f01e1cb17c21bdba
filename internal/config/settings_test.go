package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedSettingsMatchDefaults(t *testing.T) {
	cfg, err := ParseSettings(defaultSettingsYAML)
	if err != nil {
		t.Fatalf("embedded settings invalid: %v", err)
	}
	def := DefaultSettings()
	if cfg.SpatialCellSize != def.SpatialCellSize {
		t.Errorf("SpatialCellSize = %v, expected %v", cfg.SpatialCellSize, def.SpatialCellSize)
	}
	if cfg.Champions.FuseCount != def.Champions.FuseCount {
		t.Errorf("FuseCount = %d, expected %d", cfg.Champions.FuseCount, def.Champions.FuseCount)
	}
	if len(cfg.StartingPowers) != 1 || cfg.StartingPowers[0] != "fireball" {
		t.Errorf("StartingPowers = %v", cfg.StartingPowers)
	}
}

func TestLoadSettingsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	data := []byte("seed: 42\nplayer:\n  speed: 310\nstarting_powers: [crucible, frost_nova]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	if cfg.Player.Speed != 310 {
		t.Errorf("Player.Speed = %v, expected 310", cfg.Player.Speed)
	}
	// Unset fields keep their defaults.
	if cfg.Player.MaxHealth != PlayerMaxHealth {
		t.Errorf("Player.MaxHealth = %v, expected default %v", cfg.Player.MaxHealth, PlayerMaxHealth)
	}
	if len(cfg.StartingPowers) != 2 || cfg.StartingPowers[0] != "crucible" {
		t.Errorf("StartingPowers = %v", cfg.StartingPowers)
	}
}

func TestLoadSettingsMissingCustomPath(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom settings file")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero delta", func(s *Settings) { s.MaxDeltaTime = 0 }},
		{"negative cell", func(s *Settings) { s.SpatialCellSize = -1 }},
		{"negative radius", func(s *Settings) { s.Player.Radius = -3 }},
		{"zero spawn interval", func(s *Settings) { s.Spawning.MinInterval = 0 }},
		{"single fuse", func(s *Settings) { s.Champions.FuseCount = 1 }},
		{"zero supercharge", func(s *Settings) { s.Crystals.PerSupercharge = 0 }},
		{"negative haste", func(s *Settings) { s.Crystals.HasteMagnitude = -0.1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, expected ErrInvalidSettings", err)
			}
		})
	}

	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestXPForNextLevel(t *testing.T) {
	if got := XPForNextLevel(1); got != BaseXPToLevel {
		t.Errorf("XPForNextLevel(1) = %d, expected %d", got, BaseXPToLevel)
	}
	prev := 0
	for lvl := 1; lvl < 10; lvl++ {
		need := XPForNextLevel(lvl)
		if need < prev {
			t.Fatalf("XP curve decreased at level %d: %d < %d", lvl, need, prev)
		}
		prev = need
	}
}
