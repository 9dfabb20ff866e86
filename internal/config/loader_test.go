package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := Default()
	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Enemy != def.Enemy {
		t.Errorf("enemy = %+v, expected %+v", cfg.Enemy, def.Enemy)
	}
	if len(cfg.Obstacles.Initial) != 2 {
		t.Fatalf("expected 2 initial obstacles, got %d", len(cfg.Obstacles.Initial))
	}
	for i, o := range cfg.Obstacles.Initial {
		if o != def.Obstacles.Initial[i] {
			t.Errorf("initial[%d] = %+v, expected %+v", i, o, def.Obstacles.Initial[i])
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\nenemy:\n  spawn_chance: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %f, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Enemy.SpawnChance != 0 {
		t.Errorf("spawn_chance = %f, expected 0", cfg.Enemy.SpawnChance)
	}
	// Unspecified values fall back to defaults
	if cfg.Physics.FlapImpulse != Default().Physics.FlapImpulse {
		t.Errorf("flap_impulse = %f, expected default", cfg.Physics.FlapImpulse)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("character:\n  size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero enemy size", func(c *Config) { c.Enemy.Size = 0 }, false},
		{"negative obstacle width", func(c *Config) { c.Obstacles.Width = -1 }, false},
		{"spawn chance above one", func(c *Config) { c.Enemy.SpawnChance = 1.5 }, false},
		{"empty height range", func(c *Config) { c.Obstacles.MaxTopHeight = c.Obstacles.MinTopHeight }, false},
		{"gap overflows playfield", func(c *Config) { c.Obstacles.Gap = 500 }, false},
		{"character below floor", func(c *Config) { c.Character.Y = 590 }, false},
		{"zero tick rate", func(c *Config) { c.Loop.TickRate = 0 }, false},
		{"no enemies", func(c *Config) { c.Enemy.SpawnChance = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMarshalRoundTripKeepsTiming(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Loop.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval() = %v, expected %v", cfg.Loop.TickInterval(), time.Second/60)
	}
	if cfg.Loop.HoldWindow() != 150*time.Millisecond {
		t.Errorf("HoldWindow() = %v, expected 150ms", cfg.Loop.HoldWindow())
	}
}
