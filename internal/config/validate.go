package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

// Validate rejects configurations the simulation cannot run with:
// non-positive sizes, empty random ranges, out-of-range probabilities and
// obstacles whose gap does not fit the playfield.
func (c Config) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"character.size", c.Character.Size},
		{"projectile.size", c.Projectile.Size},
		{"projectile.speed", c.Projectile.Speed},
		{"enemy.size", c.Enemy.Size},
		{"enemy.speed", c.Enemy.Speed},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap", c.Obstacles.Gap},
		{"obstacles.scroll_speed", c.Obstacles.ScrollSpeed},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %g: %w", p.name, p.val, ErrInvalid)
		}
	}

	if c.Enemy.Jitter < 0 {
		return fmt.Errorf("config: enemy.jitter must not be negative, got %g: %w", c.Enemy.Jitter, ErrInvalid)
	}
	if c.Enemy.SpawnChance < 0 || c.Enemy.SpawnChance > 1 {
		return fmt.Errorf("config: enemy.spawn_chance must be within [0, 1], got %g: %w", c.Enemy.SpawnChance, ErrInvalid)
	}
	if c.Character.Size >= c.Playfield.Height {
		return fmt.Errorf("config: character.size must be smaller than playfield.height: %w", ErrInvalid)
	}
	if c.Character.Y < 0 || c.Character.Y > c.Playfield.Height-c.Character.Size {
		return fmt.Errorf("config: character.y %g is outside the playfield: %w", c.Character.Y, ErrInvalid)
	}

	obs := c.Obstacles
	if obs.MinTopHeight < 0 || obs.MaxTopHeight <= obs.MinTopHeight {
		return fmt.Errorf("config: obstacles top height range [%g, %g) is empty: %w",
			obs.MinTopHeight, obs.MaxTopHeight, ErrInvalid)
	}
	if obs.MaxTopHeight+obs.Gap > c.Playfield.Height {
		return fmt.Errorf("config: obstacles gap does not fit below max_top_height: %w", ErrInvalid)
	}
	if obs.TargetCount <= 0 {
		return fmt.Errorf("config: obstacles.target_count must be positive, got %d: %w", obs.TargetCount, ErrInvalid)
	}
	if obs.Spacing < 0 {
		return fmt.Errorf("config: obstacles.spacing must not be negative, got %g: %w", obs.Spacing, ErrInvalid)
	}

	if c.Scoring.EnemyHit < 0 || c.Scoring.ObstacleCleared < 0 {
		return fmt.Errorf("config: scoring rewards must not be negative: %w", ErrInvalid)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: loop.tick_rate must be positive, got %d: %w", c.Loop.TickRate, ErrInvalid)
	}
	if c.Loop.HoldWindowMS < 0 {
		return fmt.Errorf("config: loop.hold_window_ms must not be negative: %w", ErrInvalid)
	}
	return nil
}
