// Package config provides YAML-based configuration loading and validation
// for the skyraid simulation.
package config

import "time"

// Config contains all tunable parameters of a run.
type Config struct {
	Playfield  Playfield  `yaml:"playfield"`
	Physics    Physics    `yaml:"physics"`
	Character  Character  `yaml:"character"`
	Projectile Projectile `yaml:"projectile"`
	Enemy      Enemy      `yaml:"enemy"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Scoring    Scoring    `yaml:"scoring"`
	Loop       Loop       `yaml:"loop"`
}

// Playfield is the logical coordinate space entities move within.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the arcade approximation of flight.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity while flap is held (negative = up)
}

// Character defines the controlled character's spawn point and size.
type Character struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// Projectile defines projectile speed and size.
type Projectile struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// Enemy defines enemy spawning and motion.
type Enemy struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`        // Inward speed along the spawn axis
	Jitter      float64 `yaml:"jitter"`       // Max perpendicular speed, either direction
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick spawn probability
}

// Obstacles defines the scrolling barrier pairs.
type Obstacles struct {
	Width        float64        `yaml:"width"`
	Gap          float64        `yaml:"gap"`
	ScrollSpeed  float64        `yaml:"scroll_speed"`
	Spacing      float64        `yaml:"spacing"` // Distance the newest obstacle travels before the next spawns
	MinTopHeight float64        `yaml:"min_top_height"`
	MaxTopHeight float64        `yaml:"max_top_height"`
	TargetCount  int            `yaml:"target_count"`
	Initial      []SeedObstacle `yaml:"initial"` // Obstacles placed on every reset
}

// SeedObstacle is an obstacle placed at reset time.
type SeedObstacle struct {
	X         float64 `yaml:"x"`
	TopHeight float64 `yaml:"top_height"`
}

// Scoring defines score rewards.
type Scoring struct {
	EnemyHit        int `yaml:"enemy_hit"`
	ObstacleCleared int `yaml:"obstacle_cleared"`
}

// Loop defines timing of the tick driver and input handling.
type Loop struct {
	TickRate     int `yaml:"tick_rate"`      // Simulation ticks per second
	HoldWindowMS int `yaml:"hold_window_ms"` // How long a flap key press counts as held
}

// TickInterval returns the fixed duration between ticks.
func (l Loop) TickInterval() time.Duration {
	if l.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.TickRate)
}

// HoldWindow returns the flap hold window as a duration.
func (l Loop) HoldWindow() time.Duration {
	return time.Duration(l.HoldWindowMS) * time.Millisecond
}
