package config

import (
	_ "embed"
)

//go:embed defaults/skyraid.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// defaults/skyraid.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Physics: Physics{
			Gravity:     0.6,
			FlapImpulse: -8,
		},
		Character: Character{
			X:    100,
			Y:    250,
			Size: 30,
		},
		Projectile: Projectile{
			Speed: 10,
			Size:  8,
		},
		Enemy: Enemy{
			Size:        30,
			Speed:       2,
			Jitter:      1,
			SpawnChance: 0.02,
		},
		Obstacles: Obstacles{
			Width:        60,
			Gap:          200,
			ScrollSpeed:  3,
			Spacing:      300,
			MinTopHeight: 50,
			MaxTopHeight: 300,
			TargetCount:  4,
			Initial: []SeedObstacle{
				{X: 400, TopHeight: 150},
				{X: 700, TopHeight: 250},
			},
		},
		Scoring: Scoring{
			EnemyHit:        10,
			ObstacleCleared: 1,
		},
		Loop: Loop{
			TickRate:     60,
			HoldWindowMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
