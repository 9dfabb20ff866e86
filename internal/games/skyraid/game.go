// Package skyraid implements the simulation of a side-scrolling shooter:
// a flying character dodges obstacle pairs and incoming enemies while
// shooting them down. The package is pure game logic; timing, input
// capture and drawing to a terminal live in the engine and platform layers.
package skyraid

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	Cause Cause // CauseNone while the run continues
}

// Over reports whether the tick hit a terminal condition.
func (r StepResult) Over() bool {
	return r.Cause != CauseNone
}

// Game holds one run's world and advances it a tick at a time.
// It is not safe for concurrent use; the engine serializes access.
type Game struct {
	cfg   config.Config
	rng   Rand
	state State
}

// New creates a game in its pre-start state: the character at its spawn
// point and nothing else in the playfield.
func New(cfg config.Config, rng Rand) *Game {
	g := &Game{cfg: cfg, rng: rng}
	g.state = State{Character: g.spawnCharacter()}
	return g
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset puts the world into its initial running layout: character at its
// default position and velocity, no projectiles or enemies, the seeded
// obstacles, and a zero score. Repeated resets yield identical states.
func (g *Game) Reset() {
	obstacles := make([]Obstacle, 0, g.cfg.Obstacles.TargetCount)
	for _, seed := range g.cfg.Obstacles.Initial {
		obstacles = append(obstacles, g.newObstacle(seed.X, seed.TopHeight))
	}

	g.state = State{
		Character:   g.spawnCharacter(),
		Projectiles: make([]Projectile, 0, 8),
		Enemies:     make([]Enemy, 0, 8),
		Obstacles:   obstacles,
	}
}

// Step advances the world by one tick: motion and spawning first, then
// collision resolution against the moved world.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.state.Tick++

	grounded := g.advance(in)
	cause := resolveCollisions(&g.state, g.cfg.Scoring.EnemyHit)

	// Collision causes take precedence over the floor.
	if grounded && cause == CauseNone {
		cause = CauseGround
	}
	return StepResult{Cause: cause}
}

// State returns a deep copy of the current world.
func (g *Game) State() State {
	return g.state.Clone()
}

// spawnCharacter returns the character at its configured spawn point.
func (g *Game) spawnCharacter() Character {
	return Character{
		Pos:  core.Vec2{X: g.cfg.Character.X, Y: g.cfg.Character.Y},
		VelY: 0,
		Size: g.cfg.Character.Size,
	}
}
