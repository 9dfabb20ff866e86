package skyraid

import (
	"github.com/vovakirdan/skyraid/internal/core"
)

// advance runs motion and spawning for one tick and reports whether the
// character was clamped at the floor. No collisions are resolved here.
func (g *Game) advance(in core.InputFrame) (grounded bool) {
	if in.WasPressed(core.ActionFire) {
		g.fire()
	}

	grounded = g.moveCharacter(in.IsHeld(core.ActionFlap))
	g.moveProjectiles()

	g.moveObstacles()
	g.spawnObstacle()
	cleared := g.pruneObstacles()
	g.state.Score += cleared * g.cfg.Scoring.ObstacleCleared

	g.moveEnemies()
	g.maybeSpawnEnemy()
	return grounded
}

// moveCharacter applies the flap impulse and gravity, then clamps the
// character to the playfield. Returns true when the lower clamp fired.
func (g *Game) moveCharacter(flap bool) bool {
	c := &g.state.Character
	if flap {
		c.VelY = g.cfg.Physics.FlapImpulse
	}
	c.VelY += g.cfg.Physics.Gravity
	c.Pos.Y += c.VelY

	floor := g.cfg.Playfield.Height - c.Size
	switch {
	case c.Pos.Y < 0:
		c.Pos.Y = 0
		c.VelY = 0
	case c.Pos.Y > floor:
		c.Pos.Y = floor
		return true
	}
	return false
}

// fire launches a projectile from the character's right edge, vertically centered.
func (g *Game) fire() {
	c := g.state.Character
	size := g.cfg.Projectile.Size
	g.state.Projectiles = append(g.state.Projectiles, Projectile{
		Pos: core.Vec2{
			X: c.Pos.X + c.Size,
			Y: c.Pos.Y + c.Size/2 - size/2,
		},
		SpeedX: g.cfg.Projectile.Speed,
		Size:   size,
	})
}

// moveProjectiles advances projectiles and drops those past the right edge.
func (g *Game) moveProjectiles() {
	for i := range g.state.Projectiles {
		g.state.Projectiles[i].Pos.X += g.state.Projectiles[i].SpeedX
	}

	width := g.cfg.Playfield.Width
	g.state.Projectiles = filter(g.state.Projectiles, func(p Projectile) bool {
		return p.Pos.X <= width
	})
}

// moveObstacles scrolls every obstacle left.
func (g *Game) moveObstacles() {
	for i := range g.state.Obstacles {
		g.state.Obstacles[i].X -= g.cfg.Obstacles.ScrollSpeed
	}
}

// pruneObstacles drops obstacles fully past the left edge.
// Returns how many were dropped.
func (g *Game) pruneObstacles() int {
	before := len(g.state.Obstacles)
	g.state.Obstacles = filter(g.state.Obstacles, func(o Obstacle) bool {
		return o.Right() >= 0
	})
	return before - len(g.state.Obstacles)
}

// moveEnemies advances enemies and drops those more than their own size
// outside the playfield on any side.
func (g *Game) moveEnemies() {
	for i := range g.state.Enemies {
		e := &g.state.Enemies[i]
		e.Pos = e.Pos.Add(e.Vel)
	}

	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	g.state.Enemies = filter(g.state.Enemies, func(e Enemy) bool {
		return e.Pos.X >= -e.Size && e.Pos.X <= w+e.Size &&
			e.Pos.Y >= -e.Size && e.Pos.Y <= h+e.Size
	})
}

// filter keeps the items for which keep returns true, reusing the backing array.
// Callers must not range over items while filtering.
func filter[T any](items []T, keep func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
