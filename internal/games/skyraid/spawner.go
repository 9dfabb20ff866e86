package skyraid

import "github.com/vovakirdan/skyraid/internal/core"

// spawnObstacle appends a new obstacle at the right edge when fewer than the
// target count exist and the newest one has scrolled far enough left.
func (g *Game) spawnObstacle() {
	obs := g.cfg.Obstacles
	n := len(g.state.Obstacles)
	if n >= obs.TargetCount {
		return
	}
	if n > 0 && g.state.Obstacles[n-1].X >= g.cfg.Playfield.Width-obs.Spacing {
		return
	}

	top := obs.MinTopHeight + g.rng.Float64()*(obs.MaxTopHeight-obs.MinTopHeight)
	g.state.Obstacles = append(g.state.Obstacles, g.newObstacle(g.cfg.Playfield.Width, top))
}

// newObstacle builds an obstacle with the configured gap and width.
func (g *Game) newObstacle(x, topHeight float64) Obstacle {
	return Obstacle{
		X:         x,
		TopHeight: topHeight,
		Gap:       g.cfg.Obstacles.Gap,
		Width:     g.cfg.Obstacles.Width,
	}
}

// maybeSpawnEnemy rolls the per-tick spawn chance and, on success, adds one
// enemy on a uniformly chosen edge.
func (g *Game) maybeSpawnEnemy() {
	if g.rng.Float64() >= g.cfg.Enemy.SpawnChance {
		return
	}
	edge := Edge(g.rng.Intn(edgeCount))
	g.state.Enemies = append(g.state.Enemies, g.newEnemy(edge))
}

// newEnemy places an enemy just outside the given edge, at a random point
// along it, heading inward with a random perpendicular drift.
func (g *Game) newEnemy(edge Edge) Enemy {
	e := g.cfg.Enemy
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	along := g.rng.Float64()
	drift := (g.rng.Float64()*2 - 1) * e.Jitter

	var pos, vel core.Vec2
	switch edge {
	case EdgeTop:
		pos = core.Vec2{X: along * (w - e.Size), Y: -e.Size}
		vel = core.Vec2{X: drift, Y: e.Speed}
	case EdgeBottom:
		pos = core.Vec2{X: along * (w - e.Size), Y: h}
		vel = core.Vec2{X: drift, Y: -e.Speed}
	case EdgeLeft:
		pos = core.Vec2{X: -e.Size, Y: along * (h - e.Size)}
		vel = core.Vec2{X: e.Speed, Y: drift}
	default:
		edge = EdgeRight
		pos = core.Vec2{X: w, Y: along * (h - e.Size)}
		vel = core.Vec2{X: -e.Speed, Y: drift}
	}

	return Enemy{Pos: pos, Vel: vel, Size: e.Size, Edge: edge}
}
