package skyraid

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/config"
)

// Autopilot is a naive controller for headless runs. It flaps when the
// character is headed below the center of the next gap and fires when an
// enemy is ahead in its lane.
func Autopilot(snap Snapshot, cfg config.Config) (flap, fire bool) {
	c := snap.Character
	center := c.Pos.Y + c.Size/2

	target := cfg.Playfield.Height / 2
	for _, o := range snap.Obstacles {
		if o.Right() >= c.Pos.X {
			target = o.TopHeight + o.Gap/2
			break
		}
	}
	flap = center+c.VelY+cfg.Physics.Gravity > target

	for _, e := range snap.Enemies {
		ec := e.Bounds().Center
		if ec.X > c.Pos.X+c.Size && math.Abs(ec.Y-center) < (c.Size+e.Size)/2 {
			fire = true
			break
		}
	}
	return flap, fire
}
