package skyraid

import (
	"fmt"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Visual characters for rendering
const (
	CharacterChar  = '►'
	ProjectileChar = '•'
	ObstacleChar   = '█'
	GroundChar     = '═'
)

// enemyChars picks a glyph per spawn edge so the direction of travel is visible.
var enemyChars = map[Edge]rune{
	EdgeTop:    'v',
	EdgeBottom: '^',
	EdgeLeft:   '>',
	EdgeRight:  '<',
}

// viewport maps playfield coordinates onto screen cells. Row 0 holds the
// HUD and the last row holds the ground line.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
}

func newViewport(field config.Playfield, dst *core.Screen) viewport {
	rows := core.Max(dst.Height()-2, 1)
	return viewport{
		sx:   float64(dst.Width()) / field.Width,
		sy:   float64(rows) / field.Height,
		top:  1,
		rows: rows,
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return v.top + int(y*v.sy) }

// Render draws a snapshot into the screen buffer, scaling the playfield to
// the screen size.
func Render(snap Snapshot, field config.Playfield, dst *core.Screen) {
	dst.Clear()
	vp := newViewport(field, dst)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o)
	}
	for _, e := range snap.Enemies {
		dst.SetColored(vp.col(e.Pos.X+e.Size/2), vp.row(e.Pos.Y+e.Size/2), enemyChars[e.Edge], core.ColorRed)
	}
	for _, p := range snap.Projectiles {
		dst.SetColored(vp.col(p.Pos.X+p.Size/2), vp.row(p.Pos.Y+p.Size/2), ProjectileChar, core.ColorCyan)
	}

	c := snap.Character
	dst.SetColored(vp.col(c.Pos.X+c.Size/2), vp.row(c.Pos.Y+c.Size/2), CharacterChar, core.ColorYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "SKYRAID", "Press Enter to start")
	case PhaseOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Enter or R to restart", snap.Score))
	}
}

// drawObstacle renders the top and bottom segments of an obstacle pair.
func drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	x0 := vp.col(o.X)
	w := core.Max(vp.col(o.Right())-x0, 1)

	gapTop := vp.row(o.TopHeight)
	gapBottom := vp.row(o.TopHeight + o.Gap)

	dst.DrawRect(core.NewRect(x0, vp.top, w, gapTop-vp.top), ObstacleChar, core.ColorGreen)
	dst.DrawRect(core.NewRect(x0, gapBottom, w, vp.top+vp.rows-gapBottom), ObstacleChar, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
