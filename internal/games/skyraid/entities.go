package skyraid

import "github.com/vovakirdan/skyraid/internal/core"

// Edge identifies the playfield side an enemy entered from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// edgeCount is the number of spawn edges, used for uniform selection.
const edgeCount = 4

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Character is the controlled flyer. Pos is the top-left of its square.
type Character struct {
	Pos  core.Vec2
	VelY float64
	Size float64
}

// Projectile is a shot travelling right at constant speed.
type Projectile struct {
	Pos    core.Vec2
	SpeedX float64
	Size   float64
}

// Enemy drifts across the playfield from its spawn edge.
type Enemy struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
	Edge Edge
}

// Obstacle is a top/bottom barrier pair with a passable gap between them.
type Obstacle struct {
	X         float64 // Left edge
	TopHeight float64 // Height of the top segment; the gap starts here
	Gap       float64
	Width     float64
}

// bounds returns the bounding circle of a square entity at pos.
func bounds(pos core.Vec2, size float64) core.Circle {
	r := size / 2
	return core.Circle{Center: core.Vec2{X: pos.X + r, Y: pos.Y + r}, R: r}
}

// Bounds returns the character's collision circle.
func (c Character) Bounds() core.Circle { return bounds(c.Pos, c.Size) }

// Bounds returns the projectile's collision circle.
func (p Projectile) Bounds() core.Circle { return bounds(p.Pos, p.Size) }

// Bounds returns the enemy's collision circle.
func (e Enemy) Bounds() core.Circle { return bounds(e.Pos, e.Size) }

// HSpan returns the character's horizontal extent.
func (c Character) HSpan() core.Span {
	return core.Span{Min: c.Pos.X, Max: c.Pos.X + c.Size}
}

// VSpan returns the character's vertical extent.
func (c Character) VSpan() core.Span {
	return core.Span{Min: c.Pos.Y, Max: c.Pos.Y + c.Size}
}

// HSpan returns the obstacle's horizontal extent.
func (o Obstacle) HSpan() core.Span {
	return core.Span{Min: o.X, Max: o.X + o.Width}
}

// GapSpan returns the vertical extent of the passable gap.
func (o Obstacle) GapSpan() core.Span {
	return core.Span{Min: o.TopHeight, Max: o.TopHeight + o.Gap}
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}
