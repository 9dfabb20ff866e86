// Package core provides fundamental types and utilities shared by the game
// logic and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Circle is a bounding circle used for entity overlap checks.
type Circle struct {
	Center Vec2
	R      float64
}

// Overlaps reports whether the centers are closer than the combined radii.
// Touching circles do not overlap.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Sub(o.Center).Len() < c.R+o.R
}

// Span is a closed interval on one axis.
type Span struct {
	Min, Max float64
}

// Overlaps reports whether two spans share more than a boundary point.
func (s Span) Overlaps(o Span) bool {
	return s.Min < o.Max && o.Min < s.Max
}

// Within reports whether s lies entirely inside o.
func (s Span) Within(o Span) bool {
	return s.Min >= o.Min && s.Max <= o.Max
}

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
