// Package core provides fundamental types shared by the simulation and the
// terminal host. It contains no Bubble Tea imports to keep game logic pure
// and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle used when drawing to a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new cell rectangle.
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

// RectF is an axis-aligned rectangle in world units, used for hitboxes.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new world rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether r and other overlap.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsOpen reports whether (x, y) lies strictly inside r.
func (r RectF) ContainsOpen(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Inset returns a rectangle scaled by factor around the same center.
func (r RectF) Inset(factor float64) RectF {
	w := r.W * factor
	h := r.H * factor
	return RectF{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// Center returns the center point.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ToCells projects a world rectangle onto the cell grid using per-axis
// scale factors (cells per world unit). Any cell the rectangle touches is
// included, so thin shapes never vanish.
func (r RectF) ToCells(sx, sy float64) Rect {
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
