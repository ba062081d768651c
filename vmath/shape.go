package vmath

import (
	"image"
	"math"
)

// Shape gives uniform position/size access over geometry kinds
// S is the value type returned by Snapshot, Size is the kind-specific extent
// (Vec2 for rectangles, scalar radius for circles)
// Implemented by pointer types so setters mutate in place
type Shape[S, Size any] interface {
	Position() Vec2
	Size() Size
	SetPosition(Vec2)
	SetSize(Size)
	Snapshot() S
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Position() Vec2 { return Vec2{r.X, r.Y} }
func (r Rect) Size() Vec2     { return Vec2{r.W, r.H} }
func (r Rect) Snapshot() Rect { return r }

func (r *Rect) SetPosition(p Vec2) {
	r.X, r.Y = p.X, p.Y
}

func (r *Rect) SetSize(s Vec2) {
	r.W, r.H = s.X, s.Y
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside r (right/bottom edges exclusive)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Image returns the smallest integer rectangle covering r
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}

// Circle is positioned by its center, sized by its radius
type Circle struct {
	X, Y, R float64
}

func (c Circle) Position() Vec2     { return Vec2{c.X, c.Y} }
func (c Circle) Size() float64      { return c.R }
func (c Circle) Snapshot() Circle   { return c }
func (c *Circle) SetSize(r float64) { c.R = r }

func (c *Circle) SetPosition(p Vec2) {
	c.X, c.Y = p.X, p.Y
}

// Bounds returns the square enclosing the circle
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Compile-time conformance
var (
	_ Shape[Rect, Vec2]      = (*Rect)(nil)
	_ Shape[Circle, float64] = (*Circle)(nil)
)
