package vmath

import "math"

// Vec2 is a 2D point or displacement in target space
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Neg returns -v
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Len returns the euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
