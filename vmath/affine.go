package vmath

import "math"

// Affine is a 2x3 row-major transform: x' = m[0]x + m[1]y + m[2], y' = m[3]x + m[4]y + m[5]
// Layout matches golang.org/x/image/math/f64.Aff3
type Affine [6]float64

// Identity is the no-op transform
var Identity = Affine{1, 0, 0, 0, 1, 0}

// Translation returns a pure translation by v
func Translation(v Vec2) Affine {
	return Affine{1, 0, v.X, 0, 1, v.Y}
}

// Rotation returns a rotation about the origin by deg degrees
// Positive angles turn clockwise on a y-down screen
func Rotation(deg float64) Affine {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Affine{c, -s, 0, s, c, 0}
}

// Scaling returns a non-uniform scale about the origin
func Scaling(sx, sy float64) Affine {
	return Affine{sx, 0, 0, 0, sy, 0}
}

// Mul composes m and o, o applies first
func (m Affine) Mul(o Affine) Affine {
	return Affine{
		m[0]*o[0] + m[1]*o[3],
		m[0]*o[1] + m[1]*o[4],
		m[0]*o[2] + m[1]*o[5] + m[2],
		m[3]*o[0] + m[4]*o[3],
		m[3]*o[1] + m[4]*o[4],
		m[3]*o[2] + m[4]*o[5] + m[5],
	}
}

// Translate returns m followed by a translation
func (m Affine) Translate(v Vec2) Affine {
	return Translation(v).Mul(m)
}

// Rotate returns m followed by a rotation about the origin
func (m Affine) Rotate(deg float64) Affine {
	return Rotation(deg).Mul(m)
}

// RotateAbout builds translate(origin) * rotate(deg) * translate(-origin)
func RotateAbout(origin Vec2, deg float64) Affine {
	return Translation(origin).Mul(Rotation(deg)).Mul(Translation(origin.Neg()))
}

// Apply maps p through m
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[1]*p.Y + m[2],
		m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Invert returns the inverse transform, ok=false when m is singular
func (m Affine) Invert() (Affine, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return Identity, false
	}
	return Affine{
		m[4] / det,
		-m[1] / det,
		(m[1]*m[5] - m[4]*m[2]) / det,
		-m[3] / det,
		m[0] / det,
		(m[3]*m[2] - m[0]*m[5]) / det,
	}, true
}

// IsIdentity reports whether m is exactly the identity
func (m Affine) IsIdentity() bool {
	return m == Identity
}
