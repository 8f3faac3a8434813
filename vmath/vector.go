package vmath

import "math"

// Vec2 is a plane vector in table units
type Vec2 struct {
	X, Y float64
}

// Heading returns the unit vector for angle in radians, 0 = +X, counter-clockwise
func Heading(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos, Y: sin}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies vector by scalar factor
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSq returns squared magnitude without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns Euclidean magnitude
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in radians, range (-π, π]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Reflect returns v reflected off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func (v Vec2) Reflect(n Vec2) Vec2 {
	d2 := 2 * v.Dot(n)
	return Vec2{X: v.X - d2*n.X, Y: v.Y - d2*n.Y}
}

// ReflectAxisY returns v reflected off a horizontal wall
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// IsFinite reports whether both components are neither NaN nor Inf
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
