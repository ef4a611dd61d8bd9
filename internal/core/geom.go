// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It contains no Bubble Tea code so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle used for overlays and boxes.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vector is a 2D world-space point or direction. Value type, no identity.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * n.
func (v Vector) Scale(n float64) Vector {
	return Vector{X: v.X * n, Y: v.Y * n}
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle returns the bearing of v in radians (atan2).
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dist returns the distance between a and b.
func Dist(a, b Vector) float64 {
	return a.Sub(b).Len()
}

// FromAngle returns a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vector {
	return Vector{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// LerpVec moves a toward b by fraction t.
func LerpVec(a, b Vector, t float64) Vector {
	return Vector{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Lerp interpolates linearly between start and end.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// WrapAngle wraps an angular difference into (-π, π].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
