// Package core provides fundamental types and utilities for the skydive game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned when a vector is divided by zero.
var ErrDivideByZero = errors.New("core: division by zero")

// Vector2 is a 2D vector in world units. +Y points down the screen.
type Vector2 struct {
	X, Y float32
}

// Vec creates a new vector.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by a scalar.
// A zero divisor is rejected with ErrDivideByZero.
func (v Vector2) Div(s float32) (Vector2, error) {
	if s == 0 {
		return Vector2{}, ErrDivideByZero
	}
	return Vector2{X: v.X / s, Y: v.Y / s}, nil
}

// Length returns the euclidean length.
func (v Vector2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns a unit vector with the same direction.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// DistanceTo returns the distance between two points.
func (v Vector2) DistanceTo(o Vector2) float32 {
	return o.Sub(v).Length()
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Set overwrites both components in place.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Rect represents an axis-aligned bounding box used for collision detection.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle of the given size anchored at a point.
func RectAt(pos, size Vector2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point lies inside or on the edge of the rectangle.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Offset returns the rectangle moved by d.
func (r Rect) Offset(d Vector2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Number covers the numeric types the clamp helpers accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T Number](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
