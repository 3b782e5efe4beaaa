// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufloat

import "github.com/chewxy/math32"

// Vec2 is a single-precision 2D vector: the GPU-side counterpart of the
// engine's double-precision Point. Values are always small relative
// offsets, never absolute coordinates.
type Vec2 struct {
	X, Y float32
}

// Narrow converts a double-precision coordinate pair to a Vec2.
// This is the single sanctioned float64-to-float32 narrowing point for
// vector data.
func Narrow(x, y float64) Vec2 {
	return Vec2{X: float32(x), Y: float32(y)}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled by a scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if v has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise in screen
// orientation (Y-down).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	sin, cos := math32.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Direction returns the unit direction from a to b. A zero-length span
// yields the default direction (1, 0) instead of NaN, so degenerate dot
// segments still widen into valid quads.
func Direction(a, b Vec2) Vec2 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return Vec2{X: 1, Y: 0}
	}
	return d.Normalize()
}
