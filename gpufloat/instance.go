// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufloat

// Segment is one stroke segment: a pair of endpoints stored as offsets
// relative to the owning stroke's origin. Magnitudes are bounded by the
// stroke's own screen-space extent at creation time, so float32 holds them
// to sub-pixel accuracy at any zoom.
type Segment struct {
	A, B Vec2
}

// Color is a premultiplication-free float32 RGBA color in [0, 1].
type Color struct {
	R, G, B, A float32
}

// NarrowColor converts double-precision color components to a Color.
func NarrowColor(r, g, b, a float64) Color {
	return Color{R: float32(r), G: float32(g), B: float32(b), A: float32(a)}
}

// StrokeInstance is the per-stroke, per-frame-visit transform descriptor
// consumed by a renderer. It is the engine's central output contract:
// a renderer never receives absolute coordinates, only this
// camera-relative, frame-relative description, narrowed to float32 at the
// last possible moment.
type StrokeInstance struct {
	// RelativeOffset is the stroke origin minus the camera center,
	// both in the visited frame's coordinates.
	RelativeOffset Vec2

	// Zoom is the effective magnification of the visited frame's
	// coordinates on screen.
	Zoom float32

	// Rotation is the view rotation in radians.
	Rotation float32

	// ViewWidth and ViewHeight are the view's pixel dimensions.
	ViewWidth  float32
	ViewHeight float32

	// Depth is the normalized depth-test value derived from the
	// stroke's creation-order DepthID; smaller is nearer.
	Depth float32

	// Fade attenuates the stroke once the viewer has zoomed far past
	// its creation scale, in [0, 1]; 0 means fully culled.
	Fade float32

	// Width is the stroke width in the visited frame's units.
	Width float32

	// Color is the stroke color. Alpha is not premultiplied by Fade.
	Color Color

	// DepthWrite reports whether the stroke writes the depth buffer.
	// Non-writing strokes are depth-tested only and arrive after all
	// writing strokes, in creation order.
	DepthWrite bool

	// Segments is the stroke geometry, relative to the stroke origin.
	Segments []Segment
}
