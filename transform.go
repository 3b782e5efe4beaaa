package infcanvas

// The transform engine: pure double-precision conversions between screen
// pixels, normalized device coordinates, and the active frame's world
// coordinates.
//
// The forward mapping a renderer applies to project a world point to the
// screen is, in order:
//
//	screen = pan + zoom * R(rotation) * world
//
// Screen space is top-left origin, Y-down, in pixels; with the identity
// camera the mapping is the identity, so world coordinates read like screen
// coordinates. The vertical axis flip lives entirely in the screen/NDC
// conversion. ScreenToWorld is the exact algebraic inverse of the forward
// mapping, and SolvePanForAnchor isolates the pan term of the same
// equation, so the three functions cancel term by term rather than
// accumulating round-off through repeated matrix inversion.

// MinZoom is the smallest zoom any transform will divide by. Zoom values
// at or below zero clamp here instead of producing NaN or Inf.
const MinZoom = 1e-12

// ViewSize is the view's pixel dimensions.
type ViewSize struct {
	W, H float64
}

// View is a convenience constructor for ViewSize.
func View(w, h float64) ViewSize {
	return ViewSize{W: w, H: h}
}

// Valid reports whether the view has positive area. Transform calls with
// an invalid view short-circuit rather than dividing by zero.
func (v ViewSize) Valid() bool {
	return v.W > 0 && v.H > 0
}

// Center returns the view's center point in screen coordinates.
func (v ViewSize) Center() Point {
	return Point{X: v.W / 2, Y: v.H / 2}
}

// Diagonal returns the length of the view's diagonal in pixels.
func (v ViewSize) Diagonal() float64 {
	return Point{X: v.W, Y: v.H}.Length()
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	return z
}

// ScreenToWorld converts a screen-space point to the active frame's world
// coordinates under the given camera. It inverts, in order, the pan
// translation, the zoom scaling, and the rotation of the forward mapping.
//
// An invalid view short-circuits: the input point is returned unchanged.
func ScreenToWorld(screen Point, view ViewSize, cam Camera) Point {
	if !view.Valid() {
		return screen
	}
	z := clampZoom(cam.Zoom)
	return screen.Sub(cam.Pan).Div(z).RotateInverse(float64(cam.Rotation))
}

// WorldToScreen converts a point in the active frame's world coordinates
// to screen space under the given camera: the forward mapping the renderer
// applies. Used for anchor re-projection and verification.
//
// An invalid view short-circuits: the input point is returned unchanged.
func WorldToScreen(world Point, view ViewSize, cam Camera) Point {
	if !view.Valid() {
		return world
	}
	z := clampZoom(cam.Zoom)
	return cam.Pan.Add(world.Rotate(float64(cam.Rotation)).Mul(z))
}

// SolvePanForAnchor solves for the unique pan offset that places
// anchorWorld exactly at desiredScreen under the given zoom and rotation.
// Substituting the forward mapping and isolating the pan term:
//
//	pan = desiredScreen - zoom * R(rotation) * anchorWorld
//
// Every zoom and rotation gesture re-derives pan through this solver
// instead of incrementally drifting it; that is what keeps the pinch or
// rotation focal point glued under the fingers. The zoom * R * anchorWorld
// term here is computed with the same operations WorldToScreen uses, so
// re-projecting the anchor after a solve reproduces desiredScreen up to a
// single rounding of the subtraction.
//
// Zoom at or below zero clamps to MinZoom. Callers must still reject
// non-finite results (see Point.IsFinite) before applying them to a
// camera; a NaN anchor propagates through the solve.
func SolvePanForAnchor(anchorWorld, desiredScreen Point, view ViewSize, zoom float64, rotation float32) Point {
	if !view.Valid() {
		return desiredScreen
	}
	z := clampZoom(zoom)
	return desiredScreen.Sub(anchorWorld.Rotate(float64(rotation)).Mul(z))
}

// ScreenToNDC converts a screen-space point to normalized device
// coordinates: X in [-1, 1] left to right, Y in [-1, 1] bottom to top.
// This is where the vertical axis flips; everything above this boundary is
// Y-down.
func ScreenToNDC(screen Point, view ViewSize) Point {
	if !view.Valid() {
		return Point{}
	}
	return Point{
		X: 2*screen.X/view.W - 1,
		Y: 1 - 2*screen.Y/view.H,
	}
}

// NDCToScreen converts normalized device coordinates back to screen
// pixels. Inverse of ScreenToNDC.
func NDCToScreen(ndc Point, view ViewSize) Point {
	if !view.Valid() {
		return Point{}
	}
	return Point{
		X: (ndc.X + 1) / 2 * view.W,
		Y: (1 - ndc.Y) / 2 * view.H,
	}
}
