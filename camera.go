package infcanvas

// Camera is the view state over the active reference frame: a screen-space
// pan offset, a uniform zoom, and a rotation angle. Pan and zoom carry
// double precision because at high magnification their low bits are what
// keeps content sub-pixel stable; rotation does not need it.
//
// Camera is a value type threaded explicitly through the gesture composer
// and the telescoping manager, so the whole pipeline stays a pure function
// of (previous state, event) and is testable without a UI harness.
type Camera struct {
	// Pan is the translation applied after rotation and zoom,
	// in screen pixels.
	Pan Point

	// Zoom is the uniform magnification of the active frame's
	// coordinates. Always treated as at least MinZoom.
	Zoom float64

	// Rotation is the view rotation in radians.
	Rotation float32
}

// NewCamera returns the identity camera: world coordinates of the active
// frame coincide with screen coordinates.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// Clamped returns the camera with degenerate zoom values clamped to
// MinZoom. Pan and rotation pass through unchanged.
func (c Camera) Clamped() Camera {
	c.Zoom = clampZoom(c.Zoom)
	return c
}

// Matrix returns the forward world-to-screen mapping as a single affine
// matrix: rotate, then scale by zoom, then translate by pan. It exists for
// verification and interop; the transform functions compute the same
// mapping directly.
func (c Camera) Matrix() Matrix {
	return Similarity(c.Pan.X, c.Pan.Y, clampZoom(c.Zoom), float64(c.Rotation))
}
