package infcanvas

// AnchorOwner identifies which continuous gesture currently holds the
// shared anchor point.
type AnchorOwner uint8

const (
	// AnchorNone means no gesture holds the anchor.
	AnchorNone AnchorOwner = iota
	// AnchorPinch means the pinch-zoom gesture holds the anchor.
	AnchorPinch
	// AnchorRotate means the two-finger rotation gesture holds the anchor.
	AnchorRotate
)

// String returns the owner name for logging.
func (o AnchorOwner) String() string {
	switch o {
	case AnchorPinch:
		return "pinch"
	case AnchorRotate:
		return "rotate"
	default:
		return "none"
	}
}

// Composer arbitrates simultaneous pinch, rotation, and pan input into a
// single consistent camera update. Pinch and rotation share one anchor: a
// world point locked under the gesture centroid that every incremental
// delta re-solves pan against, so the focal point never drifts from under
// the fingers. Pan accumulates directly and needs no anchor.
//
// All methods take the current camera by value and return the updated
// camera; the composer itself only stores gesture bookkeeping.
type Composer struct {
	owner        AnchorOwner
	anchorWorld  Point
	anchorScreen Point

	pinchActive  bool
	pinchTouches int
	pinchCenter  Point

	rotateActive  bool
	rotateTouches int
	rotateCenter  Point
}

// Owner returns the current anchor owner.
func (c *Composer) Owner() AnchorOwner {
	return c.owner
}

// AnchorWorld returns the locked anchor in active-frame coordinates.
// Meaningful only while Owner is not AnchorNone.
func (c *Composer) AnchorWorld() Point {
	return c.anchorWorld
}

// AnchorScreen returns the anchor's current screen position.
// Meaningful only while Owner is not AnchorNone.
func (c *Composer) AnchorScreen() Point {
	return c.anchorScreen
}

// lock takes the anchor for owner at the given centroid.
func (c *Composer) lock(owner AnchorOwner, centroid Point, view ViewSize, cam Camera) {
	c.owner = owner
	c.anchorWorld = ScreenToWorld(centroid, view, cam)
	c.anchorScreen = centroid
	Logger().Debug("anchor locked",
		"owner", owner.String(),
		"screenX", centroid.X, "screenY", centroid.Y)
}

// Relock recomputes the locked anchor's world position from its screen
// position under the given camera. The telescoping manager calls this
// after a frame switch so subsequent gesture deltas compose against the
// coordinates the solver will actually see.
func (c *Composer) Relock(cam Camera, view ViewSize) {
	if c.owner == AnchorNone {
		return
	}
	c.anchorWorld = ScreenToWorld(c.anchorScreen, view, cam)
}

// PinchBegan records the start of a pinch gesture. If no gesture holds
// the anchor, the pinch takes it at its centroid.
func (c *Composer) PinchBegan(cam Camera, view ViewSize, centroid Point, touches int) {
	c.pinchActive = true
	c.pinchTouches = touches
	c.pinchCenter = centroid
	if c.owner == AnchorNone {
		c.lock(AnchorPinch, centroid, view, cam)
	}
}

// PinchChanged applies an incremental pinch scale delta and returns the
// updated camera.
//
// If the live touch count changed since the last tick (a finger lifted or
// landed, shifting the recognizer's centroid), the anchor re-locks at the
// new centroid and no delta is applied this tick; mixing the two would
// show up as a visible jump. A changed callback arriving before any began
// is treated as the began.
func (c *Composer) PinchChanged(cam Camera, view ViewSize, scaleDelta float64, centroid Point, touches int) Camera {
	if !c.pinchActive {
		c.PinchBegan(cam, view, centroid, touches)
		return cam
	}
	c.pinchCenter = centroid
	if touches != c.pinchTouches {
		c.pinchTouches = touches
		if c.owner == AnchorPinch {
			c.lock(AnchorPinch, centroid, view, cam)
		}
		return cam
	}

	newZoom := clampZoom(cam.Zoom * scaleDelta)
	desired := c.anchorScreen
	if c.owner == AnchorPinch {
		desired = centroid
	}
	pan := SolvePanForAnchor(c.anchorWorld, desired, view, newZoom, cam.Rotation)
	if !pan.IsFinite() {
		Logger().Warn("pinch pan solve produced non-finite offset; skipping tick",
			"zoom", newZoom)
		return cam
	}
	cam.Zoom = newZoom
	cam.Pan = pan
	if c.owner == AnchorPinch {
		c.anchorScreen = centroid
	}
	return cam
}

// PinchEnded records the end of the pinch. If the rotation gesture is
// still live, anchor ownership hands off to it, re-locking at the
// rotation's current centroid without applying any transform delta;
// otherwise the anchor clears.
func (c *Composer) PinchEnded(cam Camera, view ViewSize) {
	c.pinchActive = false
	c.pinchTouches = 0
	if c.owner != AnchorPinch {
		return
	}
	if c.rotateActive {
		c.lock(AnchorRotate, c.rotateCenter, view, cam)
		Logger().Debug("anchor hand-off", "from", "pinch", "to", "rotate")
		return
	}
	c.owner = AnchorNone
}

// RotateBegan records the start of a rotation gesture. If no gesture
// holds the anchor, the rotation takes it at its centroid.
func (c *Composer) RotateBegan(cam Camera, view ViewSize, centroid Point, touches int) {
	c.rotateActive = true
	c.rotateTouches = touches
	c.rotateCenter = centroid
	if c.owner == AnchorNone {
		c.lock(AnchorRotate, centroid, view, cam)
	}
}

// RotateChanged applies an incremental rotation delta in radians and
// returns the updated camera. Touch-count transitions re-lock instead of
// applying the delta, exactly as in PinchChanged.
func (c *Composer) RotateChanged(cam Camera, view ViewSize, delta float64, centroid Point, touches int) Camera {
	if !c.rotateActive {
		c.RotateBegan(cam, view, centroid, touches)
		return cam
	}
	c.rotateCenter = centroid
	if touches != c.rotateTouches {
		c.rotateTouches = touches
		if c.owner == AnchorRotate {
			c.lock(AnchorRotate, centroid, view, cam)
		}
		return cam
	}

	newRotation := cam.Rotation + float32(delta)
	desired := c.anchorScreen
	if c.owner == AnchorRotate {
		desired = centroid
	}
	pan := SolvePanForAnchor(c.anchorWorld, desired, view, cam.Zoom, newRotation)
	if !pan.IsFinite() {
		Logger().Warn("rotation pan solve produced non-finite offset; skipping tick",
			"rotation", newRotation)
		return cam
	}
	cam.Rotation = newRotation
	cam.Pan = pan
	if c.owner == AnchorRotate {
		c.anchorScreen = centroid
	}
	return cam
}

// RotateEnded records the end of the rotation, handing the anchor off to
// a still-live pinch or clearing it.
func (c *Composer) RotateEnded(cam Camera, view ViewSize) {
	c.rotateActive = false
	c.rotateTouches = 0
	if c.owner != AnchorRotate {
		return
	}
	if c.pinchActive {
		c.lock(AnchorPinch, c.pinchCenter, view, cam)
		Logger().Debug("anchor hand-off", "from", "rotate", "to", "pinch")
		return
	}
	c.owner = AnchorNone
}

// PanChanged accumulates a screen-space pan delta and returns the updated
// camera. Pan is applied after rotation and zoom in the forward mapping,
// so the screen delta feeds through directly. If an anchor is live, its
// screen position translates by the same delta so pinch or rotation
// resuming afterward stays glued to the right spot.
func (c *Composer) PanChanged(cam Camera, deltaScreen Point) Camera {
	pan := cam.Pan.Add(deltaScreen)
	if !pan.IsFinite() {
		Logger().Warn("pan delta produced non-finite offset; skipping tick")
		return cam
	}
	cam.Pan = pan
	if c.owner != AnchorNone {
		c.anchorScreen = c.anchorScreen.Add(deltaScreen)
	}
	return cam
}

// Reset clears all gesture state, releasing the anchor. Used on canvas
// replacement and cancelled gesture sequences.
func (c *Composer) Reset() {
	*c = Composer{}
}
