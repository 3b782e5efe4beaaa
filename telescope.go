package infcanvas

// Telescoping thresholds. These constants are load-bearing: the bounded
// coordinate invariant holds because the drill threshold equals the frame
// scale ratio, so a frame's camera zoom lives in (PopThreshold,
// DrillThreshold] and anchor coordinates at a crossing never exceed a few
// view diagonals. They are deliberately not configurable.
const (
	// DrillThreshold is the zoom above which the camera drills down
	// into a child frame.
	DrillThreshold = 1000.0

	// PopThreshold is the zoom below which the camera pops up into the
	// parent frame.
	PopThreshold = 0.5

	// FrameScaleRatio is the coordinate scale between adjacent frames:
	// one parent unit spans this many child units.
	FrameScaleRatio = 1000.0
)

// CheckTransition inspects the camera zoom against the telescoping
// thresholds and performs at most one drill-down or pop-up. It returns
// the updated camera, the frame the camera now references, and whether a
// transition happened.
//
// anchorWorld and anchorScreen must be the already-locked gesture anchor
// (in active-frame coordinates and screen pixels respectively) — never a
// freshly recomputed pair, which would pick up sub-pixel discrepancies
// from chaining forward and inverse transforms. When no gesture is live,
// callers pass the view center and its world position.
//
// Drill-down re-enters the active frame's sole child if one exists;
// otherwise it creates a child anchored at anchorWorld. Anchoring the new
// frame at the gesture point rather than the screen center is what keeps
// per-frame coordinates bounded across unbounded drill depth: the anchor's
// position in the new frame is exactly (0,0) by construction.
//
// Pop-up is symmetric, synthesizing a parent above the current root when
// needed. A non-finite pan solve abandons the transition for this tick,
// leaving camera and frame untouched.
func CheckTransition(cam Camera, active *Frame, anchorWorld, anchorScreen Point, view ViewSize) (Camera, *Frame, bool) {
	if active == nil || !view.Valid() {
		return cam, active, false
	}

	switch {
	case cam.Zoom > DrillThreshold:
		return drillDown(cam, active, anchorWorld, anchorScreen, view)
	case cam.Zoom < PopThreshold:
		return popUp(cam, active, anchorWorld, anchorScreen, view)
	default:
		return cam, active, false
	}
}

func drillDown(cam Camera, active *Frame, anchorWorld, anchorScreen Point, view ViewSize) (Camera, *Frame, bool) {
	if !anchorWorld.IsFinite() {
		Logger().Warn("drill-down anchor is non-finite; transition skipped",
			"frame", active.ID)
		return cam, active, false
	}
	if child := active.SoleChild(); child != nil {
		// Re-enter the existing child: convert the anchor into its
		// coordinates and keep it under the same screen point.
		childLocal := child.FromParent(anchorWorld)
		zoom := cam.Zoom / child.ScaleRelativeToParent
		pan := SolvePanForAnchor(childLocal, anchorScreen, view, zoom, cam.Rotation)
		if !pan.IsFinite() {
			Logger().Warn("drill-down pan solve produced non-finite offset; transition skipped",
				"frame", active.ID)
			return cam, active, false
		}
		cam.Zoom = zoom
		cam.Pan = pan
		Logger().Debug("drill-down re-entered child",
			"frame", child.ID, "depth", child.DepthFromRoot, "zoom", zoom)
		return cam, child, true
	}

	// No child yet: create one anchored at the gesture point, with the
	// captured zoom as its scale ratio. The anchor's local position is
	// (0,0) by construction and the zoom resets to exactly 1.
	pan := SolvePanForAnchor(Point{}, anchorScreen, view, 1, cam.Rotation)
	if !pan.IsFinite() {
		// Solving for the origin only fails on a non-finite anchorScreen.
		Logger().Warn("drill-down pan solve produced non-finite offset; transition skipped",
			"frame", active.ID)
		return cam, active, false
	}
	child := active.NewChild(anchorWorld, cam.Zoom)
	cam.Zoom = 1
	cam.Pan = pan
	Logger().Debug("drill-down created child",
		"frame", child.ID, "depth", child.DepthFromRoot,
		"originX", child.OriginInParent.X, "originY", child.OriginInParent.Y,
		"scale", child.ScaleRelativeToParent)
	return cam, child, true
}

func popUp(cam Camera, active *Frame, anchorWorld, anchorScreen Point, view ViewSize) (Camera, *Frame, bool) {
	// Compute the candidate state before mutating the tree, so a
	// rejected solve synthesizes nothing.
	scale := active.ScaleRelativeToParent
	origin := active.OriginInParent
	if active.Parent == nil {
		scale = FrameScaleRatio
		origin = Point{}
	}
	parentAnchor := origin.Add(anchorWorld.Div(scale))
	zoom := cam.Zoom * scale
	pan := SolvePanForAnchor(parentAnchor, anchorScreen, view, zoom, cam.Rotation)
	if !pan.IsFinite() {
		Logger().Warn("pop-up pan solve produced non-finite offset; transition skipped",
			"frame", active.ID)
		return cam, active, false
	}

	parent := active.EnsureParent()
	cam.Zoom = zoom
	cam.Pan = pan
	Logger().Debug("pop-up",
		"frame", parent.ID, "depth", parent.DepthFromRoot, "zoom", zoom)
	return cam, parent, true
}
