package infcanvas

// EngineOption configures an Engine during creation.
type EngineOption func(*engineOptions)

type engineOptions struct {
	view            ViewSize
	brushColor      RGBA
	brushWidth      float64
	brushDepthWrite bool
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		view:            View(800, 600),
		brushColor:      RGB(0, 0, 0),
		brushWidth:      4,
		brushDepthWrite: true,
	}
}

// WithViewSize sets the initial view size in pixels.
func WithViewSize(w, h float64) EngineOption {
	return func(o *engineOptions) {
		o.view = View(w, h)
	}
}

// WithBrush sets the initial brush: stroke color, width in screen pixels
// at draw time, and whether strokes write the depth buffer (translucent
// tools disable it).
func WithBrush(color RGBA, screenWidth float64, depthWrite bool) EngineOption {
	return func(o *engineOptions) {
		o.brushColor = color
		o.brushWidth = screenWidth
		o.brushDepthWrite = depthWrite
	}
}

// Engine ties the engine core together: the camera, the reference frame
// chain, the gesture anchor composer, the telescoping transition manager,
// the depth allocator, and the live in-progress stroke.
//
// Engine is single-threaded: every method must be called from the same
// event goroutine that delivers touch and gesture callbacks. A render
// pass may call FrameInstances between events but must not interleave
// with mutation.
type Engine struct {
	view ViewSize
	cam  Camera

	root   *Frame
	active *Frame

	composer Composer
	depth    DepthAllocator

	// live is the in-progress stroke; liveFrame is the frame that owns
	// it (captured at touch-begin, so a telescoping transition
	// mid-stroke commits the stroke to the frame it was drawn in).
	live      *StrokeBuilder
	liveFrame *Frame

	brushColor      RGBA
	brushWidth      float64
	brushDepthWrite bool
}

// NewEngine creates an engine with a fresh root frame and the identity
// camera.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	root := NewRootFrame()
	return &Engine{
		view:            o.view,
		cam:             NewCamera(),
		root:            root,
		active:          root,
		brushColor:      o.brushColor,
		brushWidth:      o.brushWidth,
		brushDepthWrite: o.brushDepthWrite,
	}
}

// Camera returns the current camera state.
func (e *Engine) Camera() Camera {
	return e.cam
}

// ViewSize returns the current view size.
func (e *Engine) ViewSize() ViewSize {
	return e.view
}

// SetViewSize updates the view size (window resize).
// Invalid sizes are ignored.
func (e *Engine) SetViewSize(w, h float64) {
	v := View(w, h)
	if !v.Valid() {
		Logger().Warn("ignoring invalid view size", "w", w, "h", h)
		return
	}
	e.view = v
}

// ActiveFrame returns the camera's current reference frame.
func (e *Engine) ActiveFrame() *Frame {
	return e.active
}

// RootFrame returns the topmost frame. Pop-up transitions synthesize
// parents above the original root, so this walks up from the stored root.
func (e *Engine) RootFrame() *Frame {
	return e.root.Root()
}

// SetBrush updates the brush used for subsequent strokes.
func (e *Engine) SetBrush(color RGBA, screenWidth float64, depthWrite bool) {
	e.brushColor = color
	e.brushWidth = screenWidth
	e.brushDepthWrite = depthWrite
}

// Clear replaces the document with a fresh root frame and resets the
// camera, the gesture state, and the depth counter.
func (e *Engine) Clear() {
	e.root = NewRootFrame()
	e.active = e.root
	e.cam = NewCamera()
	e.composer.Reset()
	e.depth = DepthAllocator{}
	e.live = nil
	e.liveFrame = nil
}

// TouchBegan starts a stroke at the given screen point. A touch arriving
// while a stroke is already live discards the stale one first.
func (e *Engine) TouchBegan(screen Point) {
	e.live = NewStrokeBuilder(screen, e.view, e.cam)
	e.liveFrame = e.active
}

// TouchMoved extends the live stroke. Ignored when no stroke is live.
func (e *Engine) TouchMoved(screen Point) {
	if e.live == nil {
		return
	}
	e.live.Add(screen)
}

// TouchEnded finishes the live stroke and commits it to the frame it was
// begun in. Returns the committed stroke, or nil if none was live.
func (e *Engine) TouchEnded(screen Point) *Stroke {
	if e.live == nil {
		return nil
	}
	e.live.Add(screen)
	stroke := e.live.Build(e.depth.Next(), e.brushColor, e.brushWidth, e.brushDepthWrite)
	e.liveFrame.AppendStroke(stroke)
	e.live = nil
	e.liveFrame = nil
	return stroke
}

// TouchCancelled discards the live stroke and its transient state without
// committing anything.
func (e *Engine) TouchCancelled() {
	e.live = nil
	e.liveFrame = nil
}

// PinchBegan forwards a pinch gesture start to the composer.
func (e *Engine) PinchBegan(centroid Point, touches int) {
	e.composer.PinchBegan(e.cam, e.view, centroid, touches)
}

// PinchChanged applies an incremental pinch scale delta, then runs any
// telescoping transition the new zoom calls for.
func (e *Engine) PinchChanged(scaleDelta float64, centroid Point, touches int) {
	e.cam = e.composer.PinchChanged(e.cam, e.view, scaleDelta, centroid, touches)
	e.maybeTelescope()
}

// PinchEnded forwards a pinch gesture end to the composer.
func (e *Engine) PinchEnded() {
	e.composer.PinchEnded(e.cam, e.view)
}

// RotateBegan forwards a rotation gesture start to the composer.
func (e *Engine) RotateBegan(centroid Point, touches int) {
	e.composer.RotateBegan(e.cam, e.view, centroid, touches)
}

// RotateChanged applies an incremental rotation delta in radians.
func (e *Engine) RotateChanged(delta float64, centroid Point, touches int) {
	e.cam = e.composer.RotateChanged(e.cam, e.view, delta, centroid, touches)
	e.maybeTelescope()
}

// RotateEnded forwards a rotation gesture end to the composer.
func (e *Engine) RotateEnded() {
	e.composer.RotateEnded(e.cam, e.view)
}

// PanChanged applies a screen-space pan delta.
func (e *Engine) PanChanged(deltaScreen Point) {
	e.cam = e.composer.PanChanged(e.cam, deltaScreen)
}

// ZoomBy applies a programmatic zoom factor about the given screen point,
// as a pinch with a locked anchor would, then runs telescoping. Used by
// scripted navigation and tests.
func (e *Engine) ZoomBy(factor float64, focusScreen Point) {
	anchorWorld := ScreenToWorld(focusScreen, e.view, e.cam)
	zoom := clampZoom(e.cam.Zoom * factor)
	pan := SolvePanForAnchor(anchorWorld, focusScreen, e.view, zoom, e.cam.Rotation)
	if !pan.IsFinite() {
		Logger().Warn("zoom pan solve produced non-finite offset; skipping", "zoom", zoom)
		return
	}
	e.cam.Zoom = zoom
	e.cam.Pan = pan
	e.telescope(anchorWorld, focusScreen)
}

// maxTransitionsPerTick bounds the telescoping loop: each drill divides
// zoom by at least the frame ratio, so even an absurd single-tick zoom
// jump settles in a handful of iterations.
const maxTransitionsPerTick = 64

// maybeTelescope runs telescoping against the locked gesture anchor, or
// the view center when no gesture is live.
func (e *Engine) maybeTelescope() {
	if e.composer.Owner() != AnchorNone {
		e.telescope(e.composer.AnchorWorld(), e.composer.AnchorScreen())
		return
	}
	center := e.view.Center()
	e.telescope(ScreenToWorld(center, e.view, e.cam), center)
}

// telescope runs transitions until the zoom is back inside the frame's
// threshold band, re-locking the anchor in each new frame.
func (e *Engine) telescope(anchorWorld, anchorScreen Point) {
	owned := e.composer.Owner() != AnchorNone

	for i := 0; i < maxTransitionsPerTick; i++ {
		cam, active, ok := CheckTransition(e.cam, e.active, anchorWorld, anchorScreen, e.view)
		if !ok {
			return
		}
		e.cam = cam
		e.active = active
		if owned {
			e.composer.Relock(e.cam, e.view)
			anchorWorld = e.composer.AnchorWorld()
		} else {
			anchorWorld = ScreenToWorld(anchorScreen, e.view, e.cam)
		}
	}
	Logger().Warn("telescoping did not settle within iteration bound",
		"zoom", e.cam.Zoom)
}
