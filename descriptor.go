package infcanvas

import (
	"sort"

	"github.com/gogpu/infcanvas/gpufloat"
)

// Descriptor emission: the per-frame render pass. For every stroke in the
// recursive parent/active/children traversal the engine produces one
// gpufloat.StrokeInstance describing where the stroke sits relative to
// the camera. Absolute coordinates never leave this file as anything but
// the camera-relative difference, taken in double precision and narrowed
// at the last moment.

// FrameInstances returns the render descriptors for the current camera:
// the active frame's parent (content one telescope level up, magnified by
// the frame ratio), the active frame itself, and each of its children
// (content one level down).
//
// The returned slice is ordered for a depth-buffered renderer and equally
// for a painter's-order fallback: depth-writing strokes first in creation
// order, then depth-tested-but-not-writing strokes in creation order, and
// finally the live in-progress stroke, if any. Strokes faded to zero are
// culled.
func (e *Engine) FrameInstances() []gpufloat.StrokeInstance {
	if !e.view.Valid() || e.active == nil {
		return nil
	}

	camCenter := ScreenToWorld(e.view.Center(), e.view, e.cam)
	out := make([]gpufloat.StrokeInstance, 0, 64)

	// One parent unit spans ScaleRelativeToParent units here, so parent
	// content renders at zoom * scale; child content at zoom / scale.
	if parent := e.active.Parent; parent != nil {
		centerInParent := e.active.ToParent(camCenter)
		effZoom := e.cam.Zoom * e.active.ScaleRelativeToParent
		e.emitFrame(parent, centerInParent, effZoom, &out)
	}

	e.emitFrame(e.active, camCenter, e.cam.Zoom, &out)

	for _, child := range e.active.Children {
		centerInChild := child.FromParent(camCenter)
		effZoom := e.cam.Zoom / child.ScaleRelativeToParent
		e.emitFrame(child, centerInChild, effZoom, &out)
	}

	// Writers first, each group in creation order. Stable so equal keys
	// keep traversal order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DepthWrite != out[j].DepthWrite {
			return out[i].DepthWrite
		}
		return out[i].Depth > out[j].Depth
	})

	if e.live != nil && e.liveFrame == e.active {
		out = append(out, e.liveInstance())
	}
	return out
}

// emitFrame appends one instance per visible stroke of f. camCenter is
// the camera center expressed in f's coordinates; effZoom is the
// magnification of f's units on screen.
func (e *Engine) emitFrame(f *Frame, camCenter Point, effZoom float64, out *[]gpufloat.StrokeInstance) {
	for _, s := range f.Strokes {
		fade := gpufloat.FadeForZoom(float32(effZoom), s.ZoomAtCreation)
		if fade == 0 {
			continue
		}
		rel := s.Origin.Sub(camCenter)
		*out = append(*out, gpufloat.StrokeInstance{
			RelativeOffset: gpufloat.Narrow(rel.X, rel.Y),
			Zoom:           float32(effZoom),
			Rotation:       e.cam.Rotation,
			ViewWidth:      float32(e.view.W),
			ViewHeight:     float32(e.view.H),
			Depth:          RenderDepth(s.DepthID),
			Fade:           fade,
			Width:          float32(s.WorldWidth),
			Color:          gpufloat.NarrowColor(s.Color.R, s.Color.G, s.Color.B, s.Color.A),
			DepthWrite:     s.DepthWrite,
			Segments:       s.Segments,
		})
	}
}

// liveInstance describes the in-progress stroke. It draws nearest,
// depth-tested but not writing, so it never corrupts the buffer for
// committed strokes.
func (e *Engine) liveInstance() gpufloat.StrokeInstance {
	b := e.live
	segments := make([]gpufloat.Segment, 0, len(b.points))
	if len(b.points) == 1 {
		segments = append(segments, gpufloat.Segment{A: b.points[0], B: b.points[0]})
	} else {
		for i := 1; i < len(b.points); i++ {
			segments = append(segments, gpufloat.Segment{A: b.points[i-1], B: b.points[i]})
		}
	}
	rel := b.origin.Sub(ScreenToWorld(e.view.Center(), e.view, e.cam))
	return gpufloat.StrokeInstance{
		RelativeOffset: gpufloat.Narrow(rel.X, rel.Y),
		Zoom:           float32(e.cam.Zoom),
		Rotation:       e.cam.Rotation,
		ViewWidth:      float32(e.view.W),
		ViewHeight:     float32(e.view.H),
		Depth:          RenderDepth(MaxDepthID),
		Fade:           1,
		Width:          float32(e.brushWidth / b.zoom),
		Color:          gpufloat.NarrowColor(e.brushColor.R, e.brushColor.G, e.brushColor.B, e.brushColor.A),
		DepthWrite:     false,
		Segments:       segments,
	}
}
