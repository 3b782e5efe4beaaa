package infcanvas

import (
	"github.com/google/uuid"

	"github.com/gogpu/infcanvas/gpufloat"
)

// Stroke is one committed ink stroke. Its geometry deliberately never
// stores a large number: the origin is the only absolute coordinate
// (bounded by the owning frame's invariant), and every segment endpoint is
// a small float32 offset relative to it.
type Stroke struct {
	// ID uniquely identifies the stroke across save/load.
	ID string

	// Origin is the anchor point in the owning frame's coordinates:
	// the world position of the first touch point.
	Origin Point

	// WorldWidth is the stroke width in the owning frame's units.
	WorldWidth float64

	// Color is the stroke color.
	Color RGBA

	// ZoomAtCreation is the effective zoom when the stroke was
	// committed, used to fade strokes once the viewer zooms far past
	// their creation scale.
	ZoomAtCreation float32

	// DepthID is the global creation-order counter value; see depth.go.
	DepthID uint32

	// DepthWrite reports whether the stroke writes the depth buffer.
	// Translucent tools disable it.
	DepthWrite bool

	// Segments is the stroke geometry relative to Origin. Immutable
	// once committed except through Rewrite.
	Segments []gpufloat.Segment
}

// Rewrite replaces the stroke's origin and segments atomically. Selection
// transforms use this: a moved or scaled stroke is rewritten whole, never
// mutated segment by segment.
func (s *Stroke) Rewrite(origin Point, segments []gpufloat.Segment) {
	replaced := make([]gpufloat.Segment, len(segments))
	copy(replaced, segments)
	s.Origin = origin
	s.Segments = replaced
}

// StrokeBuilder accumulates an in-progress stroke from raw screen points.
//
// Each local offset is computed directly from the screen-space delta to
// the first touch point:
//
//	local = R(-rotation) * (screen - firstScreen) / zoomAtCreation
//
// The subtraction happens on small screen-space numbers before anything
// narrows to float32; converting every point to absolute world coordinates
// first and subtracting those would reintroduce double-to-float rounding
// error at extreme zoom.
type StrokeBuilder struct {
	origin      Point
	firstScreen Point
	zoom        float64
	rotation    float32
	points      []gpufloat.Vec2
}

// NewStrokeBuilder starts a stroke at the given first touch point.
// The camera state is captured once; a stroke's geometry is defined
// entirely by the camera under which it was begun.
func NewStrokeBuilder(firstScreen Point, view ViewSize, cam Camera) *StrokeBuilder {
	return &StrokeBuilder{
		origin:      ScreenToWorld(firstScreen, view, cam),
		firstScreen: firstScreen,
		zoom:        clampZoom(cam.Zoom),
		rotation:    cam.Rotation,
		points:      []gpufloat.Vec2{{X: 0, Y: 0}},
	}
}

// Add appends a screen-space touch point to the stroke.
// Consecutive duplicate points collapse.
func (b *StrokeBuilder) Add(screen Point) {
	d := screen.Sub(b.firstScreen)
	local := d.RotateInverse(float64(b.rotation)).Div(b.zoom)
	p := gpufloat.Narrow(local.X, local.Y)
	if last := b.points[len(b.points)-1]; p == last {
		return
	}
	b.points = append(b.points, p)
}

// Origin returns the stroke anchor in the active frame's coordinates.
func (b *StrokeBuilder) Origin() Point {
	return b.origin
}

// PointCount returns the number of accumulated points, including the
// implicit first point at the origin.
func (b *StrokeBuilder) PointCount() int {
	return len(b.points)
}

// Build commits the accumulated points into a Stroke. screenWidth is the
// brush width in pixels at draw time; it divides out to a world width so
// the stroke keeps its on-screen size at the zoom it was drawn at.
// A single-point stroke becomes one degenerate dot segment; the renderer
// substitutes a default direction when widening it.
func (b *StrokeBuilder) Build(depthID uint32, color RGBA, screenWidth float64, depthWrite bool) *Stroke {
	var segments []gpufloat.Segment
	if len(b.points) == 1 {
		segments = []gpufloat.Segment{{A: b.points[0], B: b.points[0]}}
	} else {
		segments = make([]gpufloat.Segment, 0, len(b.points)-1)
		for i := 1; i < len(b.points); i++ {
			segments = append(segments, gpufloat.Segment{A: b.points[i-1], B: b.points[i]})
		}
	}
	return &Stroke{
		ID:             uuid.NewString(),
		Origin:         b.origin,
		WorldWidth:     screenWidth / b.zoom,
		Color:          color,
		ZoomAtCreation: float32(b.zoom),
		DepthID:        depthID,
		DepthWrite:     depthWrite,
		Segments:       segments,
	}
}
