package infcanvas

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Card is an opaque content payload owned by a frame. The engine carries
// cards through persistence untouched; their contents belong to upstream
// layers.
type Card = json.RawMessage

// Frame is a node in the reference-frame tree: a local 2D coordinate
// space defined by an origin and a uniform scale relative to its parent.
// In normal use the tree is a singly-linked chain, one frame per
// telescoping level; the structure tolerates extra children for auxiliary
// tooling, but navigation always follows the sole-child chain.
//
// The load-bearing invariant is that OriginInParent and every coordinate
// stored within a frame stay bounded (single digits to low thousands):
// each telescoping transition re-anchors the new frame's origin at the
// crossing point, so coordinates never grow with drill depth.
type Frame struct {
	// ID uniquely identifies the frame across save/load.
	ID string

	// Parent is the owning frame, nil for the current root.
	Parent *Frame

	// Children are owned child frames. At most one per frame along the
	// active navigation chain.
	Children []*Frame

	// OriginInParent is this frame's origin expressed in the parent's
	// coordinates. Zero for the root.
	OriginInParent Point

	// ScaleRelativeToParent is how many of this frame's units fit in
	// one parent unit. Fixed at creation, conventionally 1000.
	ScaleRelativeToParent float64

	// DepthFromRoot counts telescoping levels below the original root.
	// Synthesized parents take negative depths.
	DepthFromRoot int

	// Strokes are the ink strokes committed in this frame.
	Strokes []*Stroke

	// Cards are opaque payloads owned by this frame.
	Cards []Card
}

// NewRootFrame creates a standalone frame to serve as the initial root.
func NewRootFrame() *Frame {
	return &Frame{
		ID:                    uuid.NewString(),
		ScaleRelativeToParent: FrameScaleRatio,
	}
}

// NewChild creates a child frame whose origin sits at the given point in
// f's coordinates, with the given scale ratio. Creating a sibling next to
// an existing child violates the telescoping chain invariant; it is
// tolerated (auxiliary tooling populates frames this way) but logged.
func (f *Frame) NewChild(origin Point, scale float64) *Frame {
	if len(f.Children) > 0 {
		Logger().Warn("frame gains a sibling child; telescoping chain is no longer single",
			"frame", f.ID, "children", len(f.Children)+1)
	}
	child := &Frame{
		ID:                    uuid.NewString(),
		Parent:                f,
		OriginInParent:        origin,
		ScaleRelativeToParent: scale,
		DepthFromRoot:         f.DepthFromRoot + 1,
	}
	f.Children = append(f.Children, child)
	return child
}

// SoleChild returns the frame's single child, or nil if it has none.
// A frame with several children warns and yields the first: navigation
// may behave inconsistently, but it is not fatal.
func (f *Frame) SoleChild() *Frame {
	switch len(f.Children) {
	case 0:
		return nil
	case 1:
		return f.Children[0]
	default:
		Logger().Warn("frame has multiple children on the navigation chain",
			"frame", f.ID, "children", len(f.Children))
		return f.Children[0]
	}
}

// EnsureParent returns the frame's parent, synthesizing one if the frame
// is currently the root. A synthesized parent adopts f at origin (0,0)
// with the standard scale ratio; re-anchoring at zero on every pop-up is
// what allows popping out indefinitely without coordinate growth.
func (f *Frame) EnsureParent() *Frame {
	if f.Parent != nil {
		return f.Parent
	}
	parent := &Frame{
		ID:                    uuid.NewString(),
		ScaleRelativeToParent: FrameScaleRatio,
		DepthFromRoot:         f.DepthFromRoot - 1,
	}
	f.OriginInParent = Point{}
	f.ScaleRelativeToParent = FrameScaleRatio
	f.Parent = parent
	parent.Children = append(parent.Children, f)
	return parent
}

// Root walks up to the topmost frame.
func (f *Frame) Root() *Frame {
	r := f
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// ToParent converts a point in f's coordinates to the parent's:
//
//	parent = originInParent + local / scale
func (f *Frame) ToParent(p Point) Point {
	return f.OriginInParent.Add(p.Div(f.ScaleRelativeToParent))
}

// FromParent converts a point in the parent's coordinates to f's:
//
//	local = (parent - originInParent) * scale
func (f *Frame) FromParent(p Point) Point {
	return p.Sub(f.OriginInParent).Mul(f.ScaleRelativeToParent)
}

// AppendStroke takes ownership of a committed stroke.
func (f *Frame) AppendStroke(s *Stroke) {
	f.Strokes = append(f.Strokes, s)
}

// ChainIsSingle reports whether every frame from f down the navigation
// chain has at most one child. Violations have already been logged by
// SoleChild; this is the explicit invariant check for tests and
// diagnostics.
func (f *Frame) ChainIsSingle() bool {
	for cur := f; cur != nil; {
		if len(cur.Children) > 1 {
			return false
		}
		if len(cur.Children) == 0 {
			break
		}
		cur = cur.Children[0]
	}
	return true
}
