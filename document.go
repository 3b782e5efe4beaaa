package infcanvas

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/infcanvas/gpufloat"
)

// Document persistence. The frame tree serializes recursively from the
// topmost frame; round-tripping reconstructs an active-frame pointer at
// the same depthFromRoot the user was viewing and re-seeds the depth
// allocator above every persisted DepthID.

// documentVersion is the persisted format version.
const documentVersion = 1

type documentJSON struct {
	Version     int        `json:"version"`
	ActiveDepth int        `json:"activeDepth"`
	Root        *frameJSON `json:"root"`
}

type frameJSON struct {
	ID                    string       `json:"id"`
	OriginInParent        [2]float64   `json:"originInParent"`
	ScaleRelativeToParent float64      `json:"scaleRelativeToParent"`
	DepthFromRoot         int          `json:"depthFromRoot"`
	Strokes               []strokeJSON `json:"strokes"`
	Cards                 []Card       `json:"cards,omitempty"`
	Children              []*frameJSON `json:"children,omitempty"`
}

type strokeJSON struct {
	ID                      string       `json:"id"`
	Origin                  [2]float64   `json:"origin"`
	WorldWidth              float64      `json:"worldWidth"`
	Color                   [4]float64   `json:"color"`
	ZoomEffectiveAtCreation float32      `json:"zoomEffectiveAtCreation"`
	DepthID                 uint32       `json:"depthID"`
	DepthWriteEnabled       bool         `json:"depthWriteEnabled"`
	Segments                [][4]float32 `json:"segments"`
}

// SaveDocument writes the whole frame tree and the viewing position as
// JSON. The camera itself is transient and not persisted; loading yields
// the identity camera in the frame at the saved depth.
func (e *Engine) SaveDocument(w io.Writer) error {
	doc := documentJSON{
		Version:     documentVersion,
		ActiveDepth: e.active.DepthFromRoot,
		Root:        encodeFrame(e.root.Root()),
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("infcanvas: save document: %w", err)
	}
	return nil
}

// LoadDocument reads a document written by SaveDocument and returns an
// engine positioned at the persisted active depth with a fresh identity
// camera.
func LoadDocument(r io.Reader, opts ...EngineOption) (*Engine, error) {
	var doc documentJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("infcanvas: load document: %w", err)
	}
	if doc.Version != documentVersion {
		return nil, fmt.Errorf("infcanvas: unsupported document version %d", doc.Version)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("infcanvas: document has no root frame")
	}

	e := NewEngine(opts...)
	var maxDepthID uint32
	root := decodeFrame(doc.Root, nil, &maxDepthID)

	e.root = root
	e.active = frameAtDepth(root, doc.ActiveDepth)
	e.cam = NewCamera()
	e.depth.Seed(maxDepthID)
	return e, nil
}

func encodeFrame(f *Frame) *frameJSON {
	out := &frameJSON{
		ID:                    f.ID,
		OriginInParent:        [2]float64{f.OriginInParent.X, f.OriginInParent.Y},
		ScaleRelativeToParent: f.ScaleRelativeToParent,
		DepthFromRoot:         f.DepthFromRoot,
		Strokes:               make([]strokeJSON, 0, len(f.Strokes)),
		Cards:                 f.Cards,
	}
	for _, s := range f.Strokes {
		out.Strokes = append(out.Strokes, encodeStroke(s))
	}
	for _, child := range f.Children {
		out.Children = append(out.Children, encodeFrame(child))
	}
	return out
}

func encodeStroke(s *Stroke) strokeJSON {
	segs := make([][4]float32, 0, len(s.Segments))
	for _, seg := range s.Segments {
		segs = append(segs, [4]float32{seg.A.X, seg.A.Y, seg.B.X, seg.B.Y})
	}
	return strokeJSON{
		ID:                      s.ID,
		Origin:                  [2]float64{s.Origin.X, s.Origin.Y},
		WorldWidth:              s.WorldWidth,
		Color:                   [4]float64{s.Color.R, s.Color.G, s.Color.B, s.Color.A},
		ZoomEffectiveAtCreation: s.ZoomAtCreation,
		DepthID:                 s.DepthID,
		DepthWriteEnabled:       s.DepthWrite,
		Segments:                segs,
	}
}

func decodeFrame(in *frameJSON, parent *Frame, maxDepthID *uint32) *Frame {
	f := &Frame{
		ID:                    in.ID,
		Parent:                parent,
		OriginInParent:        Pt(in.OriginInParent[0], in.OriginInParent[1]),
		ScaleRelativeToParent: in.ScaleRelativeToParent,
		DepthFromRoot:         in.DepthFromRoot,
		Cards:                 in.Cards,
	}
	if f.ScaleRelativeToParent <= 0 {
		f.ScaleRelativeToParent = FrameScaleRatio
	}
	for i := range in.Strokes {
		s := decodeStroke(&in.Strokes[i])
		if s.DepthID > *maxDepthID {
			*maxDepthID = s.DepthID
		}
		f.Strokes = append(f.Strokes, s)
	}
	for _, child := range in.Children {
		f.Children = append(f.Children, decodeFrame(child, f, maxDepthID))
	}
	return f
}

func decodeStroke(in *strokeJSON) *Stroke {
	segs := make([]gpufloat.Segment, 0, len(in.Segments))
	for _, seg := range in.Segments {
		segs = append(segs, gpufloat.Segment{
			A: gpufloat.Vec2{X: seg[0], Y: seg[1]},
			B: gpufloat.Vec2{X: seg[2], Y: seg[3]},
		})
	}
	return &Stroke{
		ID:             in.ID,
		Origin:         Pt(in.Origin[0], in.Origin[1]),
		WorldWidth:     in.WorldWidth,
		Color:          NewRGBA(in.Color[0], in.Color[1], in.Color[2], in.Color[3]),
		ZoomAtCreation: in.ZoomEffectiveAtCreation,
		DepthID:        in.DepthID,
		DepthWrite:     in.DepthWriteEnabled,
		Segments:       segs,
	}
}

// frameAtDepth walks the sole-child chain from root until it reaches the
// frame at the requested depth. If the chain ends first, the deepest
// frame reached becomes active; the document is still usable.
func frameAtDepth(root *Frame, depth int) *Frame {
	cur := root
	for cur.DepthFromRoot < depth {
		child := cur.SoleChild()
		if child == nil {
			Logger().Warn("persisted active depth not reachable; stopping at deepest frame",
				"want", depth, "got", cur.DepthFromRoot)
			break
		}
		cur = child
	}
	return cur
}
