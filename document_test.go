package infcanvas

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func buildSampleEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(WithViewSize(1000, 1000))

	e.SetBrush(RGB(0.2, 0.4, 0.6), 5, true)
	e.TouchBegan(Pt(400, 400))
	e.TouchMoved(Pt(450, 420))
	e.TouchEnded(Pt(500, 400))

	e.ZoomBy(2000, Pt(500, 500)) // drill one level

	e.SetBrush(NewRGBA(1, 0, 0, 0.5), 3, false)
	e.TouchBegan(Pt(500, 500))
	e.TouchEnded(Pt(560, 540))
	return e
}

func TestDocumentRoundTrip(t *testing.T) {
	e := buildSampleEngine(t)

	var buf bytes.Buffer
	if err := e.SaveDocument(&buf); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	loaded, err := LoadDocument(&buf, WithViewSize(1000, 1000))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	if loaded.ActiveFrame().DepthFromRoot != 1 {
		t.Errorf("active depth = %d, want 1", loaded.ActiveFrame().DepthFromRoot)
	}
	if loaded.Camera() != NewCamera() {
		t.Errorf("loaded camera = %+v, want identity", loaded.Camera())
	}

	root := loaded.RootFrame()
	if len(root.Strokes) != 1 {
		t.Fatalf("root strokes = %d, want 1", len(root.Strokes))
	}
	orig := e.RootFrame().Strokes[0]
	got := root.Strokes[0]
	if got.ID != orig.ID || got.Origin != orig.Origin ||
		got.WorldWidth != orig.WorldWidth || got.DepthID != orig.DepthID ||
		got.DepthWrite != orig.DepthWrite || got.ZoomAtCreation != orig.ZoomAtCreation {
		t.Errorf("root stroke mismatch:\n got %+v\nwant %+v", got, orig)
	}
	if len(got.Segments) != len(orig.Segments) {
		t.Fatalf("segments = %d, want %d", len(got.Segments), len(orig.Segments))
	}
	for i := range got.Segments {
		if got.Segments[i] != orig.Segments[i] {
			t.Errorf("segment %d = %v, want %v", i, got.Segments[i], orig.Segments[i])
		}
	}

	child := root.SoleChild()
	if child == nil {
		t.Fatal("child frame not persisted")
	}
	origChild := e.RootFrame().SoleChild()
	if child.OriginInParent != origChild.OriginInParent ||
		child.ScaleRelativeToParent != origChild.ScaleRelativeToParent ||
		child.DepthFromRoot != 1 {
		t.Errorf("child frame mismatch:\n got %+v\nwant %+v", child, origChild)
	}
	if child.Parent != root {
		t.Error("child parent link not restored")
	}
	if len(child.Strokes) != 1 {
		t.Errorf("child strokes = %d, want 1", len(child.Strokes))
	}
	if w := child.Strokes[0].DepthWrite; w {
		t.Error("translucent stroke lost its depth-write flag")
	}
}

func TestLoadDocumentReseedsDepth(t *testing.T) {
	e := buildSampleEngine(t) // commits DepthIDs 0 and 1

	var buf bytes.Buffer
	if err := e.SaveDocument(&buf); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	loaded, err := LoadDocument(&buf)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	loaded.TouchBegan(Pt(10, 10))
	s := loaded.TouchEnded(Pt(20, 20))
	if s.DepthID != 2 {
		t.Errorf("DepthID after load = %d, want 2 (above persisted maximum)", s.DepthID)
	}
}

func TestSaveDocumentPersistsCards(t *testing.T) {
	e := NewEngine()
	e.RootFrame().Cards = append(e.RootFrame().Cards,
		Card(`{"kind":"note","text":"hello"}`))

	var buf bytes.Buffer
	if err := e.SaveDocument(&buf); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	loaded, err := LoadDocument(&buf)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	cards := loaded.RootFrame().Cards
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	var payload struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(cards[0], &payload); err != nil {
		t.Fatalf("card payload: %v", err)
	}
	if payload.Kind != "note" || payload.Text != "hello" {
		t.Errorf("card payload = %+v", payload)
	}
}

func TestSaveDocumentFromPoppedRoot(t *testing.T) {
	// Popping out synthesizes parents above the original root; saving must
	// start from the true topmost frame, and negative active depths restore.
	e := NewEngine(WithViewSize(1000, 1000))
	e.TouchBegan(Pt(500, 500))
	e.TouchEnded(Pt(600, 600))
	e.ZoomBy(0.01, Pt(500, 500)) // pop above the original root

	if e.ActiveFrame().DepthFromRoot != -1 {
		t.Fatalf("active depth = %d, want -1", e.ActiveFrame().DepthFromRoot)
	}

	var buf bytes.Buffer
	if err := e.SaveDocument(&buf); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	loaded, err := LoadDocument(&buf)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if loaded.RootFrame().DepthFromRoot != -1 {
		t.Errorf("topmost depth = %d, want -1", loaded.RootFrame().DepthFromRoot)
	}
	if loaded.ActiveFrame().DepthFromRoot != -1 {
		t.Errorf("active depth = %d, want -1", loaded.ActiveFrame().DepthFromRoot)
	}
	inner := loaded.RootFrame().SoleChild()
	if inner == nil || len(inner.Strokes) != 1 {
		t.Fatal("original root content lost through pop and round trip")
	}
}

func TestLoadDocumentRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"garbage", "not json"},
		{"wrong version", `{"version":99,"activeDepth":0,"root":{"id":"r"}}`},
		{"missing root", `{"version":1,"activeDepth":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadDocument(strings.NewReader(tt.in)); err == nil {
				t.Error("LoadDocument accepted bad input")
			}
		})
	}
}

func TestLoadDocumentUnreachableDepth(t *testing.T) {
	in := `{"version":1,"activeDepth":5,"root":{"id":"r","originInParent":[0,0],"scaleRelativeToParent":1000,"depthFromRoot":0,"strokes":[]}}`
	loaded, err := LoadDocument(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if loaded.ActiveFrame() != loaded.RootFrame() {
		t.Error("unreachable depth should fall back to the deepest frame")
	}
}
