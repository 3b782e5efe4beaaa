package infcanvas

import (
	"math"
	"testing"
)

func TestScreenToWorldIdentityCamera(t *testing.T) {
	view := View(1000, 1000)
	cam := NewCamera()

	tests := []struct {
		name   string
		screen Point
		want   Point
	}{
		{"center", Pt(500, 500), Pt(500, 500)},
		{"origin", Pt(0, 0), Pt(0, 0)},
		{"corner", Pt(1000, 1000), Pt(1000, 1000)},
		{"fractional", Pt(123.25, 987.5), Pt(123.25, 987.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToWorld(tt.screen, view, cam)
			if got != tt.want {
				t.Errorf("ScreenToWorld(%v) = %v, want %v", tt.screen, got, tt.want)
			}
		})
	}
}

func TestTransformRoundTrip(t *testing.T) {
	view := View(1280, 800)
	zooms := []float64{1e-4, 1e-2, 0.6, 1, 42.5, 1e3, 1e6, 1e9}
	rotations := []float32{0, 0.1, float32(math.Pi / 4), float32(math.Pi), float32(3 * math.Pi / 2), float32(2 * math.Pi)}
	pans := []Point{{0, 0}, {640, 400}, {-1234.5, 987.25}, {1e5, -1e5}}
	screens := []Point{{0, 0}, {640, 400}, {1280, 800}, {13.7, 791.2}}

	for _, zoom := range zooms {
		for _, rot := range rotations {
			for _, pan := range pans {
				cam := Camera{Pan: pan, Zoom: zoom, Rotation: rot}
				for _, s := range screens {
					world := ScreenToWorld(s, view, cam)
					back := WorldToScreen(world, view, cam)
					if back.Distance(s) > 1e-6 {
						t.Fatalf("round trip zoom=%g rot=%g pan=%v screen=%v: got %v (err %g px)",
							zoom, rot, pan, s, back, back.Distance(s))
					}
				}
			}
		}
	}
}

func TestSolvePanForAnchor(t *testing.T) {
	view := View(1000, 1000)

	tests := []struct {
		name     string
		anchor   Point
		desired  Point
		zoom     float64
		rotation float32
	}{
		{"identity", Pt(500, 500), Pt(500, 500), 1, 0},
		{"offset anchor", Pt(120, -45), Pt(300, 700), 1, 0},
		{"zoomed", Pt(2.5, 3.5), Pt(640, 360), 837.5, 0},
		{"rotated", Pt(10, 20), Pt(500, 500), 12, float32(math.Pi / 3)},
		{"deep zoom", Pt(0.001, -0.002), Pt(321, 654), 1e9, 1.25},
		{"tiny zoom", Pt(4000, -2500), Pt(10, 990), 1e-5, -0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pan := SolvePanForAnchor(tt.anchor, tt.desired, view, tt.zoom, tt.rotation)
			cam := Camera{Pan: pan, Zoom: tt.zoom, Rotation: tt.rotation}
			got := WorldToScreen(tt.anchor, view, cam)
			if got.Distance(tt.desired) > 1e-6 {
				t.Errorf("anchor lands at %v, want %v (err %g px)",
					got, tt.desired, got.Distance(tt.desired))
			}
		})
	}
}

// With integer coordinates and no rotation the solve cancels term by
// term: the anchor must land on its screen point bit-exactly.
func TestSolvePanForAnchorExact(t *testing.T) {
	view := View(1000, 1000)
	anchor := Pt(500, 500)
	desired := Pt(500, 500)

	for _, zoom := range []float64{1, 2, 4, 512, 1000} {
		pan := SolvePanForAnchor(anchor, desired, view, zoom, 0)
		cam := Camera{Pan: pan, Zoom: zoom, Rotation: 0}
		if got := WorldToScreen(anchor, view, cam); got != desired {
			t.Errorf("zoom %g: anchor lands at %v, want exactly %v", zoom, got, desired)
		}
	}
}

// Anchor invariance: once locked, any sequence of zoom and rotation
// deltas followed by a pan solve leaves the anchor under its screen
// point after every step.
func TestAnchorInvarianceUnderDeltaSequence(t *testing.T) {
	view := View(1024, 768)
	cam := NewCamera()
	anchorScreen := Pt(400, 300)
	anchorWorld := ScreenToWorld(anchorScreen, view, cam)

	steps := []struct {
		scale  float64
		rotate float32
	}{
		{1.1, 0}, {2.0, 0.05}, {0.7, -0.3}, {5.0, 0.9},
		{1.0, float32(math.Pi / 2)}, {0.01, 0}, {300, -1.4}, {1.5, 0.2},
	}
	for i, st := range steps {
		cam.Zoom = clampZoom(cam.Zoom * st.scale)
		cam.Rotation += st.rotate
		cam.Pan = SolvePanForAnchor(anchorWorld, anchorScreen, view, cam.Zoom, cam.Rotation)
		got := WorldToScreen(anchorWorld, view, cam)
		if got.Distance(anchorScreen) > 1e-6 {
			t.Fatalf("step %d: anchor drifted to %v, want %v (zoom %g)",
				i, got, anchorScreen, cam.Zoom)
		}
	}
}

func TestTransformDegenerateGuards(t *testing.T) {
	t.Run("invalid view short-circuits", func(t *testing.T) {
		bad := View(0, 600)
		p := Pt(10, 20)
		if got := ScreenToWorld(p, bad, NewCamera()); got != p {
			t.Errorf("ScreenToWorld with invalid view = %v, want input %v", got, p)
		}
		if got := WorldToScreen(p, bad, NewCamera()); got != p {
			t.Errorf("WorldToScreen with invalid view = %v, want input %v", got, p)
		}
	})

	t.Run("zero zoom clamps", func(t *testing.T) {
		view := View(800, 600)
		cam := Camera{Zoom: 0}
		got := ScreenToWorld(Pt(400, 300), view, cam)
		if !got.IsFinite() {
			t.Errorf("ScreenToWorld with zero zoom produced non-finite %v", got)
		}
	})

	t.Run("negative zoom clamps in solver", func(t *testing.T) {
		view := View(800, 600)
		pan := SolvePanForAnchor(Pt(1, 1), Pt(400, 300), view, -5, 0)
		if !pan.IsFinite() {
			t.Errorf("SolvePanForAnchor with negative zoom produced non-finite %v", pan)
		}
	})
}

func TestNDCRoundTrip(t *testing.T) {
	view := View(1000, 500)

	tests := []struct {
		name   string
		screen Point
		ndc    Point
	}{
		{"top-left", Pt(0, 0), Pt(-1, 1)},
		{"center", Pt(500, 250), Pt(0, 0)},
		{"bottom-right", Pt(1000, 500), Pt(1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndc := ScreenToNDC(tt.screen, view)
			if ndc != tt.ndc {
				t.Errorf("ScreenToNDC(%v) = %v, want %v", tt.screen, ndc, tt.ndc)
			}
			back := NDCToScreen(ndc, view)
			if back.Distance(tt.screen) > 1e-9 {
				t.Errorf("NDCToScreen(ScreenToNDC(%v)) = %v", tt.screen, back)
			}
		})
	}
}

func TestCameraMatrixAgreesWithForwardTransform(t *testing.T) {
	view := View(1024, 768)
	cams := []Camera{
		NewCamera(),
		{Pan: Pt(100, -50), Zoom: 3.5, Rotation: 0.4},
		{Pan: Pt(-7.25, 912), Zoom: 1e4, Rotation: float32(-math.Pi / 5)},
	}
	points := []Point{{0, 0}, {1, 1}, {-250.5, 640}, {0.001, -0.001}}

	for _, cam := range cams {
		m := cam.Matrix()
		for _, p := range points {
			want := WorldToScreen(p, view, cam)
			got := m.TransformPoint(p)
			if got.Distance(want) > 1e-6*math.Max(1, want.Length()) {
				t.Errorf("cam %+v point %v: matrix %v, transform %v", cam, p, got, want)
			}
		}
	}
}

func BenchmarkTransformRoundTrip(b *testing.B) {
	view := View(1280, 800)
	cam := Camera{Pan: Pt(123.4, -56.7), Zoom: 1e6, Rotation: 0.8}
	p := Pt(640, 400)
	for i := 0; i < b.N; i++ {
		p = WorldToScreen(ScreenToWorld(p, view, cam), view, cam)
	}
	_ = p
}
