package infcanvas

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() is not identity")
	}
	p := Pt(3.7, -12)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform = %v, want %v", got, p)
	}
}

func TestMatrixSimilarityMatchesComposition(t *testing.T) {
	tests := []struct {
		name           string
		tx, ty, s, ang float64
	}{
		{"translate only", 10, -5, 1, 0},
		{"scale only", 0, 0, 2.5, 0},
		{"rotate only", 0, 0, 1, 0.6},
		{"full", -3, 8, 0.001, -1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.tx, tt.ty, tt.s, tt.ang)
			want := Translate(tt.tx, tt.ty).Multiply(Scale(tt.s)).Multiply(Rotate(tt.ang))
			if !matrixNear(got, want, 1e-15) {
				t.Errorf("Similarity = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translate(100, -40)},
		{"scale", Scale(1e6)},
		{"rotation", Rotate(1.1)},
		{"similarity", Similarity(7, -2, 0.03, 2.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := tt.m.Multiply(tt.m.Invert())
			if !matrixNear(round, Identity(), 1e-9) {
				t.Errorf("m * m^-1 = %+v, want identity", round)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scale(0).Invert(); !got.IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Similarity(100, 200, 3, 0)
	if got := m.TransformVector(Pt(1, 1)); got != Pt(3, 3) {
		t.Errorf("TransformVector = %v, want (3,3)", got)
	}
}

func TestMatrixIsTranslation(t *testing.T) {
	if !Translate(5, 6).IsTranslation() {
		t.Error("Translate not recognized as translation")
	}
	if Scale(2).IsTranslation() {
		t.Error("Scale recognized as translation")
	}
	if !Identity().IsTranslation() {
		t.Error("identity should count as a translation")
	}
}

func matrixNear(a, b Matrix, tol float64) bool {
	return math.Abs(a.A-b.A) <= tol && math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.C-b.C) <= tol && math.Abs(a.D-b.D) <= tol &&
		math.Abs(a.E-b.E) <= tol && math.Abs(a.F-b.F) <= tol
}
