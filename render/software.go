// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"github.com/gogpu/infcanvas"
	"github.com/gogpu/infcanvas/gpufloat"
)

// minHalfWidth keeps degenerate-width strokes visible as hairlines.
const minHalfWidth = 0.375

// SoftwareRenderer rasterizes stroke instances on the CPU.
//
// It walks the same float32 path a GPU vertex stage would: each segment
// endpoint goes frame-local offset -> screen delta -> NDC -> viewport.
// Depth ordering is emulated with painter's order, which the engine's
// instance ordering already encodes (far-to-near writers, then
// non-writers in creation order); translucent non-writers therefore
// composite over everything, matching their draw-last contract.
type SoftwareRenderer struct {
	// Background fills the target before drawing. Nil leaves the
	// target contents in place.
	Background color.Color
}

// NewSoftwareRenderer creates a renderer that clears to white.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{Background: color.White}
}

// Render draws the instances into the target in slice order.
func (r *SoftwareRenderer) Render(target *PixmapTarget, instances []gpufloat.StrokeInstance) error {
	if target == nil {
		return fmt.Errorf("render: nil target")
	}
	w, h := target.Width(), target.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("render: empty target %dx%d", w, h)
	}
	if r.Background != nil {
		target.Clear(r.Background)
	}

	infcanvas.Logger().Debug("software render pass",
		"instances", len(instances), "w", w, "h", h)

	for i := range instances {
		r.drawInstance(target, &instances[i])
	}
	return nil
}

// drawInstance widens every segment of one stroke instance into a quad
// and fills their union in a single coverage pass, so overlapping joints
// do not double-blend.
func (r *SoftwareRenderer) drawInstance(target *PixmapTarget, inst *gpufloat.StrokeInstance) {
	if inst.Fade <= 0 || len(inst.Segments) == 0 {
		return
	}
	w, h := target.Width(), target.Height()

	halfWidth := inst.Width * inst.Zoom / 2
	if halfWidth < minHalfWidth {
		halfWidth = minHalfWidth
	}

	ras := vector.NewRasterizer(w, h)
	for _, seg := range inst.Segments {
		a := r.project(inst, seg.A, w, h)
		b := r.project(inst, seg.B, w, h)

		dir := gpufloat.Direction(a, b)
		norm := dir.Perp().Scale(halfWidth)
		// Square caps: extend endpoints along the direction so
		// adjacent quads seal their joints.
		aExt := a.Sub(dir.Scale(halfWidth))
		bExt := b.Add(dir.Scale(halfWidth))

		ras.MoveTo(aExt.X+norm.X, aExt.Y+norm.Y)
		ras.LineTo(bExt.X+norm.X, bExt.Y+norm.Y)
		ras.LineTo(bExt.X-norm.X, bExt.Y-norm.Y)
		ras.LineTo(aExt.X-norm.X, aExt.Y-norm.Y)
		ras.ClosePath()
	}

	src := image.NewUniform(instanceColor(inst))
	ras.Draw(target.Image(), target.Image().Bounds(), src, image.Point{})
}

// project maps a stroke-local segment endpoint to screen pixels through
// the renderer contract: offset in frame units, zoomed and rotated into a
// screen delta from the view center, then through NDC and the viewport.
func (r *SoftwareRenderer) project(inst *gpufloat.StrokeInstance, p gpufloat.Vec2, w, h int) gpufloat.Vec2 {
	local := inst.RelativeOffset.Add(p)
	delta := local.Rotate(inst.Rotation).Scale(inst.Zoom)

	cx := float32(w) / 2
	cy := float32(h) / 2
	sx := cx + delta.X
	sy := cy + delta.Y

	// Screen -> NDC -> viewport, exactly as a vertex stage would.
	ndcX := 2*sx/inst.ViewWidth - 1
	ndcY := 1 - 2*sy/inst.ViewHeight
	return gpufloat.Vec2{
		X: (ndcX + 1) / 2 * float32(w),
		Y: (1 - ndcY) / 2 * float32(h),
	}
}

// instanceColor folds the fade factor into the stroke alpha.
func instanceColor(inst *gpufloat.StrokeInstance) color.Color {
	a := inst.Color.A * inst.Fade
	return color.NRGBA{
		R: clamp8(inst.Color.R),
		G: clamp8(inst.Color.G),
		B: clamp8(inst.Color.B),
		A: clamp8(a),
	}
}

func clamp8(v float32) uint8 {
	s := v * 255
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
