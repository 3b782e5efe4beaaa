// Package infcanvas provides the coordinate and composition engine for an
// infinite-zoom drawing canvas.
//
// # Overview
//
// infcanvas keeps ink strokes pixel-stable and numerically exact across
// unbounded pan, pinch-zoom, and rotation — from 1e-3x magnification to
// beyond 1e9x. A single global coordinate system cannot do this: at extreme
// magnification the representable double precision per pixel collapses, and
// single-precision GPU coordinates cannot hold large offsets at all. The
// engine therefore maintains a chain of reference frames with bounded local
// coordinates, switching frames ("telescoping") whenever the zoom crosses
// fixed thresholds, so no stored coordinate ever grows large.
//
// # Quick Start
//
//	eng := infcanvas.NewEngine(infcanvas.WithViewSize(1000, 1000))
//
//	// Draw a stroke.
//	eng.TouchBegan(infcanvas.Pt(500, 500))
//	eng.TouchMoved(infcanvas.Pt(520, 540))
//	eng.TouchEnded(infcanvas.Pt(560, 560))
//
//	// Pinch to zoom; the engine drills into a child frame past 1000x.
//	eng.PinchBegan(infcanvas.Pt(500, 500), 2)
//	eng.PinchChanged(1500, infcanvas.Pt(500, 500), 2)
//	eng.PinchEnded()
//
//	// Hand per-stroke descriptors to a renderer.
//	instances := eng.FrameInstances()
//
// # Architecture
//
// The engine is organized into:
//   - Transform engine: pure screen/world conversions and the anchor pan
//     solver (transform.go, matrix.go)
//   - Reference frame tree: bounded-coordinate frame chain (frame.go)
//   - Gesture anchor composer: pinch/rotate/pan arbitration (gesture.go)
//   - Telescoping manager: drill-down and pop-up transitions (telescope.go)
//   - Stroke local model: anchor plus small float32 segment offsets
//     (stroke.go, depth.go)
//   - gpufloat: the single-precision boundary types handed to renderers
//   - render: render-target contract and a software preview renderer
//
// # Coordinate System
//
// Screen coordinates have the origin at the top-left, X increasing right,
// Y increasing down, in pixels. With the identity camera (zoom 1, pan zero,
// rotation zero) world coordinates coincide with screen coordinates. All
// conversions are double precision; values narrow to float32 only inside
// package gpufloat, immediately before they reach a renderer.
//
// # Concurrency
//
// The engine is single-threaded by design: all mutation happens on the
// event/UI goroutine in response to touch and gesture callbacks. A render
// pass may read the frame tree and camera between events but must not
// mutate them.
package infcanvas
