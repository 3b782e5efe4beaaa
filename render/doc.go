// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render defines where stroke instances go.
//
// The engine's output contract is a slice of gpufloat.StrokeInstance
// descriptors; a production renderer consumes them on the GPU. This
// package provides the target abstraction shared by any such renderer and
// a small software renderer that rasterizes instances on the CPU. The
// software path exists for previews, golden-image tests, and headless
// export — it walks the exact float32 pipeline a GPU vertex stage would
// (instance to NDC to viewport), just without the hardware.
package render
