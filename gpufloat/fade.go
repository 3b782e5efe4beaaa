// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufloat

import "github.com/chewxy/math32"

// fadeRatio matches the engine's frame-scale ratio. One ratio of zoom
// headroom past creation is always opaque; the next ratio fades out.
const fadeRatio = 1000.0

// FadeForZoom returns the attenuation for a stroke drawn at zoomAtCreation
// when viewed at effective zoom effZoom. The result is 1 while the viewer
// stays within one frame-scale ratio (1000x) of the creation zoom, falls
// off logarithmically over the next ratio, and reaches 0 at 1e6x past
// creation. Non-positive inputs return 1 (no attenuation) so degenerate
// zoom states never black out content.
func FadeForZoom(effZoom, zoomAtCreation float32) float32 {
	if effZoom <= 0 || zoomAtCreation <= 0 {
		return 1
	}
	r := effZoom / zoomAtCreation
	if r <= fadeRatio {
		return 1
	}
	// Decades past the first ratio, normalized to [0, 1].
	excess := math32.Log(r/fadeRatio) / math32.Log(fadeRatio)
	if excess >= 1 {
		return 0
	}
	return 1 - excess
}
