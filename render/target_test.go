// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTargetBasics(t *testing.T) {
	target := NewPixmapTarget(64, 32)

	if target.Width() != 64 || target.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want RGBA8Unorm", target.Format())
	}
	if len(target.Pixels()) != 64*32*4 {
		t.Errorf("pixel buffer = %d bytes, want %d", len(target.Pixels()), 64*32*4)
	}
	if target.Stride() != 64*4 {
		t.Errorf("stride = %d, want %d", target.Stride(), 64*4)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(8, 8)
	target.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})

	for _, pt := range [][2]int{{0, 0}, {7, 7}, {3, 5}} {
		r, g, b, a := target.GetPixel(pt[0], pt[1]).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
			t.Errorf("pixel %v = (%d,%d,%d,%d)", pt, r>>8, g>>8, b>>8, a>>8)
		}
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(10, 10)
	target.Resize(20, 5)
	if target.Width() != 20 || target.Height() != 5 {
		t.Errorf("size after resize = %dx%d, want 20x5", target.Width(), target.Height())
	}
	if len(target.Pixels()) != 20*5*4 {
		t.Errorf("pixel buffer = %d bytes after resize", len(target.Pixels()))
	}
}

func TestPixmapTargetEncodePNG(t *testing.T) {
	target := NewPixmapTarget(16, 16)
	target.Clear(color.White)

	var buf bytes.Buffer
	if err := target.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 16 {
		t.Errorf("decoded size = %dx%d, want 16x16", cfg.Width, cfg.Height)
	}
}
