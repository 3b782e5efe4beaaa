// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpufloat holds the single-precision types handed to renderers.
//
// The engine keeps every stored coordinate in float64 (see the root
// package's Point); a renderer wants float32. Mixing the two freely is how
// precision bugs happen, so the narrowing boundary is type-level: the only
// way to obtain gpufloat values is through the Narrow* constructors, and
// nothing in this package converts back. A value that has crossed into
// gpufloat is, by construction, already small — a camera-relative offset, a
// stroke-local segment, a normalized depth — so float32 represents it to
// sub-pixel accuracy.
//
// Float32 arithmetic in this package uses github.com/chewxy/math32 so
// intermediate results never round-trip through float64.
package gpufloat
