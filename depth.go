package infcanvas

// Cross-frame depth ordering. Strokes drawn at wildly different telescope
// depths are composited in one render pass, so back-to-front painting
// cannot express "this old stroke at depth -9 must still occlude that
// newer stroke at depth 0". Instead every committed stroke gets a global
// creation-order DepthID, mapped at render time to a normalized depth
// value where newer means nearer; a depth test then makes newer strokes
// win regardless of which frame they live in.

// DepthSlots is the number of distinct depth values available. It matches
// the float32 mantissa (2^24) so every slot maps to a distinct, exactly
// representable render depth.
const DepthSlots = 1 << 24

// MaxDepthID is the largest DepthID the allocator hands out. Allocation
// saturates here rather than wrapping, so exhausting the counter degrades
// ordering among the newest strokes instead of corrupting it globally.
const MaxDepthID = DepthSlots - 1

// DepthAllocator hands out monotonically increasing stroke DepthIDs.
// The zero value is ready to use.
type DepthAllocator struct {
	next      uint32
	saturated bool
}

// Next returns the next DepthID. Once MaxDepthID is reached all further
// IDs are MaxDepthID; the first saturation emits a warning.
func (a *DepthAllocator) Next() uint32 {
	if a.next >= MaxDepthID {
		if !a.saturated {
			a.saturated = true
			Logger().Warn("depth ID space exhausted; newest strokes share a depth slot",
				"maxDepthID", uint32(MaxDepthID))
		}
		return MaxDepthID
	}
	id := a.next
	a.next++
	return id
}

// Seed advances the allocator so the next ID is strictly greater than
// every ID at or below max. Used when loading a document so new strokes
// order above persisted ones.
func (a *DepthAllocator) Seed(max uint32) {
	if max >= MaxDepthID {
		a.next = MaxDepthID
		return
	}
	if max+1 > a.next {
		a.next = max + 1
	}
}

// RenderDepth maps a DepthID to its normalized depth-test value:
//
//	depth = (MaxDepthID - id) / DepthSlots
//
// Higher IDs (newer strokes) yield smaller values (nearer). The numerator
// is an integer below 2^24 and the divisor a power of two, so the result
// is exact in float32 and strictly monotonic over the whole ID range.
func RenderDepth(id uint32) float32 {
	if id > MaxDepthID {
		id = MaxDepthID
	}
	return float32(MaxDepthID-id) / float32(DepthSlots)
}
