// Package frontier represents the active vertex set of one traversal
// step, in either sparse (ordered id slice) or dense (roaring bitmap)
// form, and compacts relax output into the next step's frontier.
//
// What
//
//   - Frontier: a value type holding either an ordered []int32 of vertex
//     ids (sparse) or a roaring bitmap over the id space (dense). The
//     expansion kernels consume the sparse view; set algebra and
//     membership tests use the bitmap view.
//   - Compact: turns a raw relax output — neighbor ids interleaved with
//     pruned-edge sentinels — into a deduplicated, sorted Frontier for
//     the next step.
//
// Why
//
//	A traversal step emits one slot per enumerated edge, so the same
//	neighbor can appear many times and rejected edges leave sentinel
//	holes. The bitmap absorbs both in one pass, and dense form keeps
//	high-occupancy frontiers compact.
//
// Usage
//
//	f := frontier.Single(src)
//	for f.Len() > 0 {
//	    res, err := relax.Advance(g, f, visitor)
//	    ...
//	    f = res.Next
//	}
package frontier
