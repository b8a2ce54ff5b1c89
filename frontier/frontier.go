package frontier

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel is the reserved output value marking an edge rejected by the
// predicate. It never collides with a vertex id: ids are non-negative.
const Sentinel = int32(-1)

// Frontier is the active vertex set of one traversal step.
//
// The zero value is an empty sparse frontier. A Frontier is immutable
// once built; rebuilding per step is the intended lifecycle.
type Frontier struct {
	sparse  []int32
	dense   *roaring.Bitmap
	isDense bool
}

// Sparse wraps an ordered id slice as a frontier. The slice is shared,
// not copied.
func Sparse(ids []int32) Frontier {
	return Frontier{sparse: ids}
}

// Single returns a frontier holding exactly one vertex.
func Single(v int32) Frontier {
	return Frontier{sparse: []int32{v}}
}

// FromBitmap wraps a roaring bitmap as a dense frontier. The bitmap is
// shared, not copied.
func FromBitmap(bm *roaring.Bitmap) Frontier {
	return Frontier{dense: bm, isDense: true}
}

// Len returns the number of vertices in the frontier.
func (f Frontier) Len() int {
	if f.isDense {
		return int(f.dense.GetCardinality())
	}
	return len(f.sparse)
}

// IsEmpty reports whether the frontier holds no vertices.
func (f Frontier) IsEmpty() bool { return f.Len() == 0 }

// Contains reports membership of v.
func (f Frontier) Contains(v int32) bool {
	if v < 0 {
		return false
	}
	if f.isDense {
		return f.dense.Contains(uint32(v))
	}
	for _, id := range f.sparse {
		if id == v {
			return true
		}
	}
	return false
}

// IDs returns the frontier as an ordered id slice. Sparse frontiers
// return their backing slice; dense frontiers materialize one in
// ascending id order.
func (f Frontier) IDs() []int32 {
	if !f.isDense {
		return f.sparse
	}
	ids := make([]int32, 0, f.dense.GetCardinality())
	it := f.dense.Iterator()
	for it.HasNext() {
		ids = append(ids, int32(it.Next()))
	}
	return ids
}

// Bitmap returns the frontier as a roaring bitmap. Dense frontiers
// return their backing bitmap; sparse frontiers materialize one.
func (f Frontier) Bitmap() *roaring.Bitmap {
	if f.isDense {
		return f.dense
	}
	bm := roaring.New()
	for _, id := range f.sparse {
		if id >= 0 {
			bm.Add(uint32(id))
		}
	}
	return bm
}

// Compact builds the next step's frontier from a raw relax output:
// sentinel slots are dropped and duplicate neighbor ids collapse into
// one membership. The result is dense, sorted by id.
func Compact(out []int32) Frontier {
	bm := roaring.New()
	for _, v := range out {
		if v >= 0 {
			bm.Add(uint32(v))
		}
	}
	return FromBitmap(bm)
}
