// Package relax implements the expansion kernels: the degree scanner,
// the partition splitter generator, and the two edge relaxers.
package relax

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sablegraph/expand/csr"
	"github.com/sablegraph/expand/scan"
)

// seqThreshold is the frontier size below which the degree scanner runs
// sequentially instead of fanning out.
const seqThreshold = 2048

// ComputeEdgeCounts resolves the out-degree of every frontier vertex and
// writes it to the matching position of the returned slice. Positions are
// disjoint, so chunks run in parallel without synchronization. The result
// is the raw degree array; feed it through scan.InclusiveSum before the
// relax stage.
func ComputeEdgeCounts(g *csr.Graph, frontierIDs []int32) []int64 {
	n := len(frontierIDs)
	degrees := make([]int64, n)
	rowOffsets := g.RowOffsets()
	maxVertex := g.NumVertices()
	maxEdge := g.NumEdges()

	if n < seqThreshold {
		for i, v := range frontierIDs {
			degrees[i] = csr.NeighborLength(rowOffsets, v, maxVertex, maxEdge)
		}
		return degrees
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				degrees[i] = csr.NeighborLength(rowOffsets, frontierIDs[i], maxVertex, maxEdge)
			}
		}(lo, hi)
	}
	wg.Wait()

	return degrees
}

// Splitters generates the synthetic search targets of the partitioned
// path: needles[i] = splitVal*i for i in [0, n). Downstream sorted search
// locates, for each needle, the frontier position whose cumulative degree
// range first exceeds it — the partition start positions.
func Splitters(splitVal int64, n int) []int64 {
	needles := make([]int64, n)
	for i := range needles {
		needles[i] = splitVal * int64(i)
	}
	return needles
}

// Partitioned runs the load-balanced relaxer.
//
// scanned is the inclusive prefix sum of the frontier's degrees; starts
// holds one frontier position per partition, produced by Splitters +
// scan.SortedSearch with the same PartitionSize the Options carry. Each
// worker group owns the fixed output range of one partition and walks a
// variable number of source vertices in staging rounds. The returned
// slice has scanned[len-1] slots, one per enumerated edge, holding the
// neighbor id or Sentinel.
//
// Cross-array consistency (scanned vs. starts vs. frontier length) is the
// caller's contract; no validation is performed beyond nil checks.
func Partitioned(g *csr.Graph, frontierIDs []int32, scanned []int64, starts []int32, v Visitor, opts ...Option) ([]int32, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if v == nil {
		return nil, ErrVisitorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	outLen := int64(0)
	if len(scanned) > 0 {
		outLen = scanned[len(scanned)-1]
	}
	out := make([]int32, outLen)
	if outLen == 0 || len(starts) == 0 {
		return out, nil
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.GroupsInFlight)
	for grp := 0; grp < len(starts); grp++ {
		grp := grp
		eg.Go(func() error {
			scratch := make([]int64, o.WorkersPerGroup, o.ScratchCapacity)
			return partitionedGroup(ctx, g, frontierIDs, scanned, starts, v, out, grp, o.PartitionSize, scratch)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// partitionedGroup is the per-group state machine of the partitioned path.
//
// The group owns output range [grp*partSize, min((grp+1)*partSize, outLen))
// and source range [starts[grp], starts[grp+1]+1) — the +1 admits the
// vertex whose edges straddle the partition boundary; the last group runs
// to the frontier's end. Each round stages up to len(scratch) cumulative
// degrees, then resolves slot ownership with one upper-bound probe
// amortized across contiguous same-owner slots.
func partitionedGroup(ctx context.Context, g *csr.Graph, frontierIDs []int32, scanned []int64, starts []int32, v Visitor, out []int32, grp int, partSize int64, scratch []int64) error {
	outLen := int64(len(out))
	outStart := int64(grp) * partSize
	if outStart >= outLen {
		return nil // idle group
	}
	outEnd := outStart + partSize
	if outEnd > outLen {
		outEnd = outLen
	}

	srcEnd := len(frontierIDs)
	if grp+1 < len(starts) {
		if e := int(starts[grp+1]) + 1; e < srcEnd {
			srcEnd = e
		}
	}
	cursor := int(starts[grp])

	rowOffsets := g.RowOffsets()
	columns := g.ColumnIndices()

	slot := outStart
	for slot < outEnd && cursor < srcEnd {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Stage this round's cumulative degrees.
		k := srcEnd - cursor
		if k > len(scratch) {
			k = len(scratch)
		}
		staged := scratch[:k]
		copy(staged, scanned[cursor:cursor+k])

		// Round covers slots up to the staged reach or the group's end.
		roundEnd := staged[k-1]
		if roundEnd > outEnd {
			roundEnd = outEnd
		}
		if roundEnd <= slot {
			cursor += k // staged vertices were all zero-degree
			continue
		}

		own := scan.UpperBound(staged, slot)
		for ; slot < roundEnd; slot++ {
			for staged[own] <= slot {
				own++
			}
			relaxSlot(frontierIDs, scanned, rowOffsets, columns, v, out, cursor+own, slot)
		}
		cursor += k
	}
	return nil
}

// Light runs the single-pass fallback relaxer.
//
// Each worker group stages the cumulative degrees of exactly one group's
// worth of frontier vertices (clamped to the frontier length) and expands
// their edges in one round — no partition walking. Output contract and
// slot order match Partitioned exactly.
func Light(g *csr.Graph, frontierIDs []int32, scanned []int64, v Visitor, opts ...Option) ([]int32, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if v == nil {
		return nil, ErrVisitorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	outLen := int64(0)
	if len(scanned) > 0 {
		outLen = scanned[len(scanned)-1]
	}
	out := make([]int32, outLen)
	if outLen == 0 {
		return out, nil
	}

	width := o.WorkersPerGroup
	numGroups := (len(frontierIDs) + width - 1) / width

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.GroupsInFlight)
	for grp := 0; grp < numGroups; grp++ {
		grp := grp
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			lightGroup(g, frontierIDs, scanned, v, out, grp, width)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// lightGroup expands the edges of frontier positions
// [grp*width, min((grp+1)*width, len)) in a single staging round.
func lightGroup(g *csr.Graph, frontierIDs []int32, scanned []int64, v Visitor, out []int32, grp, width int) {
	v0 := grp * width
	v1 := v0 + width
	if v1 > len(frontierIDs) {
		v1 = len(frontierIDs)
	}
	if v0 >= v1 {
		return // idle group
	}

	staged := scanned[v0:v1]
	outStart := int64(0)
	if v0 > 0 {
		outStart = scanned[v0-1]
	}
	outEnd := staged[len(staged)-1]

	rowOffsets := g.RowOffsets()
	columns := g.ColumnIndices()

	own := 0
	for slot := outStart; slot < outEnd; slot++ {
		for staged[own] <= slot {
			own++
		}
		relaxSlot(frontierIDs, scanned, rowOffsets, columns, v, out, v0+own, slot)
	}
}

// relaxSlot applies the per-edge contract to one output slot owned by
// frontier position pos: resolve the edge offset within the owner's
// adjacency list, look up the neighbor, run the predicate, run the
// visitor on acceptance, and write exactly once.
func relaxSlot(frontierIDs []int32, scanned []int64, rowOffsets []int64, columns []int32, v Visitor, out []int32, pos int, slot int64) {
	src := frontierIDs[pos]
	prior := int64(0)
	if pos > 0 {
		prior = scanned[pos-1]
	}
	dst := columns[rowOffsets[src]+(slot-prior)]
	if v.Condition(src, dst) {
		v.Apply(src, dst)
		out[slot] = dst
	} else {
		out[slot] = Sentinel
	}
}
