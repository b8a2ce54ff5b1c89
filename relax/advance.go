package relax

import (
	"github.com/sablegraph/expand/csr"
	"github.com/sablegraph/expand/frontier"
	"github.com/sablegraph/expand/scan"
)

// Advance runs one full expansion pass: degree scan, prefix sum, strategy
// choice, partition search when needed, and the relaxer itself.
//
// The light path serves frontiers whose total edge count is at most
// LightThreshold; anything larger is partitioned into PartitionSize-slot
// output chunks with one worker group each. Returns ErrGraphNil,
// ErrVisitorNil, or ErrOptionViolation for invalid input, a context error
// on cancellation, and otherwise a Result whose Next frontier is ready
// for the following step.
func Advance(g *csr.Graph, f frontier.Frontier, v Visitor, opts ...Option) (*Result, error) {
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

	ids := f.IDs()
	degrees := ComputeEdgeCounts(g, ids)
	scanned := scan.InclusiveSum(degrees)

	totalEdges := int64(0)
	if len(scanned) > 0 {
		totalEdges = scanned[len(scanned)-1]
	}

	res := &Result{TotalEdges: totalEdges}
	if totalEdges <= o.LightThreshold {
		res.Path = PathLight
		res.Output, err = Light(g, ids, scanned, v, optionsAsOpts(o)...)
	} else {
		numPartitions := int((totalEdges + o.PartitionSize - 1) / o.PartitionSize)
		needles := Splitters(o.PartitionSize, numPartitions)
		starts := scan.SortedSearch(needles, scanned)
		res.Path = PathPartitioned
		res.Partitions = numPartitions
		res.Output, err = Partitioned(g, ids, scanned, starts, v, optionsAsOpts(o)...)
	}
	if err != nil {
		return nil, err
	}

	res.Next = frontier.Compact(res.Output)
	return res, nil
}

// optionsAsOpts re-packages built Options so the kernel entry points see
// exactly the driver's configuration.
func optionsAsOpts(o Options) []Option {
	return []Option{func(dst *Options) { *dst = o }}
}
