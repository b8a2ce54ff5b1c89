// Package relax provides load-balanced frontier edge expansion over CSR
// adjacency: enumerate every outgoing edge of every frontier vertex,
// evaluate a caller-supplied predicate/visitor per edge, and emit the
// next frontier.
//
// What
//
//   - ComputeEdgeCounts: per-frontier-position raw degrees (the degree
//     scanner); prefix-sum with scan.InclusiveSum before relaxing.
//   - Splitters: evenly spaced search targets, one per output partition.
//   - Partitioned: the centerpiece. Worker groups own fixed-size output
//     ranges; each walks a variable number of source vertices in staging
//     rounds, resolving slot ownership with amortized upper-bound probes,
//     so frontier degree skew cannot starve workers.
//   - Light: single-pass fallback when the whole workload is small.
//   - Advance: host-side driver composing all of the above and compacting
//     the output into the next step's frontier.
//
// Why
//
//	Frontier vertices have wildly varying degree. Assigning one vertex per
//	worker starves most workers while a few handle hubs; partitioning the
//	*output edge range* uniformly and searching the cumulative degree
//	array for each partition's source start bounds per-group imbalance by
//	one vertex regardless of skew.
//
// Output contract
//
//	Every enumerated edge is written to exactly one output slot; slot
//	order is (frontier position, edge offset within that vertex's
//	adjacency) lexicographic — deterministic for a fixed frontier and
//	partitioning, on both paths. Rejected edges hold Sentinel (−1).
//
// Concurrency
//
//	One worker group = one goroutine; a group's lanes are a strided loop,
//	so the stage-barrier-read discipline of the round structure collapses
//	to program order inside the group. Groups never synchronize with each
//	other: output ranges are statically disjoint. Launch fan-out is
//	bounded by GroupsInFlight. Errors do not exist inside kernels —
//	out-of-range groups idle-return; malformed cross-array input is the
//	caller's contract.
//
// Complexity (F = frontier size, E = frontier edge count)
//
//   - Time:   O(F + E + (E/PartitionSize)·log F) work
//   - Memory: O(F + E) for the scanned array and output
//
// Usage
//
//	f := frontier.Single(0)
//	res, err := relax.Advance(g, f, relax.AllEdges,
//	    relax.WithWorkersPerGroup(128),
//	    relax.WithPartitionSize(2048),
//	)
//	if err != nil { ... }
//	next := res.Next // deduplicated, sentinel-free
package relax
