// Package expand is a load-balanced frontier expansion toolkit for
// CSR graphs — the inner step that turns one traversal frontier into
// the next, at edge granularity, across many cooperating worker groups.
//
// 🚀 What is sablegraph/expand?
//
//	A focused, thread-safe library that brings together:
//		• csr/      — compressed sparse row adjacency, clamped degree lookups,
//		              compressed binary snapshots (none / LZ4 / ZSTD)
//		• frontier/ — sparse and bitmap-backed vertex frontiers with
//		              sentinel-aware compaction between traversal steps
//		• scan/     — parallel prefix sums and upper-bound sorted search,
//		              the plumbing that maps output slots back to vertices
//		• relax/    — the expansion kernels: an edge-count-partitioned
//		              relaxer for irregular frontiers and a light single-pass
//		              relaxer for small ones, behind one Advance driver
//
// ✨ Why choose expand?
//
//   - Degree-skew-proof – work is split by edge count, not by vertex count,
//     so a handful of hubs cannot starve the rest of the workers
//   - Deterministic – output slots follow (frontier position, edge offset)
//     order regardless of scheduling; both relax paths agree byte-for-byte
//   - Pluggable – algorithms supply a Visitor (predicate + side effect);
//     BFS, components, label propagation are a few lines each
//   - Pure Go – goroutine worker groups, no cgo, no hidden globals
//
// Quick ASCII sketch of one relax pass:
//
//	frontier ──degrees──▶ prefix sum ──splitters──▶ partition starts
//	     └──────────────▶ relaxer (partitioned | light) ──▶ next frontier
//
// Dive into the per-package docs for contracts, complexity, and examples.
//
//	go get github.com/sablegraph/expand
package expand
