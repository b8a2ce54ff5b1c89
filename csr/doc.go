// Package csr provides a compressed sparse row (CSR) adjacency container
// for directed graphs, with clamped degree resolution and a compressed
// binary snapshot codec.
//
// What
//
//   - Graph: an immutable pair of arrays — RowOffsets (len = NumVertices+1,
//     non-decreasing) and ColumnIndices (flat neighbor ids) — built either
//     directly from validated slices (New) or from adjacency lists via a
//     prefix sum (FromAdjacency).
//   - Degree and Neighbors: O(1) out-degree and neighbor-slice views.
//   - NeighborLength: the raw, clamped degree lookup over a bare offsets
//     slice; reads near the end of the id range never index past the table.
//   - WriteTo / ReadFrom: little-endian binary snapshots with a pluggable
//     compression codec (CompressionNone, CompressionLZ4, CompressionZSTD).
//
// Why
//
//   - CSR is the layout every expansion kernel in this module reads:
//     degree(v) = RowOffsets[v+1] − RowOffsets[v], neighbors are a subslice.
//   - Snapshots make large graphs cheap to persist and reload; the codec
//     writes to any io.Writer, so local files and blob stores plug in alike.
//
// Concurrency
//
//	A Graph is read-only after construction and safe to share across any
//	number of goroutines without locking.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Degree / Neighbors: O(1)
//   - New validation:     O(V + E)
//   - Snapshot I/O:       O(V + E)
//
// Usage
//
//	g, err := csr.New(
//	    []int64{0, 2, 5, 5, 7},
//	    []int32{1, 2, 0, 2, 3, 0, 1},
//	)
//	if err != nil { ... }
//	deg := g.Degree(1)        // 3
//	nbrs := g.Neighbors(1)    // [0 2 3]
//
//	var buf bytes.Buffer
//	_ = g.WriteTo(&buf, csr.WithCompression(csr.CompressionLZ4))
//	g2, _ := csr.ReadFrom(&buf)
package csr
