// Package csr declares the Graph container, its sentinel errors,
// and the clamped degree-resolution primitives.
package csr

import (
	"errors"
	"fmt"
)

// Sentinel errors for CSR construction and snapshot I/O.
var (
	// ErrOffsetsEmpty indicates a row-offsets slice with no entries.
	ErrOffsetsEmpty = errors.New("csr: row offsets must have at least one entry")

	// ErrOffsetsNotMonotonic indicates a decreasing row-offsets entry.
	ErrOffsetsNotMonotonic = errors.New("csr: row offsets must be non-decreasing")

	// ErrOffsetsMismatch indicates row offsets that do not cover column indices.
	ErrOffsetsMismatch = errors.New("csr: last row offset must equal number of column indices")

	// ErrNeighborOutOfRange indicates a column index outside [0, NumVertices).
	ErrNeighborOutOfRange = errors.New("csr: neighbor id out of range")

	// ErrBadSnapshot indicates a malformed or truncated snapshot stream.
	ErrBadSnapshot = errors.New("csr: bad snapshot")

	// ErrBadCodec indicates an unknown compression codec.
	ErrBadCodec = errors.New("csr: unknown compression codec")
)

// Graph is an immutable compressed sparse row adjacency.
//
// rowOffsets has NumVertices+1 entries; rowOffsets[v] is the start of
// vertex v's neighbor list in columnIndices and the final entry equals
// len(columnIndices). Both slices are shared, never copied: treat them
// as read-only for the lifetime of the Graph.
type Graph struct {
	rowOffsets    []int64
	columnIndices []int32
}

// New builds a Graph from raw CSR slices, validating shape:
// offsets non-empty and non-decreasing, last offset covering columns,
// every neighbor id inside [0, NumVertices).
// Complexity: O(V + E).
func New(rowOffsets []int64, columnIndices []int32) (*Graph, error) {
	if len(rowOffsets) == 0 {
		return nil, ErrOffsetsEmpty
	}
	for i := 1; i < len(rowOffsets); i++ {
		if rowOffsets[i] < rowOffsets[i-1] {
			return nil, fmt.Errorf("%w: offset[%d]=%d < offset[%d]=%d",
				ErrOffsetsNotMonotonic, i, rowOffsets[i], i-1, rowOffsets[i-1])
		}
	}
	if last := rowOffsets[len(rowOffsets)-1]; last != int64(len(columnIndices)) {
		return nil, fmt.Errorf("%w: last=%d, columns=%d",
			ErrOffsetsMismatch, last, len(columnIndices))
	}
	n := int32(len(rowOffsets) - 1)
	for i, c := range columnIndices {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: column[%d]=%d, vertices=%d",
				ErrNeighborOutOfRange, i, c, n)
		}
	}
	return &Graph{rowOffsets: rowOffsets, columnIndices: columnIndices}, nil
}

// FromAdjacency builds a Graph from per-vertex neighbor lists,
// computing row offsets by prefix sum. Complexity: O(V + E).
func FromAdjacency(adj [][]int32) (*Graph, error) {
	offsets := make([]int64, len(adj)+1)
	var sum int64
	for i, nbrs := range adj {
		offsets[i] = sum
		sum += int64(len(nbrs))
	}
	offsets[len(adj)] = sum

	columns := make([]int32, 0, sum)
	for _, nbrs := range adj {
		columns = append(columns, nbrs...)
	}
	return New(offsets, columns)
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int32 { return int32(len(g.rowOffsets) - 1) }

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int64 { return int64(len(g.columnIndices)) }

// RowOffsets returns the shared offsets slice. Read-only.
func (g *Graph) RowOffsets() []int64 { return g.rowOffsets }

// ColumnIndices returns the shared neighbor-id slice. Read-only.
func (g *Graph) ColumnIndices() []int32 { return g.columnIndices }

// Degree returns the out-degree of v, or 0 when v is outside [0, NumVertices).
func (g *Graph) Degree(v int32) int64 {
	return NeighborLength(g.rowOffsets, v, g.NumVertices(), g.NumEdges())
}

// Neighbors returns the neighbor-id subslice of v (empty when v is out of
// range). The subslice aliases the Graph's storage: read-only.
func (g *Graph) Neighbors(v int32) []int32 {
	if v < 0 || v >= g.NumVertices() {
		return nil
	}
	return g.columnIndices[g.rowOffsets[v]:g.rowOffsets[v+1]]
}

// NeighborLength resolves the out-degree of v over a bare row-offsets slice.
//
// Lookups are clamped: an offset read at or past maxVertex yields maxEdge,
// so ids at the very end of the valid range resolve without reading past
// the table, and genuinely out-of-range ids resolve to degree 0. Negative
// ids also resolve to 0. The result is never negative.
func NeighborLength(rowOffsets []int64, v, maxVertex int32, maxEdge int64) int64 {
	if v < 0 {
		return 0
	}
	offset := maxEdge
	if v < maxVertex {
		offset = rowOffsets[v]
	}
	next := maxEdge
	if v+1 < maxVertex {
		next = rowOffsets[v+1]
	}
	if next < offset {
		return 0
	}
	return next - offset
}
