package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sablegraph/expand/csr"
)

// GraphSuite exercises construction and degree resolution.
type GraphSuite struct {
	suite.Suite
}

// TestNewValid builds the reference four-vertex graph.
func (s *GraphSuite) TestNewValid() {
	g, err := csr.New(
		[]int64{0, 2, 5, 5, 7},
		[]int32{1, 2, 0, 2, 3, 0, 1},
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int32(4), g.NumVertices())
	require.Equal(s.T(), int64(7), g.NumEdges())
}

// TestNewEmptyOffsets rejects an empty offsets slice.
func (s *GraphSuite) TestNewEmptyOffsets() {
	_, err := csr.New(nil, nil)
	require.ErrorIs(s.T(), err, csr.ErrOffsetsEmpty)
}

// TestNewDecreasingOffsets rejects non-monotonic offsets.
func (s *GraphSuite) TestNewDecreasingOffsets() {
	_, err := csr.New([]int64{0, 3, 2, 4}, []int32{0, 0, 0, 0})
	require.ErrorIs(s.T(), err, csr.ErrOffsetsNotMonotonic)
}

// TestNewOffsetsMismatch rejects a last offset that does not cover columns.
func (s *GraphSuite) TestNewOffsetsMismatch() {
	_, err := csr.New([]int64{0, 2}, []int32{0, 0, 0})
	require.ErrorIs(s.T(), err, csr.ErrOffsetsMismatch)
}

// TestNewNeighborOutOfRange rejects neighbor ids outside the vertex range.
func (s *GraphSuite) TestNewNeighborOutOfRange() {
	_, err := csr.New([]int64{0, 1}, []int32{5})
	require.ErrorIs(s.T(), err, csr.ErrNeighborOutOfRange)
	_, err = csr.New([]int64{0, 1}, []int32{-1})
	require.ErrorIs(s.T(), err, csr.ErrNeighborOutOfRange)
}

// TestFromAdjacency builds via prefix sum and matches the direct form.
func (s *GraphSuite) TestFromAdjacency() {
	g, err := csr.FromAdjacency([][]int32{
		{1, 2},
		{0, 2, 3},
		{},
		{0, 1},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{0, 2, 5, 5, 7}, g.RowOffsets())
	require.Equal(s.T(), []int32{1, 2, 0, 2, 3, 0, 1}, g.ColumnIndices())
}

// TestDegreeAndNeighbors checks per-vertex views, including the
// zero-degree vertex and out-of-range ids.
func (s *GraphSuite) TestDegreeAndNeighbors() {
	g, err := csr.FromAdjacency([][]int32{
		{1, 2},
		{0, 2, 3},
		{},
		{0, 1},
	})
	require.NoError(s.T(), err)

	require.Equal(s.T(), int64(2), g.Degree(0))
	require.Equal(s.T(), int64(3), g.Degree(1))
	require.Equal(s.T(), int64(0), g.Degree(2))
	require.Equal(s.T(), int64(2), g.Degree(3))
	require.Equal(s.T(), int64(0), g.Degree(4))
	require.Equal(s.T(), int64(0), g.Degree(-1))

	require.Equal(s.T(), []int32{0, 2, 3}, g.Neighbors(1))
	require.Empty(s.T(), g.Neighbors(2))
	require.Nil(s.T(), g.Neighbors(99))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestNeighborLength_Clamping pins the raw resolver contract: lookups at
// or past maxVertex clamp to maxEdge, out-of-range ids resolve to zero,
// and the last valid vertex keeps its true degree.
func TestNeighborLength_Clamping(t *testing.T) {
	offsets := []int64{0, 2, 5, 5, 7}
	const maxVertex, maxEdge = 4, 7

	cases := []struct {
		name string
		v    int32
		want int64
	}{
		{"first", 0, 2},
		{"middle", 1, 3},
		{"isolated", 2, 0},
		{"last valid uses clamped next", 3, 2},
		{"at maxVertex", 4, 0},
		{"past maxVertex", 100, 0},
		{"negative", -3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := csr.NeighborLength(offsets, tc.v, maxVertex, maxEdge); got != tc.want {
				t.Errorf("NeighborLength(%d) = %d; want %d", tc.v, got, tc.want)
			}
		})
	}
}

// TestNeighborLength_NeverNegative covers an inconsistent table where a
// clamped next-offset would fall below the offset.
func TestNeighborLength_NeverNegative(t *testing.T) {
	// maxEdge deliberately below the last offset.
	offsets := []int64{0, 5, 9}
	if got := csr.NeighborLength(offsets, 1, 2, 3); got != 0 {
		t.Errorf("degree = %d; want 0 for clamped inconsistent table", got)
	}
}
