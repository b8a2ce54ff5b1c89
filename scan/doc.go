// Package scan provides the two array primitives the expansion kernels
// lean on: parallel prefix sums and upper-bound sorted search.
//
// What
//
//   - InclusiveSum: blocked parallel inclusive prefix sum over []int64.
//     Per-chunk local sums run in parallel, a sequential pass carries chunk
//     totals, and a parallel pass rebases each chunk.
//   - UpperBound: first index i in a non-decreasing sequence with
//     seq[i] > target, or len(seq) when no such index exists. The single
//     search primitive shared by the sorted-search stage and by the
//     relaxers' local ownership resolution.
//   - SortedSearch: vectorized UpperBound of many needles against one
//     haystack, chunk-parallel; turns splitter needles plus a cumulative
//     degree array into partition start positions.
//
// Why
//
//	Mapping an output edge slot back to the frontier vertex that owns it is
//	an upper-bound probe into the cumulative degree array; partitioning the
//	output range evenly is the same probe at every multiple of the
//	partition size. Both reduce to these primitives.
//
// Complexity (n = input length, P = GOMAXPROCS)
//
//   - InclusiveSum: O(n) work, O(n/P + P) span
//   - UpperBound:   O(log n)
//   - SortedSearch: O(k log n) work for k needles
package scan
