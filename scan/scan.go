package scan

import (
	"runtime"
	"sync"
)

// seqThreshold is the input size below which the parallel paths fall back
// to a single sequential pass; goroutine fan-out costs more than it saves.
const seqThreshold = 4096

// InclusiveSum returns the inclusive prefix sum of src: out[i] equals
// src[0]+…+src[i]. src is left untouched.
func InclusiveSum(src []int64) []int64 {
	n := len(src)
	out := make([]int64, n)
	if n == 0 {
		return out
	}
	if n < seqThreshold {
		var sum int64
		for i, v := range src {
			sum += v
			out[i] = sum
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	// Pass 1: local inclusive sums per chunk.
	totals := make([]int64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			workers = w
			break
		}
		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			var sum int64
			for i := lo; i < hi; i++ {
				sum += src[i]
				out[i] = sum
			}
			totals[idx] = sum
		}(w, lo, hi)
	}
	wg.Wait()

	// Pass 2: carry chunk totals into exclusive bases.
	var carry int64
	bases := make([]int64, workers)
	for w := 0; w < workers; w++ {
		bases[w] = carry
		carry += totals[w]
	}

	// Pass 3: rebase every chunk but the first.
	for w := 1; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int, base int64) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] += base
			}
		}(lo, hi, bases[w])
	}
	wg.Wait()

	return out
}

// UpperBound returns the smallest index i with seq[i] > target, assuming
// seq is non-decreasing. Returns len(seq) when every value is <= target.
func UpperBound(seq []int64, target int64) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid] > target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// SortedSearch locates, for each needle, the smallest haystack position
// whose value exceeds it. needles and haystack must both be non-decreasing;
// the result has one int32 position per needle.
func SortedSearch(needles, haystack []int64) []int32 {
	k := len(needles)
	out := make([]int32, k)
	if k < seqThreshold {
		for i, nd := range needles {
			out[i] = int32(UpperBound(haystack, nd))
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > k {
		workers = k
	}
	chunk := (k + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > k {
			hi = k
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = int32(UpperBound(haystack, needles[i]))
			}
		}(lo, hi)
	}
	wg.Wait()

	return out
}
