// SPDX-License-Identifier: MIT

package rank

import (
	"cmp"
	"slices"
)

// Rank - rank assignment under a named policy
//
// Algorithm Outline:
//  1. Stable-sort the indices 0..n-1 by x[i] ascending. Equal values keep
//     their original index order, which is what makes Ordinal deterministic.
//  2. Walk the sorted indices in maximal runs of equal values (tie blocks).
//     A block occupying sorted positions lo..hi-1 covers ranks lo+1..hi.
//  3. Assign each member of the block its rank under the policy:
//     Ordinal = position+1, Min = lo+1, Max = hi, Dense = block number,
//     Average = (lo+1+hi)/2.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n)

// Rank returns the ranks of x under m as float64 values.
// It is the generic entry point; the typed helpers below avoid the
// conversion when the policy is known at the call site.
func Rank(x []float64, m Method) ([]float64, error) {
	switch m {
	case MethodOrdinal, MethodMin, MethodMax, MethodDense:
		ints := intRanks(x, m)
		out := make([]float64, len(ints))
		for i, r := range ints {
			out[i] = float64(r)
		}

		return out, nil
	case MethodAverage:
		return Average(x), nil
	default:
		return nil, ErrUnknownMethod
	}
}

// Ordinal returns ranks 1..n with ties broken by first occurrence.
func Ordinal(x []float64) []int { return intRanks(x, MethodOrdinal) }

// Min returns competition ranks: tied elements share the lowest rank of their block.
func Min(x []float64) []int { return intRanks(x, MethodMin) }

// Max returns ranks where tied elements share the highest rank of their block.
func Max(x []float64) []int { return intRanks(x, MethodMax) }

// Dense returns ranks where tied elements share one rank and blocks are numbered 1, 2, 3, ...
func Dense(x []float64) []int { return intRanks(x, MethodDense) }

// Average returns fractional ranks: tied elements share the mean rank of their block.
func Average(x []float64) []float64 {
	out := make([]float64, len(x))
	idx := sortedIndex(x)
	eachBlock(x, idx, func(lo, hi int) {
		mean := float64(lo+1+hi) / 2
		for _, i := range idx[lo:hi] {
			out[i] = mean
		}
	})

	return out
}

// intRanks implements every integer-valued policy over one sorted index.
func intRanks(x []float64, m Method) []int {
	out := make([]int, len(x))
	idx := sortedIndex(x)
	block := 0
	eachBlock(x, idx, func(lo, hi int) {
		block++
		for k, i := range idx[lo:hi] {
			switch m {
			case MethodOrdinal:
				out[i] = lo + k + 1
			case MethodMin:
				out[i] = lo + 1
			case MethodMax:
				out[i] = hi
			case MethodDense:
				out[i] = block
			}
		}
	})

	return out
}

// sortedIndex returns the indices of x in stable ascending order of value.
func sortedIndex(x []float64) []int {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})

	return idx
}

// eachBlock calls fn once per maximal run idx[lo:hi] of equal values.
func eachBlock(x []float64, idx []int, fn func(lo, hi int)) {
	n := len(idx)
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && cmp.Compare(x[idx[hi]], x[idx[lo]]) == 0 {
			hi++
		}
		fn(lo, hi)
		lo = hi
	}
}
