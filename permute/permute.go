// SPDX-License-Identifier: MIT

package permute

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/ircor/rank"
)

// MaxRefinements caps enumeration at 8!, one full tie block of eight items.
const MaxRefinements = 40320

// ErrTooMany is returned when y has more than MaxRefinements refinements.
var ErrTooMany = errors.New("permute: too many refinements")

// block is one tie block: the rank of its best member and its members in
// original index order.
type block struct {
	start   int
	members []int
}

// Count returns the number of refinements of y, Π tᵢ! over its tie blocks.
// ok is false when the product overflows uint64.
func Count(y []float64) (n uint64, ok bool) {
	n = 1
	for _, b := range blocks(y, false) {
		for k := uint64(2); k <= uint64(len(b.members)); k++ {
			hi, lo := bits.Mul64(n, k)
			if hi != 0 {
				return 0, false
			}
			n = lo
		}
	}

	return n, true
}

// Each calls fn once per refinement of y with the refined ranks (1-based;
// rank 1 is the largest value when decreasing, the smallest otherwise).
// Blocks keep their positions; only members of a block trade ranks. The
// first refinement breaks ties by original index, like rank.Ordinal.
//
// The ranks slice is reused between calls; copy it to retain it.
// Enumeration stops early when fn returns false.
//
// Errors:
//   - ErrTooMany if Count(y) exceeds MaxRefinements.
func Each(y []float64, decreasing bool, fn func(ranks []int) bool) error {
	if n, ok := Count(y); !ok || n > MaxRefinements {
		return ErrTooMany
	}

	bs := blocks(y, decreasing)
	ranks := make([]int, len(y))

	var walk func(b int) bool
	walk = func(b int) bool {
		if b == len(bs) {
			for _, blk := range bs {
				for k, i := range blk.members {
					ranks[i] = blk.start + k
				}
			}

			return fn(ranks)
		}

		return permuteInPlace(bs[b].members, 0, func() bool { return walk(b + 1) })
	}
	walk(0)

	return nil
}

// All returns every refinement of y as independent rank slices.
func All(y []float64, decreasing bool) ([][]int, error) {
	var out [][]int
	err := Each(y, decreasing, func(ranks []int) bool {
		out = append(out, append([]int(nil), ranks...))

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Mean averages f over every refinement of y. The ranks passed to f are
// converted to float64 and oriented so that a larger value is better when
// decreasing, matching how the refinement would be fed back to a
// coefficient with the same orientation.
func Mean(y []float64, decreasing bool, f func(refined []float64) float64) (float64, error) {
	refined := make([]float64, len(y))
	sum, count := 0.0, 0
	err := Each(y, decreasing, func(ranks []int) bool {
		for i, r := range ranks {
			if decreasing {
				refined[i] = -float64(r)
			} else {
				refined[i] = float64(r)
			}
		}
		sum += f(refined)
		count++

		return true
	})
	if err != nil {
		return 0, err
	}

	return sum / float64(count), nil
}

// blocks groups y by min rank under the given orientation, best block first.
func blocks(y []float64, decreasing bool) []block {
	v := y
	if decreasing {
		v = make([]float64, len(y))
		for i, e := range y {
			v[i] = -e
		}
	}

	mins := rank.Min(v)
	var out []block
	for _, i := range orderedIndex(v) {
		if len(out) == 0 || out[len(out)-1].start != mins[i] {
			out = append(out, block{start: mins[i]})
		}
		last := &out[len(out)-1]
		last.members = append(last.members, i)
	}

	return out
}

// orderedIndex lists the indices of v in ascending rank, ties by index.
func orderedIndex(v []float64) []int {
	ord := rank.Ordinal(v)
	idx := make([]int, len(v))
	for i, r := range ord {
		idx[r-1] = i
	}

	return idx
}

// permuteInPlace visits every ordering of s[k:] by swapping, calling visit
// at each leaf. s is restored before returning. It returns false as soon as
// visit does.
func permuteInPlace(s []int, k int, visit func() bool) bool {
	if k >= len(s)-1 {
		return visit()
	}
	for i := k; i < len(s); i++ {
		s[k], s[i] = s[i], s[k]
		cont := permuteInPlace(s, k+1, visit)
		s[k], s[i] = s[i], s[k]
		if !cont {
			return false
		}
	}

	return true
}
