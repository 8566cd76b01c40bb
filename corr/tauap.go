// SPDX-License-Identifier: MIT
// Package: corr
//
// Purpose:
//   - AP correlation family: AP-τ (no ties), AP-τₐ (ties in y), AP-τᵦ (ties anywhere).
//   - Concordant pairs are weighted by how far down the y ranking they occur,
//     so disagreements near the top cost more than those near the bottom.
//
// Tie handling:
//   - AP-τₐ and AP-τᵦ are defined as the average of AP-τ over every ordering
//     of the tied items. The kernels below use the closed form of that
//     average (Terms I and II), never an enumeration; package permute holds
//     the enumerator used to cross-check them in tests.
//
// References:
//   E. Yilmaz, J.A. Aslam and S. Robertson (2008). A New Rank Correlation
//   Coefficient for Information Retrieval. ACM SIGIR.
//   J. Urbano and M. Marrero (2017). The Treatment of Ties in AP Correlation. ACM ICTIR.

package corr

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ircor/rank"
)

// Operation name constants for unified error wrapping.
const (
	opAPTau  = "APTau"
	opAPTauA = "APTauA"
	opAPTauB = "APTauB"
)

// APTau returns the AP rank correlation coefficient between x and y.
//
// Algorithm:
//  1. ry = average ranks of y (tie-free input, so ranks are 1..n).
//  2. For every pair i<j with sign(x_i−x_j) == sign(y_i−y_j), add
//     1 / (max(ry_i, ry_j) − 1). The pair's lower-ranked element is never
//     rank 1, so the weight is always finite.
//  3. AP-τ = 2·acc/(n−1) − 1.
//
// AP-τ is not symmetric: y is the ranking whose top is emphasized.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
//   - *TiesPresentError if x or y contains ties.
//
// Complexity: O(n²) time, O(n) space.
func APTau(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opAPTau, Strict, x, y, opts)
	if err != nil {
		return 0, err
	}

	return apTauKernel(vx, vy, rank.Average(vy)), nil
}

// APTauA returns AP-τₐ, the accuracy variant: x holds the true scores and
// must be tie-free, y holds estimates and may contain ties.
//
// Algorithm (with p_i = min-rank(y)_i − 1 and t_i = size of i's tie block):
//
//	Term I:  for each i with p_i ≠ 0:
//	          c_above = #{j : p_j < p_i and sign(rx_i−rx_j) == sign(ry_i−ry_j)}
//	          s_above = Σ_{k=0}^{t_i−1} 1 / ((p_i+k)·t_i)
//	          add c_above·s_above
//	          (s_above is the AP weight of i averaged over its t_i possible
//	          positions inside the block)
//	Term II: for each i add Σ_{k=0}^{t_i−2} (k+1)/(p_i+k+1) / (2·t_i)
//	          (expected concordant weight of pairs inside the block)
//	AP-τₐ = 2/(n−1)·(I + II) − 1
//
// Here rx are average ranks of x and ry ordinal ranks of y; ry only fixes a
// definite order between blocks. The result equals the mean of APTau over
// every tie-free refinement of y. Without ties APTauA equals APTau.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
//   - *TiesPresentError{Arg: "x"} if x contains ties.
//
// Complexity: O(n²) time, O(n) space.
func APTauA(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opAPTauA, Asymmetric, x, y, opts)
	if err != nil {
		return 0, err
	}

	return apTauAKernel(rank.Average(vx), groupTies(vy)), nil
}

// APTauB returns AP-τᵦ, the agreement variant that allows ties in both
// sequences.
//
// Algorithm:
//
//	AP-τᵦ(x, y) = (ties(x, y) + ties(y, x)) / 2
//	ties(x, y)  = 2/n_not_top · Σ_{i: p_i≠0} c_above_i / p_i − 1
//
// with p and c_above as in APTauA, computed from y's ties. Items in the top
// tie block (p_i == 0) are excluded both as pivots and from n_not_top.
// Symmetry comes from the explicit averaging, not from the formula.
//
// A fully tied argument leaves n_not_top = 0; the result is then NaN and is
// returned as a value, not an error.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
//
// Complexity: O(n²) time, O(n) space.
func APTauB(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opAPTauB, Permissive, x, y, opts)
	if err != nil {
		return 0, err
	}

	return (apTauTiesKernel(rank.Average(vx), groupTies(vy)) +
		apTauTiesKernel(rank.Average(vy), groupTies(vx))) / 2, nil
}

// tieGroups describes the tie structure of one sequence.
type tieGroups struct {
	order []int // ordinal ranks, ties broken by first occurrence
	pivot []int // p_i: number of items ranked strictly above i's block
	size  []int // t_i: number of items in i's block
}

// groupTies builds p and t from min ranks, counting block sizes with a
// histogram over p.
func groupTies(y []float64) tieGroups {
	n := len(y)
	g := tieGroups{
		order: rank.Ordinal(y),
		pivot: rank.Min(y),
		size:  make([]int, n),
	}
	hist := make([]int, n)
	for i := range g.pivot {
		g.pivot[i]-- // min rank → items strictly above
		hist[g.pivot[i]]++
	}
	for i, p := range g.pivot {
		g.size[i] = hist[p]
	}

	return g
}

// apTauKernel weights every concordant pair by 1/(max rank − 1).
func apTauKernel(x, y, ry []float64) float64 {
	n := len(x)
	acc := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if sign(x[i]-x[j]) == sign(y[i]-y[j]) {
				// pairs are not visited in rank order, so take the lower one
				acc += 1 / (max(ry[i], ry[j]) - 1)
			}
		}
	}

	return 2*acc/float64(n-1) - 1
}

// apTauAKernel evaluates Terms I and II of AP-τₐ.
func apTauAKernel(rx []float64, g tieGroups) float64 {
	n := len(rx)
	cAll := 0.0
	inv := reciprocals(n)

	// Term I: concordants above the pivot's block, averaged over its positions.
	for i, p := range g.pivot {
		if p == 0 {
			continue
		}
		cAbove := concordantAbove(rx, g, i)
		cAll += float64(cAbove) * aboveWeight(inv, p, g.size[i])
	}

	// Term II: concordants within the block across permutations.
	for i, p := range g.pivot {
		t := g.size[i]
		cWithin := 0.0
		for k := 0; k < t-1; k++ {
			cWithin += float64(k+1) / float64(p+k+1)
		}
		cAll += cWithin / 2 / float64(t)
	}

	return 2/float64(n-1)*cAll - 1
}

// apTauTiesKernel is the one-sided AP-τᵦ term: Term I only, weighted by
// 1/p_i and normalized over the items outside the top block.
func apTauTiesKernel(rx []float64, g tieGroups) float64 {
	cAll := 0.0
	notTop := 0
	for i, p := range g.pivot {
		if p == 0 {
			continue // the top block is never a pivot
		}
		notTop++
		cAll += float64(concordantAbove(rx, g, i)) / float64(p)
	}

	// notTop == 0 yields +Inf·0 = NaN, returned as is
	return 2/float64(notTop)*cAll - 1
}

// aboveWeight returns s_above = Σ_{k=0}^{t−1} 1/((p+k)·t), the AP weight of
// a pivot averaged over the t positions of its block. inv is the table
// built by reciprocals; p ≥ 1 and p+t ≤ len(inv) for every pivot.
func aboveWeight(inv []float64, p, t int) float64 {
	return floats.Sum(inv[p:p+t]) / float64(t)
}

// reciprocals returns inv with inv[m] = 1/m for 1 ≤ m < n and inv[0] = 0.
func reciprocals(n int) []float64 {
	inv := make([]float64, n)
	for m := 1; m < n; m++ {
		inv[m] = 1 / float64(m)
	}

	return inv
}

// concordantAbove counts items j in blocks strictly above i's block whose
// order in rx agrees with their order in g.order.
func concordantAbove(rx []float64, g tieGroups, i int) int {
	c := 0
	for j, pj := range g.pivot {
		if pj >= g.pivot[i] {
			continue
		}
		if sign(rx[i]-rx[j]) == sign(g.order[i]-g.order[j]) {
			c++
		}
	}

	return c
}
