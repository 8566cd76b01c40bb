// SPDX-License-Identifier: MIT
// Package: corr
//
// Purpose:
//   - Kendall τ family: τ (no ties), τₐ (ties in y only), τᵦ (ties anywhere).
//   - All three share one pairwise sign kernel; they differ only in the
//     validation profile and the denominator.
//
// Reference:
//   M.G. Kendall (1970). Rank Correlation Methods. Charles Griffin & Company Limited.

package corr

import "math"

// Operation name constants for unified error wrapping.
const (
	opTau  = "Tau"
	opTauA = "TauA"
	opTauB = "TauB"
)

// Tau returns Kendall's τ between x and y.
//
// Algorithm:
//
//	τ = Σ_{i<j} sign(x_i−x_j)·sign(y_i−y_j) / C(n,2)
//
// Guarantees: τ ∈ [−1, 1]; Tau(x, y) == Tau(y, x); 1 iff the orders agree,
// −1 iff one is the reverse of the other.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
//   - *TiesPresentError if x or y contains ties.
//
// Complexity: O(n²) time, O(n) space.
func Tau(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opTau, Strict, x, y, opts)
	if err != nil {
		return 0, err
	}

	return tauKernel(vx, vy), nil
}

// TauA returns Kendall's τₐ, the accuracy variant where x holds the true
// scores and y the estimates.
//
// Ties in y contribute zero to the numerator while the denominator stays
// C(n,2), so every tie in y lowers the coefficient. Without ties TauA equals Tau.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
//   - *TiesPresentError{Arg: "x"} if x contains ties.
func TauA(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opTauA, Asymmetric, x, y, opts)
	if err != nil {
		return 0, err
	}

	return tauKernel(vx, vy), nil
}

// TauB returns Kendall's τᵦ, the agreement variant that allows ties in both
// sequences.
//
// Algorithm:
//
//	tx = #{i<j : x_i == x_j},  ty = #{i<j : y_i == y_j}
//	τᵦ = Σ sign·sign / sqrt(C(n,2) − tx) / sqrt(C(n,2) − ty)
//
// TauB is symmetric in its arguments by formula. When either sequence is
// fully tied the denominator is zero and the result is NaN; that is a value,
// not an error.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
func TauB(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opTauB, Permissive, x, y, opts)
	if err != nil {
		return 0, err
	}

	return tauBKernel(vx, vy), nil
}

// tauKernel accumulates the pairwise sign product over i<j.
func tauKernel(x, y []float64) float64 {
	n := len(x)
	numerator := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			numerator += sign(x[i]-x[j]) * sign(y[i]-y[j])
		}
	}
	pairs := float64(n*(n-1)) / 2

	return float64(numerator) / pairs
}

// tauBKernel is tauKernel plus tie-pair counts for the corrected denominator.
func tauBKernel(x, y []float64) float64 {
	n := len(x)
	var numerator, tx, ty int
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sx := sign(x[i] - x[j])
			sy := sign(y[i] - y[j])
			numerator += sx * sy
			if sx == 0 {
				tx++
			}
			if sy == 0 {
				ty++
			}
		}
	}
	pairs := float64(n*(n-1)) / 2

	return float64(numerator) / math.Sqrt(pairs-float64(tx)) / math.Sqrt(pairs-float64(ty))
}

// sign returns -1, 0 or +1 according to the sign of v.
func sign[T int | float64](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
