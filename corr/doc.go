// SPDX-License-Identifier: MIT

// Package corr computes rank-correlation coefficients between two
// equal-length numeric sequences: Kendall's τ family (τ, τₐ, τᵦ) and the
// AP-correlation family (AP-τ, AP-τₐ, AP-τᵦ) used to compare ranked lists
// where disagreements near the top matter more than those at the bottom.
//
// 🚀 Coefficients and their tie policy:
//
//	Tau        - Kendall τ. Neither x nor y may contain ties.
//	TauA       - τₐ (accuracy). x is the reference and must be tie-free;
//	             ties in y count as zero and lower the score.
//	TauB       - τᵦ (agreement). Ties allowed in both; tie-corrected denominator.
//	APTau      - AP correlation (Yilmaz, Aslam & Robertson, 2008). No ties.
//	APTauA     - AP-τₐ (Urbano & Marrero, 2017). x tie-free, ties in y are
//	             averaged over every ordering of each tie block, in closed form.
//	APTauB     - AP-τᵦ. Ties allowed in both; symmetric by averaging both
//	             argument orders.
//	APTauASign - sign-product AP-τₐ accumulation that also tolerates ties
//	             in x. Equals APTauA whenever x is tie-free.
//
// ✨ Orientation:
//
//	By default larger values rank higher ("decreasing" order), as for system
//	effectiveness scores. When the inputs are ranks (1 = best), pass
//	WithIncreasing(). Internally both sequences are negated once, after
//	validation, and the engines always work in ascending order.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ircor/corr"
//
//	truth := []float64{0.897, 0.372, 0.908, 0.898, 0.661}
//	est := []float64{0.82, 0.406, 0.817, 0.953, 0.673}
//
//	tau, err := corr.Tau(truth, est)
//	ap, err := corr.APTauB(truth, est)
//	ap, err = corr.APTauB(ranksA, ranksB, corr.WithIncreasing())
//
//	c, _ := corr.ParseCoefficient("tauap_b")
//	v, err := corr.Compute(c, truth, est)
//
// Errors:
//
//   - *InvalidInputError (errors.Is ErrInvalidInput): an argument is shorter
//     than 2, holds NaN/±Inf, or the lengths differ.
//   - *TiesPresentError (errors.Is ErrTiesPresent): an argument that must be
//     tie-free contains duplicates.
//
// Degenerate inputs (for example a fully tied sequence in TauB or APTauB)
// are not errors: the result is NaN or ±Inf and callers check for it with
// math.IsNaN / math.IsInf.
//
// Performance:
//
//   - Time:   O(n²) for every coefficient (plus O(n log n) ranking).
//   - Memory: O(n) scratch (copies, rank arrays, tie histogram).
//
// All functions are pure and safe for concurrent use.
package corr
