// SPDX-License-Identifier: MIT

// Package permute enumerates the tie-free refinements of a sequence: every
// ranking obtained by ordering the members of each tie block in all possible
// ways while keeping the blocks themselves in place.
//
// A sequence with tie blocks of sizes t₁, t₂, … has Π tᵢ! refinements, so
// enumeration is exponential. It exists as a test oracle: the tie-corrected
// AP coefficients in package corr are closed forms of "average AP-τ over all
// refinements", and Mean reproduces that average literally.
//
//	n, _ := permute.Count(y)
//	err := permute.Each(y, true, func(ranks []int) bool {
//	    // ranks[i] is i's rank in this refinement, 1 = best
//	    return true // keep going
//	})
//
// Enumeration is bounded by MaxRefinements; larger inputs fail with ErrTooMany.
package permute
