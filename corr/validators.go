// SPDX-License-Identifier: MIT
// Package: corr
//
// Purpose:
//   - Provide the single source of truth for input checks shared by every coefficient.
//   - Encode the three tie policies as an explicit Profile instead of per-function guards.
//   - Return typed errors naming the offending argument so call sites can wrap uniformly.
//
// Check order (documented, enforced in tests):
//   x length → x finiteness → y length → y finiteness → equal lengths → ties(x) → ties(y).
//
// Determinism & Performance:
//   - Shape and finiteness checks are O(n) and allocate nothing.
//   - Tie detection sorts a private copy: O(n log n) time, O(n) memory.

package corr

import (
	"math"
	"slices"
)

// Profile selects which arguments must be tie-free.
type Profile int

const (
	// Strict requires both x and y to be tie-free (Tau, APTau).
	Strict Profile = iota

	// Asymmetric requires only the reference x to be tie-free (TauA, APTauA).
	Asymmetric

	// Permissive allows ties in both arguments (TauB, APTauB, APTauASign).
	Permissive
)

// String returns the lower-case profile name.
func (p Profile) String() string {
	switch p {
	case Strict:
		return "strict"
	case Asymmetric:
		return "asymmetric"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// minLength is the shortest sequence any coefficient accepts.
const minLength = 2

// Real is the set of numeric element types accepted by Float64s.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float64s converts any numeric slice to a fresh []float64, preserving order.
// A nil input yields nil so that Validate still reports ReasonTooShort.
func Float64s[T Real](s []T) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}

// Validate checks x and y under profile p and returns private copies of both.
//
// Inputs:
//   - x, y: candidate sequences. They are never modified.
//   - p: tie policy (Strict, Asymmetric, Permissive).
//
// Returns:
//   - vx, vy: copies equal in value and order to x and y.
//
// Errors:
//   - *InvalidInputError{Arg, ReasonTooShort} when len < 2 (nil included).
//   - *InvalidInputError{Arg, ReasonNotNumeric, Index} for NaN or ±Inf.
//   - *InvalidInputError{"y", ReasonLengthMismatch} when lengths differ.
//   - *TiesPresentError{Arg} when a tie-free argument holds duplicates.
//
// Complexity:
//   - Time O(n log n) when a tie check runs, O(n) otherwise. Space O(n).
func Validate(x, y []float64, p Profile) (vx, vy []float64, err error) {
	if err = validateSequence("x", x); err != nil {
		return nil, nil, err
	}
	if err = validateSequence("y", y); err != nil {
		return nil, nil, err
	}
	if len(x) != len(y) {
		return nil, nil, &InvalidInputError{Arg: "y", Reason: ReasonLengthMismatch, Index: -1}
	}

	switch p {
	case Strict:
		if HasTies(x) {
			return nil, nil, &TiesPresentError{Arg: "x"}
		}
		if HasTies(y) {
			return nil, nil, &TiesPresentError{Arg: "y"}
		}
	case Asymmetric:
		if HasTies(x) {
			return nil, nil, &TiesPresentError{Arg: "x"}
		}
	}

	return slices.Clone(x), slices.Clone(y), nil
}

// validateSequence enforces length and finiteness for one argument.
func validateSequence(arg string, s []float64) error {
	if len(s) < minLength {
		return &InvalidInputError{Arg: arg, Reason: ReasonTooShort, Index: -1}
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidInputError{Arg: arg, Reason: ReasonNotNumeric, Index: i}
		}
	}

	return nil
}

// HasTies reports whether s contains at least two equal values.
// -0 and +0 compare equal. s is not modified.
func HasTies(s []float64) bool {
	if len(s) < 2 {
		return false
	}
	sorted := slices.Clone(s)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return true
		}
	}

	return false
}
