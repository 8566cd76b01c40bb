// SPDX-License-Identifier: MIT
// Package corr: sentinel and typed errors.
//
// Every coefficient fails fast, before any arithmetic, with one of two error
// kinds. Both are concrete types that unwrap to a package sentinel, so callers
// may match either way:
//
//	errors.Is(err, corr.ErrTiesPresent)
//
//	var tpe *corr.TiesPresentError
//	if errors.As(err, &tpe) { fmt.Println(tpe.Arg) }
//
// Operation boundaries wrap with fmt.Errorf("%s: %w", op, err); matching is
// unaffected.

package corr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks an input-shape failure: too short, not finite,
	// or mismatched lengths. Returned inside *InvalidInputError.
	ErrInvalidInput = errors.New("corr: invalid input")

	// ErrTiesPresent marks duplicate values in an argument that must be
	// tie-free. Returned inside *TiesPresentError.
	ErrTiesPresent = errors.New("corr: ties present")

	// ErrUnknownCoefficient is returned for a coefficient name or value that is not defined.
	ErrUnknownCoefficient = errors.New("corr: unknown coefficient")
)

// Reason names which input-shape condition failed.
type Reason string

const (
	// ReasonNotNumeric: an element is NaN or ±Inf.
	ReasonNotNumeric Reason = "not-numeric"

	// ReasonTooShort: the sequence has fewer than two elements.
	ReasonTooShort Reason = "too-short"

	// ReasonLengthMismatch: x and y differ in length.
	ReasonLengthMismatch Reason = "length-mismatch"
)

// InvalidInputError reports an input-shape failure for argument Arg ("x" or "y").
// Index is the offending element for ReasonNotNumeric and -1 otherwise.
type InvalidInputError struct {
	Arg    string
	Reason Reason
	Index  int
}

// Error implements error.
func (e *InvalidInputError) Error() string {
	switch e.Reason {
	case ReasonLengthMismatch:
		return "corr: x and y must be of the same length"
	case ReasonNotNumeric:
		return fmt.Sprintf("corr: input %s must be a numeric vector: %s value at index %d", e.Arg, e.Reason, e.Index)
	default:
		return fmt.Sprintf("corr: input %s must be a numeric vector: %s", e.Arg, e.Reason)
	}
}

// Unwrap returns ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// TiesPresentError reports duplicate values in argument Arg.
type TiesPresentError struct {
	Arg string
}

// Error implements error.
func (e *TiesPresentError) Error() string {
	return fmt.Sprintf("corr: %s contains ties", e.Arg)
}

// Unwrap returns ErrTiesPresent.
func (e *TiesPresentError) Unwrap() error { return ErrTiesPresent }

// corrErrorf tags err with the operation name.
func corrErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
