// SPDX-License-Identifier: MIT

// Package corr: functional configuration for every coefficient.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Last-writer-wins: options apply in order, so WithIncreasing() followed
//     by WithDecreasing(true) yields decreasing.
//   - Options fields are unexported; public entry points consume ...Option.
package corr

// DefaultDecreasing is the orientation used when no option is given:
// larger values rank higher (scores, not ranks).
const DefaultDecreasing = true

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	decreasing bool // DefaultDecreasing
}

// Decreasing reports whether larger values are treated as better ranks.
func (o Options) Decreasing() bool { return o.decreasing }

// WithDecreasing sets the orientation explicitly.
//
// Behavior highlights:
//   - true: larger value = better rank (system scores). Inputs are negated
//     once, after validation, before the engine runs.
//   - false: smaller value = better rank (rank lists). Inputs pass through.
//
// For Tau, TauA and TauB the orientation does not change the result; it is
// accepted for a uniform signature.
func WithDecreasing(decreasing bool) Option {
	return func(o *Options) { o.decreasing = decreasing }
}

// WithIncreasing is shorthand for WithDecreasing(false); use it when the
// inputs are ranks with 1 = best.
func WithIncreasing() Option {
	return WithDecreasing(false)
}

// gatherOptions resolves user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{decreasing: DefaultDecreasing}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
