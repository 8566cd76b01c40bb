// SPDX-License-Identifier: MIT
// Package: corr
//
// Purpose:
//   - Name the closed set of coefficients so callers (CLIs, config files,
//     reports) can select one by string without reflection or registries.
//   - Dispatch through a fixed table; there is no dynamic registration.

package corr

import (
	"fmt"
	"strings"
)

// Coefficient identifies one of the rank-correlation coefficients.
type Coefficient int

const (
	// CoefTau selects Tau.
	CoefTau Coefficient = iota
	// CoefTauA selects TauA.
	CoefTauA
	// CoefTauB selects TauB.
	CoefTauB
	// CoefAPTau selects APTau.
	CoefAPTau
	// CoefAPTauA selects APTauA.
	CoefAPTauA
	// CoefAPTauB selects APTauB.
	CoefAPTauB
	// CoefAPTauASign selects APTauASign.
	CoefAPTauASign
)

// engine is the common signature of every public coefficient.
type engine func(x, y []float64, opts ...Option) (float64, error)

// coefficientTable is indexed by Coefficient; order is the canonical order.
var coefficientTable = [...]struct {
	name    string
	profile Profile
	fn      engine
}{
	CoefTau:        {"tau", Strict, Tau},
	CoefTauA:       {"tau_a", Asymmetric, TauA},
	CoefTauB:       {"tau_b", Permissive, TauB},
	CoefAPTau:      {"tauap", Strict, APTau},
	CoefAPTauA:     {"tauap_a", Asymmetric, APTauA},
	CoefAPTauB:     {"tauap_b", Permissive, APTauB},
	CoefAPTauASign: {"tauap_a_sign", Permissive, APTauASign},
}

// valid reports whether c indexes coefficientTable.
func (c Coefficient) valid() bool {
	return c >= 0 && int(c) < len(coefficientTable)
}

// String returns the canonical name ("tau", "tauap_b", ...).
func (c Coefficient) String() string {
	if !c.valid() {
		return fmt.Sprintf("Coefficient(%d)", int(c))
	}

	return coefficientTable[c].name
}

// Profile returns the validation profile the coefficient enforces.
func (c Coefficient) Profile() Profile {
	if !c.valid() {
		return Permissive
	}

	return coefficientTable[c].profile
}

// Coefficients returns every coefficient in canonical order.
func Coefficients() []Coefficient {
	out := make([]Coefficient, len(coefficientTable))
	for i := range out {
		out[i] = Coefficient(i)
	}

	return out
}

// ParseCoefficient resolves a coefficient by name. Matching ignores case and
// surrounding whitespace, and treats '-' as '_' ("tau-b" == "tau_b").
func ParseCoefficient(name string) (Coefficient, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, e := range coefficientTable {
		if e.name == key {
			return Coefficient(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCoefficient, name)
}

// Compute evaluates coefficient c on x and y.
//
// Errors:
//   - ErrUnknownCoefficient for an undefined c.
//   - Any error of the selected coefficient.
func Compute(c Coefficient, x, y []float64, opts ...Option) (float64, error) {
	if !c.valid() {
		return 0, fmt.Errorf("Compute: %w: %d", ErrUnknownCoefficient, int(c))
	}

	return coefficientTable[c].fn(x, y, opts...)
}

// Result is the outcome of one coefficient inside ComputeAll.
type Result struct {
	Coefficient Coefficient
	Value       float64
	Err         error // non-nil when this coefficient rejected the input (ties)
}

// ComputeAll evaluates every coefficient in canonical order.
//
// Shape errors (too short, non-finite, length mismatch) are common to all
// coefficients and are returned as the error, with no results. Tie errors
// are specific to a coefficient and are recorded in that Result only, so a
// tied y still yields TauB and APTauB.
//
// Complexity: O(k·n²) for k coefficients.
func ComputeAll(x, y []float64, opts ...Option) ([]Result, error) {
	if _, _, err := Validate(x, y, Permissive); err != nil {
		return nil, corrErrorf("ComputeAll", err)
	}

	out := make([]Result, 0, len(coefficientTable))
	for _, c := range Coefficients() {
		v, err := Compute(c, x, y, opts...)
		out = append(out, Result{Coefficient: c, Value: v, Err: err})
	}

	return out, nil
}
