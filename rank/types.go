// SPDX-License-Identifier: MIT

package rank

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects the tie-resolution policy used when ranking.
type Method int

const (
	// MethodOrdinal gives unique ranks 1..n; ties keep their original index order.
	MethodOrdinal Method = iota

	// MethodMin gives every tied element the lowest rank of its block.
	MethodMin

	// MethodMax gives every tied element the highest rank of its block.
	MethodMax

	// MethodDense is like MethodMin, but consecutive blocks receive consecutive ranks.
	MethodDense

	// MethodAverage gives every tied element the mean rank of its block.
	MethodAverage
)

// ErrUnknownMethod is returned for a Method value or name that is not defined.
var ErrUnknownMethod = errors.New("rank: unknown method")

// methodNames maps each Method to its canonical lower-case name.
var methodNames = map[Method]string{
	MethodOrdinal: "ordinal",
	MethodMin:     "min",
	MethodMax:     "max",
	MethodDense:   "dense",
	MethodAverage: "average",
}

// String returns the canonical name of m, or "Method(N)" when m is undefined.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a policy by name. Matching ignores case and
// surrounding whitespace; "first" is accepted as an alias of "ordinal".
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "first" {
		return MethodOrdinal, nil
	}
	for m, n := range methodNames {
		if n == key {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
