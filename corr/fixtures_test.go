// SPDX-License-Identifier: MIT
// Package corr_test contains shared fixtures.
//
// The three sets are system scores over ten topics; *Ties variants are the
// same scores rounded to one decimal, which introduces tie blocks.

package corr_test

// fixture holds one reference set.
type fixture struct {
	name  string
	x, y  []float64
	xTies []float64
	yTies []float64
}

var fixtures = []fixture{
	{
		name:  "set1",
		x:     []float64{0.897, 0.372, 0.908, 0.898, 0.661, 0.062, 0.177, 0.384, 0.498, 0.992},
		y:     []float64{0.82, 0.406, 0.817, 0.953, 0.673, 0.073, 0.364, 0.547, 0.589, 0.988},
		xTies: []float64{0.9, 0.4, 0.9, 0.9, 0.7, 0.1, 0.2, 0.4, 0.5, 1},
		yTies: []float64{0.8, 0.4, 0.8, 1, 0.7, 0.1, 0.4, 0.5, 0.6, 1},
	},
	{
		name:  "set2",
		x:     []float64{0.266, 0.573, 0.202, 0.945, 0.629, 0.206, 0.687, 0.77, 0.718, 0.38},
		y:     []float64{0.263, 0.843, 0.728, 0.928, 0.08, 0.114, 0.467, 0.641, 0.973, 0.644},
		xTies: []float64{0.3, 0.6, 0.2, 0.9, 0.6, 0.2, 0.7, 0.8, 0.7, 0.4},
		yTies: []float64{0.3, 0.8, 0.7, 0.9, 0.1, 0.1, 0.5, 0.6, 1, 0.6},
	},
	{
		name:  "set3",
		x:     []float64{0.185, 0.573, 0.944, 0.129, 0.468, 0.553, 0.761, 0.405, 0.976, 0.445},
		y:     []float64{0.845, 0.272, 0.275, 0.924, 0.605, 0.334, 0.162, 0.872, 0.018, 0.25},
		xTies: []float64{0.2, 0.6, 0.9, 0.1, 0.5, 0.6, 0.8, 0.4, 1, 0.4},
		yTies: []float64{0.8, 0.3, 0.3, 0.9, 0.6, 0.3, 0.2, 0.9, 0, 0.2},
	},
}

// epsRef is the tolerance of the published four-decimal reference values.
const epsRef = 5e-5

// epsTight is the tolerance for values recomputed at full precision.
const epsTight = 1e-9

// fullTie is a sequence of ten identical values.
var fullTie = make([]float64, 10)

// clone returns an independent copy of s.
func clone(s []float64) []float64 { return append([]float64(nil), s...) }
