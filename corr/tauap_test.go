// SPDX-License-Identifier: MIT

package corr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ircor/corr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPTau_Reference checks AP-τ on the reference sets.
func TestAPTau_Reference(t *testing.T) {
	t.Parallel()

	want := map[string]float64{
		"set1": 0.8518518518518512,
		"set2": 0.2503527336860669,
		"set3": -0.6970899470899472,
	}
	for _, f := range fixtures {
		got, err := corr.APTau(f.x, f.y)
		require.NoError(t, err, f.name)
		assert.InDelta(t, want[f.name], got, epsTight, f.name)
	}
}

// TestAPTau_Increasing checks the rank-list orientation on set1.
func TestAPTau_Increasing(t *testing.T) {
	t.Parallel()

	f := fixtures[0]
	got, err := corr.APTau(f.x, f.y, corr.WithIncreasing())
	require.NoError(t, err)
	assert.InDelta(t, 0.9404761904761898, got, epsTight)

	dec, err := corr.APTau(f.x, f.y, corr.WithDecreasing(true))
	require.NoError(t, err)
	def, err := corr.APTau(f.x, f.y)
	require.NoError(t, err)
	assert.Equal(t, def, dec, "decreasing is the default")
}

// TestAPTau_TopWeighted shows that a swap at the top costs more than one at
// the bottom, while Kendall's τ treats them alike.
func TestAPTau_TopWeighted(t *testing.T) {
	t.Parallel()

	x := []float64{0.9, 0.8, 0.7, 0.6, 0.5}
	bottomSwap := []float64{0.9, 0.8, 0.7, 0.5, 0.6}
	topSwap := []float64{0.8, 0.9, 0.7, 0.6, 0.5}

	tauBottom, err := corr.Tau(x, bottomSwap)
	require.NoError(t, err)
	tauTop, err := corr.Tau(x, topSwap)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, tauBottom, epsTight)
	assert.InDelta(t, 0.8, tauTop, epsTight)

	apBottom, err := corr.APTau(x, bottomSwap)
	require.NoError(t, err)
	apTop, err := corr.APTau(x, topSwap)
	require.NoError(t, err)
	assert.InDelta(t, 0.875, apBottom, epsTight)
	assert.InDelta(t, 0.5, apTop, epsTight)
}

// TestAPTau_Extremes covers identical and reversed rankings.
func TestAPTau_Extremes(t *testing.T) {
	t.Parallel()

	x := []float64{5, 4, 3, 2, 1}
	got, err := corr.APTau(x, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, epsTight)

	got, err = corr.APTau(x, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, epsTight)
}

// TestAPTau_RejectsTies enforces the strict profile.
func TestAPTau_RejectsTies(t *testing.T) {
	t.Parallel()

	f := fixtures[0]
	_, err := corr.APTau(f.x, f.yTies)
	assert.ErrorIs(t, err, corr.ErrTiesPresent)
	assert.Contains(t, err.Error(), "APTau:")
}

// TestAPTauA_Reference checks AP-τₐ with and without ties in y.
func TestAPTauA_Reference(t *testing.T) {
	t.Parallel()

	ties := map[string]float64{
		"set1": 0.7453703703703702,
		"set2": 0.26917989417989396,
		"set3": -0.5558201058201059,
	}
	for _, f := range fixtures {
		ap, err := corr.APTau(f.x, f.y)
		require.NoError(t, err, f.name)
		got, err := corr.APTauA(f.x, f.y)
		require.NoError(t, err, f.name)
		assert.InDelta(t, ap, got, epsTight, "%s: equals AP-τ without ties", f.name)

		got, err = corr.APTauA(f.x, f.yTies)
		require.NoError(t, err, f.name)
		assert.InDelta(t, ties[f.name], got, epsTight, "%s: ties in y", f.name)
	}
}

// TestAPTauA_Increasing checks the rank-list orientation with ties in y.
func TestAPTauA_Increasing(t *testing.T) {
	t.Parallel()

	f := fixtures[0]
	got, err := corr.APTauA(f.x, f.yTies, corr.WithIncreasing())
	require.NoError(t, err)
	assert.InDelta(t, 0.8899911816578487, got, epsTight)
}

// TestAPTauA_FullTieY is finite: every refinement of a fully tied y is equally likely.
func TestAPTauA_FullTieY(t *testing.T) {
	t.Parallel()

	got, err := corr.APTauA(fixtures[0].x, fullTie)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, epsTight)
}

// TestAPTauA_RejectsTiesInX enforces the asymmetric profile.
func TestAPTauA_RejectsTiesInX(t *testing.T) {
	t.Parallel()

	f := fixtures[2]
	_, err := corr.APTauA(f.xTies, f.y)
	var tpe *corr.TiesPresentError
	require.ErrorAs(t, err, &tpe)
	assert.Equal(t, "x", tpe.Arg)
}

// TestAPTauB_Reference checks AP-τᵦ and its symmetry.
func TestAPTauB_Reference(t *testing.T) {
	t.Parallel()

	plain := map[string]float64{
		"set1": 0.8333333333333333,
		"set2": 0.28800705467372123,
		"set3": -0.6679894179894179,
	}
	ties := map[string]float64{
		"set1": 0.7321428571428572,
		"set2": 0.296957671957672,
		"set3": -0.7046957671957672,
	}
	for _, f := range fixtures {
		got, err := corr.APTauB(f.x, f.y)
		require.NoError(t, err, f.name)
		assert.InDelta(t, plain[f.name], got, epsTight, f.name)

		got, err = corr.APTauB(f.xTies, f.yTies)
		require.NoError(t, err, f.name)
		assert.InDelta(t, ties[f.name], got, epsTight, "%s: ties", f.name)

		swapped, err := corr.APTauB(f.yTies, f.xTies)
		require.NoError(t, err, f.name)
		assert.InDelta(t, got, swapped, epsTight, "%s: symmetry", f.name)
	}
}

// TestAPTauB_Increasing checks the rank-list orientation on set1.
func TestAPTauB_Increasing(t *testing.T) {
	t.Parallel()

	f := fixtures[0]
	got, err := corr.APTauB(f.xTies, f.yTies, corr.WithIncreasing())
	require.NoError(t, err)
	assert.InDelta(t, 0.867283950617284, got, epsTight)
}

// TestAPTauB_FullTieIsNaN returns NaN as a value, in either position.
func TestAPTauB_FullTieIsNaN(t *testing.T) {
	t.Parallel()

	for _, f := range fixtures {
		got, err := corr.APTauB(f.x, fullTie)
		require.NoError(t, err, f.name)
		assert.True(t, math.IsNaN(got), "%s: got %v", f.name, got)

		got, err = corr.APTauB(fullTie, f.x)
		require.NoError(t, err, f.name)
		assert.True(t, math.IsNaN(got), "%s: got %v", f.name, got)
	}
}

// TestAPTauASign_Reference covers both the tie-free agreement with AP-τ and
// the tied values, which differ from AP-τₐ.
func TestAPTauASign_Reference(t *testing.T) {
	t.Parallel()

	ties := map[string]float64{
		"set1": 0.730489417989418,
		"set2": 0.27689594356261027,
		"set3": -0.5409391534391533,
	}
	for _, f := range fixtures {
		ap, err := corr.APTau(f.x, f.y)
		require.NoError(t, err, f.name)
		got, err := corr.APTauASign(f.x, f.y)
		require.NoError(t, err, f.name)
		assert.InDelta(t, ap, got, epsTight, "%s: equals AP-τ without ties", f.name)

		got, err = corr.APTauASign(f.xTies, f.yTies)
		require.NoError(t, err, f.name)
		assert.InDelta(t, ties[f.name], got, epsTight, "%s: ties", f.name)
	}
}

// TestAP_DoesNotMutate ensures inputs survive every AP coefficient.
func TestAP_DoesNotMutate(t *testing.T) {
	t.Parallel()

	f := fixtures[1]
	x, y := clone(f.xTies), clone(f.yTies)
	_, err := corr.APTauB(x, y)
	require.NoError(t, err)
	_, err = corr.APTauASign(x, y)
	require.NoError(t, err)
	_, err = corr.APTauA(f.x, y)
	require.NoError(t, err)

	assert.Equal(t, f.xTies, x)
	assert.Equal(t, f.yTies, y)
}
