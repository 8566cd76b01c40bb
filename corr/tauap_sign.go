// SPDX-License-Identifier: MIT

package corr

import "github.com/katalvlaran/ircor/rank"

const opAPTauASign = "APTauASign"

// APTauASign returns an alternate AP-τₐ accumulation that also tolerates
// ties in the reference x.
//
// Instead of counting concordant pairs above each pivot, it sums the sign
// product sign(rx_i−rx_j)·sign(ry_i−ry_j), so a tie in x contributes zero
// and a discordant pair contributes −1:
//
//	c_above_i = Σ_{j: p_j<p_i} sign(rx_i−rx_j)·sign(ry_i−ry_j)
//	result    = Σ_{i: p_i≠0} c_above_i·s_above_i / (n−1)
//
// s_above and p are those of APTauA; there is no within-block term.
//
// With a tie-free x the result equals APTauA, ties in y included. Ties in
// x are where the two differ: APTauA rejects them, APTauASign scores a
// tied pair of x as neither concordant nor discordant.
//
// Errors:
//   - *InvalidInputError for short, non-finite or mismatched inputs.
func APTauASign(x, y []float64, opts ...Option) (float64, error) {
	vx, vy, err := prepare(opAPTauASign, Permissive, x, y, opts)
	if err != nil {
		return 0, err
	}

	return apTauASignKernel(rank.Average(vx), groupTies(vy)), nil
}

func apTauASignKernel(rx []float64, g tieGroups) float64 {
	n := len(rx)
	cAll := 0.0
	inv := reciprocals(n)
	for i, p := range g.pivot {
		if p == 0 {
			continue
		}
		cAbove := 0
		for j, pj := range g.pivot {
			if pj >= p {
				continue
			}
			cAbove += sign(rx[i]-rx[j]) * sign(g.order[i]-g.order[j])
		}

		cAll += float64(cAbove) * aboveWeight(inv, p, g.size[i])
	}

	return cAll / float64(n-1)
}
