// SPDX-License-Identifier: MIT

package corr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ircor/corr"
)

// ExampleTau compares two rank lists, where 1 is the best rank.
func ExampleTau() {
	tau, err := corr.Tau([]float64{1, 2, 3, 4}, []float64{1, 3, 2, 4}, corr.WithIncreasing())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("tau=%.4f\n", tau)
	// Output: tau=0.6667
}

// ExampleAPTau shows that AP-τ penalizes a swap at the top more than one at
// the bottom, where Kendall's τ sees no difference.
func ExampleAPTau() {
	truth := []float64{0.9, 0.8, 0.7, 0.6, 0.5}
	bottom := []float64{0.9, 0.8, 0.7, 0.5, 0.6}
	top := []float64{0.8, 0.9, 0.7, 0.6, 0.5}

	for _, est := range [][]float64{bottom, top} {
		tau, _ := corr.Tau(truth, est)
		ap, _ := corr.APTau(truth, est)
		fmt.Printf("tau=%.3f tauap=%.3f\n", tau, ap)
	}
	// Output:
	// tau=0.800 tauap=0.875
	// tau=0.800 tauap=0.500
}

// ExampleAPTauB handles ties in both score lists.
func ExampleAPTauB() {
	x := []float64{0.9, 0.4, 0.9, 0.9, 0.7, 0.1, 0.2, 0.4, 0.5, 1}
	y := []float64{0.8, 0.4, 0.8, 1, 0.7, 0.1, 0.4, 0.5, 0.6, 1}

	v, err := corr.APTauB(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("tauap_b=%.4f\n", v)
	// Output: tauap_b=0.7321
}

// ExampleTiesPresentError reports which argument broke a tie-free requirement.
func ExampleTiesPresentError() {
	_, err := corr.APTau([]float64{3, 2, 1}, []float64{1, 1, 2})

	var tpe *corr.TiesPresentError
	if errors.As(err, &tpe) {
		fmt.Println("ties in", tpe.Arg)
	}
	fmt.Println(errors.Is(err, corr.ErrTiesPresent))
	// Output:
	// ties in y
	// true
}

// ExampleComputeAll evaluates every coefficient on a tied estimate.
func ExampleComputeAll() {
	x := []float64{0.897, 0.372, 0.908, 0.898, 0.661, 0.062, 0.177, 0.384, 0.498, 0.992}
	y := []float64{0.8, 0.4, 0.8, 1, 0.7, 0.1, 0.4, 0.5, 0.6, 1}

	res, err := corr.ComputeAll(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range res {
		if r.Err != nil {
			fmt.Printf("%-12s ties present\n", r.Coefficient)

			continue
		}
		fmt.Printf("%-12s %.4f\n", r.Coefficient, r.Value)
	}
	// Output:
	// tau          ties present
	// tau_a        0.8889
	// tau_b        0.9201
	// tauap        ties present
	// tauap_a      0.7454
	// tauap_b      0.7755
	// tauap_a_sign 0.7454
}
