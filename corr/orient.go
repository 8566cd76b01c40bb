// SPDX-License-Identifier: MIT

package corr

import "gonum.org/v1/gonum/floats"

// prepare is the shared front half of every coefficient:
//  1. resolve options;
//  2. validate x and y once under profile p (Validate returns copies);
//  3. when decreasing, negate both copies in place so the engines only
//     ever see ascending order.
//
// The caller's slices are never touched. Engines must not negate again.
func prepare(op string, p Profile, x, y []float64, opts []Option) (vx, vy []float64, err error) {
	o := gatherOptions(opts...)

	vx, vy, err = Validate(x, y, p)
	if err != nil {
		return nil, nil, corrErrorf(op, err)
	}
	if o.decreasing {
		floats.Scale(-1, vx)
		floats.Scale(-1, vy)
	}

	return vx, vy, nil
}
