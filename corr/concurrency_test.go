// SPDX-License-Identifier: MIT

package corr_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ircor/corr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentUse runs every coefficient on shared inputs from many
// goroutines and expects the sequential results. Run with -race.
func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	f := fixtures[2]
	x, y := f.xTies, f.yTies

	want := make(map[corr.Coefficient]float64)
	for _, c := range corr.Coefficients() {
		if c.Profile() != corr.Permissive {
			continue
		}
		v, err := corr.Compute(c, x, y)
		require.NoError(t, err)
		want[c] = v
	}

	const workers = 16
	got := make([]map[corr.Coefficient]float64, workers)
	g, ctx := errgroup.WithContext(context.Background())
	for w := range workers {
		g.Go(func() error {
			out := make(map[corr.Coefficient]float64, len(want))
			for c := range want {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := corr.Compute(c, x, y)
				if err != nil {
					return err
				}
				out[c] = v
			}
			got[w] = out

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := range workers {
		assert.Equal(t, want, got[w], "worker %d", w)
	}
	assert.Equal(t, fixtures[2].xTies, x, "shared input untouched")
}
