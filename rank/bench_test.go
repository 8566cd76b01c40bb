// SPDX-License-Identifier: MIT

package rank_test

import (
	"testing"

	"github.com/katalvlaran/ircor/rank"
)

// benchmarkRank runs rank.Rank with method m over a sequence of length n
// holding n/4 distinct values, so every policy sees tie blocks.
func benchmarkRank(b *testing.B, n int, m rank.Method) {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64((i * 7919) % (n/4 + 1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rank.Rank(x, m); err != nil {
			b.Fatalf("Rank failed: %v", err)
		}
	}
}

// BenchmarkRank_Ordinal1k benchmarks ordinal ranking of 1000 values.
func BenchmarkRank_Ordinal1k(b *testing.B) { benchmarkRank(b, 1000, rank.MethodOrdinal) }

// BenchmarkRank_Min1k benchmarks min ranking of 1000 values.
func BenchmarkRank_Min1k(b *testing.B) { benchmarkRank(b, 1000, rank.MethodMin) }

// BenchmarkRank_Average1k benchmarks average ranking of 1000 values.
func BenchmarkRank_Average1k(b *testing.B) { benchmarkRank(b, 1000, rank.MethodAverage) }
