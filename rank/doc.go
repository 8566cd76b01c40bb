// SPDX-License-Identifier: MIT

// Package rank assigns 1-based ranks to the elements of a numeric sequence
// under a named tie-resolution policy.
//
// 🚀 What is a rank?
//
//	The rank of x[i] is its position in the ascending order of x. When
//	several elements share a value (a tie block), the policy decides which
//	rank each of them receives:
//	  • ordinal - unique ranks 1..n, ties broken by original index
//	  • min     - every tied element gets the lowest rank of its block
//	              (competition ranking, "1224")
//	  • max     - every tied element gets the highest rank of its block ("1334")
//	  • dense   - like min, but the next block follows immediately ("1223")
//	  • average - every tied element gets the mean rank of its block ("1 2.5 2.5 4")
//
// ✨ Key properties:
//   - deterministic: one stable index sort, then a single tie-block walk
//   - pure: the input slice is never modified
//   - O(n log n) time, O(n) memory
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ircor/rank"
//
//	rank.Ordinal([]float64{3, 1, 3})  // [2 1 3]
//	rank.Min([]float64{3, 1, 3})      // [2 1 2]
//	rank.Average([]float64{3, 1, 3})  // [2.5 1 2.5]
//
//	m, err := rank.ParseMethod("min")
//	r, err := rank.Rank(x, m)         // []float64 for any method
//
// NaN values are ordered before every other value (cmp.Compare semantics)
// and all NaNs form one tie block. Callers that need finite data should
// validate before ranking.
package rank
