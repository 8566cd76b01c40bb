// Package ircor computes rank correlation coefficients for comparing two
// rankings of the same items, with the focus of Information Retrieval
// evaluation: does a cheaper evaluation rank the systems like the
// expensive one, and does it get the top right?
//
// 🚀 What is ircor?
//
//	A pure-Go library and CLI that brings together:
//		• Kendall family: τ, τₐ (accuracy, ties in y) and τᵦ (agreement, ties anywhere)
//		• AP correlation family: AP-τ, AP-τₐ and AP-τᵦ, weighting the top of the ranking
//		• Explicit tie policies enforced by one validator, with typed errors
//		• Score or rank orientation through a single option
//
// ✨ Why choose ircor?
//
//   - Closed-form tie handling: AP-τₐ is the exact average over tie
//     refinements, computed without enumerating them
//   - Deterministic: no global state, inputs are never modified
//   - Concurrency-safe: every coefficient is a pure function
//
// Packages:
//
//	corr/          coefficients, validation, options and the by-name dispatcher
//	rank/          ordinal, min, max, dense and average ranking
//	permute/       enumeration of tie refinements, used as a reference oracle
//	cmd/ircor/     command-line interface over corr
//
// Quick example:
//
//	x := []float64{0.9, 0.8, 0.7, 0.6, 0.5} // true scores
//	y := []float64{0.8, 0.9, 0.7, 0.6, 0.5} // top two swapped
//	tau, _ := corr.Tau(x, y)                // 0.8
//	ap, _ := corr.APTau(x, y)               // 0.5, the swap is at the top
//
//	go get github.com/katalvlaran/ircor
package ircor
