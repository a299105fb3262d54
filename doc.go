// Package stablematch is an in-memory toolkit for two-sided stable
// matching — from random instance generation to the Gale–Shapley
// deferred-acceptance solver and an independent stability oracle.
//
// 🚀 What is stablematch?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• prefs:    preference instances, seeded generation, rank indexes
//		• marriage: deferred acceptance (proposer- or reviewer-optimal),
//		            blocking-pair verification, exhaustive enumeration
//
// ✨ Why choose stablematch?
//
//   - Deterministic – same seed ⇒ identical instance on every platform
//   - Verifiable – the stability check is independent of the solver, so
//     matchings produced by any external engine can be cross-checked
//   - Rock-solid guarantees – fail-fast validation, sentinel errors,
//     O(n²) termination bound honored by construction
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	prefs/    — PreferenceInstance model, random generation, RankIndex
//	marriage/ — Solve (Gale–Shapley), Verify (blocking pairs), EnumerateStable
//
// Quick sketch:
//
//	inst, _ := prefs.Generate(100, prefs.WithSeed(42))
//	m, _ := marriage.Solve(inst)
//	ok, _, _ := marriage.Verify(inst, m) // ok == true, always
//
// Dive into the package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/stablematch
package stablematch
