// Package prefs models two-sided preference instances for stable
// matching: each side holds n participants, and every participant
// strictly ranks all n members of the opposite side.
//
// 🚀 What is a preference instance?
//
//	Two tables of total strict orders. Row p of the proposer table is
//	proposer p's ranking of all reviewers, best first; row w of the
//	reviewer table ranks all proposers. Every row is a permutation of
//	[0,n) — no ties, no omissions, no duplicates.
//
// ✨ Key features:
//   - Instance: immutable, validated at construction, defensive copies
//     on every accessor — safe to share across goroutines
//   - Generate: uniformly random instances from a deterministic seed
//     (same seed ⇒ identical instance on every platform)
//   - RankIndex: precomputed candidate→rank lookup turning "does w
//     prefer a over b" into an O(1) comparison
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stablematch/prefs"
//
//	inst, err := prefs.Generate(50, prefs.WithSeed(7))
//	if err != nil { ... }
//
//	ranks, _ := prefs.BuildRankIndex(inst.ReviewerPrefs())
//	ranks.Prefers(3, 10, 4) // does reviewer 3 prefer proposer 10 over 4?
//
// Performance:
//
//   - Generate:       O(n²) time and space (2n permutations of length n)
//   - BuildRankIndex: O(n²) time and space, O(1) per query thereafter
//
// See examples in example_test.go and the solver in package marriage.
package prefs
