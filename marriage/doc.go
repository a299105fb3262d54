// Package marriage solves and verifies the stable marriage problem on
// complete, strict two-sided preference instances.
//
// 🚀 What is stable marriage?
//
//	Given n proposers and n reviewers, each ranking the entire opposite
//	side, find a perfect pairing with no blocking pair — no two
//	participants who would both abandon their assigned partners for
//	each other. Gale & Shapley (1962) proved such a matching always
//	exists and gave the deferred-acceptance algorithm that finds it.
//
// ✨ Key features:
//   - Solve: deferred acceptance in O(n²), proposer-optimal by
//     construction (reviewer-optimal via WithReviewersProposing)
//   - Verify: an independent stability oracle that enumerates every
//     blocking pair — point it at any matching, including one produced
//     by an external constraint solver, to cross-check it
//   - EnumerateStable: exhaustive enumeration of all stable matchings
//     for small n, the ground truth for optimality experiments
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/stablematch/marriage"
//	  "github.com/katalvlaran/stablematch/prefs"
//	)
//
//	inst, _ := prefs.Generate(200, prefs.WithSeed(13))
//	m, err := marriage.Solve(inst)
//	if err != nil { ... }
//	ok, blocking, _ := marriage.Verify(inst, m) // ok==true, blocking empty
//
// Guarantees (for valid instances):
//
//   - Termination: at most n² proposals; each proposer walks its list
//     monotonically and never revisits a reviewer.
//   - Perfection: every proposer and reviewer is matched exactly once.
//   - Stability:  Verify(inst, Solve(inst)) always reports true.
//   - Optimality: the default result is proposer-optimal (no stable
//     matching gives any proposer a better partner) and
//     reviewer-pessimal; the sides swap roles under
//     WithReviewersProposing.
//
// Performance:
//
//   - Solve:           O(n²) time, O(n) extra space beyond the rank index
//   - Verify:          O(n²) time, O(n²) space for the two rank indexes
//   - EnumerateStable: O(n!·n²) worst case, guarded to n ≤ 10
//
// See examples in example_test.go and the instance model in package prefs.
package marriage
