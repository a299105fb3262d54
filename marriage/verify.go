// Package marriage - independent stability verification.
//
// Verify is deliberately decoupled from Solve: it rebuilds its own rank
// lookups and enumerates all candidate pairs, so it can cross-check a
// matching produced by any engine (this package's solver, an external
// constraint solver, or a hand-written assignment) on equal terms.
package marriage

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// Verify decides whether m is a stable matching for inst.
//
// Validation stages (fail-fast, before any stability work):
//  1. inst non-nil (ErrNilInstance).
//  2. m is a bijection over [0,n): exactly n entries, every reviewer id
//     in range, no reviewer assigned twice (ErrInvalidMatching, wrapped
//     with the precise malformation).
//
// Algorithm: enumerate all n² pairs (p, w). A pair blocks iff p and w
// are not matched together, p strictly prefers w to its partner, and w
// strictly prefers p to its partner. Every blocking pair is collected —
// no short-circuit — because the diagnostic value of the verdict lies
// in the full violation list. Pairs are reported in lexicographic
// (proposer, reviewer) order.
//
// Returns (true, nil, nil) iff m is stable. Verify is a pure function:
// calling it twice on the same arguments yields identical results.
//
// Complexity: O(n²) time, O(n²) space (two rank indexes).
func Verify(inst *prefs.Instance, m Matching) (bool, []BlockingPair, error) {
	// 1) Validate the instance.
	if inst == nil {
		return false, nil, ErrNilInstance
	}
	n := inst.Size()

	// 2) Validate the matching shape.
	if err := validateMatching(n, m); err != nil {
		return false, nil, err
	}

	// 3) Build O(1) rank lookups for both sides. The tables come from a
	//    validated Instance, so these cannot fail.
	propRanks, err := prefs.BuildRankIndex(inst.ProposerPrefs())
	if err != nil {
		return false, nil, err
	}
	revRanks, err := prefs.BuildRankIndex(inst.ReviewerPrefs())
	if err != nil {
		return false, nil, err
	}

	// 4) Exhaustive pair scan.
	blocking := blockingPairs(propRanks, revRanks, m)

	return len(blocking) == 0, blocking, nil
}

// validateMatching checks that m is a bijection over [0,n).
//
// Complexity: O(n) time, O(n) scratch.
func validateMatching(n int, m Matching) error {
	if len(m) != n {
		return fmt.Errorf("%w: %d assignments for %d proposers", ErrInvalidMatching, len(m), n)
	}

	taken := make([]bool, n)
	for p, w := range m {
		if w < 0 || w >= n {
			return fmt.Errorf("%w: proposer %d assigned out-of-range reviewer %d", ErrInvalidMatching, p, w)
		}
		if taken[w] {
			return fmt.Errorf("%w: reviewer %d assigned twice", ErrInvalidMatching, w)
		}
		taken[w] = true
	}

	return nil
}

// blockingPairs enumerates every blocking pair of m under the given
// rank lookups. Shared by Verify and the exhaustive enumerator so both
// apply the one canonical stability predicate.
//
// m must already be a validated bijection.
//
// Complexity: O(n²) time.
func blockingPairs(propRanks, revRanks prefs.RankIndex, m Matching) []BlockingPair {
	n := len(m)
	inv := m.Inverse()

	var out []BlockingPair

	var (
		p  int // proposer under consideration
		w  int // reviewer under consideration
		pw int // p's current partner
		wp int // w's current partner
	)
	for p = 0; p < n; p++ {
		pw = m[p]
		for w = 0; w < n; w++ {
			if w == pw {
				continue // matched together, cannot block
			}
			// Strict preference on both sides; ties are impossible by
			// construction (total strict orders), so equality never blocks.
			if !propRanks.Prefers(p, w, pw) {
				continue
			}
			wp = inv[w]
			if revRanks.Prefers(w, p, wp) {
				out = append(out, BlockingPair{Proposer: p, Reviewer: w})
			}
		}
	}

	return out
}
