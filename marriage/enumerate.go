// Package marriage - exhaustive stable-matching enumeration.
//
// EnumerateStable is the small-instance ground truth next to the O(n²)
// solver, the same pairing the exact-vs-heuristic split follows
// elsewhere: use the fast algorithm in production, the exhaustive one
// to validate optimality claims on sizes where n! is affordable.
package marriage

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// MaxEnumerationSize bounds EnumerateStable. 10! ≈ 3.6M candidate
// bijections is the largest search that stays comfortably sub-second;
// beyond that the factorial blowup dominates any pruning.
const MaxEnumerationSize = 10

// EnumerateStable returns every stable matching of inst, in
// lexicographic order of the proposer→reviewer assignment vector.
//
// The search walks all bijections proposer-by-proposer and prunes any
// prefix that already contains a blocking pair, so wildly unstable
// branches die early; the stability predicate is the same one Verify
// applies. The result always contains at least one matching (Gale &
// Shapley's existence theorem) and always includes Solve's output.
//
// Errors:
//   - ErrNilInstance         — inst is nil.
//   - ErrEnumerationTooLarge — inst.Size() > MaxEnumerationSize.
//
// Complexity: O(n!·n) worst case, heavily pruned in practice; O(n²)
// space plus the result set.
func EnumerateStable(inst *prefs.Instance) ([]Matching, error) {
	// 1) Validate input and size guard.
	if inst == nil {
		return nil, ErrNilInstance
	}
	n := inst.Size()
	if n > MaxEnumerationSize {
		return nil, fmt.Errorf("%w: n=%d exceeds %d", ErrEnumerationTooLarge, n, MaxEnumerationSize)
	}

	// 2) Rank lookups shared across the whole search.
	propRanks, err := prefs.BuildRankIndex(inst.ProposerPrefs())
	if err != nil {
		return nil, err
	}
	revRanks, err := prefs.BuildRankIndex(inst.ReviewerPrefs())
	if err != nil {
		return nil, err
	}

	// 3) Depth-first search over partial assignments.
	e := &enumerator{
		n:         n,
		propRanks: propRanks,
		revRanks:  revRanks,
		assigned:  make([]int, n),
		taken:     make([]bool, n),
	}
	for i := range e.assigned {
		e.assigned[i] = unmatched
	}
	e.extend(0)

	return e.found, nil
}

// enumerator carries the mutable state of one exhaustive search.
type enumerator struct {
	n         int
	propRanks prefs.RankIndex
	revRanks  prefs.RankIndex
	assigned  []int  // assigned[q] = reviewer of proposer q, for q < depth
	taken     []bool // taken[w] = reviewer w already used in the prefix
	found     []Matching
}

// extend tries every free reviewer for proposer p, pruning assignments
// that introduce a blocking pair within the prefix, and recurses.
func (e *enumerator) extend(p int) {
	if p == e.n {
		e.found = append(e.found, Matching(e.assigned).Clone())

		return
	}

	for w := 0; w < e.n; w++ {
		if e.taken[w] || e.prefixBlocks(p, w) {
			continue
		}
		e.assigned[p] = w
		e.taken[w] = true
		e.extend(p + 1)
		e.taken[w] = false
		e.assigned[p] = unmatched
	}
}

// prefixBlocks reports whether pairing proposer p with reviewer w would
// create a blocking pair against any already-assigned pair (q, wq).
// Every cross pair is examined exactly once over the whole search — at
// the moment its later proposer is placed — so a fully extended
// assignment that never tripped this check is stable.
//
// Complexity: O(p) per call.
func (e *enumerator) prefixBlocks(p, w int) bool {
	var wq int // reviewer assigned to q in the prefix
	for q := 0; q < p; q++ {
		wq = e.assigned[q]
		// (p, wq) blocks: p prefers wq over w, and wq prefers p over q.
		if e.propRanks.Prefers(p, wq, w) && e.revRanks.Prefers(wq, p, q) {
			return true
		}
		// (q, w) blocks: q prefers w over wq, and w prefers q over p.
		if e.propRanks.Prefers(q, w, wq) && e.revRanks.Prefers(w, q, p) {
			return true
		}
	}

	return false
}
