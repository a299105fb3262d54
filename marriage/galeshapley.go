// Package marriage implements the Gale–Shapley deferred-acceptance
// algorithm for the stable marriage problem.
//
// Deferred acceptance pairs two equal-size sides with complete strict
// preferences. Free proposers propose down their lists; reviewers hold
// the best proposal seen so far and trade up when a better one arrives,
// releasing the previous holder back into the pool.
//
// Complexity:
//
//   - Time:  O(n²)
//   - Each proposer's list index only ever advances, so at most n²
//     proposals are made in total; each proposal is O(1) thanks to the
//     precomputed reviewer rank index.
//   - Space: O(n²) for the rank index, O(n) for all mutable state
//     (assignments, next-proposal cursors, free queue).
//
// Notes on implementation choices:
//
//   - Free proposers are processed through a FIFO queue seeded with
//     ascending ids. The final matching is invariant to this order (a
//     classical property of deferred acceptance); FIFO is chosen purely
//     so runs and tests are deterministic step-for-step.
//   - All mutable state lives in a per-call runner; Solve is reentrant
//     and never touches the input Instance.
package marriage

import (
	"github.com/katalvlaran/stablematch/prefs"
)

// Solve computes a stable matching for inst using deferred acceptance.
//
// The result is proposer-optimal and reviewer-pessimal: no stable
// matching of inst assigns any proposer a reviewer it prefers to its
// partner here, and every reviewer does at least as well in any other
// stable matching. With WithReviewersProposing the roles flip and the
// reviewer-optimal matching is returned (still as proposer→reviewer).
//
// Instance well-formedness is enforced by the prefs constructors, so
// the only rejectable input is a nil instance (ErrNilInstance).
//
// Returns a fresh Matching; inst is never mutated.
//
// Complexity: O(n²) time, O(n²) space (rank index).
func Solve(inst *prefs.Instance, opts ...Option) (Matching, error) {
	m, _, err := solve(inst, opts...)

	return m, err
}

// solve is the full-fidelity entry point: it also reports the number of
// proposals made, which the termination-bound tests assert against n².
func solve(inst *prefs.Instance, opts ...Option) (Matching, int, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if inst == nil {
		return nil, 0, ErrNilInstance
	}

	// 3) Orient the instance: with reviewers proposing we run the same
	//    machinery on the swapped instance and invert at the end.
	work := inst
	if cfg.ReviewersPropose {
		work = inst.Swap()
	}

	// 4) Set up per-call state and run the proposal loop.
	r, err := newRunner(work)
	if err != nil {
		return nil, 0, err
	}
	r.process()

	// 5) Re-express the result in the caller's orientation.
	m := Matching(r.match)
	if cfg.ReviewersPropose {
		m = m.Inverse()
	}

	return m, r.proposals, nil
}

// runner holds the mutable state for a single deferred-acceptance run.
type runner struct {
	n     int             // participants per side
	lists [][]int         // proposer preference lists, best first
	ranks prefs.RankIndex // reviewer's proposer→rank lookup (O(1) compare)

	next  []int // next[p] = index into lists[p] of p's next proposal
	match []int // match[p] = reviewer held by p, or unmatched
	holds []int // holds[w] = proposer held by w, or unmatched
	queue []int // FIFO of currently free proposers

	proposals int // total proposals made; bounded by n²
}

// unmatched marks a participant with no current partner.
const unmatched = -1

// newRunner snapshots the instance into dense per-run state: the
// proposer lists, the reviewer rank index, empty assignments, and the
// free queue seeded with all proposers in ascending id order.
//
// Complexity: O(n²) (table copy + rank-index build).
func newRunner(inst *prefs.Instance) (*runner, error) {
	n := inst.Size()

	ranks, err := prefs.BuildRankIndex(inst.ReviewerPrefs())
	if err != nil {
		return nil, err
	}

	r := &runner{
		n:     n,
		lists: inst.ProposerPrefs(),
		ranks: ranks,
		next:  make([]int, n),
		match: make([]int, n),
		holds: make([]int, n),
		queue: make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		r.match[i] = unmatched
		r.holds[i] = unmatched
		r.queue = append(r.queue, i)
	}

	return r, nil
}

// process drives proposals until no proposer is free.
//
// Loop invariants:
//
//   - next[p] only ever increases, so each (p, w) proposal happens at
//     most once and the loop makes at most n² iterations.
//   - A reviewer that has ever held a proposal stays matched forever
//     (it only trades up). Hence a free proposer always has an
//     untried reviewer left: if p had exhausted its list, all n
//     reviewers would be matched, so all n proposers would be too —
//     contradicting p being free.
//
// On return every proposer and reviewer is matched: the matching is a
// bijection, and stability follows from the trade-up rule (a proposer
// settles on w only after being rejected by everyone it prefers to w,
// and each rejection is in favor of someone that reviewer prefers).
func (r *runner) process() {
	var (
		p         int // proposing participant, head of the free queue
		w         int // reviewer receiving the proposal
		incumbent int // proposer currently held by w, if any
	)
	for len(r.queue) > 0 {
		// 1) Pop the next free proposer (FIFO).
		p = r.queue[0]
		r.queue = r.queue[1:]

		// 2) Propose to the best reviewer not yet tried; the cursor
		//    advance is what guarantees termination.
		w = r.lists[p][r.next[p]]
		r.next[p]++
		r.proposals++

		// 3) A free reviewer accepts tentatively.
		incumbent = r.holds[w]
		if incumbent == unmatched {
			r.engage(p, w)
			continue
		}

		// 4) A matched reviewer trades up iff it strictly prefers the
		//    newcomer; the displaced proposer rejoins the queue.
		if r.ranks.Prefers(w, p, incumbent) {
			r.match[incumbent] = unmatched
			r.queue = append(r.queue, incumbent)
			r.engage(p, w)
			continue
		}

		// 5) Rejected: p stays free and will try its next candidate.
		r.queue = append(r.queue, p)
	}
}

// engage tentatively matches proposer p with reviewer w.
func (r *runner) engage(p, w int) {
	r.match[p] = w
	r.holds[w] = p
}
