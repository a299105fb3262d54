package prefs

import "fmt"

// Instance is an immutable two-sided preference instance of size n.
//
// Each side holds n participants identified by integers in [0,n); the
// two sides are disjoint namespaces of the same size. Row p of the
// proposer table is proposer p's strict ranking of all reviewers, best
// first; row w of the reviewer table ranks all proposers.
//
// Invariants (enforced by New and never violated afterwards):
//   - both tables contain exactly n rows;
//   - every row is a permutation of [0,n).
//
// An Instance is deep-copied on construction and on every accessor, so
// neither the caller's input slices nor the returned slices alias the
// internal state. Instances are therefore safe to share across
// goroutines without locking.
type Instance struct {
	n         int
	proposers [][]int // proposers[p] = p's ranking of reviewers
	reviewers [][]int // reviewers[w] = w's ranking of proposers
}

// New constructs a validated Instance from two preference tables.
//
// Validation stages (fail-fast, in order):
//  1. Both tables non-empty and of equal length n (ErrSideSizeMismatch,
//     ErrNonPositiveSize).
//  2. Every row of each table is a permutation of [0,n)
//     (ErrNotPermutation, wrapped with the offending side and row).
//
// Complexity: O(n²) time and space (validation scan + deep copy).
func New(proposers, reviewers [][]int) (*Instance, error) {
	n := len(proposers)
	if n == 0 {
		return nil, ErrNonPositiveSize
	}
	if len(reviewers) != n {
		return nil, fmt.Errorf("%w: %d proposers vs %d reviewers", ErrSideSizeMismatch, n, len(reviewers))
	}

	if err := validateSide("proposer", proposers, n); err != nil {
		return nil, err
	}
	if err := validateSide("reviewer", reviewers, n); err != nil {
		return nil, err
	}

	return &Instance{
		n:         n,
		proposers: cloneTable(proposers),
		reviewers: cloneTable(reviewers),
	}, nil
}

// Size returns n, the number of participants per side.
func (in *Instance) Size() int { return in.n }

// ProposerPrefs returns a deep copy of the proposer preference table.
func (in *Instance) ProposerPrefs() [][]int { return cloneTable(in.proposers) }

// ReviewerPrefs returns a deep copy of the reviewer preference table.
func (in *Instance) ReviewerPrefs() [][]int { return cloneTable(in.reviewers) }

// ProposerList returns a copy of proposer p's ranking of reviewers.
// Returns ErrIndexOutOfRange when p ∉ [0,n).
func (in *Instance) ProposerList(p int) ([]int, error) {
	if p < 0 || p >= in.n {
		return nil, fmt.Errorf("%w: proposer %d of %d", ErrIndexOutOfRange, p, in.n)
	}

	return cloneRow(in.proposers[p]), nil
}

// ReviewerList returns a copy of reviewer w's ranking of proposers.
// Returns ErrIndexOutOfRange when w ∉ [0,n).
func (in *Instance) ReviewerList(w int) ([]int, error) {
	if w < 0 || w >= in.n {
		return nil, fmt.Errorf("%w: reviewer %d of %d", ErrIndexOutOfRange, w, in.n)
	}

	return cloneRow(in.reviewers[w]), nil
}

// Swap returns a new Instance with the two sides exchanged: the
// reviewers become the proposing side. Used to compute the
// reviewer-optimal matching with the same solver code path.
//
// Complexity: O(n²) (deep copy; the input tables are already valid,
// so no re-validation is performed).
func (in *Instance) Swap() *Instance {
	return &Instance{
		n:         in.n,
		proposers: cloneTable(in.reviewers),
		reviewers: cloneTable(in.proposers),
	}
}

// validateSide checks that every row of table is a permutation of
// [0,n). side names the table in wrapped errors ("proposer"/"reviewer").
//
// Complexity: O(n²) time, O(n) scratch (the seen buffer, reused per row).
func validateSide(side string, table [][]int, n int) error {
	seen := make([]bool, n)

	var (
		row []int // current preference list
		r   int   // row index
		i   int   // position within the row
		id  int   // candidate id at position i
	)
	for r = 0; r < n; r++ {
		row = table[r]
		if len(row) != n {
			return fmt.Errorf("%w: %s %d has %d entries, want %d", ErrNotPermutation, side, r, len(row), n)
		}
		for i = range seen {
			seen[i] = false
		}
		for i = 0; i < n; i++ {
			id = row[i]
			if id < 0 || id >= n {
				return fmt.Errorf("%w: %s %d ranks out-of-range id %d", ErrNotPermutation, side, r, id)
			}
			if seen[id] {
				return fmt.Errorf("%w: %s %d ranks id %d twice", ErrNotPermutation, side, r, id)
			}
			seen[id] = true
		}
	}

	return nil
}

// cloneTable deep-copies a preference table.
func cloneTable(table [][]int) [][]int {
	out := make([][]int, len(table))
	for i, row := range table {
		out[i] = cloneRow(row)
	}

	return out
}

// cloneRow copies a single preference list.
func cloneRow(row []int) []int {
	out := make([]int, len(row))
	copy(out, row)

	return out
}
