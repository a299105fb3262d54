package prefs

import "fmt"

// RankIndex is a precomputed inverse of a preference table: for each
// owner, a candidate→rank lookup (rank 0 = most preferred). It turns
// the question "does owner prefer a over b" into two O(1) array reads.
//
// A RankIndex is a read-only cache derived from one side of an
// Instance. It is never mutated after BuildRankIndex returns, so it is
// safely shareable across goroutines as immutable data.
type RankIndex [][]int

// BuildRankIndex inverts a preference table into a RankIndex.
//
// lists must be n rows, each a permutation of [0,n) — the same shape
// Instance enforces; tables obtained from ProposerPrefs/ReviewerPrefs
// always satisfy this. Malformed tables yield ErrNotPermutation.
//
// Complexity: O(n²) time and space; every later Rank query is O(1).
func BuildRankIndex(lists [][]int) (RankIndex, error) {
	n := len(lists)
	if n == 0 {
		return nil, ErrNonPositiveSize
	}
	if err := validateSide("owner", lists, n); err != nil {
		return nil, err
	}

	idx := make(RankIndex, n)

	var (
		owner int   // row being inverted
		rank  int   // position within the row
		row   []int // owner's preference list
	)
	for owner = 0; owner < n; owner++ {
		row = lists[owner]
		idx[owner] = make([]int, n)
		for rank = 0; rank < n; rank++ {
			idx[owner][row[rank]] = rank
		}
	}

	return idx, nil
}

// Rank returns the rank owner assigns to candidate (0 = best).
// Returns ErrIndexOutOfRange when either id is outside [0,n).
func (ri RankIndex) Rank(owner, candidate int) (int, error) {
	n := len(ri)
	if owner < 0 || owner >= n {
		return 0, fmt.Errorf("%w: owner %d of %d", ErrIndexOutOfRange, owner, n)
	}
	if candidate < 0 || candidate >= n {
		return 0, fmt.Errorf("%w: candidate %d of %d", ErrIndexOutOfRange, candidate, n)
	}

	return ri[owner][candidate], nil
}

// Prefers reports whether owner strictly prefers candidate a over b.
// Ranks are total strict orders, so equality can only mean a == b,
// which is never a strict preference.
//
// Prefers does not bounds-check; it is the hot-path companion of Rank
// and assumes ids already validated by the caller (the solver and
// verifier validate whole structures up front).
func (ri RankIndex) Prefers(owner, a, b int) bool {
	return ri[owner][a] < ri[owner][b]
}
