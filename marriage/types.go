// Package marriage defines result types, sentinel errors and solver
// options for the deferred-acceptance implementation.
package marriage

import "errors"

// Sentinel errors returned by the solver, verifier and enumerator.
var (
	// ErrNilInstance indicates a nil *prefs.Instance argument.
	ErrNilInstance = errors.New("marriage: instance is nil")

	// ErrInvalidMatching indicates a matching that is not a well-formed
	// bijection over [0,n): wrong length, out-of-range reviewer id, or
	// a reviewer assigned to more than one proposer. Wrapped with the
	// precise malformation.
	ErrInvalidMatching = errors.New("marriage: matching is not a bijection over [0,n)")

	// ErrEnumerationTooLarge indicates an EnumerateStable call on an
	// instance above the factorial-search size guard.
	ErrEnumerationTooLarge = errors.New("marriage: instance too large for exhaustive enumeration")
)

// Matching assigns each proposer a reviewer: Matching[p] == w means
// proposer p is paired with reviewer w. A valid matching is a bijection
// — every reviewer appears exactly once.
type Matching []int

// Inverse returns the reviewer→proposer view of m: Inverse()[w] == p
// iff m[p] == w. m must be a valid bijection (as every Matching
// produced by Solve is); out-of-range entries would panic here, which
// is why Verify validates shape before inverting.
func (m Matching) Inverse() Matching {
	inv := make(Matching, len(m))
	for p, w := range m {
		inv[w] = p
	}

	return inv
}

// Clone returns an independent copy of m.
func (m Matching) Clone() Matching {
	out := make(Matching, len(m))
	copy(out, m)

	return out
}

// BlockingPair is a proposer/reviewer pair, not matched together, in
// which both strictly prefer each other over their assigned partners.
// The existence of any blocking pair is the sole instability criterion.
type BlockingPair struct {
	Proposer int
	Reviewer int
}

// Options configures Solve.
//
// ReviewersPropose – run deferred acceptance with the reviewers as the
//
//	proposing side. The result is still returned as a
//	proposer→reviewer Matching, but it is the
//	reviewer-optimal (proposer-pessimal) stable matching.
type Options struct {
	ReviewersPropose bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReviewersProposing makes the reviewer side propose, yielding the
// reviewer-optimal stable matching. On instances where the two optima
// coincide the output equals the default; on contested instances the
// two calls bracket the lattice of stable matchings.
func WithReviewersProposing() Option {
	return func(o *Options) {
		o.ReviewersPropose = true
	}
}

// DefaultOptions returns the solver defaults: proposers propose.
func DefaultOptions() Options {
	return Options{
		ReviewersPropose: false,
	}
}
