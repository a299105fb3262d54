package prefs

import "math/rand"

// Generate produces a uniformly random, internally consistent Instance
// of size n: every one of the n proposers and n reviewers receives an
// independent uniformly random permutation of [0,n) as its preference
// list.
//
// Determinism:
//
//   - Generate(n, WithSeed(s)) yields the same Instance on every call
//     and platform. Seed 0 maps to a fixed default, so the zero option
//     is reproducible too.
//   - WithRand(r) draws from the caller's stream instead; the caller
//     then controls reproducibility (and must not share r concurrently).
//   - The proposer and reviewer tables are drawn from two SplitMix64-
//     derived substreams of the configured source, so the two sides are
//     decorrelated even for adjacent seeds.
//
// Errors:
//   - ErrNonPositiveSize — n <= 0.
//
// Complexity: O(n²) time and space.
func Generate(n int, opts ...Option) (*Instance, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}

	// 1) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Resolve the base random source (explicit Rand wins over Seed).
	base := cfg.Rand
	if base == nil {
		base = rngFromSeed(cfg.Seed)
	}

	// 3) Derive one substream per side and fill the tables.
	proposers := randomTable(n, deriveRNG(base, proposerStream))
	reviewers := randomTable(n, deriveRNG(base, reviewerStream))

	// 4) Assemble without re-validation: rand.Perm output is a
	//    permutation by construction, and the tables are freshly
	//    allocated, so no aliasing with caller state exists.
	return &Instance{
		n:         n,
		proposers: proposers,
		reviewers: reviewers,
	}, nil
}

// randomTable returns n independent uniformly random permutations of
// [0,n), one per participant, drawn from rng.
//
// Complexity: O(n²) time and space.
func randomTable(n int, rng *rand.Rand) [][]int {
	table := make([][]int, n)
	for i := 0; i < n; i++ {
		table[i] = rng.Perm(n)
	}

	return table
}
