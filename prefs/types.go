// Package prefs defines the instance model, sentinel errors and
// generation options shared by the stable-matching packages.
package prefs

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by instance construction and generation.
var (
	// ErrNonPositiveSize indicates a requested instance size n <= 0.
	ErrNonPositiveSize = errors.New("prefs: instance size must be positive")

	// ErrSideSizeMismatch indicates the proposer and reviewer tables
	// do not both contain exactly n preference lists.
	ErrSideSizeMismatch = errors.New("prefs: proposer and reviewer sides must have equal size")

	// ErrNotPermutation indicates a preference list that is not a
	// permutation of [0,n): wrong length, out-of-range id, or duplicate.
	ErrNotPermutation = errors.New("prefs: preference list must be a permutation of [0,n)")

	// ErrIndexOutOfRange indicates a participant id outside [0,n)
	// passed to an Instance or RankIndex accessor.
	ErrIndexOutOfRange = errors.New("prefs: participant id out of range")
)

// Options configures random instance generation.
//
// Seed – deterministic seed for the generator. Policy mirrors the rest
//
//	of the library: Seed==0 selects a fixed default seed, so the
//	zero value is still fully reproducible.
//
// Rand – optional explicit source. When non-nil it takes precedence
//
//	over Seed; the caller owns its state and sharing rules
//	(math/rand.Rand is not goroutine-safe).
type Options struct {
	Seed int64      // deterministic seed (0 ⇒ fixed default stream)
	Rand *rand.Rand // explicit source; overrides Seed when non-nil
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithSeed sets the deterministic seed used to generate both sides.
// Seed 0 is replaced by a fixed default, so all seeds are reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies an explicit random source, overriding WithSeed.
// Useful when many instances must be drawn from one shared stream.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns the generation defaults: the fixed default
// seed and no explicit source.
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Rand: nil,
	}
}
