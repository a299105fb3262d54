// Package marriage_test - exhaustive enumeration tests: the size
// guard, agreement with the independent verifier, lattice endpoints,
// and the textbook three-matching instance.
package marriage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/marriage"
	"github.com/katalvlaran/stablematch/prefs"
)

func TestEnumerateStable_NilInstance(t *testing.T) {
	_, err := marriage.EnumerateStable(nil)
	assert.ErrorIs(t, err, marriage.ErrNilInstance)
}

func TestEnumerateStable_SizeGuard(t *testing.T) {
	inst, err := prefs.Generate(marriage.MaxEnumerationSize+1, prefs.WithSeed(1))
	require.NoError(t, err)

	_, err = marriage.EnumerateStable(inst)
	assert.ErrorIs(t, err, marriage.ErrEnumerationTooLarge)
}

func TestEnumerateStable_TextbookThreeMatchings(t *testing.T) {
	// The contested 3×3 instance admits exactly three stable matchings,
	// returned in lexicographic order of the assignment vector.
	inst, err := prefs.New(
		[][]int{
			{0, 1, 2},
			{1, 2, 0},
			{2, 0, 1},
		},
		[][]int{
			{1, 2, 0},
			{2, 0, 1},
			{0, 1, 2},
		},
	)
	require.NoError(t, err)

	all, err := marriage.EnumerateStable(inst)
	require.NoError(t, err)

	want := []marriage.Matching{
		{0, 1, 2}, // proposer-optimal
		{1, 2, 0}, // the middle of the lattice
		{2, 0, 1}, // reviewer-optimal
	}
	assert.Equal(t, want, all)
}

func TestEnumerateStable_AgreesWithVerifier(t *testing.T) {
	// Every enumerated matching must pass the independent verifier, and
	// both solver orientations must appear in the enumeration.
	for seed := int64(1); seed <= 8; seed++ {
		inst, err := prefs.Generate(6, prefs.WithSeed(seed))
		require.NoError(t, err)

		all, err := marriage.EnumerateStable(inst)
		require.NoError(t, err)
		require.NotEmpty(t, all, "Gale–Shapley guarantees at least one stable matching")

		for _, m := range all {
			ok, blocking, err := marriage.Verify(inst, m)
			require.NoError(t, err)
			require.True(t, ok, "enumerated matching %v is not stable: %v", m, blocking)
		}

		optimal, err := marriage.Solve(inst)
		require.NoError(t, err)
		assert.Contains(t, all, optimal)

		pessimal, err := marriage.Solve(inst, marriage.WithReviewersProposing())
		require.NoError(t, err)
		assert.Contains(t, all, pessimal)
	}
}

func TestEnumerateStable_UniqueWhenFirstChoicesAlign(t *testing.T) {
	// When every participant's first choice is mutual, the identity
	// matching is the one and only stable matching.
	inst := rotationInstance(t, 5)

	all, err := marriage.EnumerateStable(inst)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, identity(5), all[0])
}
