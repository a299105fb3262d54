package marriage_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stablematch/marriage"
	"github.com/katalvlaran/stablematch/prefs"
)

// BenchmarkSolve measures deferred acceptance across instance sizes on
// uniformly random preferences.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{50, 200, 1000} {
		inst, err := prefs.Generate(n, prefs.WithSeed(1))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = marriage.Solve(inst)
			}
		})
	}
}

// BenchmarkSolve_WorstCase measures the Θ(n²)-proposal instance: all
// proposers agree on one ranking, reviewers rank proposers in reverse.
func BenchmarkSolve_WorstCase(b *testing.B) {
	const n = 500
	proposers := make([][]int, n)
	reviewers := make([][]int, n)
	for i := 0; i < n; i++ {
		proposers[i] = make([]int, n)
		reviewers[i] = make([]int, n)
		for j := 0; j < n; j++ {
			proposers[i][j] = j
			reviewers[i][j] = n - 1 - j
		}
	}
	inst, err := prefs.New(proposers, reviewers)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = marriage.Solve(inst)
	}
}

// BenchmarkVerify measures the O(n²) pair scan on a stable matching.
func BenchmarkVerify(b *testing.B) {
	const n = 500
	inst, err := prefs.Generate(n, prefs.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	m, err := marriage.Solve(inst)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = marriage.Verify(inst, m)
	}
}

// BenchmarkEnumerateStable measures the pruned exhaustive search at the
// upper end of its size guard.
func BenchmarkEnumerateStable(b *testing.B) {
	inst, err := prefs.Generate(8, prefs.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = marriage.EnumerateStable(inst)
	}
}
