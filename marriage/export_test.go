package marriage

import "github.com/katalvlaran/stablematch/prefs"

// Test-only hooks. These exist only under `go test` and give external
// tests access to internals worth asserting on without widening the
// public API.

// HookSolveCount runs the solver and additionally reports the total
// number of proposals made, so tests can pin the n² termination bound.
func HookSolveCount(inst *prefs.Instance, opts ...Option) (Matching, int, error) {
	return solve(inst, opts...)
}
