package solver_test

import (
	"testing"

	"github.com/katalvlaran/hexadoku/board"
	"github.com/katalvlaran/hexadoku/solver"
)

// BenchmarkSolve measures a full solve of the ~100-given sample instance.
// Each iteration works on a fresh clone; cloning is a 256-byte array copy
// and is negligible next to the search itself.
func BenchmarkSolve(b *testing.B) {
	puzzle, err := board.Parse(samplePuzzle)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := solver.Solve(puzzle.Clone(), nil)
		if err != nil || !res.Solved {
			b.Fatalf("Solve = (%+v, %v); want solved", res, err)
		}
	}
}

// BenchmarkCandidates measures one domain computation on a mid-search board.
func BenchmarkCandidates(b *testing.B) {
	puzzle, err := board.Parse(samplePuzzle)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solver.Candidates(puzzle, 0, 0)
	}
}
