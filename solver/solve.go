// Package solver - entry point wiring validation to the search engine.
package solver

import "github.com/katalvlaran/hexadoku/board"

// Solve completes b in place using backtracking search with the MRV
// heuristic and forward checking. opts may be nil for defaults.
//
// Contracts:
//   - b must be non-nil; its cells are alphabet symbols or board.Empty
//     (boards from board.New/board.Parse satisfy this by construction).
//   - Unless opts.SkipGivensCheck is set, the initial board is scanned for
//     row/column/subgrid conflicts and rejected with ErrConflictingGivens
//     before any search runs.
//   - b is owned by the search until Solve returns: no concurrent access.
//
// Outcomes:
//   - (Result{Solved: true, …}, nil): b is completely filled and every row,
//     column, and subgrid holds each symbol exactly once.
//   - (Result{Solved: false, …}, nil): no solution is reachable from the
//     given assignment; b is bit-identical to its pre-call state.
//   - (Result{}, err): invalid input; b untouched, search never started.
//
// Result.Calls counts decision points examined; the same input always yields
// the same filled board and the same count (the search is deterministic).
//
// Complexity: exponential in the number of empty cells in the worst case;
// recursion depth is bounded by the empty-cell count (≤256).
func Solve(b *board.Board, opts *Options) (Result, error) {
	if b == nil {
		return Result{}, ErrNilBoard
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	if !o.SkipGivensCheck && !b.Consistent() {
		return Result{}, ErrConflictingGivens
	}

	e := engine{b: b}
	solved := e.solve()

	return Result{Solved: solved, Calls: e.calls}, nil
}
