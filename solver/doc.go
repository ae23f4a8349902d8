// Package solver completes 16×16 hexadoku boards by exhaustive backtracking
// search guided by the Minimum-Remaining-Values heuristic with forward
// checking.
//
// What:
//
//   - Candidates derives the legal-symbol set for an empty cell from its
//     row, column, and 4×4 subgrid occupancy.
//   - Solve picks, at each decision point, the empty cell with the fewest
//     candidates (first in row-major order on ties), tries its candidates in
//     ascending symbol order, and backtracks on failure. The first solution
//     found is returned; enumeration stops there.
//   - Forward checking prunes early: any empty cell with an empty domain
//     fails the whole branch before a single assignment is tried.
//
// Why:
//
//   - MRV attacks the most constrained cell first, collapsing the branching
//     factor; with 16 symbols a naive scan order is hopeless.
//   - The search is fully deterministic — fixed scan order, fixed tie-break,
//     fixed candidate order — so results and call counts are reproducible.
//
// Complexity:
//
//   - Candidates: O(Size) per call.
//   - One MRV scan: O(Size³) worst case.
//   - Full search: exponential worst case; recursion depth ≤ 256.
//
// Errors:
//
//   - ErrNilBoard: Solve received a nil board.
//   - ErrConflictingGivens: the initial board already breaks a uniqueness
//     constraint (skippable via Options.SkipGivensCheck).
//
// An unsolvable-but-well-formed board is not an error: Solve returns
// Result{Solved: false} and restores the board to its pre-call state.
package solver
