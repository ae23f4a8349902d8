// Package hexadoku is a deterministic solver for 16×16 Sudoku (hexadoku):
// 16 symbols '0'–'9'/'A'–'F', 4×4 subgrid blocks, solved as a constraint
// satisfaction problem.
//
// 🚀 What is hexadoku?
//
//	A small, focused library split into two subpackages:
//		• board/  — the 16×16 grid model: symbols, the Empty sentinel,
//		  single-cell mutation, text parsing and pretty printing,
//		  conflict detection
//		• solver/ — candidate-domain computation, the Minimum-Remaining-
//		  Values (MRV) cell-selection heuristic, and recursive
//		  backtracking search with forward checking
//
// ✨ Why choose hexadoku?
//
//   - Deterministic – fixed scan, tie-break and branching orders; the same
//     input always produces the same solution and the same call count
//   - Strict boundaries – malformed or conflicting inputs are rejected with
//     sentinel errors before the search ever runs
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	b, err := board.Parse(rows)      // 16 rows, '_' for blanks
//	if err != nil { /* bad input shape */ }
//	res, err := solver.Solve(b, nil) // nil ⇒ default options
//	if err != nil { /* conflicting givens */ }
//	if res.Solved {
//		fmt.Print(b) // filled grid
//		fmt.Println("decision points:", res.Calls)
//	}
//
// Dive into board/ and solver/ package docs for contracts and complexity.
//
//	go get github.com/katalvlaran/hexadoku
package hexadoku
