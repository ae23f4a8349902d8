package solver

import "github.com/katalvlaran/hexadoku/board"

// Candidates computes the set of symbols still legal for the empty cell at
// (r, c): the full alphabet minus every symbol already present in the cell's
// row, column, and 4×4 subgrid (block origin (r/4*4, c/4*4)).
//
// Contracts:
//   - The target cell is empty; r and c are in range (out-of-range panics).
//   - Pure and deterministic: no mutation, same board ⇒ same set.
//   - An empty result is a legal outcome — it signals a dead end, not an error.
//
// board.Empty is unrepresentable in a CandidateSet (its value is outside the
// mask's bit range), so scanning empty cells cannot pollute the result.
//
// Complexity: O(Size) for row+column plus O(Subgrid²) for the block; O(1) space.
func Candidates(b *board.Board, r, c int) CandidateSet {
	var used CandidateSet
	var i int

	// Row and column constraints in one pass.
	for i = 0; i < board.Size; i++ {
		used = used.Add(b.Get(r, i))
		used = used.Add(b.Get(i, c))
	}

	// Subgrid constraint.
	var (
		br     = r / board.Subgrid * board.Subgrid
		bc     = c / board.Subgrid * board.Subgrid
		dr, dc int
	)
	for dr = 0; dr < board.Subgrid; dr++ {
		for dc = 0; dc < board.Subgrid; dc++ {
			used = used.Add(b.Get(br+dr, bc+dc))
		}
	}

	return AllCandidates &^ used
}
