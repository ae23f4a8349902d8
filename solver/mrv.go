package solver

import "github.com/katalvlaran/hexadoku/board"

// scanState classifies the outcome of one MRV scan.
type scanState int

const (
	// scanFound — an empty cell with a non-empty domain was selected.
	scanFound scanState = iota
	// scanComplete — no empty cell remains; the board is solved.
	scanComplete
	// scanDeadEnd — some empty cell has an empty domain; this branch fails.
	scanDeadEnd
)

// engine holds one solve run's state: the board under shared mutation and
// the invocation counter. A dedicated struct (instead of package globals)
// keeps concurrent independent solves from interfering and makes the counter
// a per-call artifact.
type engine struct {
	b     *board.Board
	calls int64
}

// selectCell performs the Minimum-Remaining-Values scan over all cells in
// row-major order (row outer, column inner) and picks the empty cell with
// the smallest candidate set.
//
//   - Forward checking: an empty cell with zero candidates aborts the scan
//     immediately with scanDeadEnd — the branch cannot succeed, so no
//     assignment is attempted.
//   - Tie-break: strict < comparison, so the first cell in row-major order
//     achieving a given minimum wins.
//   - Early exit: a singleton domain cannot be beaten; scanning stops there.
//   - No empty cell at all ⇒ scanComplete.
//
// Complexity: O(Size²) candidate computations worst case ⇒ O(Size³).
func (e *engine) selectCell() (row, col int, cs CandidateSet, state scanState) {
	var (
		bestSize = board.Size + 1 // larger than any real domain
		found    bool
		r, c     int
		cur      CandidateSet
		n        int
	)

	for r = 0; r < board.Size; r++ {
		for c = 0; c < board.Size; c++ {
			if !e.b.IsEmpty(r, c) {
				continue
			}
			cur = Candidates(e.b, r, c)
			n = cur.Count()
			if n == 0 {
				return 0, 0, 0, scanDeadEnd
			}
			if n < bestSize {
				bestSize = n
				row, col, cs = r, c, cur
				found = true
				if n == 1 {
					return row, col, cs, scanFound
				}
			}
		}
	}
	if !found {
		return 0, 0, 0, scanComplete
	}

	return row, col, cs, scanFound
}

// solve is one decision point of the backtracking search: select a cell via
// MRV, then try its candidates in ascending symbol order, recursing after
// each tentative assignment and undoing it on failure.
//
// On true the assignment chain is left in place (it is the solution); on
// false every assignment made by this frame has been undone, so the caller
// sees the board exactly as it was.
func (e *engine) solve() bool {
	e.calls++

	row, col, cs, state := e.selectCell()
	switch state {
	case scanComplete:
		return true
	case scanDeadEnd:
		return false
	}

	for _, s := range cs.Symbols() {
		e.b.Set(row, col, s)
		if e.solve() {
			return true
		}
		e.b.Clear(row, col) // backtrack
	}

	return false
}
