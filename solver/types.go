// Package solver defines options, results, candidate sets, and sentinel
// errors for the solver subpackage of github.com/katalvlaran/hexadoku.
package solver

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/hexadoku/board"
)

// Sentinel errors for the solve entry point. "No solution" is NOT an error:
// it is reported as Result.Solved == false with a nil error.
var (
	// ErrNilBoard indicates Solve was given a nil board.
	ErrNilBoard = errors.New("solver: board must be non-nil")
	// ErrConflictingGivens indicates the initial board already violates a
	// row/column/subgrid uniqueness constraint.
	ErrConflictingGivens = errors.New("solver: initial board has conflicting givens")
)

// CandidateSet is a bitmask over the 16-symbol alphabet: bit i set means
// symbol i is still legal for the cell under consideration. The board.Empty
// sentinel has no bit; by construction it cannot enter a set.
type CandidateSet uint16

// AllCandidates has every alphabet symbol set.
const AllCandidates = CandidateSet(1<<board.Size - 1)

// Has reports whether s is in the set. Out-of-alphabet symbols are never in.
func (cs CandidateSet) Has(s board.Symbol) bool {
	return s.Valid() && cs&(1<<s) != 0
}

// Add returns cs with s included. Out-of-alphabet symbols are ignored.
func (cs CandidateSet) Add(s board.Symbol) CandidateSet {
	if !s.Valid() {
		return cs
	}

	return cs | 1<<s
}

// Remove returns cs with s excluded.
func (cs CandidateSet) Remove(s board.Symbol) CandidateSet {
	if !s.Valid() {
		return cs
	}

	return cs &^ (1 << s)
}

// Count returns the number of symbols in the set.
func (cs CandidateSet) Count() int { return bits.OnesCount16(uint16(cs)) }

// Symbols lists the members in ascending symbol order — digits before
// letters, each ascending. This is the deterministic branching order of the
// search.
func (cs CandidateSet) Symbols() []board.Symbol {
	out := make([]board.Symbol, 0, cs.Count())
	var rest = uint16(cs)
	for rest != 0 {
		out = append(out, board.Symbol(bits.TrailingZeros16(rest)))
		rest &= rest - 1 // drop the lowest set bit
	}

	return out
}

// Options configures Solve. The zero value is the default configuration;
// a nil *Options means defaults.
type Options struct {
	// SkipGivensCheck disables the pre-solve conflict scan on the initial
	// board. The engine then trusts the caller's givens to be mutually
	// consistent; solving a board that is not is undefined (it may "solve"
	// a broken grid or fail), exactly like feeding it to the raw search.
	SkipGivensCheck bool
}

// DefaultOptions returns the default configuration: givens are checked.
func DefaultOptions() Options { return Options{} }

// Result reports the outcome of one Solve call.
type Result struct {
	// Solved is true when the board was completed; false when the search
	// exhausted every branch.
	Solved bool
	// Calls counts search invocations (one per decision point examined),
	// for diagnostics and reproducibility checks. Each Solve call owns its
	// own counter; independent solves never interfere.
	Calls int64
}
