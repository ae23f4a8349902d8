// Package board defines core types, constants, and sentinel errors
// for the board subpackage of github.com/katalvlaran/hexadoku.
package board

import "errors"

// Sentinel errors for board construction and parsing.
var (
	// ErrBadDimension indicates input text does not describe a 16×16 grid.
	ErrBadDimension = errors.New("board: input must have exactly 16 rows of 16 cells")
	// ErrBadSymbol indicates a cell rune outside '0'–'9', 'A'–'F' (or the '_' blank).
	ErrBadSymbol = errors.New("board: cell must be a hex digit 0-9/A-F or '_'")
)

// Grid geometry. A hexadoku board is Size×Size cells partitioned into
// Subgrid×Subgrid blocks.
const (
	// Size is the board edge length.
	Size = 16
	// Subgrid is the block edge length; Subgrid*Subgrid == Size.
	Subgrid = 4
	// EmptyRune is the textual blank marker used by Parse and String.
	EmptyRune = '_'
)

// Symbol is one of the 16 hexadoku values 0..15 (glyphs '0'–'9', 'A'–'F'),
// or the Empty sentinel. Empty lies outside the alphabet, so it can never be
// mistaken for a playable value in set arithmetic.
type Symbol uint8

// Empty marks an unassigned cell.
const Empty = Symbol(Size)

// Valid reports whether s is a member of the 16-symbol alphabet.
// Empty is not valid.
func (s Symbol) Valid() bool { return s < Size }

// Rune returns the display glyph for s: '0'–'9' for 0..9, 'A'–'F' for 10..15,
// and EmptyRune for Empty (or any other out-of-alphabet value).
func (s Symbol) Rune() rune {
	switch {
	case s < 10:
		return rune('0' + s)
	case s < Size:
		return rune('A' + s - 10)
	default:
		return EmptyRune
	}
}

// String implements fmt.Stringer using Rune.
func (s Symbol) String() string { return string(s.Rune()) }

// ParseSymbol maps a glyph to its Symbol: '0'–'9', 'A'–'F' (lowercase accepted),
// and EmptyRune to Empty. Any other rune yields ErrBadSymbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch {
	case r >= '0' && r <= '9':
		return Symbol(r - '0'), nil
	case r >= 'A' && r <= 'F':
		return Symbol(r-'A') + 10, nil
	case r >= 'a' && r <= 'f':
		return Symbol(r-'a') + 10, nil
	case r == EmptyRune:
		return Empty, nil
	default:
		return Empty, ErrBadSymbol
	}
}

// Cell identifies a single board position by row and column.
type Cell struct {
	Row, Col int
}

// Board is a mutable 16×16 hexadoku grid. The zero value is NOT ready for use
// (its cells read as symbol 0); construct with New or Parse instead.
//
// Board exposes exactly one mutation granularity: a single cell via Set/Clear.
// Out-of-range coordinates panic through the fixed-size array bounds check —
// they are a programming error, not a runtime condition.
type Board struct {
	cells [Size][Size]Symbol
}
