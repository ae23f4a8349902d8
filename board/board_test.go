package board_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexadoku/board"
)

//----------------------------------------------------------------------------//
// Symbol Tests
//----------------------------------------------------------------------------//

// TestParseSymbol_RoundTrip verifies every alphabet glyph maps to a valid
// symbol and back to the same rune.
func TestParseSymbol_RoundTrip(t *testing.T) {
	glyphs := "0123456789ABCDEF"
	for i, r := range glyphs {
		s, err := board.ParseSymbol(r)
		require.NoError(t, err, "glyph %q", r)
		assert.True(t, s.Valid(), "glyph %q must be valid", r)
		assert.Equal(t, board.Symbol(i), s, "glyph %q value", r)
		assert.Equal(t, r, s.Rune(), "glyph %q round trip", r)
	}
}

// TestParseSymbol_Lowercase checks that lowercase hex letters are accepted.
func TestParseSymbol_Lowercase(t *testing.T) {
	s, err := board.ParseSymbol('c')
	require.NoError(t, err)
	assert.Equal(t, board.Symbol(12), s)
}

// TestParseSymbol_EmptyAndInvalid checks the blank marker and bad runes.
func TestParseSymbol_EmptyAndInvalid(t *testing.T) {
	s, err := board.ParseSymbol('_')
	require.NoError(t, err)
	assert.Equal(t, board.Empty, s)
	assert.False(t, board.Empty.Valid(), "Empty is not an alphabet member")

	for _, r := range "G-* x" {
		_, err = board.ParseSymbol(r)
		assert.ErrorIs(t, err, board.ErrBadSymbol, "rune %q must be rejected", r)
	}
}

//----------------------------------------------------------------------------//
// Board Mutation Tests
//----------------------------------------------------------------------------//

// TestBoard_SetClearGet exercises the single-cell mutation contract.
func TestBoard_SetClearGet(t *testing.T) {
	b := board.New()
	require.Equal(t, board.Size*board.Size, b.EmptyCells())

	b.Set(3, 7, board.Symbol(10)) // 'A'
	assert.Equal(t, board.Symbol(10), b.Get(3, 7))
	assert.False(t, b.IsEmpty(3, 7))
	assert.Equal(t, board.Size*board.Size-1, b.EmptyCells())

	b.Clear(3, 7)
	assert.True(t, b.IsEmpty(3, 7))
	assert.Equal(t, board.Empty, b.Get(3, 7))
}

// TestBoard_CloneIndependence verifies Clone shares no storage with the
// original and Equal tracks cell content.
func TestBoard_CloneIndependence(t *testing.T) {
	b := board.New()
	b.Set(0, 0, 5)
	cp := b.Clone()
	require.True(t, b.Equal(cp))

	cp.Set(15, 15, 1)
	assert.False(t, b.Equal(cp), "mutating the clone must not affect the original")
	assert.True(t, b.IsEmpty(15, 15))

	assert.False(t, b.Equal(nil), "nil board is never equal")
}

//----------------------------------------------------------------------------//
// Parse and String Tests
//----------------------------------------------------------------------------//

// emptyRows is 16 rows of 16 blanks in the bare-rune form.
func emptyRows() []string {
	rows := make([]string, board.Size)
	for i := range rows {
		rows[i] = strings.Repeat("_", board.Size)
	}
	return rows
}

// TestParse_Errors verifies shape and alphabet rejection.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func([]string) []string
		err    error
	}{
		{"TooFewRows", func(r []string) []string { return r[:15] }, board.ErrBadDimension},
		{"TooManyRows", func(r []string) []string { return append(r, r[0]) }, board.ErrBadDimension},
		{"ShortRow", func(r []string) []string { r[4] = "_______________"; return r }, board.ErrBadDimension},
		{"MultiRuneField", func(r []string) []string { r[0] = "AB " + strings.Repeat("_ ", 15); return r }, board.ErrBadDimension},
		{"BadRune", func(r []string) []string { r[9] = strings.Repeat("_", 15) + "G"; return r }, board.ErrBadSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Parse(tc.mutate(emptyRows()))
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestParse_Forms checks that the spaced and bare-rune row forms parse to
// the same board.
func TestParse_Forms(t *testing.T) {
	spaced := emptyRows()
	spaced[2] = "_ 6 8 _ _ 5 _ _ 7 B A D _ 3 _ _"
	bare := emptyRows()
	bare[2] = "_68__5__7BAD_3__"

	a, err := board.Parse(spaced)
	require.NoError(t, err)
	b, err := board.Parse(bare)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, board.Symbol(6), a.Get(2, 1))
	assert.Equal(t, board.Symbol(11), a.Get(2, 9)) // 'B'
}

// TestString_RoundTrip renders a board and re-parses the cell glyphs.
func TestString_RoundTrip(t *testing.T) {
	rows := emptyRows()
	rows[0] = "0123456789ABCDEF"
	b, err := board.Parse(rows)
	require.NoError(t, err)

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 16 cell rows + 3 dashed rules between subgrid bands.
	require.Len(t, lines, board.Size+3)
	assert.Equal(t, "0 1 2 3 | 4 5 6 7 | 8 9 A B | C D E F", strings.TrimRight(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[4], "---"), "line 4 is a subgrid rule")

	// Strip rules and separators, re-parse, compare.
	reparsed := make([]string, 0, board.Size)
	for _, ln := range lines {
		if strings.HasPrefix(ln, "-") {
			continue
		}
		reparsed = append(reparsed, strings.ReplaceAll(ln, "| ", ""))
	}
	b2, err := board.Parse(reparsed)
	require.NoError(t, err)
	assert.True(t, b.Equal(b2))
}

//----------------------------------------------------------------------------//
// Conflicts Tests
//----------------------------------------------------------------------------//

// TestConflicts covers clean boards and duplicates in each unit kind.
func TestConflicts(t *testing.T) {
	t.Run("CleanBoard", func(t *testing.T) {
		b := board.New()
		b.Set(0, 0, 1)
		b.Set(0, 1, 2)
		assert.Nil(t, b.Conflicts())
		assert.True(t, b.Consistent())
	})

	t.Run("RowDuplicate", func(t *testing.T) {
		b := board.New()
		b.Set(5, 2, 9)
		b.Set(5, 11, 9)
		conf := b.Conflicts()
		require.NotEmpty(t, conf)
		assert.Contains(t, conf, board.Cell{Row: 5, Col: 11})
		assert.False(t, b.Consistent())
	})

	t.Run("ColumnDuplicate", func(t *testing.T) {
		b := board.New()
		b.Set(1, 8, 3)
		b.Set(14, 8, 3)
		assert.NotEmpty(t, b.Conflicts())
	})

	t.Run("SubgridDuplicate", func(t *testing.T) {
		b := board.New()
		// Same 4×4 block, different row and column: only the subgrid scan
		// can catch this pair.
		b.Set(4, 4, 15)
		b.Set(7, 7, 15)
		assert.NotEmpty(t, b.Conflicts())
	})
}
