package board

import "strings"

// Parse builds a board from 16 rows of text. Each row holds exactly 16 cells,
// either as whitespace-separated fields ("_ 6 8 _ …") or as 16 bare runes
// ("_68_…"). A cell is a hex glyph '0'–'9'/'A'–'F' (lowercase accepted) or
// EmptyRune for a blank.
//
// Errors:
//   - ErrBadDimension — wrong row count or a row with the wrong cell count.
//   - ErrBadSymbol    — a cell rune outside the alphabet.
//
// Parse validates shape and alphabet only; it does not check the givens for
// row/column/subgrid conflicts (see Conflicts).
func Parse(rows []string) (*Board, error) {
	if len(rows) != Size {
		return nil, ErrBadDimension
	}

	b := New()
	var (
		r, c  int
		cells []string
		s     Symbol
		err   error
	)
	for r = 0; r < Size; r++ {
		cells = splitRow(rows[r])
		if len(cells) != Size {
			return nil, ErrBadDimension
		}
		for c = 0; c < Size; c++ {
			// A multi-rune field like "AB" is a shape defect, not a symbol defect.
			if len(cells[c]) != 1 {
				return nil, ErrBadDimension
			}
			s, err = ParseSymbol(rune(cells[c][0]))
			if err != nil {
				return nil, err
			}
			b.cells[r][c] = s
		}
	}

	return b, nil
}

// splitRow tokenizes one input row: whitespace-separated fields when any
// whitespace is present, otherwise one cell per rune.
func splitRow(row string) []string {
	if strings.ContainsAny(row, " \t") {
		return strings.Fields(row)
	}
	cells := make([]string, 0, Size)
	for _, r := range row {
		cells = append(cells, string(r))
	}

	return cells
}
