package board

import "strings"

// New returns a board with every cell Empty.
func New() *Board {
	b := &Board{}
	var r, c int
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			b.cells[r][c] = Empty
		}
	}

	return b
}

// Get returns the symbol at (r, c), or Empty for an unassigned cell.
func (b *Board) Get(r, c int) Symbol { return b.cells[r][c] }

// Set assigns s to the cell at (r, c). It does not check s against the
// row/column/subgrid constraints; that is the caller's contract.
func (b *Board) Set(r, c int, s Symbol) { b.cells[r][c] = s }

// Clear resets the cell at (r, c) to Empty.
func (b *Board) Clear(r, c int) { b.cells[r][c] = Empty }

// IsEmpty reports whether the cell at (r, c) is unassigned.
func (b *Board) IsEmpty(r, c int) bool { return b.cells[r][c] == Empty }

// EmptyCells counts unassigned cells.
//
// Complexity: O(Size²).
func (b *Board) EmptyCells() int {
	var n, r, c int
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			if b.cells[r][c] == Empty {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep copy sharing no storage with b.
func (b *Board) Clone() *Board {
	cp := *b

	return &cp
}

// Equal reports whether b and other hold identical cells.
// A nil other is never equal.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}

	return b.cells == other.cells
}

// Conflicts scans every row, column, and subgrid for duplicate symbols and
// returns the offending cells (the second and later occurrences of each
// duplicated symbol per unit). Empty cells never conflict. A nil result means
// the assignment is mutually consistent.
//
// Complexity: O(Size²) time, O(1) extra space (one 16-bit mask per unit).
func (b *Board) Conflicts() []Cell {
	var (
		conf   []Cell
		seen   uint16 // occupancy mask for the unit under scan
		bit    uint16
		r, c   int
		br, bc int // subgrid origin
		dr, dc int // offsets within a subgrid
		s      Symbol
	)

	// Rows.
	for r = 0; r < Size; r++ {
		seen = 0
		for c = 0; c < Size; c++ {
			s = b.cells[r][c]
			if s == Empty {
				continue
			}
			bit = 1 << s
			if seen&bit != 0 {
				conf = append(conf, Cell{Row: r, Col: c})
			}
			seen |= bit
		}
	}

	// Columns.
	for c = 0; c < Size; c++ {
		seen = 0
		for r = 0; r < Size; r++ {
			s = b.cells[r][c]
			if s == Empty {
				continue
			}
			bit = 1 << s
			if seen&bit != 0 {
				conf = append(conf, Cell{Row: r, Col: c})
			}
			seen |= bit
		}
	}

	// Subgrids.
	for br = 0; br < Size; br += Subgrid {
		for bc = 0; bc < Size; bc += Subgrid {
			seen = 0
			for dr = 0; dr < Subgrid; dr++ {
				for dc = 0; dc < Subgrid; dc++ {
					s = b.cells[br+dr][bc+dc]
					if s == Empty {
						continue
					}
					bit = 1 << s
					if seen&bit != 0 {
						conf = append(conf, Cell{Row: br + dr, Col: bc + dc})
					}
					seen |= bit
				}
			}
		}
	}

	return conf
}

// Consistent reports whether the current assignment has no duplicate symbol
// in any row, column, or subgrid.
func (b *Board) Consistent() bool { return len(b.Conflicts()) == 0 }

// String renders the board in the canonical text form: one glyph per cell,
// space-separated, with '|' between subgrid columns and a dashed rule between
// subgrid rows.
func (b *Board) String() string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < Size; r++ {
		if r%Subgrid == 0 && r != 0 {
			// Rule width = rendered row width: 2 per cell + 2 per block separator.
			sb.WriteString(strings.Repeat("-", 2*Size+2*(Size/Subgrid-1)))
			sb.WriteByte('\n')
		}
		for c = 0; c < Size; c++ {
			if c%Subgrid == 0 && c != 0 {
				sb.WriteString("| ")
			}
			sb.WriteRune(b.cells[r][c].Rune())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
