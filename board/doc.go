// Package board models a 16×16 hexadoku grid: 16 symbols ('0'–'9', 'A'–'F'),
// 4×4 subgrid blocks, and a distinguished Empty sentinel for unassigned cells.
//
// What:
//
//   - Symbol is a value 0..15 plus the out-of-alphabet Empty sentinel.
//   - Board wraps a fixed [16][16]Symbol array with single-cell Get/Set/Clear.
//   - Parse/String convert between Board and its canonical text form.
//   - Conflicts detects duplicate symbols per row, column, and subgrid.
//
// Why:
//
//   - Single source of truth for the solver: the search engine mutates one
//     cell at a time and never needs another mutation primitive.
//   - The Empty sentinel lives outside the alphabet, so it cannot leak into
//     candidate-set arithmetic.
//   - Fixed-size arrays make out-of-range access a fail-fast panic and keep
//     Clone/Equal trivially correct (value copy / value compare).
//
// Complexity:
//
//   - Get/Set/Clear/IsEmpty: O(1).
//   - Clone/Equal/EmptyCells/Conflicts/String/Parse: O(Size²).
//
// Errors:
//
//   - ErrBadDimension: text input is not 16 rows × 16 cells.
//   - ErrBadSymbol: a cell rune outside '0'–'9'/'A'–'F'/'_'.
package board
