// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Every failure a Table method can report maps to one sentinel below or to a
// cell/aggregate sentinel passed through unchanged. Callers match with
// errors.Is. Public methods never panic on user input.

package table

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Messages start with "table: ". Coordinate-checked methods add their name and
// the offending (row,col) through tableErrorf, e.g. "Table.At(5,0): table:
// index out of range".
//
// ERROR PRIORITY (enforced in tests):
// coordinates -> cell rules (ErrEmptyText) for setters;
// nil operand -> row count for Concat/ConcatInPlace;
// range -> operation name -> empty range for CalculateOperation.

var (
	// ErrBadShape indicates non-positive dimensions or a cell count that does
	// not fit in an int. Checked before any allocation.
	ErrBadShape = errors.New("table: rows and columns must be > 0")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("table: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside the table.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrRowMismatch indicates concatenation of tables with different row counts.
	ErrRowMismatch = errors.New("table: row counts differ")

	// ErrNilTable indicates a nil *Table operand.
	ErrNilTable = errors.New("table: nil table")
)

// tableErrorf wraps err with the method name and coordinates.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}
