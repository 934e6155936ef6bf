// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtab/cell"
)

// Table is a rows×cols grid of cells stored row-major.
type Table struct {
	r, c  int         // number of rows and columns, both ≥ 1
	cells []cell.Cell // flat backing storage, length == r*c
}

// validShape reports whether rows×cols cells fit in one slice.
func validShape(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= math.MaxInt/cols
}

// New creates a rows×cols Table of Empty cells.
// Returns ErrBadShape unless rows ≥ 1, cols ≥ 1 and rows*cols fits in an int.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Table, error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("table: New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Table{r: rows, c: cols, cells: make([]cell.Cell, rows*cols)}, nil
}

// Default returns a 1×1 Table holding a single Empty cell.
func Default() *Table {
	return &Table{r: 1, c: 1, cells: make([]cell.Cell, 1)}
}

// FromRows builds a Table from row slices, copying every cell.
// Returns ErrBadShape for no rows or zero-length rows and
// ErrNonRectangular when rows differ in length.
func FromRows(rows [][]cell.Cell) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("table: FromRows: %w", ErrBadShape)
	}
	t := &Table{r: len(rows), c: len(rows[0])}
	if !validShape(t.r, t.c) {
		return nil, fmt.Errorf("table: FromRows(%d,%d): %w", t.r, t.c, ErrBadShape)
	}
	t.cells = make([]cell.Cell, 0, t.r*t.c)
	for i, row := range rows {
		if len(row) != t.c {
			return nil, fmt.Errorf("table: FromRows: row %d has %d cells, want %d: %w",
				i, len(row), t.c, ErrNonRectangular)
		}
		t.cells = append(t.cells, row...)
	}

	return t, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (t *Table) Rows() int { return t.r }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.c }

// Size returns (rows, columns).
// Complexity: O(1).
func (t *Table) Size() (rows, cols int) { return t.r, t.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (t *Table) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, tableErrorf(method, row, col, ErrOutOfRange)
	}

	return row*t.c + col, nil
}

// At returns a copy of the cell at (row, col).
// Returns ErrOutOfRange outside the table; never panics.
// Complexity: O(1).
func (t *Table) At(row, col int) (cell.Cell, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		return cell.Cell{}, err
	}

	return t.cells[idx], nil
}

// Cell returns a read-write handle to the cell at (row, col).
// The pointer stays valid until the next ConcatInPlace on t.
// Complexity: O(1).
func (t *Table) Cell(row, col int) (*cell.Cell, error) {
	idx, err := t.indexOf("Cell", row, col)
	if err != nil {
		return nil, err
	}

	return &t.cells[idx], nil
}

// Set stores a copy of v at (row, col).
// Complexity: O(1).
func (t *Table) Set(row, col int, v cell.Cell) error {
	idx, err := t.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	t.cells[idx] = v

	return nil
}

// SetNumber stores a Number cell at (row, col).
func (t *Table) SetNumber(row, col int, v float64) error {
	idx, err := t.indexOf("SetNumber", row, col)
	if err != nil {
		return err
	}
	t.cells[idx].SetNumber(v)

	return nil
}

// SetText stores a Text cell at (row, col).
// Coordinates are checked first; "" then fails with cell.ErrEmptyText and
// leaves the cell untouched.
// Implementation:
//   - Stage 1: bounds check (ErrOutOfRange).
//   - Stage 2: cell.SetText, which refuses "" before mutating.
//
// Complexity: O(1).
func (t *Table) SetText(row, col int, s string) error {
	idx, err := t.indexOf("SetText", row, col)
	if err != nil {
		return err
	}
	if err = t.cells[idx].SetText(s); err != nil {
		return tableErrorf("SetText", row, col, err)
	}

	return nil
}

// ClearCell resets the cell at (row, col) to Empty.
func (t *Table) ClearCell(row, col int) error {
	idx, err := t.indexOf("ClearCell", row, col)
	if err != nil {
		return err
	}
	t.cells[idx].Clear()

	return nil
}

// Row returns a copy of row r.
// Complexity: O(cols).
func (t *Table) Row(r int) ([]cell.Cell, error) {
	if r < 0 || r >= t.r {
		return nil, tableErrorf("Row", r, 0, ErrOutOfRange)
	}
	out := make([]cell.Cell, t.c)
	copy(out, t.cells[r*t.c:(r+1)*t.c])

	return out, nil
}

// Header returns the display form of row 0, one name per column
// (cell.Placeholder for Empty cells).
// Complexity: O(cols).
func (t *Table) Header() []string {
	names := make([]string, t.c)
	for j := 0; j < t.c; j++ {
		names[j] = t.cells[j].String()
	}

	return names
}

// Clone returns a deep copy of t.
// Complexity: O(rows*cols).
func (t *Table) Clone() *Table {
	cp := make([]cell.Cell, len(t.cells))
	copy(cp, t.cells)

	return &Table{r: t.r, c: t.c, cells: cp}
}

// String renders the table compactly for debugging, one bracketed row per line.
func (t *Table) String() string {
	var s string
	var i, j int
	for i = 0; i < t.r; i++ {
		s += "["
		for j = 0; j < t.c; j++ {
			s += t.cells[i*t.c+j].String()
			if j < t.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
