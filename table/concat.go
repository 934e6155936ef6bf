// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/lvtab/cell"
)

// Equal reports whether t and o have the same shape and every pair of
// corresponding cells is cell.Equal. Two nil tables are equal.
// Complexity: O(rows*cols), stops at the first difference.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.r != o.r || t.c != o.c {
		return false
	}
	for i := range t.cells {
		if !t.cells[i].Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Concat returns a new Table with o's columns appended to t's.
// Column j < t.Cols() comes from t, column j ≥ t.Cols() from o at j-t.Cols().
// Returns ErrRowMismatch unless both tables have the same row count.
// Complexity: O(rows*(t.Cols()+o.Cols())).
func (t *Table) Concat(o *Table) (*Table, error) {
	if o == nil {
		return nil, fmt.Errorf("table: Concat: %w", ErrNilTable)
	}
	if t.r != o.r {
		return nil, fmt.Errorf("table: Concat: %d rows vs %d: %w", t.r, o.r, ErrRowMismatch)
	}

	return &Table{r: t.r, c: t.c + o.c, cells: joinColumns(t, o)}, nil
}

// ConcatInPlace appends o's columns to t. t.ConcatInPlace(t) doubles t's
// columns. On ErrRowMismatch t is unchanged. Handles returned by Cell before
// the call no longer refer to t's storage.
// Complexity: O(rows*(t.Cols()+o.Cols())) time, one new backing slice.
func (t *Table) ConcatInPlace(o *Table) error {
	if o == nil {
		return fmt.Errorf("table: ConcatInPlace: %w", ErrNilTable)
	}
	if t.r != o.r {
		return fmt.Errorf("table: ConcatInPlace: %d rows vs %d: %w", t.r, o.r, ErrRowMismatch)
	}
	// joinColumns reads both operands before t is touched, so o == t is safe.
	t.cells = joinColumns(t, o)
	t.c += o.c

	return nil
}

// joinColumns builds the row-major storage of [a | b]. Rows must match.
func joinColumns(a, b *Table) []cell.Cell {
	width := a.c + b.c
	out := make([]cell.Cell, 0, a.r*width)
	for i := 0; i < a.r; i++ {
		out = append(out, a.cells[i*a.c:(i+1)*a.c]...)
		out = append(out, b.cells[i*b.c:(i+1)*b.c]...)
	}

	return out
}
