// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtab/cell"
)

// Operation selects the fold applied to a range.
type Operation int

const (
	// Sum adds every numeric cell.
	Sum Operation = iota
	// Product multiplies every numeric cell, starting from 1.
	Product
	// Mean divides the Sum by the number of numeric cells.
	Mean
)

// String returns the canonical operation name.
func (op Operation) String() string {
	switch op {
	case Sum:
		return "Sum"
	case Product:
		return "Prod"
	case Mean:
		return "Mean"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Valid reports whether op is one of Sum, Product, Mean.
func (op Operation) Valid() bool {
	return op == Sum || op == Product || op == Mean
}

// ParseOperation maps a case-insensitive name to an Operation.
// Accepted: "sum", "prod"/"product", "mean"/"avg"/"average".
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sum":
		return Sum, nil
	case "prod", "product":
		return Product, nil
	case "mean", "avg", "average":
		return Mean, nil
	}

	return 0, fmt.Errorf("aggregate: %q: %w", name, ErrInvalidOperation)
}

// Source is a rectangular grid of cells. *table.Table satisfies it.
type Source interface {
	Rows() int
	Cols() int
	At(row, col int) (cell.Cell, error)
}

// Coord is a zero-based (row, column) position.
type Coord struct {
	Row, Col int
}

// String renders c in A1 notation; (0,0) is "A1".
func (c Coord) String() string {
	if c.Row < 0 || c.Col < 0 {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}

	return columnName(c.Col) + fmt.Sprint(c.Row+1)
}

// Range is an inclusive rectangle between two corners.
// From is the top-left corner and To the bottom-right one.
type Range struct {
	From, To Coord
}

// NewRange builds the range (r0,c0)..(r1,c1). It does not validate.
func NewRange(r0, c0, r1, c1 int) Range {
	return Range{From: Coord{Row: r0, Col: c0}, To: Coord{Row: r1, Col: c1}}
}

// Single returns the 1×1 range covering c.
func Single(c Coord) Range {
	return Range{From: c, To: c}
}

// Rows returns the number of rows spanned, or 0 for an inverted range.
func (r Range) Rows() int { return span(r.From.Row, r.To.Row) }

// Cols returns the number of columns spanned, or 0 for an inverted range.
func (r Range) Cols() int { return span(r.From.Col, r.To.Col) }

// Len returns the number of cells in the range.
func (r Range) Len() int { return r.Rows() * r.Cols() }

// String renders r as "A1:B2".
func (r Range) String() string {
	return r.From.String() + ":" + r.To.String()
}

// Validate checks the range against a rows×cols grid:
// 0 ≤ From.Row ≤ To.Row < rows and 0 ≤ From.Col ≤ To.Col < cols.
func (r Range) Validate(rows, cols int) error {
	switch {
	case r.From.Row < 0 || r.From.Col < 0:
		return fmt.Errorf("aggregate: %s starts before the grid: %w", r, ErrInvalidRange)
	case r.From.Row > r.To.Row || r.From.Col > r.To.Col:
		return fmt.Errorf("aggregate: %s has corners out of order: %w", r, ErrInvalidRange)
	case r.To.Row >= rows || r.To.Col >= cols:
		return fmt.Errorf("aggregate: %s exceeds %dx%d: %w", r, rows, cols, ErrInvalidRange)
	}

	return nil
}

func span(from, to int) int {
	if to < from {
		return 0
	}

	return to - from + 1
}
