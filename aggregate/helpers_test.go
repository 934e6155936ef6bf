// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtab/cell"
)

// grid is a minimal row-major Source for tests.
// Values: float64 → Number, string → Text (or Empty for ""), nil → Empty.
type grid struct {
	rows, cols int
	cells      []cell.Cell
	reads      int
}

func newGrid(t *testing.T, rows [][]any) *grid {
	t.Helper()
	g := &grid{rows: len(rows), cols: len(rows[0])}
	for _, row := range rows {
		if len(row) != g.cols {
			t.Fatalf("ragged fixture row %v", row)
		}
		for _, v := range row {
			switch x := v.(type) {
			case nil:
				g.cells = append(g.cells, cell.NewEmpty())
			case float64:
				g.cells = append(g.cells, cell.NewNumber(x))
			case int:
				g.cells = append(g.cells, cell.NewNumber(float64(x)))
			case string:
				g.cells = append(g.cells, cell.Parse(x))
			default:
				t.Fatalf("unsupported fixture value %T", v)
			}
		}
	}

	return g
}

func (g *grid) Rows() int { return g.rows }
func (g *grid) Cols() int { return g.cols }

func (g *grid) At(r, c int) (cell.Cell, error) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return cell.Cell{}, fmt.Errorf("grid: (%d,%d) out of range", r, c)
	}
	g.reads++

	return g.cells[r*g.cols+c], nil
}
