// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/katalvlaran/lvtab/cell"
)

// Grid is the read-only view the renderer needs. *table.Table satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	At(row, col int) (cell.Cell, error)
}

// displayWidth counts terminal cells: wide and fullwidth runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}

// label returns the text drawn for c.
func label(c cell.Cell, o Options) string {
	if c.IsEmpty() {
		return o.placeholder
	}

	return c.String()
}

// ColumnWidths returns the display width of the widest label in each column.
func ColumnWidths(g Grid, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)
	_, widths, err := layout(g, o)

	return widths, err
}

// layout reads every cell once and returns the labels with column widths.
func layout(g Grid, o Options) ([][]string, []int, error) {
	rows, cols := g.Rows(), g.Cols()
	labels := make([][]string, rows)
	widths := make([]int, cols)
	for i := 0; i < rows; i++ {
		labels[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			c, err := g.At(i, j)
			if err != nil {
				return nil, nil, fmt.Errorf("render: %w", err)
			}
			s := label(c, o)
			labels[i][j] = s
			if w := displayWidth(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	return labels, widths, nil
}

// Write draws g to w.
func Write(w io.Writer, g Grid, opts ...Option) error {
	o := gatherOptions(opts...)
	labels, widths, err := layout(g, o)
	if err != nil {
		return err
	}

	total := 1
	for _, cw := range widths {
		total += cw + 3
	}
	rule := strings.Repeat(string(o.rule), total)

	bw := bufio.NewWriter(w)
	bw.WriteString(rule)
	bw.WriteByte('\n')
	for _, row := range labels {
		bw.WriteByte('|')
		for j, s := range row {
			pad := strings.Repeat(" ", widths[j]-displayWidth(s))
			bw.WriteByte(' ')
			if o.align == AlignRight {
				bw.WriteString(pad)
				bw.WriteString(s)
			} else {
				bw.WriteString(s)
				bw.WriteString(pad)
			}
			bw.WriteString(" |")
		}
		bw.WriteByte('\n')
		bw.WriteString(rule)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String draws g into a string; errors are rendered inline.
func String(g Grid, opts ...Option) string {
	var sb strings.Builder
	if err := Write(&sb, g, opts...); err != nil {
		return err.Error()
	}

	return sb.String()
}
