// SPDX-License-Identifier: MIT

package delimited

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/transform"

	"github.com/katalvlaran/lvtab/cell"
)

// Grid is the read-only view Write needs. *table.Table satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	At(row, col int) (cell.Cell, error)
}

// field returns the text written for c: "" for Empty.
func field(c cell.Cell) string {
	if c.IsEmpty() {
		return ""
	}

	return c.String()
}

// Write emits g as delimited text, one line per row, in the configured
// charset. Text that reads back as a number (e.g. "12") comes back as a
// Number cell; every other cell round-trips through Read unchanged.
func Write(w io.Writer, g Grid, opts ...Option) (err error) {
	o := gatherOptions(opts...)
	enc, err := o.resolveEncoding()
	if err != nil {
		return err
	}
	if enc != nil {
		tw := transform.NewWriter(w, enc.NewEncoder())
		defer func() {
			if cerr := tw.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("delimited: %w", cerr)
			}
		}()
		w = tw
	}

	cw := csv.NewWriter(w)
	cw.Comma = o.delim
	rec := make([]string, g.Cols())
	for i := 0; i < g.Rows(); i++ {
		for j := range rec {
			c, err := g.At(i, j)
			if err != nil {
				return fmt.Errorf("delimited: %w", err)
			}
			rec[j] = field(c)
		}
		if len(rec) == 1 && rec[0] == "" {
			// csv.Writer emits a blank line here, which readers skip.
			cw.Flush()
			if err = cw.Error(); err == nil {
				_, err = io.WriteString(w, "\"\"\n")
			}
		} else {
			err = cw.Write(rec)
		}
		if err != nil {
			return fmt.Errorf("delimited: %w", err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("delimited: %w", err)
	}

	return nil
}
