// SPDX-License-Identifier: MIT

package delimited

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/katalvlaran/lvtab/cell"
	"github.com/katalvlaran/lvtab/table"
)

// Read parses delimited text from r into a new Table.
// Implementation:
//   - Stage 1: decode r into UTF-8 (configured charset, or UTF-8 with optional BOM).
//   - Stage 2: split records with encoding/csv, one cell.Parse per field.
//   - Stage 3: reconcile ragged rows and build the Table.
func Read(r io.Reader, opts ...Option) (*table.Table, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Decode).
	enc, err := o.resolveEncoding()
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	} else {
		r = transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	}

	// Stage 2 (Split).
	cr := csv.NewReader(r)
	cr.Comma = o.delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]cell.Cell
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("delimited: %w: %w", ErrMalformed, err)
		}
		if err != nil {
			return nil, fmt.Errorf("delimited: read: %w", err)
		}
		row := make([]cell.Cell, len(rec))
		for j, field := range rec {
			row[j] = cell.Parse(field)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	// Stage 3 (Reconcile).
	rows, err = reconcile(rows, o.ragged)
	if err != nil {
		return nil, err
	}

	return table.FromRows(rows)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("delimited: %s: %w: %w", path, ErrFileOpen, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// ReadFS opens name within fsys and parses it with Read.
func ReadFS(fsys fs.FS, name string, opts ...Option) (*table.Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("delimited: %s: %w: %w", name, ErrFileOpen, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// reconcile makes rows rectangular according to policy.
func reconcile(rows [][]cell.Cell, policy Ragged) ([][]cell.Cell, error) {
	shortest, longest := len(rows[0]), len(rows[0])
	for _, row := range rows[1:] {
		shortest = min(shortest, len(row))
		longest = max(longest, len(row))
	}
	if shortest == longest {
		return rows, nil
	}

	switch policy {
	case RaggedTrim:
		for i := range rows {
			rows[i] = rows[i][:shortest]
		}
	case RaggedReject:
		return nil, fmt.Errorf("delimited: rows have %d to %d fields: %w",
			shortest, longest, table.ErrNonRectangular)
	default:
		for i, row := range rows {
			if len(row) < longest {
				rows[i] = append(row, make([]cell.Cell, longest-len(row))...)
			}
		}
	}

	return rows, nil
}
