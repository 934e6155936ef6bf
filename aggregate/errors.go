// SPDX-License-Identifier: MIT
// Package aggregate: sentinel error set.
// All folds, reference parsers and formulas return these sentinels, wrapped
// with the operation tag by aggErrorf. Tests check them via errors.Is.

package aggregate

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// Sentinel texts carry the "aggregate: " prefix. Context is added by
// aggErrorf as "<Op>: <err>", so the final message reads
// "Compute: Mean: aggregate: ...". Match with errors.Is, never on text.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil source -> range bounds -> operation tag -> non-numeric cell (reject
// policy only) -> empty range.
//
// The tag is added once at the exported entry point: "Compute: Sum:
// aggregate: no numeric cells in range".

var (
	// ErrInvalidRange indicates a malformed range or one that leaves the source bounds.
	ErrInvalidRange = errors.New("aggregate: invalid range")

	// ErrInvalidOperation indicates an unrecognized operation tag or name.
	ErrInvalidOperation = errors.New("aggregate: invalid operation")

	// ErrEmptyAggregate indicates that the range holds no numeric cells.
	ErrEmptyAggregate = errors.New("aggregate: no numeric cells in range")

	// ErrNonNumeric indicates a non-numeric cell under the reject policy.
	ErrNonNumeric = errors.New("aggregate: non-numeric cell in range")

	// ErrBadReference indicates malformed A1 notation or formula text.
	ErrBadReference = errors.New("aggregate: bad cell reference")

	// ErrNilSource indicates a nil Source.
	ErrNilSource = errors.New("aggregate: nil source")
)

// aggErrorf prefixes err with the operation tag.
func aggErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
