// SPDX-License-Identifier: MIT

// Package aggregate folds a rectangular range of cells into one float64.
//
// What:
//
//   - Operation: Sum, Product or Mean.
//   - Coord / Range: inclusive rectangular sub-grids, with A1 notation ("B2:C4").
//   - Compute / Accumulate: a single row-major traversal that keeps Number cells
//     and skips Empty and Text cells.
//   - Formula: a formula-cell view (operation + range) evaluated against any Source.
//
// Empty-range policy:
//
//   - Strict (default): a range without numeric cells fails every operation with
//     ErrEmptyAggregate.
//   - Permissive: Sum yields 0, Product yields 1, Mean still fails with
//     ErrEmptyAggregate since it would divide by zero.
//
// Determinism:
//
//   - Traversal order is fixed (rows top to bottom, columns left to right), so
//     floating-point results are reproducible bit for bit.
//
// Complexity:
//
//   - Compute/Accumulate: O(R×C) time for an R×C range, O(1) memory.
//
// Errors:
//
//   - ErrInvalidRange: corners out of order or outside the source bounds.
//   - ErrInvalidOperation: unknown Operation value or name.
//   - ErrEmptyAggregate: no numeric cells under the active policy.
//   - ErrNonNumeric: a non-Number cell met under WithRejectNonNumeric.
//   - ErrBadReference: malformed A1 reference or formula text.
//   - ErrNilSource: nil Source passed in.
package aggregate
