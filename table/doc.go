// SPDX-License-Identifier: MIT

// Package table provides Table, a fixed-shape rows×columns grid of typed cells
// with coordinate-checked accessors and range aggregation.
//
// What:
//
//   - Every (row, col) slot is populated; new tables start with Empty cells.
//   - Storage is a flat row-major slice, so Clone is a single copy and tables
//     have value semantics: no cell is shared between two tables.
//   - Sum, Product and Mean fail on ranges without numeric cells; the named
//     CalculateOperation entry point uses the permissive policy instead (see
//     package aggregate).
//   - Concat / ConcatInPlace join tables side by side; Equal compares cell by cell.
//
// Concurrency:
//
//   - A Table has no locks. Concurrent readers are fine only while nobody
//     mutates it; any synchronization is up to the caller.
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions or empty row data.
//   - ErrNonRectangular: FromRows input with rows of differing lengths.
//   - ErrOutOfRange: coordinates outside the table.
//   - ErrRowMismatch: concatenation of tables with differing row counts.
//   - ErrNilTable: nil *Table operand.
//   - cell.ErrEmptyText and aggregate errors pass through unchanged (errors.Is).
package table
