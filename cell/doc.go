// SPDX-License-Identifier: MIT

// Package cell defines the smallest addressable unit of a table: a tagged
// value holding exactly one of {Empty, Number, Text}.
//
// What:
//
//   - Cell is a closed variant dispatched by an explicit Kind tag.
//   - Reading the wrong variant fails with ErrTypeMismatch; no default is returned.
//   - Text cells never hold the empty string (ErrEmptyText).
//   - Parse infers a Cell from one field of delimited text.
//
// Why:
//
//   - Tables, aggregates, renderers and readers all share one data model, so the
//     variant rules live in one place.
//
// Complexity:
//
//   - Every operation is O(1) except String/Parse (O(len) formatting/parsing).
//
// Errors:
//
//   - ErrEmptyText: NewText/SetText called with "".
//   - ErrTypeMismatch: Number on a non-Number cell, Text on a non-Text cell.
package cell
