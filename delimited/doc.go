// SPDX-License-Identifier: MIT

// Package delimited reads tables from delimited text and writes them back.
//
// What:
//
//   - Each line is split on a single-rune delimiter (default ','); quoted
//     fields follow encoding/csv rules, with lazy quotes allowed.
//   - Each field becomes a cell via cell.Parse: "" is Empty, a full float is
//     a Number, anything else is Text.
//   - Input may be in any charset golang.org/x/text knows (WithCharset,
//     WithEncoding); UTF-8 input may start with a byte order mark.
//   - Rows of differing lengths are reconciled by the Ragged policy: pad with
//     Empty cells (default), trim to the shortest row, or reject.
//
// Errors:
//
//   - ErrFileOpen: the file could not be opened (the OS error is joined).
//   - ErrNoRows: the input holds no records.
//   - ErrMalformed: the text could not be split into records.
//   - ErrUnknownCharset: WithCharset named an encoding x/text does not know.
//   - table.ErrNonRectangular: ragged rows under RaggedReject.
package delimited
