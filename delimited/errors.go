// SPDX-License-Identifier: MIT

package delimited

import "errors"

var (
	// ErrFileOpen indicates the input file could not be opened.
	ErrFileOpen = errors.New("delimited: cannot open file")

	// ErrNoRows indicates input without a single record.
	ErrNoRows = errors.New("delimited: no rows in input")

	// ErrMalformed indicates text that could not be split into records.
	ErrMalformed = errors.New("delimited: malformed input")

	// ErrUnknownCharset indicates an unsupported charset name.
	ErrUnknownCharset = errors.New("delimited: unknown charset")
)
