// SPDX-License-Identifier: MIT

package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText indicates an attempt to store "" in a Text cell.
	ErrEmptyText = errors.New("cell: text must not be empty")

	// ErrTypeMismatch indicates a read of a variant that is not active.
	ErrTypeMismatch = errors.New("cell: type mismatch")
)

// mismatchf reports which variant was requested and which one is active.
func mismatchf(want, got Kind) error {
	return fmt.Errorf("cell: want %s, have %s: %w", want, got, ErrTypeMismatch)
}
