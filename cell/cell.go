// SPDX-License-Identifier: MIT

package cell

import (
	"strconv"
	"strings"
)

// NewEmpty returns an Empty cell.
func NewEmpty() Cell {
	return Cell{}
}

// NewNumber returns a Number cell holding v. No range restriction applies.
func NewNumber(v float64) Cell {
	return Cell{kind: Number, num: v}
}

// NewText returns a Text cell holding s, or ErrEmptyText if s is "".
func NewText(s string) (Cell, error) {
	if s == "" {
		return Cell{}, ErrEmptyText
	}

	return Cell{kind: Text, text: s}, nil
}

// Kind returns the active variant.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether c is Empty.
func (c Cell) IsEmpty() bool { return c.kind == Empty }

// IsNumber reports whether c is a Number.
func (c Cell) IsNumber() bool { return c.kind == Number }

// IsText reports whether c is Text.
func (c Cell) IsText() bool { return c.kind == Text }

// Number returns the numeric payload.
// Fails with ErrTypeMismatch unless c is a Number.
func (c Cell) Number() (float64, error) {
	if c.kind != Number {
		return 0, mismatchf(Number, c.kind)
	}

	return c.num, nil
}

// Text returns the textual payload.
// Fails with ErrTypeMismatch unless c is Text.
func (c Cell) Text() (string, error) {
	if c.kind != Text {
		return "", mismatchf(Text, c.kind)
	}

	return c.text, nil
}

// SetNumber switches c to the Number variant holding v.
func (c *Cell) SetNumber(v float64) {
	*c = Cell{kind: Number, num: v}
}

// SetText switches c to the Text variant holding s.
// On ErrEmptyText the cell keeps its previous state.
func (c *Cell) SetText(s string) error {
	if s == "" {
		return ErrEmptyText
	}
	*c = Cell{kind: Text, text: s}

	return nil
}

// Clear resets c to Empty and drops any payload. Idempotent.
func (c *Cell) Clear() {
	*c = Cell{}
}

// Equal reports whether c and o hold the same variant and payload.
// Numbers compare with ==, so NaN never equals NaN.
func (c Cell) Equal(o Cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case Number:
		return c.num == o.num
	case Text:
		return c.text == o.text
	default:
		return true
	}
}

// String returns the display form: Placeholder for Empty, FormatNumber for
// numbers and the raw text otherwise.
func (c Cell) String() string {
	switch c.kind {
	case Number:
		return FormatNumber(c.num)
	case Text:
		return c.text
	default:
		return Placeholder
	}
}

// FormatNumber renders v in the shortest form that parses back to v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Parse infers a cell from one field of delimited text:
// "" becomes Empty, a field that parses entirely as a float64 (surrounding
// spaces ignored) becomes a Number, anything else becomes Text verbatim.
func Parse(field string) Cell {
	if field == "" {
		return Cell{}
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
		return Cell{kind: Number, num: v}
	}

	return Cell{kind: Text, text: field}
}
