// SPDX-License-Identifier: MIT

package cell

// Kind tags the active variant of a Cell.
type Kind uint8

const (
	// Empty cells carry no payload. It is the zero Kind.
	Empty Kind = iota
	// Number cells carry a float64 (NaN and ±Inf included).
	Number
	// Text cells carry a non-empty string.
	Text
)

// Placeholder is the display form of an Empty cell.
const Placeholder = "None"

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Number:
		return "Number"
	case Text:
		return "Text"
	default:
		return "Kind(?)"
	}
}

// Cell is a value type; copying a Cell copies its payload.
// The zero value is an Empty cell.
type Cell struct {
	kind Kind
	num  float64 // valid iff kind == Number
	text string  // valid iff kind == Text
}
