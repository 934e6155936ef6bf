// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"
	"strconv"
	"strings"
)

const opParseCoord = "ParseCoord"

// maxColumnLetters bounds the letter part of a reference ("XFD" is the
// widest column in common spreadsheets; we allow one more letter).
const maxColumnLetters = 4

// columnName converts a zero-based column index to letters: 0→A, 25→Z, 26→AA.
func columnName(col int) string {
	var buf [16]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}

	return string(buf[i:])
}

// ParseCoord parses an A1-style reference such as "B3" (case-insensitive,
// optional "$" anchors) into a zero-based Coord.
func ParseCoord(ref string) (Coord, error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), "$", ""))

	// Stage 1: column letters.
	col, i := 0, 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A'+1)
		i++
	}
	if i == 0 || i > maxColumnLetters {
		return Coord{}, aggErrorf(opParseCoord, fmt.Errorf("%q: %w", ref, ErrBadReference))
	}

	// Stage 2: one-based row digits.
	digits := s[i:]
	if digits == "" || digits[0] < '1' || digits[0] > '9' {
		return Coord{}, aggErrorf(opParseCoord, fmt.Errorf("%q: %w", ref, ErrBadReference))
	}
	row, err := strconv.Atoi(digits)
	if err != nil {
		return Coord{}, aggErrorf(opParseCoord, fmt.Errorf("%q: %w", ref, ErrBadReference))
	}

	return Coord{Row: row - 1, Col: col - 1}, nil
}

// ParseRange parses "A1:C4" into a Range. A single reference such as "B2"
// yields a 1×1 range. Corner order is not checked here; see Range.Validate.
func ParseRange(ref string) (Range, error) {
	from, to, found := strings.Cut(ref, ":")
	a, err := ParseCoord(from)
	if err != nil {
		return Range{}, err
	}
	if !found {
		return Single(a), nil
	}
	b, err := ParseCoord(to)
	if err != nil {
		return Range{}, err
	}

	return Range{From: a, To: b}, nil
}
