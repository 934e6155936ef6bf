// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"
	"strings"
)

const opParseFormula = "ParseFormula"

// Formula is a formula-cell view: an operation over a range of some Source.
// It stores coordinates only; the cells stay owned by the Source and are
// read once per Eval.
type Formula struct {
	rng Range
	op  Operation
}

// NewFormula returns a formula applying op to rng.
func NewFormula(rng Range, op Operation) Formula {
	return Formula{rng: rng, op: op}
}

// DefaultFormula returns Sum over A1:A1.
func DefaultFormula() Formula {
	return Formula{rng: Single(Coord{}), op: Sum}
}

// ParseFormula parses text such as "=SUM(A1:B2)" or "mean(B2:B4)".
// The leading "=" is optional; operation names follow ParseOperation.
func ParseFormula(text string) (Formula, error) {
	s := strings.TrimPrefix(strings.TrimSpace(text), "=")
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return Formula{}, aggErrorf(opParseFormula, fmt.Errorf("%q: %w", text, ErrBadReference))
	}
	op, err := ParseOperation(s[:open])
	if err != nil {
		return Formula{}, aggErrorf(opParseFormula, err)
	}
	rng, err := ParseRange(s[open+1 : len(s)-1])
	if err != nil {
		return Formula{}, aggErrorf(opParseFormula, err)
	}

	return Formula{rng: rng, op: op}, nil
}

// Range returns the referenced range.
func (f Formula) Range() Range { return f.rng }

// Operation returns the fold applied by Eval.
func (f Formula) Operation() Operation { return f.op }

// SetOperation changes the fold. An unknown op leaves f unchanged.
func (f *Formula) SetOperation(op Operation) error {
	if !op.Valid() {
		return fmt.Errorf("aggregate: %s: %w", op, ErrInvalidOperation)
	}
	f.op = op

	return nil
}

// SetRange points the formula at another range. Validity is checked by Eval.
func (f *Formula) SetRange(rng Range) {
	f.rng = rng
}

// Eval computes the formula against src.
func (f Formula) Eval(src Source, opts ...Option) (float64, error) {
	return Compute(src, f.op, f.rng, opts...)
}

// String renders f as "=SUM(A1:B2)".
func (f Formula) String() string {
	return "=" + strings.ToUpper(f.op.String()) + "(" + f.rng.String() + ")"
}
