// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"

	"github.com/katalvlaran/lvtab/cell"
)

// Operation name constants for error wrapping.
const (
	opAccumulate = "Accumulate"
	opCompute    = "Compute"
)

// Accumulator is the result of one pass over a range.
type Accumulator struct {
	Sum     float64 // running total of numeric cells
	Product float64 // running product of numeric cells, seeded at 1
	Count   int     // numeric cells folded
	Skipped int     // Empty and Text cells passed over
}

// Result applies op to the accumulated values under the given policy.
func (a Accumulator) Result(op Operation, policy EmptyPolicy) (float64, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidOperation)
	}
	if a.Count == 0 && (policy == Strict || op == Mean) {
		return 0, fmt.Errorf("%s: %w", op, ErrEmptyAggregate)
	}

	switch op {
	case Sum:
		return a.Sum, nil
	case Product:
		return a.Product, nil
	default:
		return a.Sum / float64(a.Count), nil
	}
}

// Accumulate folds every numeric cell of rng in row-major order.
// Implementation:
//   - Stage 1: validate src and rng against the source bounds.
//   - Stage 2: walk rows top to bottom, columns left to right.
//   - Stage 3: keep Number cells; skip the rest or fail under WithRejectNonNumeric.
//
// Errors: ErrNilSource, ErrInvalidRange, ErrNonNumeric, or a wrapped At error.
// Complexity: O(rng.Len()) time, O(1) space.
func Accumulate(src Source, rng Range, opts ...Option) (Accumulator, error) {
	o := gatherOptions(opts...)

	return accumulate(src, rng, o)
}

func accumulate(src Source, rng Range, o Options) (Accumulator, error) {
	acc := Accumulator{Product: 1.0}

	// Stage 1 (Validate).
	if src == nil {
		return acc, aggErrorf(opAccumulate, ErrNilSource)
	}
	if err := rng.Validate(src.Rows(), src.Cols()); err != nil {
		return acc, aggErrorf(opAccumulate, err)
	}

	// Stage 2 (Execute): fixed i→j order keeps float results reproducible.
	var (
		i, j int
		c    cell.Cell
		v    float64
		err  error
	)
	for i = rng.From.Row; i <= rng.To.Row; i++ {
		for j = rng.From.Col; j <= rng.To.Col; j++ {
			if c, err = src.At(i, j); err != nil {
				return acc, aggErrorf(opAccumulate, err)
			}
			// Stage 3 (Filter).
			if !c.IsNumber() {
				if o.rejectNonNum {
					return acc, aggErrorf(opAccumulate,
						fmt.Errorf("%s is %s: %w", Coord{Row: i, Col: j}, c.Kind(), ErrNonNumeric))
				}
				acc.Skipped++
				continue
			}
			v, _ = c.Number()
			acc.Sum += v
			acc.Product *= v
			acc.Count++
		}
	}

	return acc, nil
}

// Compute applies op to the numeric cells of rng.
// Range validity is checked before the operation tag.
//
// Errors: ErrNilSource, ErrInvalidRange, ErrInvalidOperation, ErrEmptyAggregate,
// ErrNonNumeric.
func Compute(src Source, op Operation, rng Range, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	if src == nil {
		return 0, aggErrorf(opCompute, ErrNilSource)
	}
	if err := rng.Validate(src.Rows(), src.Cols()); err != nil {
		return 0, aggErrorf(opCompute, err)
	}
	if !op.Valid() {
		return 0, aggErrorf(opCompute, fmt.Errorf("%s: %w", op, ErrInvalidOperation))
	}

	acc, err := accumulate(src, rng, o)
	if err != nil {
		return 0, err
	}
	v, err := acc.Result(op, o.empty)
	if err != nil {
		return 0, aggErrorf(opCompute, err)
	}

	return v, nil
}
