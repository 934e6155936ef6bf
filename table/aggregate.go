// SPDX-License-Identifier: MIT

package table

import (
	"github.com/katalvlaran/lvtab/aggregate"
)

// Aggregate applies op to the numeric cells of rng. Empty and Text cells are
// skipped. Without options the strict empty-range policy applies.
func (t *Table) Aggregate(op aggregate.Operation, rng aggregate.Range, opts ...aggregate.Option) (float64, error) {
	return aggregate.Compute(t, op, rng, opts...)
}

// Sum adds the numeric cells of rng. Fails with aggregate.ErrEmptyAggregate
// when rng holds none.
func (t *Table) Sum(rng aggregate.Range) (float64, error) {
	return aggregate.Compute(t, aggregate.Sum, rng, aggregate.WithStrict())
}

// Product multiplies the numeric cells of rng. Fails with
// aggregate.ErrEmptyAggregate when rng holds none.
func (t *Table) Product(rng aggregate.Range) (float64, error) {
	return aggregate.Compute(t, aggregate.Product, rng, aggregate.WithStrict())
}

// Mean averages the numeric cells of rng over their own count. Fails with
// aggregate.ErrEmptyAggregate when rng holds none.
func (t *Table) Mean(rng aggregate.Range) (float64, error) {
	return aggregate.Compute(t, aggregate.Mean, rng, aggregate.WithStrict())
}

// CalculateOperation resolves name with aggregate.ParseOperation and folds rng
// under the permissive policy: a range without numbers gives 0 for Sum and 1
// for Product, while Mean still fails. The range is validated before the name.
func (t *Table) CalculateOperation(name string, rng aggregate.Range) (float64, error) {
	if err := rng.Validate(t.r, t.c); err != nil {
		return 0, err
	}
	op, err := aggregate.ParseOperation(name)
	if err != nil {
		return 0, err
	}

	return aggregate.Compute(t, op, rng, aggregate.WithPermissive())
}

// EvalFormula evaluates a formula-cell view against t.
func (t *Table) EvalFormula(f aggregate.Formula, opts ...aggregate.Option) (float64, error) {
	return f.Eval(t, opts...)
}
