// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtab/aggregate"
)

// trips mirrors a small header + data sheet.
func trips(t *testing.T) *grid {
	return newGrid(t, [][]any{
		{"A", "B"},
		{2.5, 3.5},
		{15, 10},
	})
}

func TestCompute_SumProductMean(t *testing.T) {
	g := trips(t)
	rng := aggregate.NewRange(1, 0, 2, 1)

	sum, err := aggregate.Compute(g, aggregate.Sum, rng)
	require.NoError(t, err)
	require.Equal(t, 31.0, sum)

	prod, err := aggregate.Compute(g, aggregate.Product, rng)
	require.NoError(t, err)
	require.Equal(t, 2.5*3.5*15*10, prod)

	mean, err := aggregate.Compute(g, aggregate.Mean, rng)
	require.NoError(t, err)
	require.Equal(t, 31.0/4, mean)
}

func TestCompute_SingleCell(t *testing.T) {
	g := newGrid(t, [][]any{{20.5, "Hello"}})
	rng := aggregate.NewRange(0, 0, 0, 0)

	for _, op := range []aggregate.Operation{aggregate.Sum, aggregate.Product, aggregate.Mean} {
		v, err := aggregate.Compute(g, op, rng)
		require.NoError(t, err, op.String())
		require.Equal(t, 20.5, v, op.String())
	}
}

func TestCompute_MeanCountsNumericCellsOnly(t *testing.T) {
	g := newGrid(t, [][]any{{20.5, nil, "x", 30.5}})
	mean, err := aggregate.Compute(g, aggregate.Mean, aggregate.NewRange(0, 0, 0, 3))
	require.NoError(t, err)
	require.Equal(t, 25.5, mean)

	acc, err := aggregate.Accumulate(g, aggregate.NewRange(0, 0, 0, 3))
	require.NoError(t, err)
	require.Equal(t, 2, acc.Count)
	require.Equal(t, 2, acc.Skipped)
	require.Equal(t, 51.0, acc.Sum)
	require.Equal(t, 20.5*30.5, acc.Product)
}

func TestCompute_EmptyRange_Strict(t *testing.T) {
	g := newGrid(t, [][]any{{nil, "text"}})
	rng := aggregate.NewRange(0, 0, 0, 1)

	for _, op := range []aggregate.Operation{aggregate.Sum, aggregate.Product, aggregate.Mean} {
		_, err := aggregate.Compute(g, op, rng)
		require.ErrorIs(t, err, aggregate.ErrEmptyAggregate, op.String())

		_, err = aggregate.Compute(g, op, rng, aggregate.WithStrict())
		require.ErrorIs(t, err, aggregate.ErrEmptyAggregate, op.String())
	}

	// The op tag and the package prefix each appear once.
	_, err := aggregate.Compute(g, aggregate.Sum, rng)
	require.EqualError(t, err, "Compute: Sum: aggregate: no numeric cells in range")
}

func TestCompute_EmptyRange_Permissive(t *testing.T) {
	g := newGrid(t, [][]any{{nil, "text"}})
	rng := aggregate.NewRange(0, 0, 0, 1)

	sum, err := aggregate.Compute(g, aggregate.Sum, rng, aggregate.WithPermissive())
	require.NoError(t, err)
	require.Equal(t, 0.0, sum)

	prod, err := aggregate.Compute(g, aggregate.Product, rng, aggregate.WithPermissive())
	require.NoError(t, err)
	require.Equal(t, 1.0, prod)

	_, err = aggregate.Compute(g, aggregate.Mean, rng, aggregate.WithPermissive())
	require.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
}

func TestCompute_OptionsLastWriterWins(t *testing.T) {
	g := newGrid(t, [][]any{{nil}})
	rng := aggregate.NewRange(0, 0, 0, 0)

	_, err := aggregate.Compute(g, aggregate.Sum, rng, aggregate.WithPermissive(), aggregate.WithStrict())
	require.ErrorIs(t, err, aggregate.ErrEmptyAggregate)

	v, err := aggregate.Compute(g, aggregate.Sum, rng,
		aggregate.WithStrict(), aggregate.WithEmptyPolicy(aggregate.Permissive))
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestWithEmptyPolicy_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { aggregate.WithEmptyPolicy(aggregate.EmptyPolicy(9)) })
}

func TestCompute_RejectNonNumeric(t *testing.T) {
	g := newGrid(t, [][]any{{2.0, 2.0, "three"}})

	_, err := aggregate.Compute(g, aggregate.Sum, aggregate.NewRange(0, 0, 0, 2), aggregate.WithRejectNonNumeric())
	require.ErrorIs(t, err, aggregate.ErrNonNumeric)
	require.Contains(t, err.Error(), "C1 is Text")

	v, err := aggregate.Compute(g, aggregate.Sum, aggregate.NewRange(0, 0, 0, 1), aggregate.WithRejectNonNumeric())
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	v, err = aggregate.Compute(g, aggregate.Sum, aggregate.NewRange(0, 0, 0, 2),
		aggregate.WithRejectNonNumeric(), aggregate.WithSkipNonNumeric())
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

func TestCompute_InvalidRange(t *testing.T) {
	g := trips(t)
	bad := []aggregate.Range{
		aggregate.NewRange(-1, 0, 1, 1),
		aggregate.NewRange(0, -1, 1, 1),
		aggregate.NewRange(2, 0, 1, 1), // rows out of order
		aggregate.NewRange(0, 1, 1, 0), // cols out of order
		aggregate.NewRange(0, 0, 3, 1), // past last row
		aggregate.NewRange(0, 0, 2, 2), // past last col
	}
	for _, rng := range bad {
		_, err := aggregate.Compute(g, aggregate.Sum, rng)
		require.ErrorIs(t, err, aggregate.ErrInvalidRange, "%+v", rng)
	}
}

func TestCompute_InvalidOperation(t *testing.T) {
	g := trips(t)

	_, err := aggregate.Compute(g, aggregate.Operation(7), aggregate.NewRange(1, 0, 2, 1))
	require.ErrorIs(t, err, aggregate.ErrInvalidOperation)
	require.EqualError(t, err, "Compute: Operation(7): aggregate: invalid operation")
	require.Zero(t, g.reads, "operation is checked before traversal")

	// Range errors take precedence over the operation tag.
	_, err = aggregate.Compute(g, aggregate.Operation(7), aggregate.NewRange(0, 0, 9, 9))
	require.ErrorIs(t, err, aggregate.ErrInvalidRange)
}

func TestCompute_NilSource(t *testing.T) {
	_, err := aggregate.Compute(nil, aggregate.Sum, aggregate.NewRange(0, 0, 0, 0))
	require.ErrorIs(t, err, aggregate.ErrNilSource)
	_, err = aggregate.Accumulate(nil, aggregate.NewRange(0, 0, 0, 0))
	require.ErrorIs(t, err, aggregate.ErrNilSource)
}

func TestCompute_Deterministic(t *testing.T) {
	g := newGrid(t, [][]any{
		{0.1, 0.2, 0.3},
		{1e16, 1.0, -1e16},
	})
	rng := aggregate.NewRange(0, 0, 1, 2)

	first, err := aggregate.Compute(g, aggregate.Sum, rng)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := aggregate.Compute(g, aggregate.Sum, rng)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	// Row-major left-to-right order: ((((0.1+0.2)+0.3)+1e16)+1)-1e16.
	vals := []float64{0.1, 0.2, 0.3}
	want := vals[0]
	want += vals[1]
	want += vals[2]
	want += 1e16
	want += 1.0
	want += -1e16
	require.Equal(t, want, first)
}

func TestParseOperation(t *testing.T) {
	cases := map[string]aggregate.Operation{
		"Sum": aggregate.Sum, "sum": aggregate.Sum,
		"Prod": aggregate.Product, "PRODUCT": aggregate.Product,
		"Mean": aggregate.Mean, "avg": aggregate.Mean, " Average ": aggregate.Mean,
	}
	for in, want := range cases {
		got, err := aggregate.ParseOperation(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := aggregate.ParseOperation("Median")
	require.ErrorIs(t, err, aggregate.ErrInvalidOperation)

	require.Equal(t, "Prod", aggregate.Product.String())
	require.Equal(t, "Operation(9)", aggregate.Operation(9).String())
}
