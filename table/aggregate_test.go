// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtab/aggregate"
	"github.com/katalvlaran/lvtab/table"
)

// AggregateSuite exercises range aggregation on a Table.
type AggregateSuite struct {
	suite.Suite
	tb *table.Table
}

// SetupTest rebuilds the 2×2 fixture: [20.5, "Hello"], [Empty, Empty].
func (s *AggregateSuite) SetupTest() {
	tb, err := table.New(2, 2)
	s.Require().NoError(err)
	s.Require().NoError(tb.SetNumber(0, 0, 20.5))
	s.Require().NoError(tb.SetText(0, 1, "Hello"))
	s.tb = tb
}

func (s *AggregateSuite) TestSingleCellSumAndProduct() {
	rng := aggregate.NewRange(0, 0, 0, 0)

	sum, err := s.tb.Sum(rng)
	s.Require().NoError(err)
	s.Require().Equal(20.5, sum)

	prod, err := s.tb.Product(rng)
	s.Require().NoError(err)
	s.Require().Equal(20.5, prod)

	agg, err := s.tb.Aggregate(aggregate.Sum, rng)
	s.Require().NoError(err)
	s.Require().Equal(20.5, agg)
}

func (s *AggregateSuite) TestMeanOfTwo() {
	s.Require().NoError(s.tb.SetNumber(0, 1, 30.5))

	mean, err := s.tb.Mean(aggregate.NewRange(0, 0, 0, 1))
	s.Require().NoError(err)
	s.Require().Equal(25.5, mean)

	prod, err := s.tb.CalculateOperation("Prod", aggregate.NewRange(0, 0, 0, 1))
	s.Require().NoError(err)
	s.Require().Equal(30.5*20.5, prod)
}

func (s *AggregateSuite) TestTextAndEmptySkipped() {
	rng := aggregate.NewRange(0, 0, 1, 1)

	sum, err := s.tb.Sum(rng)
	s.Require().NoError(err)
	s.Require().Equal(20.5, sum)

	mean, err := s.tb.Mean(rng)
	s.Require().NoError(err)
	s.Require().Equal(20.5, mean, "denominator counts numeric cells only")
}

// Dedicated methods are strict for every operation.
func (s *AggregateSuite) TestNoNumbers_Strict() {
	rng := aggregate.NewRange(1, 0, 1, 1)

	_, err := s.tb.Sum(rng)
	s.Require().ErrorIs(err, aggregate.ErrEmptyAggregate)
	_, err = s.tb.Product(rng)
	s.Require().ErrorIs(err, aggregate.ErrEmptyAggregate)
	_, err = s.tb.Mean(rng)
	s.Require().ErrorIs(err, aggregate.ErrEmptyAggregate)
	_, err = s.tb.Aggregate(aggregate.Product, rng)
	s.Require().ErrorIs(err, aggregate.ErrEmptyAggregate)
}

// The named entry point guards Mean only.
func (s *AggregateSuite) TestNoNumbers_Permissive() {
	rng := aggregate.NewRange(1, 0, 1, 1)

	sum, err := s.tb.CalculateOperation("Sum", rng)
	s.Require().NoError(err)
	s.Require().Equal(0.0, sum)

	prod, err := s.tb.CalculateOperation("Prod", rng)
	s.Require().NoError(err)
	s.Require().Equal(1.0, prod)

	_, err = s.tb.CalculateOperation("Mean", rng)
	s.Require().ErrorIs(err, aggregate.ErrEmptyAggregate)

	v, err := s.tb.Aggregate(aggregate.Product, rng, aggregate.WithPermissive())
	s.Require().NoError(err)
	s.Require().Equal(1.0, v)
}

func (s *AggregateSuite) TestCalculateOperation_Validation() {
	_, err := s.tb.CalculateOperation("Median", aggregate.NewRange(0, 0, 0, 0))
	s.Require().ErrorIs(err, aggregate.ErrInvalidOperation)

	// Range first, then the name.
	_, err = s.tb.CalculateOperation("Median", aggregate.NewRange(0, 0, 5, 5))
	s.Require().ErrorIs(err, aggregate.ErrInvalidRange)
}

func (s *AggregateSuite) TestInvalidRanges() {
	for _, rng := range []aggregate.Range{
		aggregate.NewRange(1, 0, 0, 0),
		aggregate.NewRange(0, 1, 0, 0),
		aggregate.NewRange(0, 0, 2, 0),
		aggregate.NewRange(0, 0, 0, 2),
		aggregate.NewRange(-1, -1, 0, 0),
	} {
		_, err := s.tb.Sum(rng)
		s.Require().ErrorIs(err, aggregate.ErrInvalidRange, rng.String())
	}
}

func (s *AggregateSuite) TestFormula() {
	f, err := aggregate.ParseFormula("=SUM(A1:B2)")
	s.Require().NoError(err)

	v, err := s.tb.EvalFormula(f)
	s.Require().NoError(err)
	s.Require().Equal(20.5, v)

	_, err = s.tb.EvalFormula(f, aggregate.WithRejectNonNumeric())
	s.Require().ErrorIs(err, aggregate.ErrNonNumeric)

	// The formula reads live cells; it holds coordinates, not copies.
	s.Require().NoError(s.tb.SetNumber(1, 1, 1.5))
	v, err = s.tb.EvalFormula(f)
	s.Require().NoError(err)
	s.Require().Equal(22.0, v)
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

func TestAggregate_CopyIndependence(t *testing.T) {
	tb := sample(t)
	rng := aggregate.NewRange(1, 0, 2, 1)

	before, err := tb.Sum(rng)
	require.NoError(t, err)

	cp := tb.Clone()
	onCopy, err := cp.Sum(rng)
	require.NoError(t, err)
	require.Equal(t, before, onCopy)

	require.NoError(t, cp.SetNumber(1, 0, 1000))
	after, err := tb.Sum(rng)
	require.NoError(t, err)
	require.Equal(t, before, after, "mutating the copy must not change the original")

	changed, err := cp.Sum(rng)
	require.NoError(t, err)
	require.NotEqual(t, before, changed)
}

func TestAggregate_SampleSheet(t *testing.T) {
	tb := sample(t)
	rng := aggregate.NewRange(1, 0, 2, 1)

	sum, err := tb.Sum(rng)
	require.NoError(t, err)
	require.Equal(t, 31.0, sum)

	prod, err := tb.Product(rng)
	require.NoError(t, err)
	require.Equal(t, 2.5*3.5*15*10, prod)
}
