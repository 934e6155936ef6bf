package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtab/aggregate"
	"github.com/katalvlaran/lvtab/render"
	"github.com/katalvlaran/lvtab/table"
)

// tripsTable builds the 4x4 user trips sheet.
func tripsTable() (*table.Table, error) {
	tb, err := table.New(4, 4)
	if err != nil {
		return nil, err
	}
	header := []string{"user_id", "count_of_trips", "average_money", "last_date_of_flying"}
	for j, name := range header {
		if err = tb.SetText(0, j, name); err != nil {
			return nil, err
		}
	}
	users := []struct {
		id, trips, money float64
		date             string
	}{
		{1, 15, 11312.1, "2024-09-15"},
		{2, 9, 101.99, "2024-01-01"},
		{11, 2, 983.3, "2019-03-29"},
	}
	for i, u := range users {
		r := i + 1
		for j, v := range []float64{u.id, u.trips, u.money} {
			if err = tb.SetNumber(r, j, v); err != nil {
				return nil, err
			}
		}
		if err = tb.SetText(r, 3, u.date); err != nil {
			return nil, err
		}
	}

	return tb, nil
}

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the trips sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) error {
	tb, err := tripsTable()
	if err != nil {
		return err
	}
	if err = render.Write(out, tb); err != nil {
		return err
	}

	// Money spent is trips times the average per trip.
	for _, r := range []int{2, 3} {
		spent, err := tb.Product(aggregate.NewRange(r, 1, r, 2))
		if err != nil {
			return err
		}
		id, _ := tb.At(r, 0)
		fmt.Fprintf(out, "\nTotal money spent by user_id %s: %s\n", id, formatResult(spent))
	}

	copied := tb.Clone()
	fmt.Fprintf(out, "\ncopy equals original: %t\n", copied.Equal(tb))
	if err = tb.ConcatInPlace(tb); err != nil {
		return err
	}
	fmt.Fprintf(out, "after self-concat: %dx%d, equals copy: %t\n\n", tb.Rows(), tb.Cols(), copied.Equal(tb))

	return render.Write(out, tb)
}
