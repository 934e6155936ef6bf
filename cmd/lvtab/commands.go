package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtab/aggregate"
	"github.com/katalvlaran/lvtab/delimited"
	"github.com/katalvlaran/lvtab/render"
	"github.com/katalvlaran/lvtab/table"
)

func (a *app) showCommand() *cobra.Command {
	var align string
	cmd := &cobra.Command{
		Use:   "show [flags] FILE...",
		Short: "Print tables; FILE - reads stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.input.options()
			if err != nil {
				return err
			}
			var ropts []render.Option
			switch align {
			case "left":
			case "right":
				ropts = append(ropts, render.WithAlign(render.AlignRight))
			default:
				return fmt.Errorf("%w: unknown alignment %q", errUsage, align)
			}

			out := cmd.OutOrStdout()
			for _, path := range files {
				tb, err := a.load(path, opts)
				if err != nil {
					return err
				}
				if len(files) > 1 {
					fmt.Fprintf(out, "%s (%dx%d)\n", path, tb.Rows(), tb.Cols())
				}
				if err = render.Write(out, tb, ropts...); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&align, "align", "left", "cell alignment: left or right")

	return cmd
}

func (a *app) aggCommand() *cobra.Command {
	var (
		opName, ref            string
		permissive, rejectText bool
	)
	cmd := &cobra.Command{
		Use:   "agg --range A1:B2 [--op OP] FILE",
		Short: "Fold a range with Sum, Prod or Mean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.input.options()
			if err != nil {
				return err
			}
			op, err := aggregate.ParseOperation(opName)
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			rng, err := aggregate.ParseRange(ref)
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}

			var aopts []aggregate.Option
			if permissive {
				aopts = append(aopts, aggregate.WithPermissive())
			}
			if rejectText {
				aopts = append(aopts, aggregate.WithRejectNonNumeric())
			}

			tb, err := a.load(files[0], opts)
			if err != nil {
				return err
			}
			v, err := tb.Aggregate(op, rng, aopts...)
			if err != nil {
				return err
			}
			a.log.Debug("aggregate", "op", op, "range", rng, "policy", aggregate.Resolve(aopts...).EmptyPolicy())
			fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) = %s\n", op, rng, formatResult(v))

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opName, "op", "Sum", "operation: Sum, Prod or Mean")
	f.StringVarP(&ref, "range", "r", "", "range in A1 notation, e.g. B2:C4")
	f.BoolVar(&permissive, "permissive", false, "Sum/Prod of a range without numbers yield 0/1")
	f.BoolVar(&rejectText, "numeric-only", false, "fail on text or empty cells inside the range")

	return cmd
}

func (a *app) concatCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "concat [-o OUT] A B",
		Short: "Join two tables side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.input.options()
			if err != nil {
				return err
			}
			left, err := a.load(files[0], opts)
			if err != nil {
				return err
			}
			right, err := a.load(files[1], opts)
			if err != nil {
				return err
			}
			joined, err := left.Concat(right)
			if err != nil {
				return err
			}

			if out == "" {
				return render.Write(cmd.OutOrStdout(), joined)
			}
			if err = save(out, joined, opts); err != nil {
				return err
			}
			a.log.Info("written", "path", out, "rows", joined.Rows(), "cols", joined.Cols())

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result as delimited text to this file")

	return cmd
}

func (a *app) equalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Exit 0 when two tables are equal, 1 otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.input.options()
			if err != nil {
				return err
			}
			x, err := a.load(files[0], opts)
			if err != nil {
				return err
			}
			y, err := a.load(files[1], opts)
			if err != nil {
				return err
			}
			if x.Equal(y) {
				fmt.Fprintln(cmd.OutOrStdout(), "equal")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "different")

			return errDifferent
		},
	}
}

// save writes tb to path using the same delimiter and charset it was read with.
func save(path string, tb *table.Table, opts []delimited.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return delimited.Write(f, tb, opts...)
}

func formatResult(v float64) string {
	return fmt.Sprintf("%.10g", v)
}
