// SPDX-License-Identifier: MIT

package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtab/cell"
	"github.com/katalvlaran/lvtab/render"
	"github.com/katalvlaran/lvtab/table"
)

func fixture(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, tb.SetText(0, 0, "user_id"))
	require.NoError(t, tb.SetText(0, 1, "money"))
	require.NoError(t, tb.SetNumber(1, 0, 1))
	require.NoError(t, tb.SetNumber(1, 1, 11312.1))

	return tb
}

func TestColumnWidths(t *testing.T) {
	widths, err := render.ColumnWidths(fixture(t))
	require.NoError(t, err)
	require.Equal(t, []int{7, 7, 4}, widths, "empty column is as wide as None")

	widths, err = render.ColumnWidths(fixture(t), render.WithPlaceholder(""))
	require.NoError(t, err)
	require.Equal(t, []int{7, 7, 0}, widths)
}

func TestColumnWidths_WideRunes(t *testing.T) {
	tb, _ := table.New(1, 2)
	require.NoError(t, tb.SetText(0, 0, "日本"))
	require.NoError(t, tb.SetText(0, 1, "Привет"))

	widths, err := render.ColumnWidths(tb)
	require.NoError(t, err)
	require.Equal(t, []int{4, 6}, widths)
}

func TestWrite_Left(t *testing.T) {
	rule := strings.Repeat("-", 1+10+10+7) // 1 + Σ(width+3)
	want := rule + "\n" +
		"| user_id | money   | None |\n" +
		rule + "\n" +
		"| 1       | 11312.1 | None |\n" +
		rule + "\n"

	require.Equal(t, want, render.String(fixture(t)))
}

func TestWrite_RightAndRule(t *testing.T) {
	tb, _ := table.New(2, 1)
	require.NoError(t, tb.SetText(0, 0, "id"))
	require.NoError(t, tb.SetNumber(1, 0, 7))

	got := render.String(tb, render.WithAlign(render.AlignRight), render.WithRule('='), render.WithPlaceholder("-"))
	want := "======\n| id |\n======\n|  7 |\n======\n"
	require.Equal(t, want, got)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { render.WithAlign(render.Align(5)) })
	require.Panics(t, func() { render.WithRule('\n') })
	require.Panics(t, func() { render.WithRule('＝') })
}

type failing struct{}

func (failing) Rows() int { return 1 }
func (failing) Cols() int { return 1 }
func (failing) At(int, int) (cell.Cell, error) {
	return cell.Cell{}, errors.New("boom")
}

func TestWrite_PropagatesGridError(t *testing.T) {
	var sb strings.Builder
	err := render.Write(&sb, failing{})
	require.ErrorContains(t, err, "boom")
	require.Empty(t, sb.String(), "nothing is written when measuring fails")
	require.Contains(t, render.String(failing{}), "boom")
}
