// Package render draws a grid of cells as a bordered text table.
//
// A first pass measures every column (terminal cells, with East Asian wide
// and fullwidth runes counted twice via golang.org/x/text/width); a second
// pass writes a dash rule, then each row followed by another rule:
//
//	--------------------
//	| user_id | 1 | 15 |
//	--------------------
//
// Empty cells print as cell.Placeholder ("None") unless WithPlaceholder says
// otherwise. Numbers use cell.FormatNumber.
package render
