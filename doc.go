// Package lvtab is a small in-memory spreadsheet: a rectangular grid of
// typed cells with range folds, text display and delimited ingestion.
//
// 🚀 What is lvtab?
//
//	A zero-surprise table library that brings together:
//		• Typed cells: Empty, Number or Text, never coerced into each other
//		• Tables: fixed rows × cols, copy on read, bounds-checked writes
//		• Folds: Sum, Prod and Mean over inclusive A1:B2 ranges
//		• Formulas: "=SUM(A1:B2)" views evaluated on demand
//		• Display: bordered grid with display-width aware columns
//		• Ingestion: delimited text in any charset known to x/text
//
// Everything is organized under these packages:
//
//	cell/       the tagged cell value and field inference
//	aggregate/  coordinates, ranges, operations, folds and formulas
//	table/      the Table type, concatenation and equality
//	render/     bordered text output
//	delimited/  reading and writing delimited text
//	cmd/lvtab/  command line front end and interactive shell
//
// Quick example:
//
//	tb, _ := table.New(2, 2)
//	_ = tb.SetNumber(0, 0, 1.5)
//	_ = tb.SetNumber(1, 0, 2.5)
//	sum, _ := tb.Sum(aggregate.NewRange(0, 0, 1, 0)) // 4
//	fmt.Print(render.String(tb))
//
// Tables are not safe for concurrent mutation; guard them externally.
//
//	go get github.com/katalvlaran/lvtab
package lvtab
