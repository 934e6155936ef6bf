package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtab/aggregate"
	"github.com/katalvlaran/lvtab/cell"
	"github.com/katalvlaran/lvtab/delimited"
	"github.com/katalvlaran/lvtab/render"
	"github.com/katalvlaran/lvtab/table"
)

var errNoTable = errors.New("no table loaded; use load or new")

// session holds the REPL state. It does not touch the terminal, so tests
// drive it by calling exec directly.
type session struct {
	tb   *table.Table
	path string
	opts []delimited.Option
	out  io.Writer
	log  *slog.Logger
}

type sessionCmd struct {
	args string
	help string
	run  func(s *session, argv []string) error
	path bool // the rest of the line is one argument, spaces included
}

var sessionCmds map[string]sessionCmd

func init() {
	sessionCmds = map[string]sessionCmd{
		"help":    {"", "list commands", (*session).help, false},
		"load":    {"PATH", "read a delimited file", (*session).load, true},
		"new":     {"ROWS COLS | demo", "start an empty table or the trips sheet", (*session).create, false},
		"show":    {"", "print the table", (*session).show, false},
		"size":    {"", "print rows and columns", (*session).size, false},
		"header":  {"", "print the first row", (*session).header, false},
		"set":     {"REF VALUE", "store a number or text in a cell", (*session).set, false},
		"clear":   {"REF", "empty a cell", (*session).clear, false},
		"agg":     {"OP RANGE [permissive]", "fold a range with Sum, Prod or Mean", (*session).agg, false},
		"formula": {"=OP(RANGE)", "evaluate a formula", (*session).formula, false},
		"concat":  {"PATH", "append the columns of another file", (*session).concat, true},
		"save":    {"[PATH]", "write the table as delimited text", (*session).save, true},
	}
}

// exec runs one input line and reports whether the session should end.
// Errors are printed, never returned.
func (s *session) exec(line string) (quit bool) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return false
	}
	name := strings.ToLower(argv[0])
	if name == "quit" || name == "exit" {
		return true
	}
	cmd, ok := sessionCmds[name]
	if !ok {
		fmt.Fprintf(s.out, "error: unknown command %q, try help\n", argv[0])
		return false
	}
	if cmd.path {
		rest := strings.TrimSpace(strings.TrimSpace(line)[len(argv[0]):])
		argv = argv[:1]
		if rest != "" {
			argv = append(argv, rest)
		}
	}
	if err := cmd.run(s, argv[1:]); err != nil {
		s.log.Debug("command failed", "line", line, "err", err)
		fmt.Fprintf(s.out, "error: %v\n", err)
	}

	return false
}

func (s *session) help(_ []string) error {
	names := make([]string, 0, len(sessionCmds))
	for name := range sessionCmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := sessionCmds[name]
		fmt.Fprintf(s.out, "  %-8s %-22s %s\n", name, c.args, c.help)
	}
	fmt.Fprintf(s.out, "  %-8s %-22s %s\n", "quit", "", "leave the shell")

	return nil
}

func (s *session) table() (*table.Table, error) {
	if s.tb == nil {
		return nil, errNoTable
	}

	return s.tb, nil
}

func (s *session) load(argv []string) error {
	if len(argv) != 1 {
		return errors.New("usage: load PATH")
	}
	tb, err := delimited.ReadFile(argv[0], s.opts...)
	if err != nil {
		return err
	}
	s.tb, s.path = tb, argv[0]
	fmt.Fprintf(s.out, "loaded %s: %dx%d\n", argv[0], tb.Rows(), tb.Cols())

	return nil
}

func (s *session) create(argv []string) error {
	if len(argv) == 1 && argv[0] == "demo" {
		tb, err := tripsTable()
		if err != nil {
			return err
		}
		s.tb, s.path = tb, ""
		return nil
	}
	if len(argv) != 2 {
		return errors.New("usage: new ROWS COLS | new demo")
	}
	rows, err := strconv.Atoi(argv[0])
	if err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	cols, err := strconv.Atoi(argv[1])
	if err != nil {
		return fmt.Errorf("cols: %w", err)
	}
	tb, err := table.New(rows, cols)
	if err != nil {
		return err
	}
	s.tb, s.path = tb, ""

	return nil
}

func (s *session) show(_ []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}

	return render.Write(s.out, tb)
}

func (s *session) size(_ []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d rows, %d cols\n", tb.Rows(), tb.Cols())

	return nil
}

func (s *session) header(_ []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, strings.Join(tb.Header(), " | "))

	return nil
}

// set stores the rest of the line after REF, inferring its kind as the
// reader does.
func (s *session) set(argv []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	if len(argv) < 2 {
		return errors.New("usage: set REF VALUE")
	}
	at, err := aggregate.ParseCoord(argv[0])
	if err != nil {
		return err
	}

	return tb.Set(at.Row, at.Col, cell.Parse(strings.Join(argv[1:], " ")))
}

func (s *session) clear(argv []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	if len(argv) != 1 {
		return errors.New("usage: clear REF")
	}
	at, err := aggregate.ParseCoord(argv[0])
	if err != nil {
		return err
	}

	return tb.ClearCell(at.Row, at.Col)
}

func (s *session) agg(argv []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	if len(argv) < 2 || len(argv) > 3 {
		return errors.New("usage: agg OP RANGE [permissive]")
	}
	rng, err := aggregate.ParseRange(argv[1])
	if err != nil {
		return err
	}
	var v float64
	switch {
	case len(argv) == 3 && argv[2] == "permissive":
		v, err = tb.CalculateOperation(argv[0], rng)
	case len(argv) == 3:
		return fmt.Errorf("unknown mode %q", argv[2])
	default:
		var op aggregate.Operation
		if op, err = aggregate.ParseOperation(argv[0]); err != nil {
			return err
		}
		v, err = tb.Aggregate(op, rng)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatResult(v))

	return nil
}

func (s *session) formula(argv []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	f, err := aggregate.ParseFormula(strings.Join(argv, ""))
	if err != nil {
		return err
	}
	v, err := tb.EvalFormula(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %s\n", f, formatResult(v))

	return nil
}

func (s *session) concat(argv []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	if len(argv) != 1 {
		return errors.New("usage: concat PATH")
	}
	other, err := delimited.ReadFile(argv[0], s.opts...)
	if err != nil {
		return err
	}
	if err = tb.ConcatInPlace(other); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "now %dx%d\n", tb.Rows(), tb.Cols())

	return nil
}

func (s *session) save(argv []string) error {
	tb, err := s.table()
	if err != nil {
		return err
	}
	path := s.path
	switch {
	case len(argv) == 1:
		path = argv[0]
	case len(argv) > 1:
		return errors.New("usage: save [PATH]")
	}
	if path == "" {
		return errors.New("no path; use save PATH")
	}
	if err = save(path, tb, s.opts); err != nil {
		return err
	}
	s.path = path
	s.log.Debug("saved", "path", path, "rows", tb.Rows(), "cols", tb.Cols())
	fmt.Fprintf(s.out, "saved %s\n", path)

	return nil
}
