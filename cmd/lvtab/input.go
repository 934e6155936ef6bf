package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvtab/delimited"
	"github.com/katalvlaran/lvtab/table"
)

// inputFlags are shared by every subcommand that reads files.
type inputFlags struct {
	delim   string
	charset string
	ragged  string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.delim, "delimiter", "d", ",", `field delimiter, one character or \t`)
	fs.StringVar(&f.charset, "charset", "", "input charset, e.g. windows-1251 (default utf-8)")
	fs.StringVar(&f.ragged, "ragged", "pad", "rows of differing length: pad, trim or reject")
}

// options converts the flags into reader options.
func (f *inputFlags) options() ([]delimited.Option, error) {
	d := f.delim
	if d == `\t` || d == "tab" {
		d = "\t"
	}
	r, size := utf8.DecodeRuneInString(d)
	if size == 0 || size != len(d) || r == 0 || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return nil, fmt.Errorf("%w: delimiter must be one character, got %q", errUsage, f.delim)
	}
	policy, err := delimited.ParseRagged(f.ragged)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	opts := []delimited.Option{delimited.WithDelimiter(r), delimited.WithRagged(policy)}
	if f.charset != "" {
		opts = append(opts, delimited.WithCharset(f.charset))
	}

	return opts, nil
}

// load reads path ("-" for stdin) and logs the resulting shape.
func (a *app) load(path string, opts []delimited.Option) (*table.Table, error) {
	start := time.Now()
	var (
		tb  *table.Table
		err error
	)
	if path == "-" {
		tb, err = delimited.Read(a.stdin, opts...)
	} else {
		tb, err = delimited.ReadFile(path, opts...)
	}
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded", "path", path, "rows", tb.Rows(), "cols", tb.Cols(), "elapsed", time.Since(start))

	return tb, nil
}
