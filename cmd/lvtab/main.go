// Command lvtab loads delimited text into a typed table, prints it, and
// folds cell ranges with Sum, Prod or Mean.
//
//	lvtab show -d ';' staff.csv
//	lvtab agg -d ';' --op Mean --range D2:D4 staff.csv
//	lvtab concat a.csv b.csv
//	lvtab equal a.csv b.csv
//	lvtab demo
//	lvtab repl staff.csv
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var (
	// errUsage marks a bad invocation; it exits with exitUsage.
	errUsage = errors.New("usage error")

	// errDifferent makes equal exit with exitFail without logging a failure.
	errDifferent = errors.New("tables differ")
)

// app carries the process streams, the logger and the root flags into
// subcommands.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *slog.Logger
	verbose        bool
	input          inputFlags
	started        bool // flags and arguments passed validation
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: newLogger(stderr, false)}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()

	return a.exitCode(cmd, err)
}

// exitCode maps the outcome of a command to the process exit code.
// Errors raised before the command started (unknown command, bad flags,
// wrong argument count) are usage errors.
func (a *app) exitCode(cmd *cobra.Command, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDifferent):
		return exitFail
	case !a.started || errors.Is(err, errUsage):
		fmt.Fprintf(a.stderr, "%s: %v\n", cmd.CommandPath(), err)
		fmt.Fprint(a.stderr, cmd.UsageString())
		return exitUsage
	}
	a.log.Error(cmd.Name()+" failed", "err", err)

	return exitFail
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvtab",
		Short: "Typed-cell tables from delimited text",
		Long: `Load delimited text into a table of Empty, Number and Text cells.

Commands:
  show    Print tables as a bordered grid.
  agg     Fold a range with Sum, Prod or Mean.
  concat  Join two tables side by side.
  equal   Compare two tables cell by cell.
  demo    Walk through the trips sheet.
  repl    Interactive shell.

Examples:
  lvtab show -d ';' staff.csv
  lvtab agg --op Mean --range D2:D4 -d ';' staff.csv
  lvtab concat -o joined.csv a.csv b.csv`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.started = true
			a.log = newLogger(a.stderr, a.verbose)
			a.log.Debug("command", "name", cmd.Name(), "args", args)
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: missing command", errUsage)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	a.input.register(pf)

	root.AddCommand(
		a.showCommand(),
		a.aggCommand(),
		a.concatCommand(),
		a.equalCommand(),
		a.demoCommand(),
		a.replCommand(),
	)

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
