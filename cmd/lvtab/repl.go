package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
)

const replPrefix = "lvtab> "

func (a *app) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [FILE]",
		Short: "Interactive shell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.input.options()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s := &session{opts: opts, out: out, log: a.log}
			if len(files) == 1 {
				if err = s.load(files); err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
				}
			}

			fmt.Fprintln(out, "lvtab", version, "- type help for commands, quit to leave")
			var done bool
			p := prompt.New(
				func(line string) { done = s.exec(line) },
				completer,
				prompt.OptionTitle("lvtab"),
				prompt.OptionPrefix(replPrefix),
				prompt.OptionSetExitCheckerOnInput(func(string, bool) bool {
					return done
				}),
			)
			p.Run()

			return nil
		},
	}
}

var aggSuggests = []prompt.Suggest{
	{Text: "Sum", Description: "sum of numeric cells"},
	{Text: "Prod", Description: "product of numeric cells"},
	{Text: "Mean", Description: "average of numeric cells"},
}

// completer suggests command names for the first word and operation names
// after agg.
func completer(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	word := d.GetWordBeforeCursor()
	fields := strings.Fields(before)
	if len(fields) == 0 || (len(fields) == 1 && word != "") {
		return prompt.FilterHasPrefix(commandSuggests(), word, true)
	}
	if strings.EqualFold(fields[0], "agg") && (len(fields) == 1 || (len(fields) == 2 && word != "")) {
		return prompt.FilterHasPrefix(aggSuggests, word, true)
	}

	return nil
}

func commandSuggests() []prompt.Suggest {
	out := make([]prompt.Suggest, 0, len(sessionCmds)+1)
	for name, c := range sessionCmds {
		out = append(out, prompt.Suggest{Text: name, Description: c.help})
	}
	out = append(out, prompt.Suggest{Text: "quit", Description: "leave the shell"})
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })

	return out
}
