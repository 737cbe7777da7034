package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gitrdm/comb2/pkg/comb2"
	"github.com/spf13/cobra"
)

// newReplCmd builds an interactive read-eval-print loop over one grammar,
// using chzyer/readline for line editing and history the way
// haricheung-agentic-shell drives its own interactive prompt.
func newReplCmd() *cobra.Command {
	var grammar string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse lines with one grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupGrammar(grammar)
			if err != nil {
				return err
			}
			rl, err := readline.New(fmt.Sprintf("%s> ", grammar))
			if err != nil {
				return err
			}
			defer rl.Close()

			style := errorStyle()
			for {
				line, err := rl.Readline()
				if err == io.EOF || err == readline.ErrInterrupt {
					return nil
				}
				if err != nil {
					return err
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				buf := comb2.FromString("<repl>", line)
				vals, err := comb2.ParseToEnd(entry.Build(), buf, entry.Blank)
				if err != nil {
					if perr, ok := err.(*comb2.ParseError); ok {
						fmt.Println(comb2.FormatParseError(perr, style))
						continue
					}
					fmt.Println(err)
					continue
				}
				for _, v := range vals {
					fmt.Println(entry.Render(v))
				}
			}
		},
	}
	cmd.Flags().StringVarP(&grammar, "grammar", "g", defaultGrammarFromEnv(), "grammar to parse with")
	return cmd
}
