package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/comb2/pkg/comb2"
	"github.com/spf13/cobra"
)

func errorStyle() comb2.ErrorStyle {
	if errorStyleFromEnv() == "ocaml" {
		return comb2.StyleOCaml
	}
	return comb2.StyleGCC
}

func newParseCmd() *cobra.Command {
	var grammar string
	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse input to end-of-input with one grammar, printing its single result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupGrammar(grammar)
			if err != nil {
				return err
			}
			buf := comb2.FromString("<arg>", args[0])
			vals, err := comb2.ParseToEnd(entry.Build(), buf, entry.Blank)
			if err != nil {
				perr, ok := err.(*comb2.ParseError)
				if ok {
					fmt.Fprintln(os.Stderr, comb2.FormatParseError(perr, errorStyle()))
				}
				return err
			}
			fmt.Println(entry.Render(vals[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&grammar, "grammar", "g", defaultGrammarFromEnv(), "grammar to parse with")
	return cmd
}

func newParseAllCmd() *cobra.Command {
	var grammar string
	cmd := &cobra.Command{
		Use:   "parse-all <input>",
		Short: "Parse input to end-of-input, printing every ambiguous result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupGrammar(grammar)
			if err != nil {
				return err
			}
			buf := comb2.FromString("<arg>", args[0])
			vals, err := comb2.ParseToEnd(entry.Build(), buf, entry.Blank)
			if err != nil {
				perr, ok := err.(*comb2.ParseError)
				if ok {
					fmt.Fprintln(os.Stderr, comb2.FormatParseError(perr, errorStyle()))
				}
				return err
			}
			for _, v := range vals {
				fmt.Println(entry.Render(v))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&grammar, "grammar", "g", defaultGrammarFromEnv(), "grammar to parse with")
	return cmd
}
