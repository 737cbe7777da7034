// comb2 is a small command-line harness around the comb2 engine: it parses
// a literal command-line argument with one of the bundled example grammars,
// or reads lines in a read-eval-print loop. Configuration follows the
// haricheung-agentic-shell convention of an optional .env file loaded before
// flag parsing (see config.go), and the command structure itself follows
// cobra the way the rest of the retrieval pack's CLIs do.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	loadDotEnv()

	root := &cobra.Command{
		Use:   "comb2",
		Short: "Run comb2 example grammars against input text",
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newParseAllCmd())
	root.AddCommand(newReplCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
