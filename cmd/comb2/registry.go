package main

import (
	"fmt"

	"github.com/gitrdm/comb2/examples/arithmetic"
	"github.com/gitrdm/comb2/examples/sexpr"
	"github.com/gitrdm/comb2/pkg/comb2"
)

// grammarEntry bundles a named grammar with the layout skipper it expects
// and a renderer for its result, since arithmetic produces a float64 and
// sexpr produces a sexpr.Node.
type grammarEntry struct {
	Build  func() comb2.Grammar
	Blank  comb2.BlankFunc
	Render func(comb2.Value) string
}

var registry = map[string]grammarEntry{
	"arithmetic": {
		Build: arithmetic.Grammar,
		Blank: arithmetic.Blank,
		Render: func(v comb2.Value) string {
			return fmt.Sprintf("%v", v.(float64))
		},
	},
	"sexpr": {
		Build: sexpr.Grammar,
		Blank: sexpr.Blank,
		Render: func(v comb2.Value) string {
			return fmt.Sprintf("%d nodes", v.(sexpr.Node).Size())
		},
	},
}

func lookupGrammar(name string) (grammarEntry, error) {
	entry, ok := registry[name]
	if !ok {
		return grammarEntry{}, fmt.Errorf("comb2: unknown grammar %q (try \"arithmetic\" or \"sexpr\")", name)
	}
	return entry, nil
}
