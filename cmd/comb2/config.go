package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads a .env file from the working directory if present,
// matching the haricheung-agentic-shell-style convention of optional
// environment-file configuration for a CLI: COMB2_ERROR_STYLE selects the
// ParseError rendering ("gcc" or "ocaml"), COMB2_GRAMMAR picks the default
// grammar for every subcommand. A missing .env is not an error, and a
// malformed one is silently ignored.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		// Not fatal: fall back to whatever is already in the environment.
		return
	}
}

func errorStyleFromEnv() string {
	style := os.Getenv("COMB2_ERROR_STYLE")
	if style == "" {
		return "gcc"
	}
	return style
}

func defaultGrammarFromEnv() string {
	g := os.Getenv("COMB2_GRAMMAR")
	if g == "" {
		return "arithmetic"
	}
	return g
}
