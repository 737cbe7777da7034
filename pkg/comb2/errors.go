package comb2

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoParse is the unrecoverable-at-this-point rejection signal named in
// spec.md §7(i). It carries no message; callers that want one use GiveUp.
var ErrNoParse = errors.New("comb2: no parse")

// GiveUp is the message-carrying rejection signal named in spec.md §7(ii).
// Terminals and semantic actions return a *GiveUp (or wrap one with %w) to
// reject while contributing an expectation message at the current position.
type GiveUp struct {
	Msg string
}

func (g *GiveUp) Error() string { return g.Msg }

// NewGiveUp builds a GiveUp error with msg.
func NewGiveUp(msg string) error { return &GiveUp{Msg: msg} }

// giveUpMessage extracts the expectation text to attach at the furthest
// position for err, which must be ErrNoParse, a *GiveUp, or wrap one.
func giveUpMessage(err error) string {
	var gu *GiveUp
	if errors.As(err, &gu) {
		return gu.Msg
	}
	return ""
}

// isRecoverable reports whether err is one of the two rejection signals
// spec.md §7 allows semantic actions and terminals to use. Any other error
// is a programming error and propagates unchanged, per §7's propagation
// policy.
func isRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoParse) {
		return true
	}
	var gu *GiveUp
	return errors.As(err, &gu)
}

// ParseError is raised by the Driver when a parse collects zero results. It
// carries the furthest position reached and the deduplicated, sorted
// expectation messages observed there (spec.md §6 "Error surface").
type ParseError struct {
	Position Position
	Messages []string
}

func (e *ParseError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("parse error at %s", e.Position)
	}
	return fmt.Sprintf("parse error at %s: expecting %s", e.Position, strings.Join(e.Messages, ", "))
}

// ErrorStyle selects the rendering used by FormatParseError: OCaml-style
// ("File \"f\", line L, character C") or gcc-style ("f:L:C").
type ErrorStyle int

const (
	// StyleGCC renders "filename:line:column: Parse error\nexpecting: ...".
	StyleGCC ErrorStyle = iota
	// StyleOCaml renders 'File "filename", line L, character C:\nParse error\nexpecting: ...'.
	StyleOCaml
)

// FormatParseError renders a ParseError in the requested style, matching
// spec.md §6's "prints 'Parse error' with file/line/column in either an
// OCaml-like or gcc-like style, followed by an 'expecting:' list".
func FormatParseError(err *ParseError, style ErrorStyle) string {
	var b strings.Builder
	p := err.Position
	switch style {
	case StyleOCaml:
		name := p.Filename
		if name == "" {
			name = "<input>"
		}
		fmt.Fprintf(&b, "File %q, line %d, character %d:\n", name, p.Line+1, p.Column+1)
		b.WriteString("Parse error")
	default: // StyleGCC
		fmt.Fprintf(&b, "%s: Parse error", p.String())
	}
	if len(err.Messages) > 0 {
		b.WriteString("\nexpecting: ")
		b.WriteString(strings.Join(err.Messages, ", "))
	}
	return b.String()
}

// ErrorHandler is invoked by the Parse convenience wrapper after a
// ParseError has been printed. When DriverOptions.OnError is nil, Parse
// calls os.Exit(1) instead, matching spec.md §6's "invokes a user-supplied error callback (default:
// exit 1)".
type ErrorHandler func(*ParseError)
