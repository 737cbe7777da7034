package comb2

import (
	"strings"
	"testing"
)

// TestScenarioRightRecursionIsLinearAndSingleResult is scenario S3: a
// right-recursive list of 10,000 items parsed to end of input yields exactly
// one result without
// overflowing the Go call stack, because Lexeme suspends through the
// Scheduler's residual queue rather than recursing directly across lexeme
// boundaries.
func TestScenarioRightRecursionIsLinearAndSingleResult(t *testing.T) {
	listRef := Declare()
	listRef.Set(Alt(
		App(Seq(Lexeme(lit("1")), listRef.Deref()), func(v Value) Value {
			p := v.(Pair)
			return 1 + p.Second.(int)
		}),
		App(Empty(nil), func(Value) Value { return 0 }),
	))

	const n = 10000
	src := strings.Repeat("1", n)
	buf := NewBuffer("t", []byte(src))

	// Every prefix length is itself a valid completion of "list" (trailing
	// "1"s can always stop early via the empty branch); ParseToEnd keeps only
	// the completions that consumed the whole buffer.
	vals, err := ParseToEnd(listRef.Deref(), buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 1 || vals[0] != n {
		t.Fatalf("expected exactly one completion counting all %d ones, got %v", n, vals)
	}
}

// TestScenarioFurthestPositionReporting is scenario S5: parsing "abd"
// against the literal "abc" reports the furthest position at the
// diverging byte and names "abc" in the expectation list.
func TestScenarioFurthestPositionReporting(t *testing.T) {
	g := Lexeme(newLiteralTerminal("abc"))
	buf := NewBuffer("t", []byte("abd"))
	_, _, err := ParsePartial(g, buf, NoBlank)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr := err.(*ParseError)
	if perr.Position.Column != 2 {
		t.Fatalf("got furthest column %d, want 2", perr.Position.Column)
	}
	found := false
	for _, m := range perr.Messages {
		if strings.Contains(m, "abc") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected expectation list to mention %q, got %v", "abc", perr.Messages)
	}
}

func newLiteralTerminal(s string) Terminal {
	b := []byte(s)
	return func(buf *Buffer, column int) (Value, int, bool, string) {
		for i, c := range b {
			got, ok := buf.ByteAt(column + i)
			if !ok || got != c {
				return nil, column + i, false, "\"" + s + "\""
			}
		}
		return s, column + len(b), true, "\"" + s + "\""
	}
}
