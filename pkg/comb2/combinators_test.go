package comb2

import (
	"testing"
)

func digit() Terminal {
	return func(buf *Buffer, column int) (Value, int, bool, string) {
		b, ok := buf.ByteAt(column)
		if !ok || b < '0' || b > '9' {
			return nil, column, false, "digit"
		}
		return string(b), column + 1, true, "digit"
	}
}

func lit(s string) Terminal {
	return func(buf *Buffer, column int) (Value, int, bool, string) {
		for i := 0; i < len(s); i++ {
			b, ok := buf.ByteAt(column + i)
			if !ok || b != s[i] {
				return nil, column, false, s
			}
		}
		return s, column + len(s), true, s
	}
}

func TestSeqProducesPair(t *testing.T) {
	g := Seq(Lexeme(digit()), Lexeme(digit()))
	buf := NewBuffer("t", []byte("12"))
	val, pos, err := ParsePartial(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := val.(Pair)
	if p.First != "1" || p.Second != "2" || pos != 2 {
		t.Fatalf("got %+v at %d", p, pos)
	}
}

func TestAltProducesBothAmbiguousResults(t *testing.T) {
	g := Alt(Lexeme(lit("a")), Lexeme(lit("a")))
	buf := NewBuffer("t", []byte("a"))
	vals, err := ParseAll(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("expected 2 ambiguous results, got %d", len(vals))
	}
}

func TestAppDeferredUntilForced(t *testing.T) {
	called := false
	g := App(Lexeme(digit()), func(v Value) Value {
		called = true
		return v.(string) + "!"
	})
	if called {
		t.Fatal("App must not invoke f while building the grammar")
	}
	buf := NewBuffer("t", []byte("5"))
	val, _, err := ParsePartial(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("App's function should have run once the grammar executed")
	}
	if val != "5!" {
		t.Fatalf("got %v", val)
	}
}

func TestOptionMatchesPresentAndAbsent(t *testing.T) {
	g := Seq(Option(Lexeme(lit("a"))), Lexeme(lit("b")))
	buf := NewBuffer("t", []byte("b"))
	val, _, err := ParsePartial(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := val.(Pair)
	if p.First != nil || p.Second != "b" {
		t.Fatalf("got %+v", p)
	}

	buf2 := NewBuffer("t", []byte("ab"))
	val2, _, err := ParsePartial(g, buf2, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2 := val2.(Pair)
	if p2.First != "a" || p2.Second != "b" {
		t.Fatalf("got %+v", p2)
	}
}

func TestDseqChoosesSecondGrammarDynamically(t *testing.T) {
	g := Dseq(Lexeme(digit()), func(v Value) Grammar {
		if v == "1" {
			return Lexeme(lit("a"))
		}
		return Lexeme(lit("b"))
	})
	buf := NewBuffer("t", []byte("1a"))
	val, _, err := ParsePartial(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := val.(Pair)
	if p.First != "1" || p.Second != "a" {
		t.Fatalf("got %+v", p)
	}
}

func TestLeftPosAndRightPos(t *testing.T) {
	buf := NewBuffer("t", []byte("xy"))
	lg := LeftPos(Lexeme(lit("x")))
	val, _, err := ParsePartial(lg, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lp := val.(Pair)
	if lp.First.(Position).Column != 0 {
		t.Fatalf("LeftPos should report the position before the match, got %+v", lp.First)
	}

	rg := RightPos(Lexeme(lit("x")))
	val2, _, err := ParsePartial(rg, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rp := val2.(Pair)
	if rp.First.(Position).Column != 1 {
		t.Fatalf("RightPos should report the position after the match, got %+v", rp.First)
	}
}

func TestTestBeforeAndTestAfter(t *testing.T) {
	buf := NewBuffer("t", []byte("ab"))
	before := TestBefore(func(b *Buffer, pos int) bool {
		c, ok := b.ByteAt(pos)
		return ok && c == 'a'
	})
	if _, _, err := ParsePartial(before, buf, NoBlank); err != nil {
		t.Fatalf("TestBefore should succeed: %v", err)
	}

	after := TestAfter(Lexeme(lit("a")), func(b *Buffer, pos int) bool {
		c, ok := b.ByteAt(pos)
		return ok && c == 'b'
	})
	if _, _, err := ParsePartial(after, buf, NoBlank); err != nil {
		t.Fatalf("TestAfter should succeed when the predicate holds after the match: %v", err)
	}

	rejecting := TestAfter(Lexeme(lit("a")), func(b *Buffer, pos int) bool { return false })
	if _, _, err := ParsePartial(rejecting, buf, NoBlank); err == nil {
		t.Fatal("TestAfter should fail when the predicate does not hold")
	}
}

func TestFailWithRecordsExpectation(t *testing.T) {
	g := FailWith("expected widget")
	buf := NewBuffer("t", []byte(""))
	_, _, err := ParsePartial(g, buf, NoBlank)
	if err == nil {
		t.Fatal("expected an error")
	}
	perr := err.(*ParseError)
	if len(perr.Messages) != 1 || perr.Messages[0] != "expected widget" {
		t.Fatalf("got messages %v", perr.Messages)
	}
}
