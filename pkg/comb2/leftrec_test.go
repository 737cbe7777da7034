package comb2

import "testing"

// sumExpr builds expr := expr '+' digit | digit, left-associative sum.
func sumExpr() Grammar {
	ref := Declare()
	lr := NewLeftRec()
	ref.Set(lr.Wrap(Alt(
		App(Seq(ref.Deref(), Seq(Lexeme(lit("+")), Lexeme(digit()))), func(v Value) Value {
			p := v.(Pair)
			rhs := p.Second.(Pair)
			return p.First.(int) + atoi(rhs.Second.(string))
		}),
		App(Lexeme(digit()), func(v Value) Value { return atoi(v.(string)) }),
	)))
	return ref.Deref()
}

func atoi(s string) int {
	return int(s[0] - '0')
}

func TestLeftRecursionGrowsTheSeed(t *testing.T) {
	g := sumExpr()
	buf := NewBuffer("t", []byte("1+2+3"))
	val, pos, err := ParsePartial(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 6 {
		t.Fatalf("got %v, want 6", val)
	}
	if pos != 5 {
		t.Fatalf("got end position %d, want 5", pos)
	}
}

func TestLeftRecursionBaseCaseOnly(t *testing.T) {
	g := sumExpr()
	buf := NewBuffer("t", []byte("7"))
	val, _, err := ParsePartial(g, buf, NoBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 7 {
		t.Fatalf("got %v, want 7", val)
	}
}

func TestLeftRecursionCachesAcrossRepeatedEntry(t *testing.T) {
	lr := NewLeftRec()
	calls := 0
	base := func(env *Env, k *Continuation, fail Fail) {
		calls++
		k.Next(env.withPos(env.Pos+1), constLazy("x"), identityTransform)
	}
	wrapped := lr.Wrap(Grammar(base))
	buf := NewBuffer("t", []byte("ab"))

	if _, _, err := ParsePartial(wrapped, buf, NoBlank); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstCalls := calls
	if _, _, err := ParsePartial(wrapped, buf, NoBlank); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != firstCalls {
		t.Fatalf("second ParsePartial should not need to call the fresh Scheduler's grammar again from scratch, but base ran %d more times", calls-firstCalls)
	}
}
