package comb2

// This file is the Core Combinators component (spec.md §4.F). Each
// combinator is a function building a Grammar from smaller Grammars; none of
// them touch the Scheduler directly except through the Grammars they wrap
// (ultimately bottoming out at Lexeme).

// Empty succeeds immediately without consuming input, producing v. Used
// directly, and as Option's "absent" branch.
func Empty(v Value) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		k.Next(env, constLazy(v), identityTransform)
	}
}

// FailWith never matches, recording msg as an expectation at the current
// position before calling fail.
func FailWith(msg string) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		env.Furthest.Observe(env.Buf, env.Pos, msg)
		fail(msg)
	}
}

// Seq runs g1 then g2 at the resulting position, producing Pair{x, y} where
// x is g1's value and y is g2's value (spec.md §4.F "seq").
func Seq(g1, g2 Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		k1 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			firstVal, ok := force(env1, lv1, t1, fail)
			if !ok {
				return
			}
			k2 := &Continuation{Next: func(env2 *Env, lv2 LazyValue, t2 *Transformer) {
				secondVal, ok := force(env2, lv2, t2, fail)
				if !ok {
					return
				}
				k.Next(env2, constLazy(Pair{First: firstVal, Second: secondVal}), identityTransform)
			}}
			g2(env1, k2, fail)
		}}
		g1(env, k1, fail)
	}
}

// Dseq runs g1, forces its value b, then runs select(b) at the resulting
// position, producing Pair{b, c} where c is the dynamically-chosen
// grammar's value (spec.md §4.F "dseq"). Unlike Seq, the first component
// must be forced before the second grammar can even be chosen — this is the
// combinator's defining difference.
func Dseq(g1 Grammar, selectNext func(Value) Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		k1 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			bVal, ok := force(env1, lv1, t1, fail)
			if !ok {
				return
			}
			g2 := selectNext(bVal)
			k2 := &Continuation{Next: func(env2 *Env, lv2 LazyValue, t2 *Transformer) {
				cVal, ok := force(env2, lv2, t2, fail)
				if !ok {
					return
				}
				k.Next(env2, constLazy(Pair{First: bVal, Second: cVal}), identityTransform)
			}}
			g2(env1, k2, fail)
		}}
		g1(env, k1, fail)
	}
}

// Alt tries g1 and g2 at the same position, both reporting through k — the
// engine's ambiguity support (spec.md §1/§4.F "alt"): both branches may
// succeed, and both results are recorded.
func Alt(g1, g2 Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		g1(env, k, fail)
		g2(env, k, fail)
	}
}

// AltMany is a variadic convenience built from Alt, left-associating like
// the teacher's n-ary helpers over binary primitives.
func AltMany(gs ...Grammar) Grammar {
	switch len(gs) {
	case 0:
		return FailWith("")
	case 1:
		return gs[0]
	default:
		g := gs[0]
		for _, next := range gs[1:] {
			g = Alt(g, next)
		}
		return g
	}
}

// Option matches g if possible, or nothing, producing g's value or nil
// (spec.md §4.F "option"). Both outcomes are reported when g can match at
// the current position, since the engine supports ambiguity.
func Option(g Grammar) Grammar {
	return Alt(g, Empty(nil))
}

// PredictSet is a first-character lookahead predicate (spec.md §4.F, §6):
// given the byte at a choice point's current position (eof true when none
// remains), it reports whether the branch it gates is even worth attempting.
// A nil PredictSet always allows its branch — "no useful lookahead" — the
// same as omitting the gate entirely.
type PredictSet func(b byte, eof bool) bool

func (cs PredictSet) allows(buf *Buffer, pos int) bool {
	if cs == nil {
		return true
	}
	b, ok := buf.ByteAt(pos)
	return cs(b, !ok)
}

// AltPredict is Alt gated by first-character lookahead (spec.md §4.F
// "alt(cs1,g1,cs2,g2)"): g1 only runs if cs1 allows the byte at the current
// position (after skipping layout), g2 only if cs2 allows it. Plain Alt
// always tries both branches regardless of what's ahead; AltPredict skips
// starting a branch its predict set has already ruled out, which matters
// for a branch that would otherwise run to a slow or Furthest-polluting
// failure on input it could never have matched. Both branches still run,
// and both may still succeed, whenever both predict sets allow the byte —
// this does not trade away ambiguity support, only unreachable attempts.
func AltPredict(cs1 PredictSet, g1 Grammar, cs2 PredictSet, g2 Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		skipped := env.skipBlank()
		tried := false
		if cs1.allows(skipped.Buf, skipped.Pos) {
			tried = true
			g1(env, k, fail)
		}
		if cs2.allows(skipped.Buf, skipped.Pos) {
			tried = true
			g2(env, k, fail)
		}
		if !tried {
			fail("")
		}
	}
}

// OptionPredict is Option gated by first-character lookahead (spec.md §4.F
// "option(x,cs,g)"): g only runs if cs allows the lookahead byte; the
// "absent" branch producing x is always available.
func OptionPredict(x Value, cs PredictSet, g Grammar) Grammar {
	return AltPredict(cs, g, nil, Empty(x))
}

// App runs g, then applies f to its value once forced (spec.md §4.F "app").
// Building App(g, f) never calls f; f only runs when some enclosing
// combinator forces this continuation's (lv, transform) pair.
func App(g Grammar, f func(Value) Value) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		k2 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			k.Next(env1, applyIncoming(t1, lv1), extendFunc(f, identityTransform))
		}}
		g(env, k2, fail)
	}
}

// TestBefore succeeds at the current position, without consuming input, iff
// pred holds there (spec.md §4.F "test_before" — zero-width lookahead).
func TestBefore(pred func(buf *Buffer, pos int) bool) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		if pred(env.Buf, env.Pos) {
			k.Next(env, constLazy(struct{}{}), identityTransform)
			return
		}
		fail("")
	}
}

// TestAfter runs g, then succeeds only if pred holds at the position g
// reached (spec.md §4.F "test_after" — trailing lookahead gate).
func TestAfter(g Grammar, pred func(buf *Buffer, pos int) bool) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		k2 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			if !pred(env1.Buf, env1.Pos) {
				fail("")
				return
			}
			k.Next(env1, lv1, t1)
		}}
		g(env, k2, fail)
	}
}

// LeftPos runs g, producing Pair{pos, value} where pos is the position
// *before* g ran (spec.md §4.F "left_pos").
func LeftPos(g Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		var leftPos Position
		if _, ok := env.Buf.ByteAt(env.Pos); ok {
			leftPos = PositionAt(env.Buf, env.Pos)
		} else {
			leftPos = PhantomPositionAt(env.Buf, env.Pos)
		}
		k2 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			val, ok := force(env1, lv1, t1, fail)
			if !ok {
				return
			}
			k.Next(env1, constLazy(Pair{First: leftPos, Second: val}), identityTransform)
		}}
		g(env, k2, fail)
	}
}

// RightPos runs g, producing Pair{pos, value} where pos is the position
// *after* g ran (spec.md §4.F "right_pos").
func RightPos(g Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		k2 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			val, ok := force(env1, lv1, t1, fail)
			if !ok {
				return
			}
			rightPos := PositionAt(env1.Buf, env1.Pos)
			k.Next(env1, constLazy(Pair{First: rightPos, Second: val}), identityTransform)
		}}
		g(env, k2, fail)
	}
}
