package comb2

// Terminal is the contract every lexeme-matching function satisfies
// (spec.md §6): given the buffer and a column already past any skipped
// layout, attempt to match, returning the parsed value and the column
// immediately after the match. ok is false on no match, in which case msg is
// an expectation string ("expected 'foo'") to record at the furthest
// position reached; newColumn should still report how far the attempt got
// before diverging (e.g. the byte index of the first mismatched character
// in a multi-character literal), so a partial match inside a longer token
// still sharpens the furthest-progress report. Terminal implementations
// live in pkg/comb2lex; this package only depends on the contract.
type Terminal func(buf *Buffer, column int) (value Value, newColumn int, ok bool, msg string)

// Lexeme wraps term as the single point where a Grammar may consume input.
// It is the only combinator that enqueues work on the Scheduler: on a match, it
// hands the continuation to the frontier as a Residual instead of invoking
// it in place (spec.md §5/§7), which is what lets an arbitrarily long chain
// of lexemes resolve without growing the Go call stack.
func Lexeme(term Terminal) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		skipped := env.skipBlank()
		val, newCol, ok, msg := term(skipped.Buf, skipped.Pos)
		if !ok {
			failCol := newCol
			if failCol < skipped.Pos {
				failCol = skipped.Pos
			}
			skipped.Furthest.Observe(skipped.Buf, failCol, msg)
			fail(msg)
			return
		}
		nextEnv := skipped.withPos(newCol)
		env.Sched.Enqueue(Residual{
			Env:       nextEnv,
			K:         k,
			LV:        constLazy(val),
			Transform: identityTransform,
		})
	}
}
