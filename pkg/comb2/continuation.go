package comb2

// Fail is called by a grammar (directly, or via a terminal it wraps) when it
// cannot match at the current position. msg is an optional expectation
// string recorded at the current furthest position (spec.md §4.A/§7).
type Fail func(msg string)

// NextFn is invoked exactly once per successful match a grammar produces:
// lv is the raw value produced (not yet run through transform), and
// transform is the chain of pending Pair-wrapping/App operations still to
// apply. Every combinator forces (lv, transform) via the force helper below
// before building its own onward continuation, so Transformer chains never
// span more than one combinator's worth of nesting — see DESIGN.md's note
// on why this engine eagerizes per-combinator rather than only at lexeme
// boundaries.
type NextFn func(env *Env, lv LazyValue, transform *Transformer)

// Continuation is what a Grammar invokes on success. It is a thin wrapper
// around NextFn so call sites read as k.Next(...) rather than a bare
// function value, matching the teacher's preference for named receiver
// methods over loose func values at API boundaries.
type Continuation struct {
	Next NextFn
}

// Grammar is the CPS core of the engine (spec.md §3/§4.D): given an
// environment, it either calls k.Next with each match it finds (Alt may call
// it more than once, for ambiguity) or calls fail. A Grammar never returns a
// value directly; every result reaches its caller exclusively through k.
type Grammar func(env *Env, k *Continuation, fail Fail)

// force resolves (lv, transform) to a concrete Value, reporting failure
// through fail and the shared Furthest tracker if evaluation rejects via
// ErrNoParse or *GiveUp. Any other error is a programming error in a
// semantic action and is not a parse failure — it propagates as a panic,
// per spec.md §7's "any other error propagates unchanged".
func force(env *Env, lv LazyValue, transform *Transformer, fail Fail) (Value, bool) {
	v, err := applyIncoming(transform, lv)()
	if err == nil {
		return v, true
	}
	if !isRecoverable(err) {
		panic(err)
	}
	msg := giveUpMessage(err)
	env.Furthest.Observe(env.Buf, env.Pos, msg)
	fail(msg)
	return nil, false
}
