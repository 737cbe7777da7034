package comb2

// This file implements the Left Recursion component (spec.md §4.G),
// grounded on the teacher's DCG/tabling fixpoint machinery (dcg.go,
// tabling.go, slg_engine.go): a left-recursive rule is solved by seeding an
// initial (failing) answer, growing it by re-running the rule body with the
// seed visible to recursive self-calls at the same position, and stopping
// once a growth attempt produces no further progress — the classic
// "grow the seed" algorithm (Warth, Douglass & Millstein 2008), adapted to
// this package's single-threaded, CPS style.
//
// Simplification, documented in DESIGN.md: growth keeps only the
// rightmost-reaching answer from each round rather than the full ambiguous
// result set, so a left-recursive rule that is also genuinely ambiguous at
// the same length is resolved to one winner. Combine LeftRec with Cache (see
// cache.go) for a rule that needs both elimination and full ambiguity.

type lrSeed struct {
	pos int
	val Value
	ok  bool
}

type lrState struct {
	computing bool
	seed      lrSeed
	final     bool
	result    lrSeed
}

// LeftRec holds the per-rule fixpoint table, keyed by starting position. One
// LeftRec instance belongs to exactly one left-recursive rule; each rule gets
// its own instance from NewLeftRec, matching the teacher's
// one-table-per-relation tabling convention.
type LeftRec struct {
	table *PosTable[*lrState]
	key   *Key[lrSeed]
}

// NewLeftRec allocates a fresh, empty fixpoint table for one rule.
func NewLeftRec() *LeftRec {
	return &LeftRec{table: NewPosTable[*lrState](), key: NewKey[lrSeed]()}
}

// Wrap applies the seed-growing protocol to g, the rule body (spec.md's
// "lr" operation). g may call back into the very Grammar Wrap returns — that
// self-call, at the same position, is what makes this left recursion.
func (lr *LeftRec) Wrap(g Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		if st, found := lr.table.Lookup(env.Buf, env.Pos); found {
			if st.final {
				replayResult(env, k, fail, st.result)
				return
			}
			if st.computing {
				if seed, ok := Lookup(env.Keys, lr.key); ok && seed.ok {
					replayResult(env, k, fail, seed)
					return
				}
				fail("left recursion: no seed yet")
				return
			}
		}
		lr.grow(env, g, k, fail)
	}
}

// grow runs the classic fixpoint loop: seed with failure, then repeatedly
// re-run g with the best seed so far installed in the environment's key
// store, stopping when a round fails to advance past the previous seed's
// position.
//
// Each round gets its own Scheduler. g's self-calls at the same position
// resolve synchronously, but any lexeme g consumes reports through a
// Residual on the Scheduler instead of calling its continuation in place
// (terminal.go), so best can only be read correctly once that round's
// frontier has fully drained — draining the outer driver's Scheduler would
// not do, since that only happens after grow itself returns. A local
// Scheduler gives each round the synchronous barrier the fixpoint needs.
func (lr *LeftRec) grow(env *Env, g Grammar, k *Continuation, fail Fail) {
	st := &lrState{computing: true, seed: lrSeed{pos: -1}}
	lr.table.Insert(env.Buf, env.Pos, st)

	for {
		roundSched := &Scheduler{log: env.Sched.log}
		roundEnv := env.withKeys(With(env.Keys, lr.key, st.seed)).
			withMergeDepth(env.MergeDepth + 1).
			withSched(roundSched)
		best := lrSeed{pos: -1}
		g(roundEnv, &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			val, ok := force(env1, lv1, t1, func(string) {})
			if ok && env1.Pos > best.pos {
				best = lrSeed{pos: env1.Pos, val: val, ok: true}
			}
		}}, func(string) {})
		roundSched.Run()
		logf(env.Sched.log, "comb2: left-recursion round at pos=%d grew seed from %d to %d (ok=%v)", env.Pos, st.seed.pos, best.pos, best.ok)

		if !best.ok || best.pos <= st.seed.pos {
			break
		}
		st.seed = best
	}

	st.computing = false
	st.final = true
	st.result = st.seed
	replayResult(env, k, fail, st.result)
}

func replayResult(env *Env, k *Continuation, fail Fail, r lrSeed) {
	if !r.ok {
		fail("no parse")
		return
	}
	k.Next(env.withPos(r.pos), constLazy(r.val), identityTransform)
}
