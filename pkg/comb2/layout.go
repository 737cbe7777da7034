package comb2

// ChangeLayout is the Layout Change component (spec.md §4.J): it runs g
// under a different blank-skipping function, scoped strictly to g, and
// restores the outer BlankFunc once g completes. The sub-grammar runs
// against a forked Buffer (see Buffer.Fork) so that any Cache/LeftRec answer
// tables keyed by buffer identity never alias a position reached under the
// scoped layout with the "same" raw position reached under the outer one —
// the two can disagree about how much whitespace/commentary was skipped
// there.
func ChangeLayout(blank BlankFunc, g Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		scoped := env.Buf.Fork()
		inner := &Env{
			Buf:        scoped,
			Pos:        env.Pos,
			Blank:      blank,
			Furthest:   env.Furthest,
			Keys:       env.Keys,
			MergeDepth: env.MergeDepth,
			Sched:      env.Sched,
		}
		k2 := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			restored := env.withPos(env1.Pos)
			k.Next(restored, lv1, t1)
		}}
		g(inner, k2, fail)
	}
}
