package comb2

import "reflect"

// This file is the Cache component (spec.md §4.H): position-keyed
// memoization of a rule's results, grounded on the teacher's tabling.go
// (one answer table per tabled relation, first caller computes, later
// callers replay). Unlike LeftRec, Cache never grows a seed — it runs the
// wrapped grammar exactly once per (rule, position) and records every
// distinct result reached, so overlapping Alt branches that funnel through
// the same cached sub-rule at the same position don't re-run it, and
// ambiguous results are deduplicated rather than reported once per path.

type cacheResult struct {
	pos int
	val Value
}

// waiter is one continuation registered against a cache entry, paired with
// the Env it arrived under — kept so a result can be delivered back at that
// caller's own MergeDepth rather than the depth the wrapped grammar ran at.
type waiter struct {
	env *Env
	k   *Continuation
}

type cacheEntry struct {
	// entering is true only for the duration of the synchronous call that
	// creates this entry. It exists solely to catch a same-stack-frame
	// reentry at this (rule, position) before the wrapped grammar has even
	// returned — a non-left-recursive cycle, and a grammar error. It is not
	// "still computing": the wrapped grammar's results typically keep
	// arriving long after the call that created the entry has returned, via
	// residuals the Scheduler drains later (terminal.go), so there is no
	// single moment after which "computing" ends.
	entering bool
	results  []cacheResult
	waiting  []waiter
}

// Cache holds the answer table for one rule. Each rule that opts in to
// memoization gets its own instance from NewCache.
type Cache struct {
	table *PosTable[*cacheEntry]
}

// NewCache allocates an empty answer table.
func NewCache() *Cache {
	return &Cache{table: NewPosTable[*cacheEntry]()}
}

// Wrap applies memoization to g (spec.md §4.H). The first call at a given
// (rule, position) runs g once and registers itself as a waiter; every
// later call at the same slot registers as another waiter and replays
// whatever results are already recorded. Results are never collected by
// reading state back out after g returns — g's continuation may fire long
// after g itself returns, once a consumed lexeme's Residual reaches the
// front of the Scheduler's queue (terminal.go), so every result is instead
// broadcast to every registered waiter, in its own Env, the instant it
// arrives. A second entry into the same (rule, position) within the same
// synchronous call stack indicates a non-left-recursive cycle — a grammar
// error — and is reported as a failed parse rather than looping; genuine
// left recursion should go through LeftRec instead, which is designed for
// exactly that self-reentry.
func (c *Cache) Wrap(g Grammar) Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		if entry, found := c.table.Lookup(env.Buf, env.Pos); found {
			if entry.entering {
				fail("cache: cyclic rule reentry")
				return
			}
			logf(env.Sched.log, "comb2: cache hit at pos=%d (%d results so far)", env.Pos, len(entry.results))
			entry.waiting = append(entry.waiting, waiter{env: env, k: k})
			for _, r := range entry.results {
				k.Next(env.withPos(r.pos), constLazy(r.val), identityTransform)
			}
			return
		}

		logf(env.Sched.log, "comb2: cache miss at pos=%d, running wrapped grammar", env.Pos)
		entry := &cacheEntry{entering: true}
		c.table.Insert(env.Buf, env.Pos, entry)
		entry.waiting = append(entry.waiting, waiter{env: env, k: k})

		innerEnv := env.withMergeDepth(env.MergeDepth + 1)
		g(innerEnv, &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
			val, ok := force(env1, lv1, t1, func(string) {})
			if !ok {
				return
			}
			r := cacheResult{pos: env1.Pos, val: val}
			for _, existing := range entry.results {
				if existing.pos == r.pos && reflect.DeepEqual(existing.val, r.val) {
					return
				}
			}
			entry.results = append(entry.results, r)
			for _, w := range entry.waiting {
				w.k.Next(w.env.withPos(r.pos), constLazy(r.val), identityTransform)
			}
		}}, func(string) {})

		entry.entering = false
	}
}
