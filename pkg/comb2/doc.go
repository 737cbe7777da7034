// Package comb2 implements a scannerless, context-free parser combinator
// engine. Grammars are built by composing first-class combinator values
// (terminals wrapped by Lexeme, plus Seq, Dseq, Alt, Option, App,
// LeftRec.Wrap, Cache.Wrap, and friends) and run against a byte-indexed
// Buffer with Parse, ParseAll, or ParseToEnd.
//
// The engine supports ambiguous grammars (ParseAll returns every parse),
// handles left recursion safely (LeftRec), and achieves polynomial time on
// non-ambiguous grammars via the Cache combinator's memoization.
//
// Scheduling model: single-threaded and cooperative. A grammar either
// succeeds synchronously, fails synchronously, or — on consuming a lexeme —
// suspends as a residual on the scheduler's frontier. The scheduler advances
// the frontier in position order, so all live alternatives progress in
// lockstep across the input. There is no goroutine or channel concurrency in
// the evaluation loop itself; see Scheduler for the ordering guarantees.
// A Scheduler built with NewSchedulerWithLogger traces scheduler steps,
// cache hits and misses, and left-recursion fixpoint rounds through a
// Logger; the Parse* drivers build their Scheduler without one and take no
// logger option.
//
// comb2 is not safe for concurrent parses that share the same Cache-bearing
// grammar value: a Cache's memo tables are mutated during a parse and are
// not synchronized.
package comb2

// Version identifies the current release of the comb2 engine.
const Version = "0.1.0"
