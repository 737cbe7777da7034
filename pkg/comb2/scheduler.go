package comb2

import "sort"

// Residual is a suspended continuation invocation: the work Lexeme defers to
// the Scheduler instead of calling k.Next in place, so that resumption order
// across an entire parse is governed by the frontier, not by Go's call
// stack (spec.md §5's "residual/frontier-based suspension exactly at lexeme
// consumption"). This is also what keeps stack depth bounded for long
// right-recursive inputs: the recursive Go call chain between one Lexeme
// match and the next is shallow (one grammar's combinator depth), and the
// Scheduler's Run loop is iterative, not recursive, across lexemes.
type Residual struct {
	Env       *Env
	K         *Continuation
	LV        LazyValue
	Transform *Transformer
}

// Scheduler holds the frontier of suspended residuals for one parse.
// Single-threaded by design (spec.md §5): no locking, no goroutines, no
// channels. Ordering is by position ascending, then by merge depth
// descending, so that at one position the residuals running inside a Cache
// slot or LeftRec round resume before shallower ones — see cache.go and
// leftrec.go.
type Scheduler struct {
	queue   []Residual
	stopped bool
	log     Logger
}

// NewScheduler creates an empty frontier with no logging.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// NewSchedulerWithLogger creates an empty frontier that traces each residual
// it resumes through l — useful when diagnosing why a grammar explored more
// of the frontier than expected.
func NewSchedulerWithLogger(l Logger) *Scheduler {
	return &Scheduler{log: l}
}

// Enqueue adds a residual to the frontier. A no-op once Stop has been
// called, so grammars still unwinding after an early stop don't keep
// growing the queue.
func (s *Scheduler) Enqueue(r Residual) {
	if s.stopped {
		return
	}
	s.queue = append(s.queue, r)
}

// Stop discards the frontier and suppresses further enqueues, implementing
// the single-result driver's early exit (spec.md §6's "all_results=false"
// policy): once one full parse has been recorded, there is no need to
// explore the remaining ambiguity.
func (s *Scheduler) Stop() {
	s.stopped = true
	s.queue = nil
}

// Run drains the frontier, always resuming the earliest-positioned,
// deepest-merge-depth residual first, until empty or Stop is called.
func (s *Scheduler) Run() {
	for len(s.queue) > 0 {
		sort.SliceStable(s.queue, func(i, j int) bool {
			a, b := s.queue[i], s.queue[j]
			if a.Env.Pos != b.Env.Pos {
				return a.Env.Pos < b.Env.Pos
			}
			return a.Env.MergeDepth > b.Env.MergeDepth
		})
		r := s.queue[0]
		s.queue = s.queue[1:]
		if s.stopped {
			continue
		}
		logf(s.log, "comb2: resuming residual at pos=%d mergeDepth=%d (%d queued)", r.Env.Pos, r.Env.MergeDepth, len(s.queue))
		r.K.Next(r.Env, r.LV, r.Transform)
	}
}
