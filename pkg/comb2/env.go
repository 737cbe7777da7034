package comb2

// BlankFunc skips layout (whitespace/comments) starting at column, returning
// the column immediately after the skipped span. It is the Environment's
// plug-in point for layout scanning (spec.md §4.C / component J); ChangeLayout
// installs a new BlankFunc scoped to one sub-grammar.
type BlankFunc func(buf *Buffer, column int) int

// NoBlank is the default BlankFunc: it skips nothing. A grammar that wants
// whitespace skipping is run with one passed explicitly to the driver (see
// comb2lex.Whitespace).
func NoBlank(buf *Buffer, column int) int { return column }

// Env is the Environment threaded through every Grammar call: the
// position to match at, the active layout-skipper, the shared
// furthest-progress tracker, the left-recursion key store, and the merge
// depth used to order the scheduler's frontier (spec.md §4.C).
type Env struct {
	Buf   *Buffer
	Pos   int
	Blank BlankFunc

	Furthest *Furthest
	Keys     *KeyStore

	// MergeDepth counts how many Cache slots and LeftRec growth rounds this
	// Env's path is currently inside. The Scheduler orders same-position
	// residuals by MergeDepth descending, so residuals running inside a
	// cached or left-recursive rule resume before shallower ones at the same
	// position, matching spec.md §9's ordering requirement.
	MergeDepth int

	Sched *Scheduler
}

// rootEnv builds the Env a parse starts from: position 0, fresh furthest
// tracker, empty key store, depth 0.
func rootEnv(buf *Buffer, blank BlankFunc, sched *Scheduler) *Env {
	if blank == nil {
		blank = NoBlank
	}
	return &Env{
		Buf:      buf,
		Pos:      0,
		Blank:    blank,
		Furthest: NewFurthest(),
		Keys:     EmptyKeyStore,
		Sched:    sched,
	}
}

// withPos returns a copy of e positioned at pos, with the key store cleared
// — used after a successful terminal match, per invariant 3 ("left-recursion
// state never survives a lexeme boundary").
func (e *Env) withPos(pos int) *Env {
	cp := *e
	cp.Pos = pos
	cp.Keys = EmptyKeyStore
	return &cp
}

// withKeys returns a copy of e carrying ks instead of e.Keys, position
// unchanged. LeftRec uses this to install its fixpoint-iteration binding without
// touching position.
func (e *Env) withKeys(ks *KeyStore) *Env {
	cp := *e
	cp.Keys = ks
	return &cp
}

// withBlank returns a copy of e using blank instead of e.Blank, for the
// scoped sub-grammar of ChangeLayout.
func (e *Env) withBlank(blank BlankFunc) *Env {
	cp := *e
	cp.Blank = blank
	return &cp
}

// withMergeDepth returns a copy of e at the given merge depth, used by Cache
// when entering a merge-slot.
func (e *Env) withMergeDepth(depth int) *Env {
	cp := *e
	cp.MergeDepth = depth
	return &cp
}

// withSched returns a copy of e running against sched instead of e.Sched.
// LeftRec uses this to give each growth round its own private frontier, so
// draining it to quiescence is a real barrier the round can read a final
// answer across, rather than racing the grammar's own driver-level Scheduler.
func (e *Env) withSched(sched *Scheduler) *Env {
	cp := *e
	cp.Sched = sched
	return &cp
}

// skipBlank applies e.Blank at e.Pos and returns a copy of e positioned past
// the skipped layout, leaving the key store untouched (layout skipping is
// not itself a lexeme boundary).
func (e *Env) skipBlank() *Env {
	newPos := e.Blank(e.Buf, e.Pos)
	if newPos == e.Pos {
		return e
	}
	cp := *e
	cp.Pos = newPos
	return &cp
}
