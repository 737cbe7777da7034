package comb2

import "fmt"

// GrammarRef is a forward declaration for a Grammar that refers to itself or
// to a sibling declared later in the same file — Go has no letrec, so a
// recursive rule is built as Declare() now, Deref() wherever it is used, and
// Set() once the right-hand side is fully constructed (spec.md §4's
// "declare/set/deref" operations). This mirrors the teacher's pattern of
// building a relation's clauses after allocating its table (see dcg.go).
type GrammarRef struct {
	g Grammar
}

// Declare allocates an empty forward reference.
func Declare() *GrammarRef {
	return &GrammarRef{}
}

// Set installs g as the referenced grammar. Calling Set twice on the same
// reference is a programming error and panics, since it almost always means
// two unrelated rules were declared under one reference by mistake.
func (r *GrammarRef) Set(g Grammar) {
	if r.g != nil {
		panic("comb2: GrammarRef already set")
	}
	r.g = g
}

// Deref returns a Grammar that forwards to whatever r.Set installs. It may
// be embedded in other grammars before Set is called, as long as Set runs
// before any parse using it actually executes.
func (r *GrammarRef) Deref() Grammar {
	return func(env *Env, k *Continuation, fail Fail) {
		if r.g == nil {
			panic("comb2: dereferenced an undeclared grammar")
		}
		r.g(env, k, fail)
	}
}

// Family is an indexed set of mutually-recursive grammars, keyed by K — the
// shape priority-climbing grammars need (one rule per precedence level, each
// referring to its neighbors before all of them exist). DeclareFamily
// allocates the whole family up front; Set fills in one member at a time.
type Family[K comparable] struct {
	refs map[K]*GrammarRef
}

// DeclareFamily allocates one GrammarRef per key in keys.
func DeclareFamily[K comparable](keys []K) *Family[K] {
	f := &Family[K]{refs: make(map[K]*GrammarRef, len(keys))}
	for _, k := range keys {
		f.refs[k] = Declare()
	}
	return f
}

// Set installs g for key.
func (f *Family[K]) Set(key K, g Grammar) {
	ref, ok := f.refs[key]
	if !ok {
		panic(fmt.Sprintf("comb2: key %v not declared in this family", key))
	}
	ref.Set(g)
}

// Get returns the (lazily-dereferenced) grammar for key.
func (f *Family[K]) Get(key K) Grammar {
	ref, ok := f.refs[key]
	if !ok {
		panic(fmt.Sprintf("comb2: key %v not declared in this family", key))
	}
	return ref.Deref()
}
