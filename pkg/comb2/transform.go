package comb2

// Value is any semantic value flowing through the engine: a terminal's
// parsed literal, a Pair built by Seq/Dseq/LeftPos/RightPos, or a
// user-defined AST node produced by App's function.
type Value = any

// Pair is the tuple produced by Seq (x, y), Dseq (b, c), LeftPos (pos,
// value), and RightPos (pos, value). It plays the role the teacher's cons
// cell (core.go's Pair: car/cdr) plays for logic terms, specialized here to
// a fixed two-element tuple since the engine never needs arbitrary-length
// structural sharing.
type Pair struct {
	First  Value
	Second Value
}

// LazyValue is a thunk that produces a Value or fails with ErrNoParse/a
// *GiveUp — the "lazy value guarded by give-up" of spec.md §9. Combinators
// force it through force (continuation.go), so rejection never leaks as a
// raw panic.
type LazyValue func() (Value, error)

func constLazy(v Value) LazyValue {
	return func() (Value, error) { return v, nil }
}

// transformKind tags the small closed variant spec.md §3 calls Transformer.
type transformKind int

const (
	tIdentity transformKind = iota
	tApplyArg
	tApplyFunc
)

// Transformer is the deferred semantic action described in spec.md §3/§4.D:
// a left-biased chain of pending operations. Every combinator boundary
// evaluates the chain it receives via force (continuation.go), so a chain
// never spans more than one combinator's nesting; see DESIGN.md's
// "Transformer forcing granularity" note. Eval is O(depth).
type Transformer struct {
	kind  transformKind
	arg   Value             // tApplyArg
	fn    func(Value) Value // tApplyFunc
	inner *Transformer
}

// identityTransform is the base case: Eval returns its input unchanged.
var identityTransform = &Transformer{kind: tIdentity}

// extendArg returns a transformer applying ApplyArg(v) ahead of inner,
// wrapping cur as Pair{v, cur} without forcing cur early. No combinator in
// this package uses it: Seq/Dseq/LeftPos/RightPos force their parts and
// build the Pair directly.
func extendArg(v Value, inner *Transformer) *Transformer {
	return &Transformer{kind: tApplyArg, arg: v, inner: inner}
}

// extendFunc returns a transformer composing f ahead of inner.
func extendFunc(f func(Value) Value, inner *Transformer) *Transformer {
	return &Transformer{kind: tApplyFunc, fn: f, inner: inner}
}

// Eval walks the chain, applying each pending operation to cur in turn.
func (t *Transformer) Eval(cur Value) (Value, error) {
	if t == nil || t.kind == tIdentity {
		return cur, nil
	}
	switch t.kind {
	case tApplyArg:
		return t.inner.Eval(Pair{First: t.arg, Second: cur})
	case tApplyFunc:
		return t.inner.Eval(t.fn(cur))
	default:
		return cur, nil
	}
}

// applyIncoming wraps lv so that forcing it also threads it through
// transformIn. Every custom continuation "next" closure in this package
// uses this to fold the transform parameter it was handed into the lazy
// value it passes onward, instead of assuming it is always Identity — see
// DESIGN.md's "Transformer forcing granularity" note.
func applyIncoming(transformIn *Transformer, lv LazyValue) LazyValue {
	if transformIn == nil || transformIn.kind == tIdentity {
		return lv
	}
	return func() (Value, error) {
		raw, err := lv()
		if err != nil {
			return nil, err
		}
		return transformIn.Eval(raw)
	}
}
