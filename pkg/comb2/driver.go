package comb2

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// This file is the Driver component (spec.md §4.I): the entry points that
// turn a Grammar plus an input source into results, wiring the Scheduler,
// root Environment, and furthest-progress reporting together the way the
// teacher's highlevel_api.go wires core.go's primitives into a runnable
// top-level call.

// FromString builds a root Buffer over an in-memory string.
func FromString(filename, src string) *Buffer {
	return NewBuffer(filename, []byte(src))
}

// FromReader reads r fully and builds a root Buffer over its bytes.
func FromReader(filename string, r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("comb2: reading %s: %w", filename, err)
	}
	return NewBuffer(filename, data), nil
}

// FromChannel drains ch, concatenating every chunk, and builds a root Buffer
// over the result — for sources that arrive incrementally (e.g. a network
// connection fed chunk-by-chunk into a channel upstream of the parser).
func FromChannel(filename string, ch <-chan []byte) *Buffer {
	var buf bytes.Buffer
	for chunk := range ch {
		buf.Write(chunk)
	}
	return NewBuffer(filename, buf.Bytes())
}

// Result is one successful completion: the semantic value produced, and the
// input position immediately after it.
type Result struct {
	Value Value
	Pos   int
}

// run drives g to completion over buf under blank, collecting every result
// it produces. If stopAfterFirst is set, the Scheduler is stopped the
// instant one result is recorded (spec.md §6's all_results=false policy);
// otherwise every ambiguous completion is collected.
func run(g Grammar, buf *Buffer, blank BlankFunc, stopAfterFirst bool) ([]Result, *Furthest) {
	sched := NewScheduler()
	env := rootEnv(buf, blank, sched)

	var results []Result
	final := &Continuation{Next: func(env1 *Env, lv1 LazyValue, t1 *Transformer) {
		val, ok := force(env1, lv1, t1, func(string) {})
		if !ok {
			return
		}
		results = append(results, Result{Value: val, Pos: env1.Pos})
		if stopAfterFirst {
			sched.Stop()
		}
	}}
	fail := func(msg string) { env.Furthest.Observe(env.Buf, env.Pos, msg) }

	g(env, final, fail)
	sched.Run()
	return results, env.Furthest
}

func parseErrorFrom(f *Furthest) *ParseError {
	buf, col, ok := f.Position()
	var pos Position
	if ok {
		pos = PositionAt(buf, col)
	}
	return &ParseError{Position: pos, Messages: f.Messages()}
}

// ParsePartial runs g over buf and returns the first result reached,
// without requiring it to consume the whole buffer (spec.md "parse_partial").
func ParsePartial(g Grammar, buf *Buffer, blank BlankFunc) (Value, int, error) {
	results, furthest := run(g, buf, blank, true)
	if len(results) == 0 {
		return nil, 0, parseErrorFrom(furthest)
	}
	return results[0].Value, results[0].Pos, nil
}

// ParseAll runs g over buf to full ambiguity, collecting every completion g
// reaches regardless of how much of buf it consumed (spec.md "parse_all").
func ParseAll(g Grammar, buf *Buffer, blank BlankFunc) ([]Value, error) {
	results, furthest := run(g, buf, blank, false)
	if len(results) == 0 {
		return nil, parseErrorFrom(furthest)
	}
	vals := make([]Value, len(results))
	for i, r := range results {
		vals[i] = r.Value
	}
	return vals, nil
}

// ParseToEnd runs g over buf to full ambiguity and keeps only the
// completions that consume buf in its entirety (spec.md "parse_to_end"). If
// none do, the error reports the furthest position actually reached, which
// may be short of end-of-input even when some completion existed.
func ParseToEnd(g Grammar, buf *Buffer, blank BlankFunc) ([]Value, error) {
	results, furthest := run(g, buf, blank, false)
	end := len(buf.Data)
	var vals []Value
	for _, r := range results {
		if r.Pos == end {
			vals = append(vals, r.Value)
		}
	}
	if len(vals) == 0 {
		return nil, parseErrorFrom(furthest)
	}
	return vals, nil
}

// DriverOptions configures the convenience wrapper Parse.
type DriverOptions struct {
	Style   ErrorStyle
	OnError ErrorHandler
}

// Parse runs g over buf to end-of-input. On a ParseError it prints the
// error to stderr in opts.Style and then calls opts.OnError (default:
// os.Exit(1)) rather than returning it, for callers that want a one-shot
// behavior instead of composing errors themselves.
func Parse(g Grammar, buf *Buffer, blank BlankFunc, opts DriverOptions) []Value {
	vals, err := ParseToEnd(g, buf, blank)
	if err != nil {
		var perr *ParseError
		if ok := asParseError(err, &perr); ok {
			fmt.Fprintln(os.Stderr, FormatParseError(perr, opts.Style))
			if opts.OnError == nil {
				os.Exit(1)
			}
			opts.OnError(perr)
			return nil
		}
	}
	return vals
}

func asParseError(err error, target **ParseError) bool {
	if pe, ok := err.(*ParseError); ok {
		*target = pe
		return true
	}
	return false
}
