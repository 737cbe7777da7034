package comb2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromReaderAndFromChannel(t *testing.T) {
	buf, err := FromReader("r.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf.Data))

	ch := make(chan []byte, 2)
	ch <- []byte("hel")
	ch <- []byte("lo")
	close(ch)
	cbuf := FromChannel("c.txt", ch)
	require.Equal(t, "hello", string(cbuf.Data))
}

func TestParseToEndRejectsPartialMatch(t *testing.T) {
	g := Lexeme(lit("a"))
	buf := NewBuffer("t", []byte("ab"))
	_, err := ParseToEnd(g, buf, NoBlank)
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	require.Equal(t, 0, perr.Position.Column)
}

func TestParseToEndSucceedsOnFullMatch(t *testing.T) {
	g := Seq(Lexeme(lit("a")), Lexeme(lit("b")))
	buf := NewBuffer("t", []byte("ab"))
	vals, err := ParseToEnd(g, buf, NoBlank)
	require.NoError(t, err)
	require.Len(t, vals, 1)
}

func TestFormatParseErrorStyles(t *testing.T) {
	buf := NewBuffer("f.txt", []byte("x"))
	perr := &ParseError{Position: PositionAt(buf, 0), Messages: []string{"'a'", "'b'"}}

	gcc := FormatParseError(perr, StyleGCC)
	require.Contains(t, gcc, "f.txt:1:1")
	require.Contains(t, gcc, "expecting: 'a', 'b'")

	ocaml := FormatParseError(perr, StyleOCaml)
	require.Contains(t, ocaml, `File "f.txt", line 1, character 1`)
}

func TestParseStopsAfterFirstResultWithParsePartial(t *testing.T) {
	runs := 0
	g := Alt(
		Grammar(func(env *Env, k *Continuation, fail Fail) {
			runs++
			k.Next(env, constLazy("first"), identityTransform)
		}),
		Grammar(func(env *Env, k *Continuation, fail Fail) {
			runs++
			k.Next(env, constLazy("second"), identityTransform)
		}),
	)
	buf := NewBuffer("t", []byte(""))
	val, _, err := ParsePartial(g, buf, NoBlank)
	require.NoError(t, err)
	require.Equal(t, "first", val)
}
