// Package comb2lex provides ready-made comb2.Terminal and comb2.BlankFunc
// values for the common scanning needs a scannerless grammar still has to
// cover itself: single characters, character classes, literal keywords,
// numeric literals, and whitespace/comment skipping. It is a thin
// collaborator package, the way the teacher's fd_custom.go sits alongside
// the core engine to provide a library of ready-made propagators rather
// than forcing every caller to hand-write one — and the way the retrieved
// lexer packages (db47h/parsekit, openconfig/goyang's yang lexer) separate
// character classification from token assembly.
package comb2lex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gitrdm/comb2/pkg/comb2"
)

// Char matches a single rune satisfying pred, producing it as a string.
func Char(name string, pred func(r rune) bool) comb2.Terminal {
	return func(buf *comb2.Buffer, column int) (comb2.Value, int, bool, string) {
		r, size := decodeRuneAt(buf, column)
		if size == 0 || !pred(r) {
			return nil, column, false, name
		}
		return string(r), column + size, true, name
	}
}

// Literal matches the exact byte sequence s, producing s itself. Matching is
// byte-wise, so Literal is suitable both for ASCII keywords and for
// multi-byte UTF-8 punctuation. On a partial match, the reported column is
// the first diverging byte rather than the start of the attempt, so a long
// literal that matches most of the way still sharpens furthest-progress
// error reporting (spec.md scenario S5).
func Literal(s string) comb2.Terminal {
	b := []byte(s)
	return func(buf *comb2.Buffer, column int) (comb2.Value, int, bool, string) {
		for i, c := range b {
			got, ok := buf.ByteAt(column + i)
			if !ok || got != c {
				return nil, column + i, false, strconv.Quote(s)
			}
		}
		return s, column + len(b), true, strconv.Quote(s)
	}
}

// Keyword matches s only when it is not immediately followed by another
// identifier rune, so Keyword("if") does not match the first two bytes of
// "iffy". isIdentRune classifies what counts as "part of the same word".
func Keyword(s string, isIdentRune func(r rune) bool) comb2.Terminal {
	lit := Literal(s)
	return func(buf *comb2.Buffer, column int) (comb2.Value, int, bool, string) {
		val, newCol, ok, msg := lit(buf, column)
		if !ok {
			return nil, column, false, msg
		}
		if r, size := decodeRuneAt(buf, newCol); size > 0 && isIdentRune(r) {
			return nil, column, false, msg
		}
		return val, newCol, true, msg
	}
}

// floatPattern matches the usual decimal float literal grammar: digits,
// optional fractional part, optional exponent.
var floatPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`)

// Float matches a decimal numeric literal and produces its float64 value.
func Float() comb2.Terminal {
	return func(buf *comb2.Buffer, column int) (comb2.Value, int, bool, string) {
		if column > len(buf.Data) {
			return nil, column, false, "number"
		}
		loc := floatPattern.FindIndex(buf.Data[column:])
		if loc == nil || loc[0] != 0 {
			return nil, column, false, "number"
		}
		text := string(buf.Data[column : column+loc[1]])
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, column, false, "number"
		}
		return f, column + loc[1], true, "number"
	}
}

// Whitespace is a comb2.BlankFunc skipping ASCII spaces, tabs, and newlines.
func Whitespace(buf *comb2.Buffer, column int) int {
	for {
		b, ok := buf.ByteAt(column)
		if !ok || !isSpaceByte(b) {
			return column
		}
		column++
	}
}

// WhitespaceAndLineComments is a comb2.BlankFunc skipping both whitespace
// and line comments introduced by prefix (e.g. "//", "#").
func WhitespaceAndLineComments(prefix string) func(buf *comb2.Buffer, column int) int {
	return func(buf *comb2.Buffer, column int) int {
		for {
			next := Whitespace(buf, column)
			if hasPrefixAt(buf, next, prefix) {
				next = skipToLineEnd(buf, next+len(prefix))
			}
			if next == column {
				return column
			}
			column = next
		}
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func hasPrefixAt(buf *comb2.Buffer, column int, prefix string) bool {
	for i := 0; i < len(prefix); i++ {
		b, ok := buf.ByteAt(column + i)
		if !ok || b != prefix[i] {
			return false
		}
	}
	return len(prefix) > 0
}

func skipToLineEnd(buf *comb2.Buffer, column int) int {
	for {
		b, ok := buf.ByteAt(column)
		if !ok || b == '\n' {
			return column
		}
		column++
	}
}

func decodeRuneAt(buf *comb2.Buffer, column int) (rune, int) {
	if column >= len(buf.Data) {
		return 0, 0
	}
	r, size := utf8.DecodeRune(buf.Data[column:])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0
	}
	return r, size
}

// PredictByte returns a comb2.PredictSet matching exactly one byte; it never
// matches at end of input.
func PredictByte(b byte) comb2.PredictSet {
	return func(got byte, eof bool) bool {
		return !eof && got == b
	}
}

// PredictBytes returns a comb2.PredictSet matching any byte in bs; it never
// matches at end of input.
func PredictBytes(bs ...byte) comb2.PredictSet {
	set := make(map[byte]bool, len(bs))
	for _, b := range bs {
		set[b] = true
	}
	return func(got byte, eof bool) bool {
		return !eof && set[got]
	}
}

// PredictDigit returns a comb2.PredictSet matching an ASCII digit, the
// first-character lookahead a Float literal starts with.
func PredictDigit() comb2.PredictSet {
	return func(got byte, eof bool) bool {
		return !eof && got >= '0' && got <= '9'
	}
}

// IsLetter reports whether r is an ASCII letter or underscore, the usual
// identifier-start predicate.
func IsLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsIdentRune reports whether r may continue (not just start) an identifier.
func IsIdentRune(r rune) bool {
	return IsLetter(r) || (r >= '0' && r <= '9')
}

// Ident matches a run of identifier runes, starting with IsLetter.
func Ident() comb2.Terminal {
	return func(buf *comb2.Buffer, column int) (comb2.Value, int, bool, string) {
		r, size := decodeRuneAt(buf, column)
		if size == 0 || !IsLetter(r) {
			return nil, column, false, "identifier"
		}
		end := column + size
		for {
			r, size := decodeRuneAt(buf, end)
			if size == 0 || !IsIdentRune(r) {
				break
			}
			end += size
		}
		return string(buf.Data[column:end]), end, true, "identifier"
	}
}

// QuotedString matches a double-quoted string literal with backslash
// escapes, producing the unescaped content.
func QuotedString() comb2.Terminal {
	return func(buf *comb2.Buffer, column int) (comb2.Value, int, bool, string) {
		if b, ok := buf.ByteAt(column); !ok || b != '"' {
			return nil, column, false, "string literal"
		}
		var sb strings.Builder
		i := column + 1
		for {
			b, ok := buf.ByteAt(i)
			if !ok {
				return nil, column, false, "unterminated string literal"
			}
			if b == '"' {
				return sb.String(), i + 1, true, "string literal"
			}
			if b == '\\' {
				next, ok := buf.ByteAt(i + 1)
				if !ok {
					return nil, column, false, "unterminated string literal"
				}
				sb.WriteByte(unescape(next))
				i += 2
				continue
			}
			sb.WriteByte(b)
			i++
		}
	}
}

func unescape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return b
	}
}
