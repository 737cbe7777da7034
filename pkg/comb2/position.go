package comb2

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Buffer is an immutable, byte-addressable input stream. Positions within a
// parse are pairs (Buffer, column); the column is a byte offset into Data.
// Buffer carries a fresh identity (ID) distinct from any other Buffer value,
// including one built from the exact same bytes, so the cache's
// position-keyed table (see PosTable) can tell apart two forks of "the same"
// underlying bytes — e.g. the buffer ChangeLayout hands to its scoped
// sub-grammar is a distinct fork of the outer buffer's bytes.
type Buffer struct {
	ID       uuid.UUID
	Filename string
	Data     []byte

	// lineStarts[i] is the byte offset of the first byte of line i (0-based).
	lineStarts []int
}

// NewBuffer constructs a root Buffer over data, tagged with a fresh identity.
func NewBuffer(filename string, data []byte) *Buffer {
	return &Buffer{
		ID:         uuid.New(),
		Filename:   filename,
		Data:       data,
		lineStarts: computeLineStarts(data),
	}
}

// Fork returns a new Buffer over the same bytes but with a fresh identity.
// ChangeLayout uses this so that positions reached through the scoped
// sub-grammar never alias, in the cache's table, with positions reached
// through the outer blank function.
func (b *Buffer) Fork() *Buffer {
	return &Buffer{
		ID:         uuid.New(),
		Filename:   b.Filename,
		Data:       b.Data,
		lineStarts: b.lineStarts,
	}
}

func computeLineStarts(data []byte) []int {
	starts := []int{0}
	for i, c := range data {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// ByteAt reads the byte at column, reporting false past the end of Data.
func (b *Buffer) ByteAt(column int) (byte, bool) {
	if column < 0 || column >= len(b.Data) {
		return 0, false
	}
	return b.Data[column], true
}

// lineColOf returns the 0-based line and column-within-line for a byte
// offset, via binary search over lineStarts.
func (b *Buffer) lineColOf(column int) (line, col int) {
	i := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > column })
	line = i - 1
	if line < 0 {
		line = 0
	}
	col = column - b.lineStarts[line]
	return line, col
}

// utf8ColOf returns the rune-index column within the line containing column,
// counting UTF-8 lead bytes rather than raw bytes.
func (b *Buffer) utf8ColOf(column int) int {
	_, byteCol := b.lineColOf(column)
	lineStart := column - byteCol
	count := 0
	for i := lineStart; i < column; i++ {
		if b.Data[i]&0xC0 != 0x80 { // not a UTF-8 continuation byte
			count++
		}
	}
	return count
}

// Position is a lazily-derived, human-readable location. Phantom marks a
// synthetic position produced for an empty-input match, where line/column
// bookkeeping is meaningless but a position value is still required (LeftPos
// produces one when it starts at end of input; RightPos never does).
type Position struct {
	Filename   string
	Line       int // 0-based
	Column     int // 0-based, byte column within the line
	UTF8Column int // 0-based, rune column within the line
	Phantom    bool
}

// PositionAt derives the Position for (buf, column).
func PositionAt(buf *Buffer, column int) Position {
	line, col := buf.lineColOf(column)
	return Position{
		Filename:   buf.Filename,
		Line:       line,
		Column:     col,
		UTF8Column: buf.utf8ColOf(column),
	}
}

// PhantomPositionAt derives a Position for (buf, column) and marks it
// synthetic, for combinators that matched the empty string.
func PhantomPositionAt(buf *Buffer, column int) Position {
	p := PositionAt(buf, column)
	p.Phantom = true
	return p
}

// String renders "filename:line:column", 1-based for human consumption.
func (p Position) String() string {
	name := p.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line+1, p.Column+1)
}

// posKey is the cache/buffer table key: (buffer identity, column). Two
// positions compare equal only if they share both a buffer identity and a
// column, so two forks of the same bytes never collide.
type posKey struct {
	buf uuid.UUID
	col int
}

func keyOf(buf *Buffer, column int) posKey {
	return posKey{buf: buf.ID, col: column}
}

// PosTable is the position-keyed, type-heterogeneous associative table named
// in the Input Buffer contract. It is generic in its value type because each
// consumer (a Cache's answer slots, a LeftRec's fixpoint states) stores a
// different shape of value; a single comb2 parse may own several PosTable
// instances, one per Cache or LeftRec instance, each scoped to that
// instance's own lifetime.
type PosTable[V any] struct {
	m map[posKey]V
}

// NewPosTable creates an empty position table.
func NewPosTable[V any]() *PosTable[V] {
	return &PosTable[V]{m: make(map[posKey]V)}
}

// Lookup returns the value stored at (buf, column), if any.
func (t *PosTable[V]) Lookup(buf *Buffer, column int) (V, bool) {
	v, ok := t.m[keyOf(buf, column)]
	return v, ok
}

// Insert stores value at (buf, column), overwriting any prior entry.
func (t *PosTable[V]) Insert(buf *Buffer, column int, value V) {
	t.m[keyOf(buf, column)] = value
}
