package comb2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFurthestTracksRightmostPosition(t *testing.T) {
	f := NewFurthest()
	buf := NewBuffer("f", []byte("abcdef"))

	f.Observe(buf, 2, "expected 'x'")
	f.Observe(buf, 4, "expected 'y'")
	f.Observe(buf, 1, "expected 'z'")

	_, col, ok := f.Position()
	assert.True(t, ok)
	assert.Equal(t, 4, col)
	assert.Equal(t, []string{"expected 'y'"}, f.Messages())
}

func TestFurthestMergesMessagesAtSamePosition(t *testing.T) {
	f := NewFurthest()
	buf := NewBuffer("f", []byte("abc"))

	f.Observe(buf, 2, "expected 'x'")
	f.Observe(buf, 2, "expected 'y'")
	f.Observe(buf, 2, "expected 'x'") // duplicate, must be deduped

	assert.Equal(t, []string{"expected 'x'", "expected 'y'"}, f.Messages())
}

func TestFurthestResetsOnNewBufferAtSameColumn(t *testing.T) {
	f := NewFurthest()
	buf := NewBuffer("f", []byte("abc"))
	fork := buf.Fork()

	f.Observe(buf, 1, "from outer")
	f.Observe(fork, 1, "from inner")

	_, col, ok := f.Position()
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, []string{"from inner"}, f.Messages())
}
