package comb2

import "testing"

func TestPositionAtLineAndColumn(t *testing.T) {
	buf := NewBuffer("t.txt", []byte("ab\ncd\nef"))
	cases := []struct {
		col        int
		line, ccol int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{6, 2, 0},
	}
	for _, c := range cases {
		p := PositionAt(buf, c.col)
		if p.Line != c.line || p.Column != c.ccol {
			t.Errorf("PositionAt(%d) = line %d col %d, want line %d col %d", c.col, p.Line, p.Column, c.line, c.ccol)
		}
	}
}

func TestBufferForkHasDistinctIdentity(t *testing.T) {
	buf := NewBuffer("t.txt", []byte("abc"))
	fork := buf.Fork()
	if fork.ID == buf.ID {
		t.Fatal("Fork() must produce a fresh identity")
	}
	if string(fork.Data) != string(buf.Data) {
		t.Fatal("Fork() must preserve bytes")
	}
}

func TestPosTableDistinguishesForkedBuffers(t *testing.T) {
	buf := NewBuffer("t.txt", []byte("abc"))
	fork := buf.Fork()
	tbl := NewPosTable[string]()
	tbl.Insert(buf, 1, "outer")
	tbl.Insert(fork, 1, "inner")

	outer, ok := tbl.Lookup(buf, 1)
	if !ok || outer != "outer" {
		t.Fatalf("expected outer entry, got %q, %v", outer, ok)
	}
	inner, ok := tbl.Lookup(fork, 1)
	if !ok || inner != "inner" {
		t.Fatalf("expected inner entry, got %q, %v", inner, ok)
	}
}

func TestPositionStringIsOneBased(t *testing.T) {
	buf := NewBuffer("f.txt", []byte("x"))
	p := PositionAt(buf, 0)
	if got, want := p.String(), "f.txt:1:1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
