package blob

import (
	"bytes"
	"testing"
)

// bufferOf builds a buffer holding the given lines in order.
func bufferOf(lines ...string) *Buffer {
	b := NewBuffer()
	for _, l := range lines {
		b.Append(ChainFromText([]byte(l)))
	}
	return b
}

// flatten returns the buffer's full text.
func flatten(t *testing.T, b *Buffer) string {
	t.Helper()
	var out bytes.Buffer
	if _, err := b.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	return out.String()
}

// checkLinks walks the buffer both ways and fails on any inconsistency.
func checkLinks(t *testing.T, b *Buffer) {
	t.Helper()

	var forward []LineID
	for id := b.First(); id != NoLine; id = b.Line(id).Next() {
		forward = append(forward, id)
		if len(forward) > b.Len() {
			t.Fatal("forward walk exceeds Len; cycle suspected")
		}
	}
	if len(forward) != b.Len() {
		t.Fatalf("forward walk saw %d lines, registry holds %d", len(forward), b.Len())
	}
	if len(forward) == 0 {
		return
	}

	if b.Line(forward[0]).Prev() != NoLine {
		t.Error("first line has a prev link")
	}
	last := forward[len(forward)-1]
	if b.Line(last).Next() != NoLine {
		t.Error("last line has a next link")
	}
	for id := last; id != NoLine; id = b.Line(id).Prev() {
		if forward[len(forward)-1] != id {
			t.Fatalf("backward walk out of order at %d", id)
		}
		forward = forward[:len(forward)-1]
	}
	if len(forward) != 0 {
		t.Fatalf("backward walk missed %d lines", len(forward))
	}
}

func TestNewBufferEmpty(t *testing.T) {
	b := NewBuffer()
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.First() != NoLine {
		t.Errorf("First() = %d, want NoLine", b.First())
	}
	if b.Line(NoLine) != nil {
		t.Error("Line(NoLine) should be nil")
	}
	if flatten(t, b) != "" {
		t.Error("empty buffer should flatten to nothing")
	}
}

func TestBufferAppendOrder(t *testing.T) {
	b := bufferOf("one", "two", "three")
	checkLinks(t, b)

	want := "one \ntwo \nthree \n"
	if got := flatten(t, b); got != want {
		t.Errorf("flatten = %q, want %q", got, want)
	}
}

func TestBufferInsertAfterMiddle(t *testing.T) {
	b := bufferOf("one", "three")
	first := b.First()

	b.InsertAfter(first, ChainFromText([]byte("two")))
	checkLinks(t, b)

	want := "one \ntwo \nthree \n"
	if got := flatten(t, b); got != want {
		t.Errorf("flatten = %q, want %q", got, want)
	}
}

func TestBufferInsertAfterLast(t *testing.T) {
	b := bufferOf("one")
	id := b.InsertAfter(b.First(), ChainFromText([]byte("two")))
	checkLinks(t, b)

	if b.Line(id).Next() != NoLine {
		t.Error("inserted line should be last")
	}
	b.Append(ChainFromText([]byte("three")))
	checkLinks(t, b)
	if got := flatten(t, b); got != "one \ntwo \nthree \n" {
		t.Errorf("flatten = %q", got)
	}
}

func TestBufferInsertIntoEmpty(t *testing.T) {
	b := NewBuffer()
	id := b.InsertAfter(NoLine, ChainFromText([]byte("only")))
	checkLinks(t, b)

	if b.First() != id {
		t.Errorf("First() = %d, want %d", b.First(), id)
	}
	l := b.Line(id)
	if l.Prev() != NoLine || l.Next() != NoLine {
		t.Error("sole line should have no links")
	}
}

func TestBufferRemoveMiddleRelinks(t *testing.T) {
	b := bufferOf("one", "two", "three")
	mid := b.Line(b.First()).Next()

	prev, next := b.Remove(mid)
	checkLinks(t, b)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	// Advancing from the previous line lands on the former next directly.
	if b.Line(prev).Next() != next {
		t.Error("prev no longer links to former next")
	}
	if b.Line(next).Prev() != prev {
		t.Error("next no longer links back to former prev")
	}
	if b.Line(mid) != nil {
		t.Error("removed line still resolvable")
	}
}

func TestBufferRemoveFirstMovesFirst(t *testing.T) {
	b := bufferOf("one", "two")
	second := b.Line(b.First()).Next()

	b.Remove(b.First())
	checkLinks(t, b)

	if b.First() != second {
		t.Errorf("First() = %d, want %d", b.First(), second)
	}
}

func TestBufferRemoveLast(t *testing.T) {
	b := bufferOf("one", "two")
	first := b.First()
	last := b.Line(first).Next()

	prev, next := b.Remove(last)
	checkLinks(t, b)

	if prev != first || next != NoLine {
		t.Errorf("Remove = (%d, %d), want (%d, NoLine)", prev, next, first)
	}
	if b.Line(first).Next() != NoLine {
		t.Error("surviving line should be last")
	}
}

func TestBufferRemoveOnlyLine(t *testing.T) {
	b := bufferOf("only")

	prev, next := b.Remove(b.First())
	checkLinks(t, b)

	if prev != NoLine || next != NoLine {
		t.Errorf("Remove = (%d, %d), want (NoLine, NoLine)", prev, next)
	}
	if b.Len() != 0 || b.First() != NoLine {
		t.Error("buffer should be empty")
	}
}

func TestBufferRemoveNoLine(t *testing.T) {
	b := bufferOf("one")
	prev, next := b.Remove(NoLine)
	if prev != NoLine || next != NoLine {
		t.Errorf("Remove(NoLine) = (%d, %d), want (NoLine, NoLine)", prev, next)
	}
	if b.Len() != 1 {
		t.Error("Remove(NoLine) must not change the buffer")
	}
}

func TestBufferAppendAfterRemoveAll(t *testing.T) {
	b := bufferOf("one")
	b.Remove(b.First())

	b.Append(ChainFromText([]byte("fresh")))
	checkLinks(t, b)
	if got := flatten(t, b); got != "fresh \n" {
		t.Errorf("flatten = %q, want %q", got, "fresh \n")
	}
}

func TestBufferClose(t *testing.T) {
	b := bufferOf("one", "two")
	b.Close()
	if b.Len() != 0 || b.First() != NoLine {
		t.Error("Close should empty the buffer")
	}
}
