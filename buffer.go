package blob

import "io"

// LineID uniquely identifies a Line within a Buffer. Lines are addressed by
// ID through the Buffer's registry; NoLine marks the absence of a line.
type LineID uint64

// NoLine is the zero LineID, used where C code would hold a null pointer:
// an empty buffer, the first line's prev link, the last line's next link.
const NoLine LineID = 0

// Line is one line of the document: an owned Character Chain plus links to
// its neighbors. Lines carry no line numbers; position is purely relational.
type Line struct {
	id    LineID
	prev  LineID
	next  LineID
	chain Chain
}

// ID returns the line's identifier within its Buffer.
func (l *Line) ID() LineID { return l.id }

// Prev returns the previous line's ID, or NoLine for the first line.
func (l *Line) Prev() LineID { return l.prev }

// Next returns the next line's ID, or NoLine for the last line.
func (l *Line) Next() LineID { return l.next }

// Chain returns the line's owned Character Chain.
func (l *Line) Chain() *Chain { return &l.chain }

// Buffer is the full in-memory document: a doubly linked sequence of Lines
// addressed through a registry of stable IDs. An empty document is an empty
// registry with no first line, never a single empty Line.
type Buffer struct {
	registry map[LineID]*Line
	nextID   LineID
	first    LineID
	last     LineID
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{registry: make(map[LineID]*Line), nextID: 1}
}

// First returns the ID of the first line, or NoLine if the buffer is empty.
func (b *Buffer) First() LineID { return b.first }

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int { return len(b.registry) }

// Line resolves an ID to its Line. NoLine and unknown IDs resolve to nil.
func (b *Buffer) Line(id LineID) *Line {
	if id == NoLine {
		return nil
	}
	return b.registry[id]
}

// newLine registers a fresh unlinked Line owning chain.
func (b *Buffer) newLine(chain Chain) *Line {
	l := &Line{id: b.nextID, chain: chain}
	b.nextID++
	b.registry[l.id] = l
	return l
}

// Append adds a line at the end of the buffer. This is the load path; the
// interactive path inserts relative to the cursor via InsertAfter.
func (b *Buffer) Append(chain Chain) LineID {
	return b.InsertAfter(b.last, chain)
}

// InsertAfter links a new line owning chain immediately after the line
// identified by after, and returns the new line's ID. If after is NoLine the
// buffer must be empty and the new line becomes the first (and only) line.
func (b *Buffer) InsertAfter(after LineID, chain Chain) LineID {
	l := b.newLine(chain)

	at := b.Line(after)
	if at == nil {
		// Empty buffer: the new line stands alone.
		b.first = l.id
		b.last = l.id
		return l.id
	}

	l.prev = at.id
	l.next = at.next
	if at.next != NoLine {
		b.registry[at.next].prev = l.id
	} else {
		b.last = l.id
	}
	at.next = l.id
	return l.id
}

// Remove unlinks the identified line from the buffer and drops it from the
// registry, relinking its former neighbors to each other. Removing the first
// line moves the buffer's first to the removed line's next (possibly NoLine).
// It returns the removed line's former neighbors for cursor reassignment.
// Removing NoLine or an unknown ID is a no-op.
func (b *Buffer) Remove(id LineID) (prev, next LineID) {
	l := b.Line(id)
	if l == nil {
		return NoLine, NoLine
	}

	if b.first == id {
		b.first = l.next
	}
	if b.last == id {
		b.last = l.prev
	}
	if l.next != NoLine {
		b.registry[l.next].prev = l.prev
	}
	if l.prev != NoLine {
		b.registry[l.prev].next = l.next
	}
	delete(b.registry, id)
	return l.prev, l.next
}

// WriteTo flattens every line in order to w, each as its chain's content
// followed by one newline.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for id := b.first; id != NoLine; id = b.registry[id].next {
		n, err := b.registry[id].chain.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Close releases every line and resets the buffer to empty.
func (b *Buffer) Close() {
	b.registry = make(map[LineID]*Line)
	b.first = NoLine
	b.last = NoLine
}
