package blob

// Cursor tracks the line presently addressed by commands within a Buffer.
// The pair (Buffer.First, Cursor.Current) is the full addressing state of a
// session: the start of the document and the position commands act on.
//
// Invariant: when current is not NoLine it is reachable from the buffer's
// first line by following next links, so the start is never after current.
type Cursor struct {
	buf     *Buffer
	current LineID
}

// NewCursor creates a cursor over buf positioned at the first line, or at
// NoLine when the buffer is empty.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf, current: buf.First()}
}

// Current returns the line the cursor addresses, or nil for an empty buffer.
func (c *Cursor) Current() *Line {
	return c.buf.Line(c.current)
}

// CurrentID returns the addressed line's ID, or NoLine.
func (c *Cursor) CurrentID() LineID { return c.current }

// Advance moves the cursor to the next line. It returns ErrEndOfBuffer,
// leaving the cursor unchanged, when the buffer is empty or the cursor is
// already on the last line.
func (c *Cursor) Advance() error {
	cur := c.Current()
	if cur == nil || cur.next == NoLine {
		return ErrEndOfBuffer
	}
	c.current = cur.next
	return nil
}

// Retreat moves the cursor to the previous line. It returns
// ErrStartOfBuffer, leaving the cursor unchanged, when the buffer is empty
// or the cursor is already on the first line.
func (c *Cursor) Retreat() error {
	cur := c.Current()
	if cur == nil || cur.prev == NoLine {
		return ErrStartOfBuffer
	}
	c.current = cur.prev
	return nil
}

// InsertAfter inserts a new line owning chain immediately after the cursor
// and moves the cursor onto it. On an empty buffer the new line becomes both
// the first line and the current line.
func (c *Cursor) InsertAfter(chain Chain) {
	c.current = c.buf.InsertAfter(c.current, chain)
}

// DeleteCurrent removes the addressed line from the buffer and repositions
// the cursor per reassignAfterDelete. Deleting with an empty cursor is a
// no-op that leaves the cursor empty.
func (c *Cursor) DeleteCurrent() {
	if c.current == NoLine {
		return
	}
	prev, next := c.buf.Remove(c.current)
	c.current = reassignAfterDelete(prev, next)
}

// reassignAfterDelete is the cursor reassignment policy applied after a
// deletion: the deleted line's next if one exists, else its previous if one
// exists, else NoLine (the buffer is now empty). Kept as its own function so
// the policy is stated and tested in one place.
func reassignAfterDelete(prev, next LineID) LineID {
	switch {
	case next != NoLine:
		return next
	case prev != NoLine:
		return prev
	default:
		return NoLine
	}
}
