package blob

import (
	"bytes"
	"io"
)

// charIndex addresses a Character within its Chain's arena.
// noChar marks the absence of a neighbor.
type charIndex = int32

const noChar charIndex = -1

// Character is one byte of a line's content plus links to its neighbors.
// Links are arena indices rather than pointers, so splicing cannot dangle
// and traversal is bounds-checked by the slice.
type Character struct {
	C    byte
	prev charIndex
	next charIndex
}

// Chain is the ordered byte content of one Line, stored as a doubly linked
// sequence of Characters inside an arena owned by the Chain. The stored
// content never includes a line terminator.
//
// A chain built from a complete input line always ends with a single space
// Character appended after the real content. This reproduces the historical
// parsing behavior and is part of the on-disk round-trip contract: a stored
// line is its content, one space, then one newline.
type Chain struct {
	chars []Character
	head  charIndex
	tail  charIndex
}

// ChainFromText converts one raw line of text into a Chain. The scan stops
// at the first '\n' or at the end of the input, whichever comes first; both
// terminations append the trailing space Character described on Chain.
func ChainFromText(raw []byte) Chain {
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}

	c := Chain{
		chars: make([]Character, 0, len(raw)+1),
		head:  noChar,
		tail:  noChar,
	}
	for _, b := range raw {
		c.append(b)
	}
	c.append(' ')
	return c
}

// append links a new Character holding b at the tail of the chain.
func (c *Chain) append(b byte) {
	idx := charIndex(len(c.chars))
	c.chars = append(c.chars, Character{C: b, prev: c.tail, next: noChar})
	if c.tail != noChar {
		c.chars[c.tail].next = idx
	} else {
		c.head = idx
	}
	c.tail = idx
}

// Len returns the number of Characters in the chain, trailing space included.
func (c *Chain) Len() int {
	n := 0
	for idx := c.head; idx != noChar; idx = c.chars[idx].next {
		n++
	}
	return n
}

// Bytes returns the chain's content in order, without a line terminator.
func (c *Chain) Bytes() []byte {
	out := make([]byte, 0, len(c.chars))
	for idx := c.head; idx != noChar; idx = c.chars[idx].next {
		out = append(out, c.chars[idx].C)
	}
	return out
}

// Text returns the chain's content in order followed by exactly one newline.
// For any line L without an embedded newline,
// Text(ChainFromText(L)) == L + " " + "\n".
func (c *Chain) Text() []byte {
	return append(c.Bytes(), '\n')
}

// WriteTo writes the chain's content followed by one newline. Printing and
// storing a line go through here so both produce identical bytes.
func (c *Chain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Text())
	return int64(n), err
}
