// Package blob implements a minimal line-oriented text editor: a resident
// buffer of text lines navigated and mutated by single-letter commands that
// can be chained in one input line (e.g. "npi" = next, print, insert).
package blob

import "errors"

// Navigation errors
var (
	// ErrEndOfBuffer indicates an attempt to advance past the last line
	// (or to advance within an empty buffer). The cursor is unchanged.
	ErrEndOfBuffer = errors.New("end of buffer")

	// ErrStartOfBuffer indicates an attempt to retreat past the first line
	// (or to retreat within an empty buffer). The cursor is unchanged.
	ErrStartOfBuffer = errors.New("start of buffer")
)

// Input errors
var (
	// ErrInputClosed indicates that interactive input reached end-of-input
	// while insertion mode was waiting for a line. The session cannot
	// continue; callers should terminate with a failure status.
	ErrInputClosed = errors.New("input closed during insertion")
)

// Storage errors
var (
	// ErrFileNotOpen indicates that a file handle is not open.
	ErrFileNotOpen = errors.New("file not open")
)
