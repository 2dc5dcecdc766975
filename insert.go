package blob

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
)

// CancelToken is the cooperative cancellation flag observed by insertion
// mode. It is set asynchronously (typically by a signal-handling shim in the
// command binary) and polled by the insertion loop; it never preempts a read
// already in progress. The token is reset at the start of each insertion
// session.
type CancelToken struct {
	flag atomic.Bool
}

// Cancel sets the flag. Safe to call from a signal handler goroutine.
func (t *CancelToken) Cancel() { t.flag.Store(true) }

// Reset clears the flag.
func (t *CancelToken) Reset() { t.flag.Store(false) }

// Cancelled reports whether the flag is set.
func (t *CancelToken) Cancelled() bool { return t.flag.Load() }

// LineReader supplies raw lines of interactive input, one per call, each
// including its trailing newline when one was present. A final unterminated
// line is returned once as a line; the following call reports io.EOF.
type LineReader interface {
	ReadLine() ([]byte, error)
}

// bufferedLineReader implements LineReader over an io.Reader.
type bufferedLineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedLineReader{r: bufio.NewReader(r)}
}

func (lr *bufferedLineReader) ReadLine() ([]byte, error) {
	data, err := lr.r.ReadBytes('\n')
	if len(data) > 0 {
		// An unterminated final line is still a line; EOF surfaces on
		// the next call.
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// insert runs insertion mode: it reads one raw line at a time from input and
// appends each as a new Line immediately after the cursor, moving the cursor
// onto it, until the cancel token is observed or input ends. The token is
// polled after each read and before the line is committed; a set token
// discards that pending line and ends the loop, leaving prior insertions in
// place. End-of-input while waiting for a line returns ErrInputClosed, which
// ends the whole session.
func insert(cur *Cursor, input LineReader, cancel *CancelToken) error {
	cancel.Reset()
	for {
		data, err := input.ReadLine()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		if cancel.Cancelled() {
			return nil
		}
		cur.InsertAfter(ChainFromText(data))
	}
}
