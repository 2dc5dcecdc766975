package blob

import (
	"fmt"
	"io"
)

// Signal is the enumerated outcome of running one input line of commands.
// It is distinct from the OS interrupt used for insertion cancellation.
type Signal int

const (
	// SignalContinue means the input line completed normally.
	SignalContinue Signal = iota

	// SignalEndOfBuffer means an 'n' command hit the end of the buffer;
	// the rest of the input line was not executed.
	SignalEndOfBuffer

	// SignalStartOfBuffer means a 'b' command hit the start of the buffer;
	// the rest of the input line was not executed.
	SignalStartOfBuffer

	// SignalQuit means a 'q' command ended the session; the rest of the
	// input line was not executed.
	SignalQuit
)

// String returns the signal's name.
func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "continue"
	case SignalEndOfBuffer:
		return "end of buffer"
	case SignalStartOfBuffer:
		return "start of buffer"
	case SignalQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Options configures an editing session.
type Options struct {
	// Path names the persisted source the buffer is loaded from and the
	// sink the 'w' command writes to.
	Path string

	// FileSystem overrides DefaultFileSystem when non-nil.
	FileSystem FileSystemInterface

	// Input supplies raw lines to insertion mode.
	Input LineReader

	// Output receives everything the p, l and h commands print.
	Output io.Writer

	// Cancel is the token insertion mode polls. When nil the session gets
	// a private token that nothing ever sets.
	Cancel *CancelToken

	// Help is the text the 'h' command prints.
	Help string
}

// Editor is one editing session over a single document: the loaded Buffer,
// the cursor addressing it, and the command interpreter driving both.
type Editor struct {
	path   string
	fsys   FileSystemInterface
	buf    *Buffer
	cursor *Cursor
	input  LineReader
	out    io.Writer
	cancel *CancelToken
	help   string
}

// Open loads the document named by opts.Path (creating an empty one when it
// does not exist) and returns a session positioned at the first line.
func Open(opts Options) (*Editor, error) {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = DefaultFileSystem
	}
	cancel := opts.Cancel
	if cancel == nil {
		cancel = &CancelToken{}
	}

	buf, err := LoadBuffer(fsys, opts.Path)
	if err != nil {
		return nil, err
	}

	return &Editor{
		path:   opts.Path,
		fsys:   fsys,
		buf:    buf,
		cursor: NewCursor(buf),
		input:  opts.Input,
		out:    opts.Output,
		cancel: cancel,
		help:   opts.Help,
	}, nil
}

// Buffer returns the session's document buffer.
func (e *Editor) Buffer() *Buffer { return e.buf }

// Cursor returns the session's cursor.
func (e *Editor) Cursor() *Cursor { return e.cursor }

// WriteOut writes the whole buffer to the session's persisted source.
func (e *Editor) WriteOut() error {
	return StoreBuffer(e.fsys, e.path, e.buf)
}

// Close releases the session's buffer.
func (e *Editor) Close() {
	e.buf.Close()
}

// Run executes one input line of single-letter commands left to right,
// stopping at the first newline or the end of the input. Unrecognized
// characters are skipped. Scanning aborts at the first failed 'n' or 'b'
// and at 'q', reporting the corresponding Signal; reaching the end of the
// input reports SignalContinue. A non-nil error is fatal to the session
// (failed write, or end-of-input during insertion).
func (e *Editor) Run(commands []byte) (Signal, error) {
	for _, cmd := range commands {
		if cmd == '\n' {
			break
		}
		switch cmd {
		case 'n':
			if err := e.cursor.Advance(); err != nil {
				return SignalEndOfBuffer, nil
			}
		case 'b':
			if err := e.cursor.Retreat(); err != nil {
				return SignalStartOfBuffer, nil
			}
		case 'p':
			if err := e.printCurrent(); err != nil {
				return SignalContinue, err
			}
		case 'i':
			if err := insert(e.cursor, e.input, e.cancel); err != nil {
				return SignalContinue, err
			}
		case 'l':
			if _, err := e.buf.WriteTo(e.out); err != nil {
				return SignalContinue, err
			}
		case 'd':
			e.cursor.DeleteCurrent()
		case 'q':
			return SignalQuit, nil
		case 'w':
			if err := e.WriteOut(); err != nil {
				return SignalContinue, err
			}
		case 'h':
			if _, err := io.WriteString(e.out, e.help); err != nil {
				return SignalContinue, err
			}
		}
	}
	return SignalContinue, nil
}

// printCurrent prints the addressed line's content and a newline. With an
// empty cursor it prints just the newline.
func (e *Editor) printCurrent() error {
	if cur := e.cursor.Current(); cur != nil {
		_, err := cur.Chain().WriteTo(e.out)
		return err
	}
	_, err := fmt.Fprintln(e.out)
	return err
}
