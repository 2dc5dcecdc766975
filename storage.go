package blob

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileSystemInterface abstracts the persisted document storage so sessions
// can run against custom backends (tests use an in-memory one). The package
// provides a default implementation for local files.
type FileSystemInterface interface {
	// OpenRead opens the named source for reading. A missing source must be
	// reported with an error satisfying errors.Is(err, fs.ErrNotExist).
	OpenRead(name string) (io.ReadCloser, error)

	// OpenWrite opens the named sink for writing, creating it if needed and
	// truncating any existing content.
	OpenWrite(name string) (io.WriteCloser, error)
}

// localFileSystem implements FileSystemInterface for local files.
type localFileSystem struct{}

func (localFileSystem) OpenRead(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (localFileSystem) OpenWrite(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}

// DefaultFileSystem is the local file system used when no custom
// FileSystemInterface is supplied.
var DefaultFileSystem FileSystemInterface = localFileSystem{}

// LoadBuffer reads the named source line by line and builds a Buffer, one
// Line per physical line. A final line without a terminating newline still
// loads as a line. A missing source is not an error: an empty source is
// materialized (create-on-demand) and an empty Buffer returned. A source
// with zero lines also yields an empty Buffer.
func LoadBuffer(fsys FileSystemInterface, name string) (*Buffer, error) {
	rc, err := fsys.OpenRead(name)
	if err != nil {
		if isNotExist(err) {
			if err := materialize(fsys, name); err != nil {
				return nil, err
			}
			return NewBuffer(), nil
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	buf := NewBuffer()
	r := bufio.NewReader(rc)
	for {
		data, err := r.ReadBytes('\n')
		if len(data) > 0 {
			buf.Append(ChainFromText(data))
		}
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}
}

// StoreBuffer overwrites the named sink with the flattened text of every
// line in order, then closes the sink. There is no partial-write recovery:
// a failure mid-write leaves the sink truncated.
func StoreBuffer(fsys FileSystemInterface, name string, buf *Buffer) error {
	wc, err := fsys.OpenWrite(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	if _, err := buf.WriteTo(wc); err != nil {
		wc.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// materialize creates an empty source at name.
func materialize(fsys FileSystemInterface, name string) error {
	wc, err := fsys.OpenWrite(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
