// Package content reads the Markdown body of a card from a file or stdin.
package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

var (
	ErrReadFile  = errors.New("could not read file")
	ErrReadStdin = errors.New("could not read stdin")
)

// Reader resolves card content. FS backs file reads and Stdin is consumed
// when no path is given.
type Reader struct {
	FS    afero.Fs
	Stdin io.Reader
}

// NewReader returns a Reader over the host filesystem and os.Stdin.
func NewReader() *Reader {
	return &Reader{FS: afero.NewOsFs(), Stdin: os.Stdin}
}

// Read returns the full contents of path, or of Stdin when path is empty.
func (r *Reader) Read(path string) (string, error) {
	if path != "" {
		b, err := afero.ReadFile(r.FS, path)
		if err != nil {
			return "", &readError{kind: ErrReadFile, path: path, err: err}
		}
		return string(b), nil
	}

	b, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", &readError{kind: ErrReadStdin, err: err}
	}
	return string(b), nil
}

// readError keeps the offending path in the message while matching both the
// sentinel kind and the underlying cause with errors.Is.
type readError struct {
	kind error
	path string
	err  error
}

func (e *readError) Error() string {
	if e.path != "" {
		return fmt.Sprintf("could not read %s: %v", e.path, e.err)
	}
	return fmt.Sprintf("%v: %v", e.kind, e.err)
}

func (e *readError) Unwrap() []error {
	return []error{e.kind, e.err}
}
