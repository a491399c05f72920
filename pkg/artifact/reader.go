// Package artifact reads the files a feature check inspects.
//
// Content is returned as opaque UTF-8 text. A path that does not exist is
// reported as ErrNotFound; every other failure (permissions, directories,
// invalid encoding) is reported as ErrUnreadable so operators can tell an
// unimplemented feature from a misconfigured environment.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"unicode/utf8"
)

var (
	// ErrNotFound marks an artifact that does not exist.
	ErrNotFound = errors.New("artifact not found")
	// ErrUnreadable marks an artifact that exists but could not be read as text.
	ErrUnreadable = errors.New("artifact unreadable")
)

// Error describes a failed artifact read.
type Error struct {
	Path string
	Kind error // ErrNotFound or ErrUnreadable
	Err  error // underlying cause
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ErrInvalidEncoding is the cause reported for content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// Reader loads artifacts through a FileSystem.
type Reader struct {
	FS FileSystem // injected for testing
}

// NewReader returns a Reader over the real file system rooted at root.
func NewReader(root string) *Reader {
	return &Reader{FS: &RealFileSystem{Root: root}}
}

// Read returns the full text of the artifact at the slash-separated path.
// Each call performs exactly one read; nothing is cached.
func (r *Reader) Read(path string) (string, error) {
	data, err := r.FS.ReadFile(filepath.FromSlash(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Path: path, Kind: ErrNotFound, Err: err}
		}
		return "", &Error{Path: path, Kind: ErrUnreadable, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &Error{Path: path, Kind: ErrUnreadable, Err: ErrInvalidEncoding}
	}

	return string(data), nil
}
