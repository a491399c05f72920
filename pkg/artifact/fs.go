package artifact

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the real file system.
// Names are resolved against Root when it is set.
type RealFileSystem struct {
	Root string
}

// ReadFile reads the entire file contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.Root, name)) //nolint:gosec // intentional: artifact paths come from the suite definition
}
