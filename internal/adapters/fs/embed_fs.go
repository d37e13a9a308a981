package fs

import (
	"errors"
	iofs "io/fs"
	"strings"
)

var ErrReadOnly = errors.New("filesystem is read-only")

// ReadOnlyFileSystem adapts any io/fs.FS, typically an embed.FS or
// os.DirFS of a build output. Paths may carry a leading slash.
type ReadOnlyFileSystem struct {
	fs iofs.FS
}

func NewReadOnlyFileSystem(fsys iofs.FS) *ReadOnlyFileSystem {
	return &ReadOnlyFileSystem{fs: fsys}
}

func (fs *ReadOnlyFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(path))
}

func (fs *ReadOnlyFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, clean(path))
}

func (fs *ReadOnlyFileSystem) FileExists(path string) bool {
	info, err := iofs.Stat(fs.fs, clean(path))
	return err == nil && !info.IsDir()
}

func (fs *ReadOnlyFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *ReadOnlyFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *ReadOnlyFileSystem) Remove(path string) error {
	return ErrReadOnly
}

func clean(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "."
	}
	return path
}
