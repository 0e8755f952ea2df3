// in: internal/filesystem/filesystem.go
package filesystem

import (
	"io"
	"io/fs"
	"os"
)

// Filesystem is the set of filesystem operations a report run needs.
// Tests substitute it to simulate failures that are hard to provoke on disk.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	Mkdir(path string, perm fs.FileMode) error
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
}

// DefaultFS implements the Filesystem interface using the standard `os` package.
// It represents the real, underlying filesystem of the host operating system.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (DefaultFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (DefaultFS) Mkdir(path string, perm fs.FileMode) error {
	return os.Mkdir(path, perm)
}

func (DefaultFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (DefaultFS) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
