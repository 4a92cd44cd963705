// Package testable provides interfaces for abstracting OS-level operations,
// enabling mock injection in tests without modifying production behavior.
package testable

import (
	"io"
	"os"
)

// FileSystem abstracts the file operations gtdash performs so tests can
// inject failures that are awkward to produce on a real disk.
type FileSystem interface {
	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)

	// Create creates or truncates the named file.
	Create(name string) (io.WriteCloser, error)
}

// OsFileSystem is the production implementation of FileSystem that delegates
// to the os package.
type OsFileSystem struct{}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open wraps os.Open.
func (OsFileSystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name) //nolint:gosec // caller controls path
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name) //nolint:gosec // caller controls path
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DefaultFS is the production FileSystem. Packages use it as their default
// when no custom FileSystem is injected.
var DefaultFS FileSystem = OsFileSystem{}
