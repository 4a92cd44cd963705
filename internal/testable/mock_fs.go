package testable

import (
	"errors"
	"io"
	"os"
)

// MockFileSystem is a test double for FileSystem. Each method has a
// corresponding function field. When the field is non-nil, the mock calls it;
// otherwise, it falls through to OsFileSystem.
type MockFileSystem struct {
	StatFn   func(name string) (os.FileInfo, error)
	OpenFn   func(name string) (io.ReadCloser, error)
	CreateFn func(name string) (io.WriteCloser, error)
}

var real OsFileSystem

// Stat calls StatFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return real.Stat(name)
}

// Open calls OpenFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Open(name string) (io.ReadCloser, error) {
	if m.OpenFn != nil {
		return m.OpenFn(name)
	}
	return real.Open(name)
}

// Create calls CreateFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Create(name string) (io.WriteCloser, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return real.Create(name)
}

// FailingReader returns Data first and then Err on every later read.
type FailingReader struct {
	Data []byte
	Err  error
}

// Read implements io.Reader.
func (r *FailingReader) Read(p []byte) (int, error) {
	if len(r.Data) > 0 {
		n := copy(p, r.Data)
		r.Data = r.Data[n:]
		return n, nil
	}
	if r.Err == nil {
		return 0, io.EOF
	}
	return 0, r.Err
}

// Close implements io.Closer.
func (r *FailingReader) Close() error { return nil }

// FailingWriter rejects every write with Err.
type FailingWriter struct {
	Err error
}

// Write implements io.Writer.
func (w *FailingWriter) Write([]byte) (int, error) {
	if w.Err == nil {
		return 0, errors.New("write failed")
	}
	return 0, w.Err
}

// Close implements io.Closer.
func (w *FailingWriter) Close() error { return nil }
