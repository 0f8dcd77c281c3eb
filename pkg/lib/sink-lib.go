package lib

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
)

// Sink buffers output for path and only makes it visible on Commit.
// Writing to "-" goes straight to stdout.
type Sink struct {
	*bufio.Writer

	path string
	file *os.File
	done bool
}

var ErrSinkClosed = errors.New("sink already committed or aborted")

func OpenSink(path string) (*Sink, error) {
	if path == "-" {
		return &Sink{Writer: bufio.NewWriter(os.Stdout), path: path}, nil
	}

	// the temporary file lives next to the target so the final rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}

	return &Sink{Writer: bufio.NewWriter(tmp), path: path, file: tmp}, nil
}

func (s *Sink) Path() string { return s.path }

// Commit flushes, syncs and renames the temporary file over the target.
func (s *Sink) Commit() error {
	if s.done {
		return ErrSinkClosed
	}
	s.done = true

	if err := s.Flush(); err != nil {
		s.discard()
		return err
	}

	if s.file == nil {
		return nil
	}

	if err := s.file.Sync(); err != nil {
		s.discard()
		return err
	}
	if err := s.file.Close(); err != nil {
		os.Remove(s.file.Name())
		return err
	}
	if err := os.Chmod(s.file.Name(), 0o644); err != nil {
		os.Remove(s.file.Name())
		return err
	}
	if err := os.Rename(s.file.Name(), s.path); err != nil {
		os.Remove(s.file.Name())
		return err
	}

	return nil
}

// Abort drops everything written so far. Safe to call after Commit.
func (s *Sink) Abort() {
	if s.done {
		return
	}
	s.done = true
	s.discard()
}

func (s *Sink) discard() {
	if s.file == nil {
		return
	}
	s.file.Close()
	os.Remove(s.file.Name())
}
