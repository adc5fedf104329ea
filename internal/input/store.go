// Package input obtains puzzle inputs, from a local cache when possible and
// from the puzzle site otherwise.
package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/advent/pkg/puzzle"
)

// Store is a cache of raw puzzle inputs keyed by day.
type Store interface {
	// Get returns the cached text and true, or false on a miss.
	// An empty entry counts as a miss.
	Get(ctx context.Context, day puzzle.Day) (string, bool, error)
	Put(ctx context.Context, day puzzle.Day, text string) error
}

// FileStore keeps one flat file per day, Dir/day{N}.in, holding the raw
// bytes as received.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the cache file for day.
func (s *FileStore) Path(day puzzle.Day) string {
	return filepath.Join(s.Dir, day.Filename())
}

func (s *FileStore) Get(_ context.Context, day puzzle.Day) (string, bool, error) {
	exists, err := s.checkDir(day, "read cache")
	if err != nil || !exists {
		return "", false, err
	}

	path := s.Path(day)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &IOError{Day: day, Op: "read cache", Path: path, Err: err}
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

// Put writes the entry through a temporary file and a rename, so readers
// never observe a partial file.
func (s *FileStore) Put(_ context.Context, day puzzle.Day, text string) error {
	exists, err := s.checkDir(day, "write cache")
	if err != nil {
		return err
	}
	if !exists {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return &IOError{Day: day, Op: "create cache directory", Path: s.Dir, Err: err}
		}
	}

	path := s.Path(day)
	tmp, err := os.CreateTemp(s.Dir, "."+day.Filename()+".*")
	if err != nil {
		return &IOError{Day: day, Op: "write cache", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return &IOError{Day: day, Op: "write cache", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Day: day, Op: "write cache", Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &IOError{Day: day, Op: "write cache", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Day: day, Op: "write cache", Path: path, Err: err}
	}
	return nil
}

// checkDir reports whether the cache directory exists. A path that exists
// but is not a directory is an error.
func (s *FileStore) checkDir(day puzzle.Day, op string) (bool, error) {
	info, err := os.Stat(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &IOError{Day: day, Op: op, Path: s.Dir, Err: err}
	}
	if !info.IsDir() {
		return false, &IOError{Day: day, Op: op, Path: s.Dir, Err: fmt.Errorf("cache path exists but is not a directory")}
	}
	return true, nil
}
