package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrIO matches every error produced by this package.
var ErrIO = errors.New("i/o failure")

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Read returns the content of path. A missing file is not an error: it reads
// as empty with exists == false, so a new file can be edited and saved.
func Read(path string) (data []byte, exists bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, true, nil
}

// File writes a document back to the path it was opened from.
type File struct {
	Path string
}

// Save writes data to a temporary file next to the target and renames it into
// place, so a failed write leaves the previous content intact. The mode of an
// existing file is kept.
func (f File) Save(data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: f.Path, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &IOError{Op: op, Path: f.Path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "close", Path: f.Path, Err: err}
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "rename", Path: f.Path, Err: err}
	}
	return nil
}
