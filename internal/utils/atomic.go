package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// Stages of WriteFileAtomic, reported in WriteError.
const (
	StageCreate = "create temp file"
	StageWrite  = "write temp file"
	StageSync   = "sync temp file"
	StageClose  = "close temp file"
	StageRename = "rename temp file"
)

// rename is swapped out in tests to simulate a failing replace.
var rename = os.Rename

// WriteError records which stage of an atomic write failed.
type WriteError struct {
	Stage string
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s for %s: %v", e.Stage, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Replacing reports whether the failure happened at the final rename,
// after the temporary file had been fully written.
func (e *WriteError) Replacing() bool {
	return e.Stage == StageRename
}

// WriteFileAtomic replaces path with data so that readers see either the old
// or the new content, never a partial file. The temporary file is created in
// the target directory because rename is only atomic within one filesystem.
// On any failure the temporary file is removed and path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Stage: StageCreate, Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		return &WriteError{Stage: StageWrite, Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		return &WriteError{Stage: StageWrite, Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Stage: StageSync, Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Stage: StageClose, Path: path, Err: err}
	}

	if err := rename(tmpPath, path); err != nil {
		return &WriteError{Stage: StageRename, Path: path, Err: err}
	}

	success = true
	return nil
}
