package xltools

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input document does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidOptions indicates the merge options failed validation.
var ErrInvalidOptions = errors.New("invalid options")

// MergeError wraps a failure at a specific stage of a merge run.
type MergeError struct {
	Stage string // "backup", "open", "read", "update", "save"
	Path  string
	Err   error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge %s failed for %q: %v", e.Stage, e.Path, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

func newMergeError(stage, path string, err error) *MergeError {
	return &MergeError{Stage: stage, Path: path, Err: err}
}
