package highlighter

import (
	"errors"
	"fmt"
)

var (
	ErrNotContainer      = errors.New("highlighter is not a container")
	ErrNotFound          = errors.New("highlighter not found")
	ErrDuplicateID       = errors.New("duplicate highlighter id")
	ErrInvalidID         = errors.New("invalid highlighter id")
	ErrAlreadyAttached   = errors.New("highlighter group is already attached")
	ErrUnknownType       = errors.New("unknown highlighter type")
	ErrAlreadyRegistered = errors.New("highlighter type already registered")
)

// PathError records the path segment a lookup failed at.
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Path == e.Segment {
		return fmt.Sprintf("%v: %q", e.Err, e.Segment)
	}
	return fmt.Sprintf("%v: %q in path %q", e.Err, e.Segment, e.Path)
}

func (e *PathError) Unwrap() error { return e.Err }
