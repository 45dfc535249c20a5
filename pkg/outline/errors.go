package outline

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an id expected to be present in the document
// (or in a parent's childIds) is absent. This is never a user-reachable
// state: all edits route through precondition-guarded operations, so a
// NotFound signals broken forward/backward consistency, i.e. a core bug.
var ErrNotFound = errors.New("not found")

// NotFoundError carries the missing id and where it was expected.
type NotFoundError struct {
	ID    string
	Where string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %s not found in %s", e.ID, e.Where)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// notFound builds a NotFoundError for the given id and location.
func notFound(id, where string) error {
	return &NotFoundError{ID: id, Where: where}
}

// InvariantError reports a detected violation of tree well-formedness or
// id referential integrity after a mutation. It is treated as fatal at the
// command dispatch boundary rather than recovered.
type InvariantError struct {
	Op    string // the command that exposed the breach
	Cause error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant breach after %s: %v", e.Op, e.Cause)
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}
