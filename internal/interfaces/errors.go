package interfaces

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("not found")

// ErrInvalidReference is returned when a write points at a row that does
// not exist.
var ErrInvalidReference = errors.New("invalid reference")

// InvalidReferenceError names the foreign key that failed.
type InvalidReferenceError struct {
	Resource string
	Field    string
}

func (e *InvalidReferenceError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s references a missing record", e.Resource)
	}
	return fmt.Sprintf("%s.%s references a missing record", e.Resource, e.Field)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }
