package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an operation that needs at least one node was called on an empty list.
	ErrEmpty = errors.New("list is empty")
	// ErrNotFound indicates there is no node at the requested index.
	ErrNotFound = errors.New("node not found")
	// ErrInvalidPosition indicates a position outside of the list.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrCircular indicates an operation for linear lists was called on a circular list.
	ErrCircular = errors.New("list is circular")
	// ErrNotCircular indicates an operation for circular lists was called on a linear list.
	ErrNotCircular = errors.New("list is not circular")
)

// PositionError is returned when a position is out of range.
type PositionError struct {
	Position int
	Len      int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position %d: valid range is 1-%d", e.Position, e.Len)
}

// Unwrap returns ErrInvalidPosition.
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}
