package linkedlist

import "errors"

var (
	// ErrNotFound indicates no list is registered under a name.
	ErrNotFound = errors.New("list not found")
	// ErrExists indicates a list is already registered under a name.
	ErrExists = errors.New("list already exists")
	// ErrCapacityExceeded indicates the registry holds the maximum number of lists.
	ErrCapacityExceeded = errors.New("registry capacity exceeded")
)
