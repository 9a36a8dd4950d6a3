/*
Package linkedlist implements a registry of named doubly linked lists
that is safe for concurrent use.

The lists themselves are implemented in the list package, which assumes a
single owner. The registry gives every list its own lock.
*/
package linkedlist

import (
	"fmt"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v2"
)

// Registry holds named lists.
type Registry struct {
	lists *xsync.MapOf[string, *Locked]
	opts  registryOptions
	// mu serializes inserts and deletes so that capacity holds.
	mu sync.Mutex
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		lists: xsync.NewMapOf[*Locked](),
		opts:  newDefaultRegistryOptions(),
	}

	for _, opt := range opts {
		opt.apply(&r.opts)
	}

	return r
}

// Len returns the number of lists in the registry.
func (r *Registry) Len() int {
	return r.lists.Size()
}

// Exists returns whether a list exists for name.
func (r *Registry) Exists(name string) bool {
	_, ok := r.lists.Load(name)
	return ok
}

// Get returns the list stored for name.
func (r *Registry) Get(name string) (*Locked, error) {
	if l, ok := r.lists.Load(name); ok {
		return l, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Create a new linear list holding values and store it for name.
func (r *Registry) Create(name string, values ...int) (*Locked, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lists.Load(name); ok {
		return nil, fmt.Errorf("%w: %q", ErrExists, name)
	}

	l := NewLocked(values...)
	if err := r.storeLocked(name, l); err != nil {
		return nil, err
	}

	return l, nil
}

// LoadOrCreate returns the list stored for name or creates an empty one.
func (r *Registry) LoadOrCreate(name string) (l *Locked, loaded bool, err error) {
	if l, ok := r.lists.Load(name); ok {
		return l, true, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.lists.Load(name); ok {
		return l, true, nil
	}

	l = NewLocked()
	if err := r.storeLocked(name, l); err != nil {
		return nil, false, err
	}

	return l, false, nil
}

// Delete the list stored for name and return it.
func (r *Registry) Delete(name string) (*Locked, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists.LoadAndDelete(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	r.opts.logger.Debug("deleted list %q", name)

	return l, nil
}

// Range calls f for each list in no particular order.
// If f returns false, Range stops the iteration.
//
// Range is allowed to modify the registry.
func (r *Registry) Range(f func(name string, l *Locked) bool) {
	r.lists.Range(f)
}

// Names returns the sorted names of the lists.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.lists.Size())

	r.lists.Range(func(name string, _ *Locked) bool {
		names = append(names, name)
		return true
	})

	slices.Sort(names)

	return names
}

func (r *Registry) storeLocked(name string, l *Locked) error {
	if r.opts.capacity > 0 && r.lists.Size() >= r.opts.capacity {
		return fmt.Errorf("%w: %d lists", ErrCapacityExceeded, r.opts.capacity)
	}

	r.lists.Store(name, l)
	r.opts.logger.Debug("created list %q", name)

	return nil
}
