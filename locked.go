package linkedlist

import (
	"sync"

	"github.com/mgnsk/linkedlist/list"
)

// Locked is a list guarded by its own lock.
// It is safe for concurrent use.
type Locked struct {
	mu sync.RWMutex
	ll *list.List
}

// NewLocked creates a locked linear list holding values in order.
func NewLocked(values ...int) *Locked {
	return &Locked{
		ll: list.New(values...),
	}
}

// Update calls f with exclusive access to the list.
// The list must not be retained after f returns.
func (l *Locked) Update(f func(ll *list.List) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return f(l.ll)
}

// View calls f with shared access to the list. f must not change the list.
// The list must not be retained after f returns.
func (l *Locked) View(f func(ll *list.List) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return f(l.ll)
}

// Len returns the number of nodes in the list.
func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.ll.Len()
}

// Values returns a copy of the values in forward order.
func (l *Locked) Values() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.ll.Values()
}

// String formats the values separated by spaces.
func (l *Locked) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.ll.String()
}

// PushFront inserts a value at the front of the list.
func (l *Locked) PushFront(v int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ll.PushFront(v)
}

// PushBack inserts a value at the back of the list.
func (l *Locked) PushBack(v int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ll.PushBack(v)
}

// InsertAt inserts a value at the 1-based position pos. See list.List.InsertAt.
func (l *Locked) InsertAt(pos, v int) list.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ll.InsertAt(pos, v)
}

// RemoveAt removes the node at the 1-based position pos. See list.List.RemoveAt.
func (l *Locked) RemoveAt(pos int) (list.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ll.RemoveAt(pos)
}
