/*
Package list implements a doubly linked list of integers that is either
linear or circular.

The list does not store its length or topology. Both are derived from the
links: a list is circular when its head has a previous node.
*/
package list

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty linear list.
type List struct {
	head *Node
}

// New creates a linear list holding values in order.
func New(values ...int) *List {
	l := &List{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of nodes in the list. It walks the whole list.
func (l *List) Len() int {
	n := 0
	l.Do(func(*Node) bool {
		n++
		return true
	})
	return n
}

// IsEmpty reports whether the list has no nodes.
func (l *List) IsEmpty() bool {
	return l.head == nil
}

// Circular reports whether the tail links back to the head.
func (l *List) Circular() bool {
	return l.head != nil && l.head.prev != nil
}

// Front returns the head of the list or nil.
func (l *List) Front() *Node {
	return l.head
}

// Back returns the tail of the list or nil.
func (l *List) Back() *Node {
	if l.head == nil {
		return nil
	}

	if l.head.prev != nil {
		return l.head.prev
	}

	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}

	return tail
}

// Do calls function f on each node of the list, in forward order from the head.
// A circular list is walked once. If f returns false, Do stops the iteration.
// f must not change l.
func (l *List) Do(f func(n *Node) bool) {
	head := l.head
	if head == nil {
		return
	}

	if !f(head) {
		return
	}

	for p := head.next; p != nil && p != head; p = p.next {
		if !f(p) {
			return
		}
	}
}

// All returns an iterator over the values of the list, in forward order from the head.
// The list must not be changed during iteration.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		l.Do(func(n *Node) bool {
			return yield(n.Value)
		})
	}
}

// Values returns the values of the list in forward order.
func (l *List) Values() []int {
	return slices.Collect(l.All())
}

// String formats the values separated by spaces.
func (l *List) String() string {
	var b strings.Builder

	l.Do(func(n *Node) bool {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n.Value))
		return true
	})

	return b.String()
}

// PushFront inserts a value at the front of list l and returns the new head.
func (l *List) PushFront(v int) *Node {
	n := l.newNode(v)

	switch {
	case l.head == nil:
	case l.head.prev != nil:
		l.head.prev.link(n)
	default:
		n.next = l.head
		l.head.prev = n
	}

	l.head = n

	return n
}

// PushBack inserts a value at the back of list l and returns the new tail.
func (l *List) PushBack(v int) *Node {
	n := l.newNode(v)

	if l.head == nil {
		l.head = n
	} else {
		l.Back().link(n)
	}

	return n
}

// InsertAt inserts a value at the 1-based position pos.
//
// Position 1 inserts at the front and Len()+1 at the back.
// Any other position outside of the list is skipped and l is not changed.
func (l *List) InsertAt(pos, v int) Result {
	switch {
	case pos == 1:
		l.PushFront(v)
		return Done

	case pos < 1:
		return Skipped
	}

	prev := l.nodeAt(pos - 1)
	if prev == nil {
		return Skipped
	}

	prev.link(l.newNode(v))

	return Done
}

// PopFront removes the head and returns its value.
func (l *List) PopFront() (int, error) {
	if l.head == nil {
		return 0, ErrEmpty
	}
	return l.Remove(l.head), nil
}

// PopBack removes the tail and returns its value.
func (l *List) PopBack() (int, error) {
	if l.head == nil {
		return 0, ErrEmpty
	}
	return l.Remove(l.Back()), nil
}

// RemoveAt removes the node at the 1-based position pos.
//
// A position outside of [1, Len()] is rejected with a *PositionError
// and l is not changed.
func (l *List) RemoveAt(pos int) (Result, error) {
	length := l.Len()

	if length == 0 {
		return Rejected, ErrEmpty
	}

	if pos < 1 || pos > length {
		return Rejected, &PositionError{
			Position: pos,
			Len:      length,
		}
	}

	if pos == 1 {
		l.Remove(l.head)
		return Done, nil
	}

	l.Remove(l.nodeAt(pos))

	return Done, nil
}

// Remove a node from the list and return its value.
// The node is released and must not be used with any list afterwards.
func (l *List) Remove(n *Node) int {
	if n == nil || n.list != l {
		panic("list: invalid node")
	}

	if n == l.head {
		if n.next == nil || n.next == n {
			l.head = nil
		} else {
			l.head = n.next
		}
	}

	v := n.Value
	n.unlink()

	return v
}

// MakeCircular links the tail of a linear list back to its head.
func (l *List) MakeCircular() error {
	if l.head == nil {
		return ErrEmpty
	}

	if l.Circular() {
		return ErrCircular
	}

	tail := l.Back()
	tail.next = l.head
	l.head.prev = tail

	return nil
}

// MakeLinear breaks the link between the tail and the head of a circular list.
func (l *List) MakeLinear() error {
	if !l.Circular() {
		return ErrNotCircular
	}

	tail := l.head.prev
	tail.next = nil
	l.head.prev = nil

	return nil
}

// Search reports whether a circular list contains v.
// An empty list contains nothing. A linear list is rejected with ErrNotCircular.
func (l *List) Search(v int) (bool, error) {
	if l.head == nil {
		return false, nil
	}

	if !l.Circular() {
		return false, ErrNotCircular
	}

	n := l.head
	for {
		if n.Value == v {
			return true, nil
		}

		if n = n.next; n == l.head {
			return false, nil
		}
	}
}

// Contains reports whether the list contains v regardless of its topology.
func (l *List) Contains(v int) bool {
	found := false
	l.Do(func(n *Node) bool {
		found = n.Value == v
		return !found
	})
	return found
}

func (l *List) newNode(v int) *Node {
	n := NewNode(v)
	n.list = l
	return n
}

// nodeAt returns the node at the 1-based position pos or nil.
func (l *List) nodeAt(pos int) *Node {
	if pos < 1 {
		return nil
	}

	var node *Node

	i := 0
	l.Do(func(n *Node) bool {
		if i++; i == pos {
			node = n
			return false
		}
		return true
	})

	return node
}
