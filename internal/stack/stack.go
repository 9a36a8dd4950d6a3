/*
Package stack implements a growable last-in-first-out buffer of integers.
*/
package stack

// Stack is a LIFO buffer.
//
// The zero value is a ready to use empty stack.
type Stack struct {
	items []int
}

// New creates an empty stack with room for capacity values before it grows.
func New(capacity int) *Stack {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack{
		items: make([]int, 0, capacity),
	}
}

// Len returns the number of values in the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Push a value on top of the stack.
func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]

	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}
