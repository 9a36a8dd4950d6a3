package list

import "github.com/mgnsk/linkedlist/internal/stack"

// Middle returns the value of the middle node.
// For an even length it is the second of the two middle nodes.
func (l *List) Middle() (int, error) {
	length := l.Len()
	if length == 0 {
		return 0, ErrEmpty
	}

	n := l.head
	for i := 0; i < length/2; i++ {
		n = n.next
	}

	return n.Value, nil
}

// Nth returns the value at the 1-based index.
// It returns ErrNotFound when the list has fewer than index nodes.
func (l *List) Nth(index int) (int, error) {
	n := l.head

	for n != nil && index >= 1 {
		if index == 1 {
			return n.Value, nil
		}

		index--

		if n = n.next; n == l.head {
			break
		}
	}

	return 0, ErrNotFound
}

// IsPalindrome reports whether the values read the same forwards and backwards.
// An empty list is a palindrome.
func (l *List) IsPalindrome() bool {
	s := stack.New(l.Len())

	l.Do(func(n *Node) bool {
		s.Push(n.Value)
		return true
	})

	ok := true
	l.Do(func(n *Node) bool {
		v, _ := s.Pop()
		ok = n.Value == v
		return ok
	})

	return ok
}
