package list

// Node is a list node.
type Node struct {
	next, prev *Node
	list       *List
	Value      int
}

// NewNode creates a detached node.
func NewNode(v int) *Node {
	return &Node{
		Value: v,
	}
}

// Next returns the next node. It is nil for the tail of a linear list
// and the head for the tail of a circular list.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the previous node. It is nil for the head of a linear list
// and the tail for the head of a circular list.
func (n *Node) Prev() *Node {
	return n.prev
}

// link inserts a node after this node.
func (n *Node) link(s *Node) {
	next := n.next
	n.next = s
	s.prev = n
	s.next = next
	if next != nil {
		next.prev = s
	}
}

// unlink unlinks this node and releases it from its list.
func (n *Node) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	n.list = nil
}
