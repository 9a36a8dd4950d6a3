package testing

import (
	"github.com/mgnsk/linkedlist/list"
	. "github.com/onsi/gomega"
)

// ExpectValidLinks asserts that the links of l are consistent with its topology.
func ExpectValidLinks(g Gomega, l *list.List) {
	front := l.Front()
	if front == nil {
		g.Expect(l.Len()).To(BeZero())
		g.Expect(l.Back()).To(BeNil())
		return
	}

	length := l.Len()
	g.Expect(length).To(BeNumerically(">", 0))

	l.Do(func(n *list.Node) bool {
		if n != front {
			g.Expect(n.Prev()).NotTo(BeNil())
			g.Expect(n.Prev().Next()).To(BeIdenticalTo(n))
		}
		return true
	})

	if l.Circular() {
		g.Expect(front.Prev()).To(BeIdenticalTo(l.Back()))
		g.Expect(l.Back().Next()).To(BeIdenticalTo(front))

		l.Do(func(n *list.Node) bool {
			ExpectCycle(g, n, length)
			return true
		})

		return
	}

	g.Expect(front.Prev()).To(BeNil())
	g.Expect(l.Back().Next()).To(BeNil())

	steps := 0
	for n := front; n != nil; n = n.Next() {
		steps++
		g.Expect(steps).To(BeNumerically("<=", length), "linear list must terminate")
	}
	g.Expect(steps).To(Equal(length))
}

// ExpectCycle asserts that walking length steps from n in either direction returns to n
// without passing through nil.
func ExpectCycle(g Gomega, n *list.Node, length int) {
	next := n
	for i := 0; i < length; i++ {
		next = next.Next()
		g.Expect(next).NotTo(BeNil())
	}
	g.Expect(next).To(BeIdenticalTo(n))

	prev := n
	for i := 0; i < length; i++ {
		prev = prev.Prev()
		g.Expect(prev).NotTo(BeNil())
	}
	g.Expect(prev).To(BeIdenticalTo(n))
}

// ExpectHasExactValues asserts that l holds exactly values in forward order.
func ExpectHasExactValues(g Gomega, l *list.List, values ...int) {
	if len(values) == 0 {
		g.Expect(l.Values()).To(BeEmpty())
		return
	}
	g.Expect(l.Values()).To(Equal(values))
}
