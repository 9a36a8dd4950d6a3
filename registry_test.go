package linkedlist_test

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/mgnsk/linkedlist"
	"github.com/mgnsk/linkedlist/internal/logger"
	"github.com/mgnsk/linkedlist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("creating lists", func() {
	var r *linkedlist.Registry

	BeforeEach(func() {
		r = linkedlist.New()
	})

	When("the name is free", func() {
		Specify("the list is stored", func() {
			l, err := r.Create("doubly", 10, 11, 12, 13)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Values()).To(Equal([]int{10, 11, 12, 13}))

			Expect(r.Len()).To(Equal(1))
			Expect(r.Exists("doubly")).To(BeTrue())

			got, err := r.Get("doubly")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeIdenticalTo(l))
		})
	})

	When("the name is taken", func() {
		Specify("the existing list is kept", func() {
			_, err := r.Create("doubly", 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = r.Create("doubly", 2)
			Expect(err).To(MatchError(linkedlist.ErrExists))

			l, err := r.Get("doubly")
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Values()).To(Equal([]int{1}))
		})
	})

	When("the capacity is reached", func() {
		BeforeEach(func() {
			r = linkedlist.New(linkedlist.WithCapacity(2))
		})

		Specify("new lists are rejected", func() {
			_, err := r.Create("one")
			Expect(err).NotTo(HaveOccurred())

			_, loaded, err := r.LoadOrCreate("two")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeFalse())

			_, err = r.Create("three")
			Expect(err).To(MatchError(linkedlist.ErrCapacityExceeded))

			_, _, err = r.LoadOrCreate("three")
			Expect(err).To(MatchError(linkedlist.ErrCapacityExceeded))

			_, loaded, err = r.LoadOrCreate("two")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeTrue())

			_, err = r.Delete("one")
			Expect(err).NotTo(HaveOccurred())

			_, err = r.Create("three")
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Names()).To(Equal([]string{"three", "two"}))
		})
	})

	When("a logger is configured", func() {
		Specify("events are logged at debug level", func() {
			var buf bytes.Buffer

			r = linkedlist.New(linkedlist.WithLogger(logger.New(&buf, true)))

			_, err := r.Create("doubly")
			Expect(err).NotTo(HaveOccurred())
			_, err = r.Delete("doubly")
			Expect(err).NotTo(HaveOccurred())

			Expect(buf.String()).To(ContainSubstring(`created list "doubly"`))
			Expect(buf.String()).To(ContainSubstring(`deleted list "doubly"`))
		})
	})
})

var _ = Describe("deleting lists", func() {
	var r *linkedlist.Registry

	BeforeEach(func() {
		r = linkedlist.New()
	})

	When("the list exists", func() {
		Specify("it is returned and removed", func() {
			created, err := r.Create("doubly", 1, 2)
			Expect(err).NotTo(HaveOccurred())

			deleted, err := r.Delete("doubly")
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeIdenticalTo(created))

			Expect(r.Len()).To(BeZero())
			_, err = r.Get("doubly")
			Expect(err).To(MatchError(linkedlist.ErrNotFound))
		})
	})

	When("the list does not exist", func() {
		Specify("ErrNotFound is returned", func() {
			_, err := r.Delete("doubly")
			Expect(err).To(MatchError(linkedlist.ErrNotFound))
		})
	})
})

var _ = Describe("ranging over lists", func() {
	Specify("every list is visited once", func() {
		r := linkedlist.New()

		for i := 0; i < 10; i++ {
			_, err := r.Create(fmt.Sprint(i), i)
			Expect(err).NotTo(HaveOccurred())
		}

		sum := 0
		r.Range(func(_ string, l *linkedlist.Locked) bool {
			sum += l.Values()[0]
			return true
		})

		Expect(sum).To(Equal(45))
		Expect(r.Names()).To(HaveLen(10))
	})
})

var _ = Describe("concurrent access", func() {
	Specify("updates of one list are serialized", func() {
		r := linkedlist.New()

		var wg sync.WaitGroup

		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				l, _, err := r.LoadOrCreate("shared")
				Expect(err).NotTo(HaveOccurred())

				for j := 0; j < 100; j++ {
					l.PushBack(j)
					Expect(l.InsertAt(1, j)).To(Equal(list.Done))
					res, err := l.RemoveAt(1)
					Expect(err).NotTo(HaveOccurred())
					Expect(res).To(Equal(list.Done))
				}
			}()
		}

		wait(&wg)

		l, err := r.Get("shared")
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Len()).To(Equal(50 * 100))
		Expect(r.Len()).To(Equal(1))
	})
})
