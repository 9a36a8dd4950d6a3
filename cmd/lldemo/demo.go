package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mgnsk/linkedlist"
	"github.com/mgnsk/linkedlist/internal/config"
	"github.com/mgnsk/linkedlist/internal/logger"
	"github.com/mgnsk/linkedlist/list"
)

type demo struct {
	w        io.Writer
	cfg      *config.Config
	log      *logger.Logger
	registry *linkedlist.Registry
}

func run(w io.Writer, cfg *config.Config, log *logger.Logger) error {
	d := &demo{
		w:        w,
		cfg:      cfg,
		log:      log,
		registry: linkedlist.New(linkedlist.WithLogger(log)),
	}

	for _, step := range []func() error{
		d.insert,
		d.delete,
		d.circular,
		d.middle,
		d.nth,
		d.palindrome,
	} {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

func (d *demo) printf(format string, args ...any) {
	fmt.Fprintf(d.w, format, args...)
}

func (d *demo) insert() error {
	l, err := d.registry.Create("insert", d.cfg.Doubly...)
	if err != nil {
		return err
	}

	d.printf("The forward traversal is : %s\n", l)

	for _, op := range []struct{ pos, value int }{
		{3, 15},
		{1, 9},
		{10, 16},
	} {
		res := l.InsertAt(op.pos, op.value)
		d.log.Debug("insert %d at position %d: %s", op.value, op.pos, res)
		d.printf("After inserting %d at position %d (%s) : %s\n", op.value, op.pos, res, l)
	}

	return nil
}

func (d *demo) delete() error {
	l, err := d.registry.Create("delete", d.cfg.Doubly...)
	if err != nil {
		return err
	}

	d.printf("The linked list is : %s\n", l)

	err = l.Update(func(ll *list.List) error {
		if v, err := ll.PopFront(); err == nil {
			d.printf("After deleting %d from the beginning : %s\n", v, ll)
		} else {
			d.printf("Nothing to delete from the beginning: %v\n", err)
		}

		if v, err := ll.PopBack(); err == nil {
			d.printf("After deleting %d from the end : %s\n", v, ll)
		} else {
			d.printf("Nothing to delete from the end: %v\n", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if _, err := d.registry.Delete("delete"); err != nil {
		return err
	}

	l, err = d.registry.Create("delete", d.cfg.Doubly...)
	if err != nil {
		return err
	}

	for _, pos := range []int{3, 0, 5} {
		res, err := l.RemoveAt(pos)
		switch {
		case errors.Is(err, list.ErrInvalidPosition):
			d.printf("Invalid position! %v\n", err)
		case err != nil:
			d.printf("Cannot delete position %d: %v\n", pos, err)
		default:
			d.printf("After deleting position %d (%s) : %s\n", pos, res, l)
		}
	}

	return nil
}

func (d *demo) circular() error {
	l, err := d.registry.Create("circular", d.cfg.Doubly...)
	if err != nil {
		return err
	}

	target := d.cfg.SearchTarget

	return l.Update(func(ll *list.List) error {
		if err := ll.MakeCircular(); err != nil {
			if errors.Is(err, list.ErrEmpty) {
				d.printf("The list is empty.\n")
				return nil
			}
			return err
		}

		d.printf("The circular linked list is: %s\n", ll)

		found, err := ll.Search(target)
		if err != nil {
			return err
		}

		if found {
			d.printf("Element %d found in the circular linked list.\n", target)
		} else {
			d.printf("Element %d not found in the circular linked list.\n", target)
		}

		return nil
	})
}

func (d *demo) middle() error {
	for _, values := range d.cfg.Middle {
		l := list.New(values...)

		v, err := l.Middle()
		if err != nil {
			d.printf("Middle of [%s]: %v\n", l, err)
			continue
		}

		d.printf("Middle of [%s]: %d\n", l, v)
	}

	return nil
}

func (d *demo) nth() error {
	l := list.New(d.cfg.Nth.Values...)

	for _, index := range d.cfg.Nth.Indices {
		v, err := l.Nth(index)
		if errors.Is(err, list.ErrNotFound) {
			d.printf("Element at index %d of [%s]: not found\n", index, l)
			continue
		}

		d.printf("Element at index %d of [%s]: %d\n", index, l, v)
	}

	return nil
}

func (d *demo) palindrome() error {
	for _, values := range d.cfg.Palindromes {
		l := list.New(values...)
		d.printf("Palindrome [%s]: %t\n", l, l.IsPalindrome())
	}

	return nil
}
