package main

import (
	"errors"

	"github.com/mgnsk/linkedlist/list"
)

func main() {
	l := list.New(10, 11, 12, 13)

	// Out of range inserts are skipped, out of range deletes are rejected.
	l.InsertAt(3, 15)
	l.InsertAt(10, 16)

	if _, err := l.RemoveAt(10); !errors.Is(err, list.ErrInvalidPosition) {
		panic("expected an invalid position")
	}

	if err := l.MakeCircular(); err != nil {
		panic(err)
	}

	found, err := l.Search(15)
	if err != nil {
		panic(err)
	}

	println(l.String(), found)
}
