package element

import "iter"

// Handle identifies an element within its collection. Handles stay valid
// for the collection's lifetime.
type Handle int

// Collection is an append-only, ordered arena of elements. Order is
// insertion order and decides dispatch order.
type Collection[S any] struct {
	items []*Element[S]
}

// NewCollection creates a collection holding els in order.
func NewCollection[S any](els ...*Element[S]) *Collection[S] {
	c := &Collection[S]{}
	for _, el := range els {
		c.Push(el)
	}
	return c
}

// Push appends an element and returns its handle. Pushing nil is a no-op
// that returns -1.
func (c *Collection[S]) Push(el *Element[S]) Handle {
	if el == nil {
		return -1
	}
	c.items = append(c.items, el)
	return Handle(len(c.items) - 1)
}

// At resolves a handle. It returns nil for an unknown handle.
func (c *Collection[S]) At(h Handle) *Element[S] {
	if h < 0 || int(h) >= len(c.items) {
		return nil
	}
	return c.items[h]
}

// Len returns the number of elements.
func (c *Collection[S]) Len() int {
	return len(c.items)
}

// All iterates over the elements in order. The set of elements is fixed
// when iteration starts: elements pushed during a pass are first seen by
// the next pass.
func (c *Collection[S]) All() iter.Seq2[Handle, *Element[S]] {
	return func(yield func(Handle, *Element[S]) bool) {
		snapshot := c.items[:len(c.items):len(c.items)]
		for i, el := range snapshot {
			if !yield(Handle(i), el) {
				return
			}
		}
	}
}

// Hit returns the last element (topmost when drawn in order) under (x, y).
func (c *Collection[S]) Hit(x, y int) (Handle, *Element[S], bool) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].Over(x, y) {
			return Handle(i), c.items[i], true
		}
	}
	return -1, nil, false
}
