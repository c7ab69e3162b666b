package span

import "iter"

// Cursor is a position within a Span. Walking from Begin with Next until the
// cursor equals End visits every element in storage order. Cursors read the
// live buffer; nothing is snapshotted.
type Cursor[T any] struct {
	base *T
	idx  int
}

// Begin returns a cursor at the first element.
func (s Span[T]) Begin() Cursor[T] { return Cursor[T]{base: s.data} }

// End returns the cursor one past the last element. It must not be
// dereferenced.
func (s Span[T]) End() Cursor[T] { return Cursor[T]{base: s.data, idx: s.size} }

// CBegin is Begin for read-only traversal.
func (s Span[T]) CBegin() Cursor[T] { return s.Begin() }

// CEnd is End for read-only traversal.
func (s Span[T]) CEnd() Cursor[T] { return s.End() }

// Next returns the cursor advanced by one element.
func (c Cursor[T]) Next() Cursor[T] {
	c.idx++
	return c
}

// Ref returns a reference to the element under the cursor.
func (c Cursor[T]) Ref() *T { return elem(c.base, c.idx) }

// Value returns a copy of the element under the cursor.
func (c Cursor[T]) Value() T { return *elem(c.base, c.idx) }

// Index returns the cursor's offset from the start of its view.
func (c Cursor[T]) Index() int { return c.idx }

// Equal reports whether both cursors denote the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.base == o.base && c.idx == o.idx
}

// All yields index/value pairs front to back.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, *elem(s.data, i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (s Span[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(*elem(s.data, i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (s Span[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(i, *elem(s.data, i)) {
				return
			}
		}
	}
}
