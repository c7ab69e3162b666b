package span

// Sub-views share memory with the receiver. None of these validate their
// arguments; see the Checked variants for that.

// First returns the leading n elements. n must not exceed Len().
func (s Span[T]) First(n int) Span[T] {
	return Span[T]{data: s.data, size: n}
}

// Last returns the trailing n elements. n must not exceed Len().
// Last(0) of a non-empty view has a nil address; see advance.
func (s Span[T]) Last(n int) Span[T] {
	return Span[T]{data: s.advance(s.size - n), size: n}
}

// Subspan returns the elements from offset to the end.
func (s Span[T]) Subspan(offset int) Span[T] {
	return Span[T]{data: s.advance(offset), size: s.size - offset}
}

// SubspanN returns n elements starting at offset.
// offset+n must not exceed Len().
func (s Span[T]) SubspanN(offset, n int) Span[T] {
	return Span[T]{data: s.advance(offset), size: n}
}

// advance moves the base address forward by off elements. Go forbids
// forming a pointer one past the end of an object, and a view cannot tell
// whether its end is also the end of the buffer, so a view advanced to its
// own end always carries a nil address. Sub-views starting before the end
// keep the parent-relative address.
func (s Span[T]) advance(off int) *T {
	if off == s.size && off != 0 {
		return nil
	}
	return elem(s.data, off)
}
