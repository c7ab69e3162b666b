// Package span provides Span, a non-owning view over a contiguous run of
// typed elements.
//
// A Span is two plain words: the address of the first element and an
// element count. It never allocates, never copies element data and never
// checks its arguments on the default path. Validity of a Span is bound to
// the memory it describes: the garbage collector keeps Go heap memory alive
// while a Span points into it, but memory released by other means (an
// unmapped region, a C allocation) or a slice whose backing array was
// replaced by append leaves the Span dangling. Using it then is undefined.
//
// Checked variants (AtChecked, FirstChecked, ...) are opt-in and return
// ErrOutOfRange instead of reading out of bounds.
package span

import "unsafe"

// Span describes count elements of type T starting at data.
// The zero value is an empty view.
type Span[T any] struct {
	data *T
	size int
}

// New returns a view of n elements starting at p.
func New[T any](p *T, n int) Span[T] {
	return Span[T]{data: p, size: n}
}

// FromRange returns a view of the half-open range [first, last).
// first must not be after last; a reversed pair yields a meaningless length
// (builds tagged spandebug panic instead).
func FromRange[T any](first, last *T) Span[T] {
	if debug && uintptr(ptr(last)) < uintptr(ptr(first)) {
		panic("span: FromRange called with first after last")
	}
	return Span[T]{data: first, size: distance(first, last)}
}

// distance counts the elements of T between first and last.
// The subtraction is unsigned, so a reversed pair wraps.
func distance[T any](first, last *T) int {
	sz := unsafe.Sizeof(*first)
	if sz == 0 {
		return 0
	}
	return int((uintptr(ptr(last)) - uintptr(ptr(first))) / sz)
}

func ptr[T any](p *T) unsafe.Pointer { return unsafe.Pointer(p) }

// elem returns the address i elements past base.
func elem[T any](base *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(i)*unsafe.Sizeof(*base)))
}

// At returns a reference to element i. i must be in [0, Len()).
func (s Span[T]) At(i int) *T {
	return elem(s.data, i)
}

// Get returns a copy of element i.
func (s Span[T]) Get(i int) T {
	return *elem(s.data, i)
}

// Set stores v at element i.
func (s Span[T]) Set(i int, v T) {
	*elem(s.data, i) = v
}

// Front returns a reference to the first element. The view must not be empty.
func (s Span[T]) Front() *T {
	return s.data
}

// Back returns a reference to the last element. The view must not be empty.
func (s Span[T]) Back() *T {
	return elem(s.data, s.size-1)
}

// Data returns the base address, nil for a zero view.
func (s Span[T]) Data() *T { return s.data }

// Len returns the number of elements.
func (s Span[T]) Len() int { return s.size }

// Empty reports whether the view has no elements.
func (s Span[T]) Empty() bool { return s.size == 0 }

// Slice returns the viewed elements as a Go slice sharing the same memory.
// Writes through either are visible through both.
func (s Span[T]) Slice() []T {
	if s.size == 0 {
		return nil
	}
	return unsafe.Slice(s.data, s.size)
}
