package span

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("index out of range")
	ErrReversedRange = errors.New("range end precedes start")
	ErrNotPlain      = errors.New("element type contains pointers")
	ErrSizeMismatch  = errors.New("byte length not a multiple of element size")
	ErrMisaligned    = errors.New("base address misaligned for element type")
)

// FromRangeChecked is FromRange, rejecting a reversed pair.
func FromRangeChecked[T any](first, last *T) (Span[T], error) {
	if uintptr(ptr(last)) < uintptr(ptr(first)) {
		return Span[T]{}, ErrReversedRange
	}
	return Span[T]{data: first, size: distance(first, last)}, nil
}

// AtChecked is At with a bounds check.
func (s Span[T]) AtChecked(i int) (*T, error) {
	if i < 0 || i >= s.size {
		return nil, fmt.Errorf("at %d of %d: %w", i, s.size, ErrOutOfRange)
	}
	return elem(s.data, i), nil
}

// FirstChecked is First with a bounds check.
func (s Span[T]) FirstChecked(n int) (Span[T], error) {
	if n < 0 || n > s.size {
		return Span[T]{}, fmt.Errorf("first %d of %d: %w", n, s.size, ErrOutOfRange)
	}
	return s.First(n), nil
}

// LastChecked is Last with a bounds check.
func (s Span[T]) LastChecked(n int) (Span[T], error) {
	if n < 0 || n > s.size {
		return Span[T]{}, fmt.Errorf("last %d of %d: %w", n, s.size, ErrOutOfRange)
	}
	return s.Last(n), nil
}

// SubspanChecked is Subspan with a bounds check.
func (s Span[T]) SubspanChecked(offset int) (Span[T], error) {
	if offset < 0 || offset > s.size {
		return Span[T]{}, fmt.Errorf("subspan at %d of %d: %w", offset, s.size, ErrOutOfRange)
	}
	return s.Subspan(offset), nil
}

// SubspanNChecked is SubspanN with a bounds check.
func (s Span[T]) SubspanNChecked(offset, n int) (Span[T], error) {
	if offset < 0 || n < 0 || offset > s.size || n > s.size-offset {
		return Span[T]{}, fmt.Errorf("subspan %d+%d of %d: %w", offset, n, s.size, ErrOutOfRange)
	}
	return s.SubspanN(offset, n), nil
}
