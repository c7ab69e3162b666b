package span

import (
	"fmt"
	"reflect"

	"github.com/rawbytedev/span/internal/common"
)

// Options controls Reinterpret.
type Options struct {
	// CheckAlignment rejects a base address that is not aligned for the
	// target element type.
	CheckAlignment bool
}

// Reinterpret views the bytes of s as elements of U without copying.
// T and U must both be free of Go pointers, and the byte length of s must
// be a multiple of the size of U.
func Reinterpret[U, T any](s Span[T], opts Options) (Span[U], error) {
	from := common.LayoutOf(reflect.TypeFor[T]())
	to := common.LayoutOf(reflect.TypeFor[U]())
	if !from.Plain {
		return Span[U]{}, fmt.Errorf("%s: %w", reflect.TypeFor[T](), ErrNotPlain)
	}
	if !to.Plain {
		return Span[U]{}, fmt.Errorf("%s: %w", reflect.TypeFor[U](), ErrNotPlain)
	}
	n := uintptr(s.size) * from.Size
	if n == 0 {
		return Span[U]{data: (*U)(ptr(s.data))}, nil
	}
	if to.Size == 0 || n%to.Size != 0 {
		return Span[U]{}, fmt.Errorf("%d bytes as %s: %w", n, reflect.TypeFor[U](), ErrSizeMismatch)
	}
	if opts.CheckAlignment && uintptr(ptr(s.data))%to.Align != 0 {
		return Span[U]{}, fmt.Errorf("%p for %s: %w", s.data, reflect.TypeFor[U](), ErrMisaligned)
	}
	return Span[U]{data: (*U)(ptr(s.data)), size: int(n / to.Size)}, nil
}

// AsBytes returns the raw bytes under s, sharing its memory.
func AsBytes[T any](s Span[T]) ([]byte, error) {
	b, err := Reinterpret[byte](s, Options{})
	if err != nil {
		return nil, err
	}
	return b.Slice(), nil
}

// MustBytes is AsBytes for element types known to be plain; it panics otherwise.
func MustBytes[T any](s Span[T]) []byte {
	b, err := AsBytes(s)
	if err != nil {
		panic(err)
	}
	return b
}
