package span

import (
	"reflect"
	"unsafe"

	"github.com/rawbytedev/span/internal/common"
)

// Container is the capability a type needs to be viewed by FromContainer:
// a contiguous base address and an element count. Types satisfy it
// structurally; Span itself does.
type Container[T any] interface {
	Data() *T
	Len() int
}

// FromContainer views the elements c exposes through Data and Len.
// The strategy is fixed at instantiation; nothing is decided at run time.
func FromContainer[T any, C Container[T]](c C) Span[T] {
	return Span[T]{data: c.Data(), size: c.Len()}
}

// Of views the elements of a slice, or of any named type whose underlying
// type is a slice. Arrays adapt through a[:].
func Of[S ~[]T, T any](s S) Span[T] {
	return Span[T]{data: unsafe.SliceData(s), size: len(s)}
}

// FromArray views a fixed-length array of T. A must be [N]T; any other type
// panics, since Go cannot constrain a type parameter to arrays of every
// length. Of(a[:]) is the compile-time checked form and yields the same view.
//
//	var a [5]int
//	v := span.FromArray[int](&a)
func FromArray[T any, A any](a *A) Span[T] {
	n := common.ArrayLen(reflect.TypeFor[A](), reflect.TypeFor[T]())
	if n < 0 {
		panic("span: FromArray of " + reflect.TypeFor[A]().String() + ", want array of " + reflect.TypeFor[T]().String())
	}
	return Span[T]{data: (*T)(unsafe.Pointer(a)), size: n}
}

// FromBytes views the bytes of a container exposing Bytes, such as
// *bytes.Buffer. The view is only valid until the container next grows.
func FromBytes[C interface{ Bytes() []byte }](c C) Span[byte] {
	return Of(c.Bytes())
}
