// Package mapped provides memory regions owned outside the Go heap.
//
// A Region exposes Data and Len, so span.FromContainer views it directly.
// Views over a Region are valid only until Close; the garbage collector
// does not know about mapped memory and cannot keep it alive.
package mapped

import "errors"

var ErrInvalidSize = errors.New("region size must be positive")

// Region is a fixed-size block of bytes. When the platform mapping fails the
// block falls back to the Go heap, Mapped reports false and MapErr reports
// why.
type Region struct {
	data   []byte
	mapped bool
	mapErr error
}

var mapAnon = mmap

// New allocates a zeroed region of size bytes.
func New(size int) (*Region, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	data, err := mapAnon(size)
	if err != nil {
		return &Region{data: make([]byte, size), mapErr: err}, nil
	}
	return &Region{data: data, mapped: true}, nil
}

// Data returns the address of the first byte, nil after Close.
func (r *Region) Data() *byte {
	if len(r.data) == 0 {
		return nil
	}
	return &r.data[0]
}

// Len returns the region size in bytes, 0 after Close.
func (r *Region) Len() int { return len(r.data) }

// Bytes returns the region as a slice.
func (r *Region) Bytes() []byte { return r.data }

// Mapped reports whether the region lives outside the Go heap.
func (r *Region) Mapped() bool { return r.mapped }

// MapErr returns the error that forced a heap fallback, nil when mapped.
func (r *Region) MapErr() error { return r.mapErr }

// Close releases the region. Calling it more than once is a no-op.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	data, mapped := r.data, r.mapped
	r.data, r.mapped = nil, false
	if !mapped {
		return nil
	}
	return munmap(data)
}
