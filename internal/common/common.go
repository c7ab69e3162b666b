// Package common classifies element types for byte-level reinterpretation.
package common

import (
	"reflect"
	"sync"
)

// Layout describes how values of a type sit in memory.
type Layout struct {
	Size  uintptr
	Align uintptr
	// Plain is true when the type holds no Go pointers, so its bytes can be
	// aliased as another plain type without hiding references from the GC.
	Plain bool
}

var (
	mu      sync.RWMutex
	layouts = make(map[reflect.Type]Layout)
)

// IsFixedKind reports whether k is a fixed-size scalar kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsPlain reports whether t is built only from fixed-size scalars, arrays
// and structs of them.
func IsPlain(t reflect.Type) bool {
	switch k := t.Kind(); k {
	case reflect.Array:
		return IsPlain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return IsFixedKind(k)
	}
}

// LayoutOf returns the cached layout of t.
func LayoutOf(t reflect.Type) Layout {
	mu.RLock()
	if l, ok := layouts[t]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	// Double-check
	if l, ok := layouts[t]; ok {
		return l
	}
	l := Layout{Size: t.Size(), Align: uintptr(t.Align()), Plain: IsPlain(t)}
	layouts[t] = l
	return l
}

type arrayKey struct{ array, elem reflect.Type }

var (
	arrMu   sync.RWMutex
	arrLens = make(map[arrayKey]int)
)

// ArrayLen returns the length of t when t is an array of elem, or -1.
func ArrayLen(t, elem reflect.Type) int {
	k := arrayKey{t, elem}
	arrMu.RLock()
	if n, ok := arrLens[k]; ok {
		arrMu.RUnlock()
		return n
	}
	arrMu.RUnlock()

	n := -1
	if t.Kind() == reflect.Array && t.Elem() == elem {
		n = t.Len()
	}
	arrMu.Lock()
	arrLens[k] = n
	arrMu.Unlock()
	return n
}
