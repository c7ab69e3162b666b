//go:build !(linux || darwin || freebsd)

package mapped

import "errors"

var errNoMmap = errors.New("anonymous mappings unsupported on this platform")

func mmap(int) ([]byte, error) { return nil, errNoMmap }

func munmap([]byte) error { return nil }
