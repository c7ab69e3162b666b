//go:build !spandebug

package span

const debug = false
