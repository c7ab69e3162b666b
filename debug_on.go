//go:build spandebug

package span

// debug enables precondition assertions that the default build omits.
const debug = true
