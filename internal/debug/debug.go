// Package debug carries the compile-time switch for the assertions guarding
// the unchecked numeric fast paths.
//
// Build with -tags dfidebug to turn the assertions on. In default builds
// Enabled is a false constant and every guarded check is compiled away.
package debug

import "fmt"

// Assert panics with a formatted message when cond is false and assertions
// are enabled.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
