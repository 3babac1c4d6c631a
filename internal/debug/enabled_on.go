//go:build dfidebug

package debug

// Enabled reports whether debug assertions are compiled in.
const Enabled = true
