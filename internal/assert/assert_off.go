// File: internal/assert/assert_off.go
//go:build !vecdebug

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Index is a no-op in release builds.
func Index(i, n int, what string) {}

// Offset is a no-op in release builds.
func Offset(i, n int, what string) {}

// That is a no-op in release builds.
func That(cond bool, msg string) {}
