// File: internal/assert/assert_on.go
//go:build vecdebug

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Debug build of the assertion hooks. Enabled with -tags vecdebug.
// Violations abort the process; release builds compile these to no-ops
// and out-of-range access is undefined behavior by contract.

package assert

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Index aborts unless 0 <= i < n.
func Index(i, n int, what string) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("assert: %s index %d out of range [0, %d)", what, i, n))
	}
}

// Offset aborts unless 0 <= i <= n. Used for insertion positions, where
// one-past-the-end is valid.
func Offset(i, n int, what string) {
	if i < 0 || i > n {
		panic(fmt.Sprintf("assert: %s offset %d out of range [0, %d]", what, i, n))
	}
}

// That aborts when cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic("assert: " + msg)
	}
}
