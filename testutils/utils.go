// Package testutils provides general purpose utility functions for unit testing.
package testutils

import (
	"testing"
)

// Func wraps a regular testing function so it can be used as a pointer function receiver
type Func func(t *testing.T)

// Repeat returns a test function that repeats the given test function n times
func (f Func) Repeat(n int) Func {
	return func(t *testing.T) {
		for i := 0; i < n; i++ {
			f(t)
		}
	}
}
