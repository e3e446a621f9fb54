package crypto

import "runtime"

// Wipe zeroes the provided buffer. Best effort; the Go runtime may already
// hold copies elsewhere.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
