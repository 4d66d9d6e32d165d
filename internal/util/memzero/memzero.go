// Package memzero wipes sensitive byte slices.
package memzero

import "runtime"

// Zero overwrites b with zeros.
//
// Transient signing buffers and the destination of a failed entropy fill go
// through here before they are dropped.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// b must stay live until the writes above are done.
	runtime.KeepAlive(b)
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
