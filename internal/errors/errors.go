// Package errors defines the sentinel errors shared by edsign packages.
//
// Callers categorize failures with errors.Is against the values below.
// This package MUST NOT import any other internal package.
package errors

import "errors"

var (
	// ErrInvalidArgument indicates a malformed call: a key or signature buffer
	// of the wrong size, or a length that does not fit the supplied buffer.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptedKeyPair indicates that the public half of an expanded secret
	// key was not derived from its seed.
	ErrCorruptedKeyPair = errors.New("corrupted keypair")

	// ErrEntropyUnavailable indicates that the platform randomness facility
	// could not be opened or read.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrShortRead indicates that the randomness facility returned fewer bytes
	// than requested.
	ErrShortRead = errors.New("entropy short read")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrDecode indicates that a text-encoded key or signature could not be decoded.
	ErrDecode = errors.New("decode failed")
)
