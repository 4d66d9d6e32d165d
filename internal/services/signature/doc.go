// Package signature exposes the verify and sign operations over raw byte
// buffers.
//
// Verify takes a clear message, a signed message (64-byte signature || message,
// NaCl's convention) and a 32-byte public key, and answers true or false. A
// bad signature is an ordinary false, never an error; errors are reserved for
// malformed calls such as a public key of the wrong size.
//
// Sign takes a message and a 64-byte expanded secret key (seed || public key)
// and returns signature || message, exactly len(message)+64 bytes. With the
// strict secret key check on (the default), a key whose public half was not
// derived from its seed is rejected.
//
// VerifyDetached, VerifyText and Signator cover the text forms exchanged by
// Duniter nodes: base64 detached signatures and base58 keys.
//
// All operations are stateless and safe for concurrent use.
package signature
