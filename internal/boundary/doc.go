// Package boundary validates caller buffers before they reach the signing
// primitive and turns primitive output back into caller-owned buffers.
//
// Nothing here keeps a reference to a caller buffer after the call that
// passed it in. Fixed-size inputs (32-byte public keys, 64-byte secret keys)
// are checked exactly and rejected with errors.ErrInvalidArgument; messages
// have no length limit.
package boundary
