package boundary

import (
	"edsign/internal/domain"
	"edsign/internal/errors"
	"edsign/internal/util/memzero"
)

// Input is a view over a caller buffer, valid for the duration of one call.
type Input struct {
	Bytes []byte
	// Len is the buffer's own length, never inferred from content.
	Len uint64
}

// PrepareInput wraps buf without copying it. A nil buffer becomes an empty view.
func PrepareInput(buf []byte) Input {
	if buf == nil {
		buf = []byte{}
	}
	return Input{Bytes: buf, Len: uint64(len(buf))}
}

// PreparePublicKey copies a 32-byte public key out of buf.
func PreparePublicKey(buf []byte) (*domain.PublicKey, error) {
	pk, err := domain.ParsePublicKey(buf)
	if err != nil {
		return nil, err
	}
	return &pk, nil
}

// PrepareSecretKey copies a 64-byte secret key out of buf. Callers wipe the
// copy with ReleaseSecretKey when done.
func PrepareSecretKey(buf []byte) (*domain.SecretKey, error) {
	sk, err := domain.ParseSecretKey(buf)
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

// ReleaseSecretKey wipes a key returned by PrepareSecretKey.
func ReleaseSecretKey(sk *domain.SecretKey) {
	if sk != nil {
		memzero.Zero(sk[:])
	}
}

// AllocateOutput returns an empty buffer with room for maxLength bytes.
func AllocateOutput(maxLength uint64) []byte {
	return make([]byte, 0, maxLength)
}

// Materialize copies raw[:length] into a new caller-owned slice, preserving
// byte order. It never reads past raw.
func Materialize(raw []byte, length uint64) ([]byte, error) {
	if length > uint64(len(raw)) {
		return nil, errors.Wrapf(errors.ErrInvalidArgument,
			"output length %d exceeds %d-byte primitive buffer", length, len(raw))
	}
	out := make([]byte, length)
	copy(out, raw[:length])
	return out, nil
}

// Release wipes a transient output buffer, including spare capacity.
func Release(buf []byte) {
	memzero.Zero(buf[:cap(buf)])
}
