package types

import "edsign/internal/errors"

const (
	PublicKeySize = 32
	SecretKeySize = 64
	SeedSize      = 32
	SignatureSize = 64
)

// PublicKey is an Ed25519 verification key.
type PublicKey [PublicKeySize]byte

func (k *PublicKey) Slice() []byte { return k[:] }

// SecretKey is an expanded Ed25519 signing key: seed || public key, the
// layout used by NaCl and crypto/ed25519.
type SecretKey [SecretKeySize]byte

func (k *SecretKey) Slice() []byte { return k[:] }

// Seed returns the 32-byte seed half. The slice aliases k.
func (k *SecretKey) Seed() []byte { return k[:SeedSize] }

// PublicHalf returns the public key stored in the second half of k.
func (k *SecretKey) PublicHalf() PublicKey {
	var pk PublicKey
	copy(pk[:], k[SeedSize:])
	return pk
}

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

func (s *Signature) Slice() []byte { return s[:] }

// ParsePublicKey copies b into a PublicKey. b must be exactly 32 bytes.
func ParsePublicKey(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeySize {
		return pk, sizeError("public key", PublicKeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// ParseSecretKey copies b into a SecretKey. b must be exactly 64 bytes.
func ParseSecretKey(b []byte) (SecretKey, error) {
	var sk SecretKey
	if len(b) != SecretKeySize {
		return sk, sizeError("secret key", SecretKeySize, len(b))
	}
	copy(sk[:], b)
	return sk, nil
}

// ParseSignature copies b into a Signature. b must be exactly 64 bytes.
func ParseSignature(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, sizeError("signature", SignatureSize, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

func sizeError(what string, want, got int) error {
	return errors.Wrapf(errors.ErrInvalidArgument, "%s: want %d bytes, got %d", what, want, got)
}
