package crypto

import (
	"crypto/ed25519"
	"crypto/subtle"

	"github.com/hdevalence/ed25519consensus"
	"golang.org/x/crypto/nacl/sign"

	"edsign/internal/domain"
	"edsign/internal/errors"
	"edsign/internal/util/memzero"
)

const (
	// Overhead is the number of bytes a signed message adds to its message.
	Overhead = sign.Overhead

	statusOK     = 0
	statusFailed = -1
)

// NaCl is the crypto_sign / crypto_sign_open primitive.
type NaCl struct{}

// Sign writes signature || message into out[:0], growing it only when its
// capacity is below len(message)+Overhead.
func (NaCl) Sign(out, message []byte, sk *domain.SecretKey) ([]byte, uint64) {
	sm := sign.Sign(out[:0], message, (*[domain.SecretKeySize]byte)(sk))
	return sm, uint64(len(sm))
}

// Open verifies signedMessage and returns a copy of the embedded message.
func (NaCl) Open(signedMessage []byte, pk *domain.PublicKey) ([]byte, uint64, int) {
	m, ok := sign.Open(nil, signedMessage, (*[domain.PublicKeySize]byte)(pk))
	if !ok {
		return nil, 0, statusFailed
	}
	if m == nil {
		m = []byte{}
	}
	return m, uint64(len(m)), statusOK
}

// Consensus signs like NaCl but verifies under ZIP-215, the rules consensus
// systems use so that every node agrees on edge-case encodings.
type Consensus struct{}

func (Consensus) Sign(out, message []byte, sk *domain.SecretKey) ([]byte, uint64) {
	return NaCl{}.Sign(out, message, sk)
}

func (Consensus) Open(signedMessage []byte, pk *domain.PublicKey) ([]byte, uint64, int) {
	if len(signedMessage) < Overhead {
		return nil, 0, statusFailed
	}
	sig, msg := signedMessage[:Overhead], signedMessage[Overhead:]
	if !ed25519consensus.Verify(ed25519.PublicKey(pk[:]), msg, sig) {
		return nil, 0, statusFailed
	}
	m := make([]byte, len(msg))
	copy(m, msg)
	return m, uint64(len(m)), statusOK
}

// ForPolicy returns the primitive implementing p.
func ForPolicy(p domain.VerifyPolicy) (domain.Primitive, error) {
	switch p {
	case domain.PolicyNaCl, "":
		return NaCl{}, nil
	case domain.PolicyZIP215:
		return Consensus{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrConfigInvalid, "unknown verify policy %q", string(p))
	}
}

// PublicFromSeed recomputes the public key for the seed half of sk.
func PublicFromSeed(sk *domain.SecretKey) domain.PublicKey {
	priv := ed25519.NewKeyFromSeed(sk.Seed())
	defer memzero.Zero(priv)

	var pk domain.PublicKey
	copy(pk[:], priv[domain.SeedSize:])
	return pk
}

// CheckKeyPair returns ErrCorruptedKeyPair when the public half of sk was not
// derived from its seed.
func CheckKeyPair(sk *domain.SecretKey) error {
	want := PublicFromSeed(sk)
	if subtle.ConstantTimeCompare(want[:], sk[domain.SeedSize:]) != 1 {
		return errors.ErrCorruptedKeyPair
	}
	return nil
}

// Compile-time assertions that both primitives satisfy domain.Primitive.
var (
	_ domain.Primitive = NaCl{}
	_ domain.Primitive = Consensus{}
)
