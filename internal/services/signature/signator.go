package signature

import (
	"fmt"

	"edsign/internal/boundary"
	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/errors"
)

// Signator holds one secret key for repeated signing.
type Signator struct {
	svc *Service
	sk  domain.SecretKey
}

// NewSignator validates secretKey and keeps a copy of it. Call Wipe when done.
func (s *Service) NewSignator(secretKey []byte) (*Signator, error) {
	sk, err := boundary.PrepareSecretKey(secretKey)
	if err != nil {
		return nil, errors.Wrap(err, "signator")
	}
	k := &Signator{svc: s, sk: *sk}
	boundary.ReleaseSecretKey(sk)

	if s.strict {
		if err := crypto.CheckKeyPair(&k.sk); err != nil {
			k.Wipe()
			return nil, fmt.Errorf("signator: %w: %w", errors.ErrInvalidArgument, err)
		}
	}
	return k, nil
}

// PublicKey returns the public half of the key.
func (k *Signator) PublicKey() domain.PublicKey { return k.sk.PublicHalf() }

// PublicKeyBase58 returns the public key in base58.
func (k *Signator) PublicKeyBase58() string {
	pk := k.PublicKey()
	return crypto.EncodeBase58(pk[:])
}

// Sign returns signature || message.
func (k *Signator) Sign(message []byte) ([]byte, error) {
	return k.svc.Sign(message, k.sk[:])
}

// SignDetached returns only the 64-byte signature.
func (k *Signator) SignDetached(message []byte) ([]byte, error) {
	sm, err := k.Sign(message)
	if err != nil {
		return nil, err
	}
	return sm[:domain.SignatureSize:domain.SignatureSize], nil
}

// SignBase64 returns the detached signature in base64.
func (k *Signator) SignBase64(message []byte) (string, error) {
	sig, err := k.SignDetached(message)
	if err != nil {
		return "", err
	}
	return crypto.B64(sig), nil
}

// Wipe zeroes the held key. The Signator is unusable afterwards.
func (k *Signator) Wipe() {
	boundary.ReleaseSecretKey(&k.sk)
}
