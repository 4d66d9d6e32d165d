package signature

import (
	"crypto/subtle"
	"fmt"

	"github.com/rs/zerolog"

	"edsign/internal/boundary"
	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/errors"
)

// Service runs sign and verify through the boundary checks and a primitive.
type Service struct {
	primitive domain.Primitive
	strict    bool
	bind      bool
	logger    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Only lengths and key fingerprints are logged.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l.With().Str("component", "signature").Logger() }
}

// WithStrictSecretKey toggles the check that a secret key's public half
// matches its seed.
func WithStrictSecretKey(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// WithMessageBinding makes Verify also require that the message carried by the
// signed message equals the clear message. Off by default.
func WithMessageBinding(bind bool) Option {
	return func(s *Service) { s.bind = bind }
}

// New returns a Service backed by p.
func New(p domain.Primitive, opts ...Option) *Service {
	s := &Service{primitive: p, strict: true, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify reports whether signedMessage opens under publicKey. message is only
// compared with the embedded message when message binding is enabled.
func (s *Service) Verify(message, signedMessage, publicKey []byte) (bool, error) {
	pk, err := boundary.PreparePublicKey(publicKey)
	if err != nil {
		return false, errors.Wrap(err, "verify")
	}
	m := boundary.PrepareInput(message)
	sm := boundary.PrepareInput(signedMessage)

	if sm.Len < domain.SignatureSize {
		s.logger.Debug().Uint64("signed_len", sm.Len).Msg("signed message shorter than a signature")
		return false, nil
	}

	opened, n, status := s.primitive.Open(sm.Bytes, pk)
	if status != 0 || n != uint64(len(opened)) {
		s.logger.Debug().
			Str("public_key", crypto.Fingerprint(pk)).
			Int("status", status).
			Msg("signature rejected")
		return false, nil
	}
	if s.bind && (n != m.Len || subtle.ConstantTimeCompare(opened, m.Bytes) != 1) {
		s.logger.Debug().
			Str("public_key", crypto.Fingerprint(pk)).
			Msg("signed message does not carry the given message")
		return false, nil
	}
	return true, nil
}

// Sign returns signature || message.
func (s *Service) Sign(message, secretKey []byte) ([]byte, error) {
	sk, err := boundary.PrepareSecretKey(secretKey)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	defer boundary.ReleaseSecretKey(sk)

	if s.strict {
		if err := crypto.CheckKeyPair(sk); err != nil {
			return nil, fmt.Errorf("sign: %w: %w", errors.ErrInvalidArgument, err)
		}
	}

	m := boundary.PrepareInput(message)
	want := m.Len + domain.SignatureSize
	out := boundary.AllocateOutput(want)
	defer boundary.Release(out)

	sm, n := s.primitive.Sign(out, m.Bytes, sk)
	defer boundary.Release(sm)
	if n != want {
		return nil, fmt.Errorf("sign: primitive wrote %d bytes, want %d", n, want)
	}

	result, err := boundary.Materialize(sm, n)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}

	if e := s.logger.Debug(); e.Enabled() {
		pub := sk.PublicHalf()
		e.Str("public_key", crypto.Fingerprint(&pub)).Uint64("message_len", m.Len).Msg("message signed")
	}
	return result, nil
}

// VerifyDetached verifies a bare 64-byte signature over message. A signature
// of any other length is (false, nil).
func (s *Service) VerifyDetached(message, sig, publicKey []byte) (bool, error) {
	if _, err := boundary.PreparePublicKey(publicKey); err != nil {
		return false, errors.Wrap(err, "verify detached")
	}
	if len(sig) != domain.SignatureSize {
		return false, nil
	}
	sm := make([]byte, 0, domain.SignatureSize+len(message))
	sm = append(sm, sig...)
	sm = append(sm, message...)
	return s.Verify(message, sm, publicKey)
}

// VerifyText verifies a base64 signature with a base58 public key. Anything
// that does not decode to the right sizes is false.
func (s *Service) VerifyText(message []byte, sigBase64, pubBase58 string) bool {
	sig, err := crypto.DecodeB64(sigBase64)
	if err != nil {
		return false
	}
	pub, err := crypto.DecodeBase58(pubBase58)
	if err != nil {
		return false
	}
	ok, err := s.VerifyDetached(message, sig, pub)
	return err == nil && ok
}

// Compile-time assertion that Service implements domain.SignatureService.
var _ domain.SignatureService = (*Service)(nil)
