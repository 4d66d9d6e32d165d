package types

import (
	"strings"

	"edsign/internal/errors"
)

// VerifyPolicy selects the verification rules applied by the primitive.
type VerifyPolicy string

const (
	// PolicyNaCl follows NaCl/crypto_sign_open: canonical S, cofactorless check.
	PolicyNaCl VerifyPolicy = "nacl"
	// PolicyZIP215 follows the ZIP-215 consensus rules.
	PolicyZIP215 VerifyPolicy = "zip215"
)

func (p VerifyPolicy) String() string { return string(p) }

// Valid reports whether p is a known policy.
func (p VerifyPolicy) Valid() bool {
	return p == PolicyNaCl || p == PolicyZIP215
}

// UnmarshalText lets config decoding turn strings into policies.
func (p *VerifyPolicy) UnmarshalText(text []byte) error {
	v := VerifyPolicy(strings.ToLower(strings.TrimSpace(string(text))))
	if v == "" {
		v = PolicyNaCl
	}
	if !v.Valid() {
		return errors.Wrapf(errors.ErrConfigInvalid, "unknown verify policy %q", string(text))
	}
	*p = v
	return nil
}

// MarshalText renders the policy name.
func (p VerifyPolicy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}
