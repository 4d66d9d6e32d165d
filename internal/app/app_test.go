package app_test

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edsign/internal/app"
	"edsign/internal/config"
	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/errors"
	"edsign/internal/logging"
)

func TestNew_WiresPolicy(t *testing.T) {
	tests := []struct {
		policy domain.VerifyPolicy
		want   domain.Primitive
	}{
		{domain.PolicyNaCl, crypto.NaCl{}},
		{domain.PolicyZIP215, crypto.Consensus{}},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.VerifyPolicy = tt.policy

			a, err := app.New(cfg, nil)
			require.NoError(t, err)
			defer func() { require.NoError(t, a.Close()) }()

			assert.Equal(t, tt.want, a.Primitive)
			assert.Same(t, cfg, a.Config)
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.VerifyPolicy = "ecdsa"
	_, err := app.New(cfg, nil)
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestApp_SignVerifyAndEntropy(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = config.FormatJSON
	l, err := logging.New(cfg.Log, &buf)
	require.NoError(t, err)

	a, err := app.New(cfg, l)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	seed := make([]byte, domain.SeedSize)
	a.Entropy.Fill(seed, len(seed))
	assert.NotEqual(t, make([]byte, domain.SeedSize), seed)

	sk := ed25519.NewKeyFromSeed(seed)
	pub := sk.Public().(ed25519.PublicKey)

	sm, err := a.Signature.Sign([]byte("hello"), sk)
	require.NoError(t, err)
	ok, err := a.Signature.Verify([]byte("hello"), sm, pub)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Contains(t, buf.String(), `"message":"app wired"`)
	assert.Contains(t, buf.String(), `"component":"signature"`)
}

func TestApp_LenientSecretKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StrictSecretKey = false
	a, err := app.New(cfg, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	sk := make([]byte, domain.SecretKeySize)
	sk[40] = 1
	_, err = a.Signature.Sign([]byte("x"), sk)
	assert.NoError(t, err)
}

func TestApp_MessageBinding(t *testing.T) {
	pub, sk, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	for _, bind := range []bool{false, true} {
		cfg := config.DefaultConfig()
		cfg.MessageBinding = bind
		a, err := app.New(cfg, nil)
		require.NoError(t, err)

		sm, err := a.Signature.Sign([]byte("hello"), sk)
		require.NoError(t, err)
		ok, err := a.Signature.Verify([]byte("other"), sm, pub)
		require.NoError(t, err)
		assert.Equal(t, !bind, ok, "message_binding=%v", bind)
		require.NoError(t, a.Close())
	}
}
