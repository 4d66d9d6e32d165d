package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edsign/internal/domain/types"
	"edsign/internal/errors"
)

func TestParsePublicKey(t *testing.T) {
	t.Run("exact size", func(t *testing.T) {
		in := bytes.Repeat([]byte{7}, types.PublicKeySize)
		pk, err := types.ParsePublicKey(in)
		require.NoError(t, err)
		assert.Equal(t, in, pk.Slice())

		// pk must not alias the input.
		in[0] = 0
		assert.Equal(t, byte(7), pk[0])
	})

	for _, n := range []int{0, 31, 33, 64} {
		_, err := types.ParsePublicKey(make([]byte, n))
		assert.ErrorIs(t, err, errors.ErrInvalidArgument, "len %d", n)
	}
}

func TestParseSecretKey(t *testing.T) {
	in := make([]byte, types.SecretKeySize)
	for i := range in {
		in[i] = byte(i)
	}
	sk, err := types.ParseSecretKey(in)
	require.NoError(t, err)
	assert.Equal(t, in[:32], sk.Seed())

	pub := sk.PublicHalf()
	assert.Equal(t, in[32:], pub.Slice())

	_, err = types.ParseSecretKey(in[:32])
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "want 64 bytes, got 32")
}

func TestParseSignature(t *testing.T) {
	_, err := types.ParseSignature(make([]byte, types.SignatureSize))
	require.NoError(t, err)

	_, err = types.ParseSignature(make([]byte, types.SignatureSize+1))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestVerifyPolicy_UnmarshalText(t *testing.T) {
	var p types.VerifyPolicy
	require.NoError(t, p.UnmarshalText([]byte(" ZIP215 ")))
	assert.Equal(t, types.PolicyZIP215, p)

	require.NoError(t, p.UnmarshalText(nil))
	assert.Equal(t, types.PolicyNaCl, p)

	err := p.UnmarshalText([]byte("rsa"))
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}
