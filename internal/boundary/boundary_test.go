package boundary_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edsign/internal/boundary"
	"edsign/internal/domain"
	"edsign/internal/errors"
	"edsign/internal/util/memzero"
)

func TestPrepareInput(t *testing.T) {
	t.Run("views the caller buffer", func(t *testing.T) {
		buf := []byte("hello")
		in := boundary.PrepareInput(buf)
		assert.Equal(t, uint64(5), in.Len)
		assert.Same(t, &buf[0], &in.Bytes[0])
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		in := boundary.PrepareInput(nil)
		assert.NotNil(t, in.Bytes)
		assert.Zero(t, in.Len)
	})

	t.Run("length is the slice length, not content", func(t *testing.T) {
		in := boundary.PrepareInput([]byte{'a', 0, 0, 0})
		assert.Equal(t, uint64(4), in.Len)
	})
}

func TestPrepareKeys(t *testing.T) {
	pk, err := boundary.PreparePublicKey(bytes.Repeat([]byte{1}, domain.PublicKeySize))
	require.NoError(t, err)
	assert.Equal(t, byte(1), pk[31])

	_, err = boundary.PreparePublicKey(make([]byte, domain.PublicKeySize-1))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = boundary.PreparePublicKey(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	raw := bytes.Repeat([]byte{2}, domain.SecretKeySize)
	sk, err := boundary.PrepareSecretKey(raw)
	require.NoError(t, err)
	boundary.ReleaseSecretKey(sk)
	assert.True(t, memzero.IsZero(sk[:]))
	assert.Equal(t, byte(2), raw[0], "caller buffer is not wiped")

	// A public key passed where a secret key belongs is rejected, not padded.
	_, err = boundary.PrepareSecretKey(make([]byte, domain.PublicKeySize))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	boundary.ReleaseSecretKey(nil)
}

func TestAllocateOutput(t *testing.T) {
	out := boundary.AllocateOutput(69)
	assert.Empty(t, out)
	assert.GreaterOrEqual(t, cap(out), 69)
}

func TestMaterialize(t *testing.T) {
	raw := []byte{5, 4, 3, 2, 1}

	out, err := boundary.Materialize(raw, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 4, 3}, out)

	// Output is a copy.
	out[0] = 9
	assert.Equal(t, byte(5), raw[0])

	out, err = boundary.Materialize(raw, 0)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	_, err = boundary.Materialize(raw, 6)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestRelease(t *testing.T) {
	buf := make([]byte, 3, 8)
	for i := range buf[:cap(buf)] {
		buf[:cap(buf)][i] = 0xff
	}
	boundary.Release(buf)
	assert.True(t, memzero.IsZero(buf[:cap(buf)]))

	boundary.Release(nil)
}
