package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/errors"
)

func TestSha256Hex(t *testing.T) {
	assert.Equal(t,
		"2CF24DBA5FB0A30E26E83B2AC5B9E29E1B161E5C1FA7425E73043362938B9824",
		crypto.Sha256Hex([]byte("hello")))
}

func TestBase58(t *testing.T) {
	raw, err := crypto.DecodeBase58(vectorPublicB58)
	require.NoError(t, err)
	assert.Len(t, raw, domain.PublicKeySize)
	assert.Equal(t, vectorPublicB58, crypto.EncodeBase58(raw))

	_, err = crypto.DecodeBase58("0OIl")
	assert.ErrorIs(t, err, errors.ErrDecode)

	_, err = crypto.DecodeBase58("")
	assert.ErrorIs(t, err, errors.ErrDecode)
}

func TestBase64(t *testing.T) {
	b, err := crypto.DecodeB64(crypto.B64([]byte{0, 1, 2, 0xff}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 0xff}, b)

	_, err = crypto.DecodeB64("cJohoG/qmxm7 KwqCB71==")
	assert.ErrorIs(t, err, errors.ErrDecode)
}

func TestFingerprint(t *testing.T) {
	_, pk := vectorKeys(t)
	fp := crypto.Fingerprint(&pk)
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.Fingerprint(&pk))

	other := pk
	other[0] ^= 0x01
	assert.NotEqual(t, fp, crypto.Fingerprint(&other))
}
