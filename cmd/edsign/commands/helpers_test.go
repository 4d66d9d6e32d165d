package commands

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"edsign/internal/crypto"
)

func hexOfBase58(t *testing.T, s string) string {
	t.Helper()
	b, err := crypto.DecodeBase58(s)
	require.NoError(t, err)
	return hex.EncodeToString(b)
}

func base58Of(t *testing.T, b []byte) string {
	t.Helper()
	return crypto.EncodeBase58(b)
}

func decodeBase58(t *testing.T, s string) []byte {
	t.Helper()
	b, err := crypto.DecodeBase58(s)
	require.NoError(t, err)
	return b
}
