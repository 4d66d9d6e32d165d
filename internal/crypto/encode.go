package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"edsign/internal/errors"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeB64 decodes standard, padded base64. Spaces and other non-alphabet
// bytes are rejected.
func DecodeB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDecode, err.Error())
	}
	return b, nil
}

// EncodeBase58 renders b in the Bitcoin base58 alphabet.
func EncodeBase58(b []byte) string { return base58.Encode(b) }

// DecodeBase58 decodes a Bitcoin-alphabet base58 string.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.Wrap(errors.ErrDecode, "empty base58 string")
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDecode, err.Error())
	}
	return b, nil
}

// Sha256Hex returns the uppercase hex SHA-256 of data.
func Sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
