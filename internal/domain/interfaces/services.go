package interfaces

// SignatureService exposes the verify and sign operations over raw buffers.
type SignatureService interface {
	// Verify reports whether signedMessage carries a valid signature by
	// publicKey over message. A bad signature is (false, nil); only a
	// malformed call returns an error.
	Verify(message, signedMessage, publicKey []byte) (bool, error)

	// Sign returns signature || message.
	Sign(message, secretKey []byte) ([]byte, error)

	// VerifyDetached is Verify for a bare 64-byte signature.
	VerifyDetached(message, sig, publicKey []byte) (bool, error)

	// VerifyText verifies a base64 signature against a base58 public key.
	VerifyText(message []byte, sigBase64, pubBase58 string) bool
}
