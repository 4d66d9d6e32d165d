package interfaces

import types "edsign/internal/domain/types"

// Primitive is an Ed25519 signing scheme in NaCl's signed-message form.
// Implementations must be stateless and safe for concurrent use.
type Primitive interface {
	// Sign appends signature || message to out[:0] and returns the result
	// with its length, which is always len(message)+64.
	Sign(out, message []byte, sk *types.SecretKey) ([]byte, uint64)

	// Open checks the signature prefix of signedMessage and returns the
	// embedded message, its length and a status: 0 on success, nonzero on
	// any failure.
	Open(signedMessage []byte, pk *types.PublicKey) ([]byte, uint64, int)
}
