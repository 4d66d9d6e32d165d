// Package crypto adapts the Ed25519 signing primitive used by edsign.
//
// Contents
//
//   - NaCl and Consensus primitives implementing domain.Primitive over the
//     signed-message convention (signature || message)
//   - ForPolicy, which picks a primitive for a configured verify policy
//   - Keypair consistency checks for expanded secret keys (CheckKeyPair)
//   - Text forms used by callers that exchange keys as strings: base58 keys,
//     base64 signatures, uppercase hex SHA-256 (encode.go)
//   - Short public-key fingerprints for display and logging (Fingerprint)
//
// # Notes
//
// The curve arithmetic is not implemented here. NaCl delegates to
// golang.org/x/crypto/nacl/sign and Consensus verifies with
// github.com/hdevalence/ed25519consensus. Both sign identically: Ed25519
// signing is deterministic, so a primitive is chosen by its verify rules only.
package crypto
