package domain

import (
	interfaces "edsign/internal/domain/interfaces"
	types "edsign/internal/domain/types"
)

// Sizes of the fixed-length inputs.
const (
	PublicKeySize = types.PublicKeySize
	SecretKeySize = types.SecretKeySize
	SeedSize      = types.SeedSize
	SignatureSize = types.SignatureSize
)

// Type aliases expose domain types from the types subpackage.
type (
	PublicKey    = types.PublicKey
	SecretKey    = types.SecretKey
	Signature    = types.Signature
	VerifyPolicy = types.VerifyPolicy
)

// Policies accepted by VerifyPolicy.
const (
	PolicyNaCl   = types.PolicyNaCl
	PolicyZIP215 = types.PolicyZIP215
)

// Interface aliases expose contracts from the interfaces subpackage.
type (
	Primitive        = interfaces.Primitive
	EntropySource    = interfaces.EntropySource
	SignatureService = interfaces.SignatureService
)

// Parsers re-exported for callers that only import domain.
var (
	ParsePublicKey = types.ParsePublicKey
	ParseSecretKey = types.ParseSecretKey
	ParseSignature = types.ParseSignature
)
