// Package pke implements the scheme-agnostic cryptographic primitives shared
// by RLWE-based encryption schemes: key-pair generation, encryptions of zero,
// encryption under either a secret or a public key, and the generalized
// reduction of a ciphertext to a raw noisy plaintext under the secret key.
// Concrete schemes extend this package with their plaintext encodings and
// homomorphic operations.
//
// The ring arithmetic (polynomial representation, NTT multiplication and the
// uniform/Gaussian/ternary samplers) is consumed from lattigo's ring package.
package pke

import (
	"errors"
)

// EncryptionKey is an interface for encryption keys. Valid encryption
// keys are the [SecretKey] and [PublicKey] types.
type EncryptionKey interface {
	isEncryptionKey()
}

// Representation identifies one of the two canonical output forms a
// decryption can be decoded into.
type Representation int

const (
	// Coefficient is the coefficient-domain representation.
	Coefficient Representation = iota
	// Evaluation is the NTT-domain representation.
	Evaluation
)

// ErrUnsupportedRepresentation is returned when a decryption is requested
// into an output representation the target scheme does not implement.
var ErrUnsupportedRepresentation = errors.New("unsupported plaintext representation")

// Decoder performs the scheme-specific decoding of the raw noisy plaintext
// produced by the core decryption. On entry the plaintext buffer holds the
// raw element in the indicated representation; the decoder strips the noise
// and rewrites the buffer with the message, in place.
//
// A concrete scheme must implement at least one of the two methods; the
// other returns an error wrapping [ErrUnsupportedRepresentation].
type Decoder interface {
	DecodeCoefficient(level int, pt *Plaintext) (DecryptResult, error)
	DecodeEvaluation(level int, pt *Plaintext) (DecryptResult, error)
}
