package pke

import (
	"github.com/tuneinsight/lattigo/v5/ring"
)

// SecretKey wraps the secret polynomial s, stored in the NTT and Montgomery
// domain. The backing storage is highly sensitive: call [SecretKey.Erase]
// before releasing it, on every exit path.
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey allocates a zero [SecretKey] for the given parameters.
func NewSecretKey(params Parameters) *SecretKey {
	return &SecretKey{Value: params.RingQ().NewPoly()}
}

func (sk *SecretKey) isEncryptionKey() {}

// Erase overwrites the secret polynomial's backing storage with zeros.
// Safe to call on a nil receiver or more than once.
func (sk *SecretKey) Erase() {
	if sk == nil {
		return
	}
	for i := range sk.Value.Coeffs {
		row := sk.Value.Coeffs[i]
		for j := range row {
			row[j] = 0
		}
	}
}

// PublicKey wraps the pair (b, a) with b = -(a*s) + e, a single RLWE sample
// of zero under the matching secret key. Both polynomials are stored in the
// NTT and Montgomery domain.
type PublicKey struct {
	Value [2]ring.Poly
}

// NewPublicKey allocates a zero [PublicKey] for the given parameters.
func NewPublicKey(params Parameters) *PublicKey {
	ringQ := params.RingQ()
	return &PublicKey{Value: [2]ring.Poly{ringQ.NewPoly(), ringQ.NewPoly()}}
}

func (pk *PublicKey) isEncryptionKey() {}

// KeyPair jointly owns the public and secret key produced by a single
// generation call.
type KeyPair struct {
	Public *PublicKey
	Secret *SecretKey
}

// Erase overwrites the secret key's backing storage with zeros.
// Safe to call on a nil receiver.
func (kp *KeyPair) Erase() {
	if kp == nil {
		return
	}
	kp.Secret.Erase()
}
