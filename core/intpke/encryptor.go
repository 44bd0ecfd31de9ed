package intpke

import (
	"fmt"

	"github.com/cryptlab-primitives/base-pke/core/pke"
)

// Encryptor encodes and encrypts integer messages under the key it stores,
// composing the base layer's encryptor with the scheme encoder.
type Encryptor struct {
	params  Parameters
	encoder *Encoder
	base    *pke.Encryptor
}

// NewEncryptor creates a new [Encryptor] from either a public or a secret
// key.
func NewEncryptor(params Parameters, key pke.EncryptionKey) *Encryptor {
	return &Encryptor{
		params:  params,
		encoder: NewEncoder(params),
		base:    pke.NewEncryptor(params.Parameters, key),
	}
}

// EncryptNew encodes values modulo t and encrypts them under the stored
// key, returning the ciphertext and the encryption result.
func (enc Encryptor) EncryptNew(values []uint64) (*pke.Ciphertext, pke.EncryptResult, error) {

	pt := pke.NewPlaintext(enc.params.Parameters, enc.params.MaxLevel())
	if err := enc.encoder.Encode(values, pt); err != nil {
		return nil, pke.EncryptResult{}, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	return enc.base.EncryptNew(pt)
}

// ShallowCopy creates a copy of the receiver that can be used concurrently
// with it.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return &Encryptor{
		params:  enc.params,
		encoder: enc.encoder,
		base:    enc.base.ShallowCopy(),
	}
}
