package intpke

import (
	"github.com/cryptlab-primitives/base-pke/core/pke"
)

// Decryptor decrypts and decodes integer messages, composing the base
// layer's decryptor with the scheme encoder.
type Decryptor struct {
	params  Parameters
	encoder *Encoder
	base    *pke.Decryptor
}

// NewDecryptor creates a new [Decryptor] for the given secret key.
func NewDecryptor(params Parameters, sk *pke.SecretKey) *Decryptor {
	return &Decryptor{
		params:  params,
		encoder: NewEncoder(params),
		base:    pke.NewDecryptor(params.Parameters, sk),
	}
}

// DecryptNew decrypts ct and returns the decoded integers together with the
// decryption result. An invalid result with a nil error carries no values.
func (dec Decryptor) DecryptNew(ct *pke.Ciphertext) ([]uint64, pke.DecryptResult, error) {

	pt := pke.NewPlaintext(dec.params.Parameters, ct.Level())

	res, err := dec.base.Decrypt(ct, dec.encoder, pke.Coefficient, pt)
	if err != nil || !res.IsValid {
		return nil, res, err
	}

	values := make([]uint64, res.MessageLength/8)
	copy(values, pt.Value.Coeffs[0])

	return values, res, nil
}

// Base returns the underlying base-layer decryptor, for callers needing the
// raw reduction.
func (dec Decryptor) Base() *pke.Decryptor {
	return dec.base
}

// ShallowCopy creates a copy of the receiver that can be used concurrently
// with it.
func (dec Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{
		params:  dec.params,
		encoder: dec.encoder,
		base:    dec.base.ShallowCopy(),
	}
}
