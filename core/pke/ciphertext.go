package pke

import (
	"github.com/tuneinsight/lattigo/v5/ring"
)

// Ciphertext is an ordered vector of ring elements with metadata. A fresh
// encryption has degree one (two components); higher degrees arise from
// un-relinearized homomorphic products, which this layer only decrypts.
//
// Once produced by an encryptor, a Ciphertext is treated as an immutable
// shared value: downstream consumers reference it without copying.
type Ciphertext struct {
	Value []ring.Poly
	*MetaData
}

// NewCiphertext allocates a [Ciphertext] of the given degree at the given
// level. Fresh zero encryptions are produced in the NTT domain unless the
// metadata is changed before encryption.
func NewCiphertext(params Parameters, degree, level int) *Ciphertext {
	ringQ := params.RingQ().AtLevel(level)
	cv := make([]ring.Poly, degree+1)
	for i := range cv {
		cv[i] = ringQ.NewPoly()
	}
	return &Ciphertext{
		Value:    cv,
		MetaData: newMetaData(true),
	}
}

// Degree returns the degree of the ciphertext, one less than the number of
// its components.
func (ct Ciphertext) Degree() int {
	return len(ct.Value) - 1
}

// Level returns the level of the ciphertext.
func (ct Ciphertext) Level() int {
	return ct.Value[0].Level()
}

// Resize truncates the ciphertext components to the given level. The level
// can only be reduced.
func (ct *Ciphertext) Resize(level int) {
	for i := range ct.Value {
		ct.Value[i].Resize(level)
	}
}
