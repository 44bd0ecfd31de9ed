// Package intpke implements a minimal concrete scheme on top of the base
// primitives of core/pke: integers modulo a plaintext modulus t are packed
// into polynomial coefficients scaled by Delta = floor(Q/t), encrypted
// through the shared zero-ciphertext core, and recovered by centered
// rounding. The package decodes only the coefficient representation.
package intpke

import (
	"fmt"
	"math/big"

	"github.com/cryptlab-primitives/base-pke/core/pke"
)

// Parameters extends the base parameters with the plaintext modulus.
type Parameters struct {
	pke.Parameters
	t uint64
}

// NewParameters instantiates scheme parameters over the given base
// parameters and plaintext modulus t.
func NewParameters(base pke.Parameters, t uint64) (Parameters, error) {

	if t < 2 {
		return Parameters{}, fmt.Errorf("cannot NewParameters: plaintext modulus must be at least 2 but is %d", t)
	}

	if new(big.Int).SetUint64(t).Cmp(base.QBigInt(base.MaxLevel())) >= 0 {
		return Parameters{}, fmt.Errorf("cannot NewParameters: plaintext modulus must be smaller than the ciphertext modulus")
	}

	return Parameters{Parameters: base, t: t}, nil
}

// PlaintextModulus returns the plaintext modulus t.
func (p Parameters) PlaintextModulus() uint64 {
	return p.t
}
