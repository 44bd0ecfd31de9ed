package intpke

import (
	"fmt"
	"math/big"

	"github.com/cryptlab-primitives/base-pke/core/pke"
)

// Encoder packs integers modulo t into ring elements and back. It
// implements the base layer's [pke.Decoder] contract for the coefficient
// representation; requesting the evaluation representation fails with
// [pke.ErrUnsupportedRepresentation].
type Encoder struct {
	params Parameters
}

// NewEncoder creates a new [Encoder].
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// Encode writes values (taken modulo t) into the coefficients of pt, each
// scaled by Delta = floor(Q/t), and records the message byte length in the
// plaintext metadata. The output is in the coefficient domain.
func (ecd Encoder) Encode(values []uint64, pt *pke.Plaintext) error {

	n := ecd.params.N()
	if len(values) > n {
		return fmt.Errorf("cannot Encode: %d values do not fit the ring degree %d", len(values), n)
	}

	t := ecd.params.PlaintextModulus()
	level := pt.Level()
	ringQ := ecd.params.RingQ().AtLevel(level)

	delta := new(big.Int).Quo(ringQ.Modulus(), new(big.Int).SetUint64(t))

	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		if i < len(values) {
			coeffs[i] = new(big.Int).Mul(delta, new(big.Int).SetUint64(values[i]%t))
		} else {
			coeffs[i] = new(big.Int)
		}
	}

	ringQ.SetCoefficientsBigint(coeffs, pt.Value)

	pt.IsNTT = false
	pt.Scale = 1
	pt.MessageLength = 8 * len(values)

	return nil
}

// DecodeCoefficient strips the Delta scaling from the raw noisy plaintext
// held by pt, in place: after the call the first coefficients of every row
// of pt hold the recovered integers modulo t. A message length that does
// not fit the ring is a recoverable mismatch reported through an invalid
// result, not an error.
func (ecd Encoder) DecodeCoefficient(level int, pt *pke.Plaintext) (pke.DecryptResult, error) {

	msgLen := pt.MessageLength
	if msgLen < 0 || msgLen%8 != 0 || msgLen > 8*ecd.params.N() {
		return pke.DecryptResult{}, nil
	}

	values := ecd.decodeCentered(level, pt)

	for j := 0; j <= level; j++ {
		row := pt.Value.Coeffs[j]
		for i := range row {
			if i < len(values) {
				row[i] = values[i]
			} else {
				row[i] = 0
			}
		}
	}

	return pke.NewDecryptResult(msgLen), nil
}

// DecodeEvaluation is not implemented by this scheme.
func (ecd Encoder) DecodeEvaluation(level int, pt *pke.Plaintext) (pke.DecryptResult, error) {
	return pke.DecryptResult{}, fmt.Errorf("cannot Decode: %w: intpke decodes only the coefficient representation", pke.ErrUnsupportedRepresentation)
}

// decodeCentered rounds each centered coefficient c to round(t*c/Q) mod t.
func (ecd Encoder) decodeCentered(level int, pt *pke.Plaintext) []uint64 {

	t := new(big.Int).SetUint64(ecd.params.PlaintextModulus())
	ringQ := ecd.params.RingQ()
	bigQ := ecd.params.QBigInt(level)
	twoQ := new(big.Int).Lsh(bigQ, 1)

	coeffs := pke.CenteredCoefficients(ringQ, level, pt.Value)

	values := make([]uint64, pt.MessageLength/8)
	tmp := new(big.Int)
	for i := range values {
		// floor((2*t*c + Q) / 2Q) computes round(t*c/Q) for centered c.
		tmp.Mul(coeffs[i], t)
		tmp.Lsh(tmp, 1)
		tmp.Add(tmp, bigQ)
		tmp.Div(tmp, twoQ)
		values[i] = tmp.Mod(tmp, t).Uint64()
	}

	return values
}
