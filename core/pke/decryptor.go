package pke

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/ring"
	"github.com/tuneinsight/lattigo/v5/utils"
)

// Decryptor reduces ciphertexts to raw noisy plaintexts under the secret
// key it stores, and optionally hands the result to a scheme [Decoder].
type Decryptor struct {
	params Parameters
	ringQ  *ring.Ring
	buff   ring.Poly
	sk     *SecretKey
}

// NewDecryptor instantiates a new [Decryptor] for the given secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if sk.Value.N() != params.N() {
		panic(fmt.Errorf("cannot NewDecryptor: secret-key ring degree does not match parameters ring degree"))
	}

	return &Decryptor{
		params: params,
		ringQ:  params.RingQ(),
		buff:   params.RingQ().NewPoly(),
		sk:     sk,
	}
}

// GetParameters returns the underlying [Parameters].
func (d Decryptor) GetParameters() Parameters {
	return d.params
}

// DecryptCore evaluates cv[0] + cv[1]*s + cv[2]*s^2 + ... over ascending
// powers of the secret key, one term per ciphertext component, and writes
// the raw noisy plaintext on raw, in the NTT domain at the level of raw.
// The vector must hold at least one component; a single component reduces
// to itself. The computation is deterministic: identical inputs yield
// bit-identical output.
func (d Decryptor) DecryptCore(cv []ring.Poly, isNTT bool, raw ring.Poly) {

	degree := len(cv) - 1

	level := raw.Level()
	for i := range cv {
		level = utils.Min(level, cv[i].Level())
	}

	ringQ := d.ringQ.AtLevel(level)

	// Horner evaluation, starting from the highest power of s.
	if isNTT {
		raw.CopyLvl(level, cv[degree])
	} else {
		ringQ.NTTLazy(cv[degree], raw)
	}

	for i := degree; i > 0; i-- {

		ringQ.MulCoeffsMontgomery(raw, d.sk.Value, raw)

		if isNTT {
			ringQ.Add(raw, cv[i-1], raw)
		} else {
			ringQ.NTTLazy(cv[i-1], d.buff)
			ringQ.Add(raw, d.buff, raw)
		}

		if i&7 == 7 {
			ringQ.Reduce(raw, raw)
		}
	}

	if degree&7 != 7 {
		ringQ.Reduce(raw, raw)
	}
}

// Decrypt reduces ct to its raw noisy plaintext, converts it to the
// requested canonical representation and delegates the scheme decoding to
// dec, writing the message into the caller-owned pt. A nil dec skips the
// decoding and leaves the raw element in pt.
//
// Only the [Coefficient] and [Evaluation] representations exist; any other
// value fails immediately with [ErrUnsupportedRepresentation], as does a
// decoder that does not implement the requested one. The plaintext metadata
// is overwritten with the ciphertext metadata before decoding.
func (d Decryptor) Decrypt(ct *Ciphertext, dec Decoder, rep Representation, pt *Plaintext) (DecryptResult, error) {

	if rep != Coefficient && rep != Evaluation {
		return DecryptResult{}, fmt.Errorf("cannot Decrypt: %w: representation %d", ErrUnsupportedRepresentation, rep)
	}

	level := utils.Min(ct.Level(), pt.Level())

	pt.Value.Resize(level)

	*pt.MetaData = *ct.MetaData

	d.DecryptCore(ct.Value, ct.IsNTT, pt.Value)

	ringQ := d.ringQ.AtLevel(level)

	if rep == Coefficient {
		ringQ.INTT(pt.Value, pt.Value)
		pt.IsNTT = false
		if dec == nil {
			return NewDecryptResult(pt.MessageLength), nil
		}
		return dec.DecodeCoefficient(level, pt)
	}

	pt.IsNTT = true
	if dec == nil {
		return NewDecryptResult(pt.MessageLength), nil
	}
	return dec.DecodeEvaluation(level, pt)
}

// DecryptRawNew reduces ct to its raw noisy plaintext in the coefficient
// domain and returns it in a new [Plaintext], skipping scheme decoding.
func (d Decryptor) DecryptRawNew(ct *Ciphertext) *Plaintext {
	pt := NewPlaintext(d.params, ct.Level())
	if _, err := d.Decrypt(ct, nil, Coefficient, pt); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return pt
}

// ShallowCopy creates a copy of the receiver in which the read-only
// data-structures are shared but the scratch buffer is reallocated. The
// receiver and the returned [Decryptor] can be used concurrently.
func (d Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{
		params: d.params,
		ringQ:  d.ringQ,
		buff:   d.ringQ.NewPoly(),
		sk:     d.sk,
	}
}

// WithKey creates a copy of the receiver with a new decryption key and a
// reallocated scratch buffer. The receiver and the returned [Decryptor]
// can be used concurrently.
func (d Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return &Decryptor{
		params: d.params,
		ringQ:  d.ringQ,
		buff:   d.ringQ.NewPoly(),
		sk:     sk,
	}
}
