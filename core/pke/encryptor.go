package pke

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/ring"
	"github.com/tuneinsight/lattigo/v5/utils"
	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// Encryptor encrypts plaintexts and generates encryptions of zero under the
// encryption key it stores. Each Encryptor owns its pseudo-random generator
// and samplers; a single instance must not be used concurrently. Use
// [Encryptor.ShallowCopy] to derive independent instances for parallel calls.
type Encryptor struct {
	params Parameters
	*encryptorBuffers

	encKey         EncryptionKey
	prng           sampling.PRNG
	xeSampler      ring.Sampler
	xsSampler      ring.Sampler
	uniformSampler ring.Sampler
}

// NewEncryptor creates a new [Encryptor] from either a public key, a secret
// key or nil. A nil key yields an encryptor that can only be used as a
// sampling context (for example by the [KeyGenerator]).
func NewEncryptor(params Parameters, key EncryptionKey) *Encryptor {

	enc := newEncryptor(params)
	var err error
	switch key := key.(type) {
	case *PublicKey:
		err = enc.checkPk(key)
	case *SecretKey:
		err = enc.checkSk(key)
	case nil:
		return enc
	default:
		// Sanity check
		panic(fmt.Errorf("key must be either *pke.PublicKey, *pke.SecretKey or nil but have %T", key))
	}

	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("key is not correct: %w", err))
	}

	enc.encKey = key
	return enc
}

func newEncryptor(params Parameters) *Encryptor {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	enc := &Encryptor{
		params:           params,
		prng:             prng,
		encryptorBuffers: newEncryptorBuffers(params),
	}
	enc.newSamplers(prng)
	return enc
}

// newSamplers instantiates the three samplers over the given source. Entropy
// exhaustion at construction is fatal and never worked around.
func (enc *Encryptor) newSamplers(prng sampling.PRNG) {

	ringQ := enc.params.RingQ()

	xeSampler, err := ring.NewSampler(prng, ringQ, enc.params.Xe(), false)
	if err != nil {
		panic(fmt.Errorf("newEncryptor: %w", err))
	}

	xsSampler, err := ring.NewSampler(prng, ringQ, enc.params.Xs(), false)
	if err != nil {
		panic(fmt.Errorf("newEncryptor: %w", err))
	}

	uniformSampler, err := ring.NewSampler(prng, ringQ, ring.Uniform{}, false)
	if err != nil {
		panic(fmt.Errorf("newEncryptor: %w", err))
	}

	enc.prng = prng
	enc.xeSampler = xeSampler
	enc.xsSampler = xsSampler
	enc.uniformSampler = uniformSampler
}

type encryptorBuffers struct {
	buffQ [2]ring.Poly
}

func newEncryptorBuffers(params Parameters) *encryptorBuffers {
	ringQ := params.RingQ()
	return &encryptorBuffers{
		buffQ: [2]ring.Poly{ringQ.NewPoly(), ringQ.NewPoly()},
	}
}

// GetParameters returns the underlying [Parameters].
func (enc Encryptor) GetParameters() Parameters {
	return enc.params
}

// Encrypt encrypts pt using the stored encryption key and writes the result
// on ct. The ciphertext metadata is overwritten with the plaintext metadata.
// The plaintext element must already be reduced into the ring's coefficient
// domain; this layer does not validate the encoding.
//
// The procedure masks the plaintext by adding a fresh encryption of zero
// obtained from the key-matching zero-ciphertext core. A nil plaintext is
// an error; [Encryptor.EncryptZero] is the zero-encryption entry point.
func (enc Encryptor) Encrypt(pt *Plaintext, ct *Ciphertext) (EncryptResult, error) {

	if pt == nil {
		return EncryptResult{}, fmt.Errorf("cannot Encrypt: plaintext is nil, use EncryptZero to encrypt zero")
	}

	*ct.MetaData = *pt.MetaData

	level := utils.Min(pt.Level(), ct.Level())
	ct.Resize(level)

	if err := enc.EncryptZero(ct); err != nil {
		return EncryptResult{}, fmt.Errorf("cannot Encrypt: %w", err)
	}

	enc.addPtToCt(level, pt, ct)

	return NewEncryptResult(pt.MessageLength), nil
}

// EncryptNew encrypts pt using the stored encryption key and returns the
// result in a newly allocated [Ciphertext].
func (enc Encryptor) EncryptNew(pt *Plaintext) (*Ciphertext, EncryptResult, error) {
	ct := NewCiphertext(enc.params, 1, pt.Level())
	res, err := enc.Encrypt(pt, ct)
	return ct, res, err
}

// EncryptZero generates a fresh encryption of zero under the stored
// encryption key and writes it on ct. This is the shared noise core every
// concrete scheme's encryption builds on: the secret-key variant returns
// (-(c1*s) + e, c1) with uniform c1, the public-key variant re-randomizes
// the public pair as (b*u + e0, a*u + e1) with a small blinding element u.
func (enc Encryptor) EncryptZero(ct *Ciphertext) error {

	if ct.Degree() != 1 {
		return fmt.Errorf("cannot EncryptZero: ciphertext degree must be 1 but is %d", ct.Degree())
	}

	switch key := enc.encKey.(type) {
	case *SecretKey:
		enc.encryptZeroSk(key, ct)
		return nil
	case *PublicKey:
		enc.encryptZeroPk(key, ct)
		return nil
	default:
		return fmt.Errorf("cannot EncryptZero: Encryptor has no encryption key")
	}
}

// EncryptZeroNew generates a fresh encryption of zero under the stored
// encryption key in a newly allocated [Ciphertext] at the given level.
func (enc Encryptor) EncryptZeroNew(level int) *Ciphertext {
	ct := NewCiphertext(enc.params, 1, level)
	if err := enc.EncryptZero(ct); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return ct
}

func (enc Encryptor) encryptZeroSk(sk *SecretKey, ct *Ciphertext) {

	level := ct.Level()
	ringQ := enc.params.RingQ().AtLevel(level)

	c0, c1 := ct.Value[0], ct.Value[1]

	// A uniform sample is uniform in the NTT domain as well.
	enc.uniformSampler.AtLevel(level).Read(c1)

	// c0 = -(c1*s)
	ringQ.MulCoeffsMontgomery(c1, sk.Value, c0)
	ringQ.Neg(c0, c0)

	// c0 = -(c1*s) + e
	if ct.IsNTT {
		e := enc.buffQ[0]
		enc.xeSampler.AtLevel(level).Read(e)
		ringQ.NTT(e, e)
		ringQ.Add(c0, e, c0)
	} else {
		ringQ.INTT(c0, c0)
		ringQ.INTT(c1, c1)
		enc.xeSampler.AtLevel(level).ReadAndAdd(c0)
	}
}

func (enc Encryptor) encryptZeroPk(pk *PublicKey, ct *Ciphertext) {

	level := ct.Level()
	ringQ := enc.params.RingQ().AtLevel(level)

	c0, c1 := ct.Value[0], ct.Value[1]

	// Small blinding element u re-randomizing the public pair.
	u := enc.buffQ[1]
	enc.xsSampler.AtLevel(level).Read(u)
	ringQ.NTT(u, u)

	// (c0, c1) = (b*u, a*u)
	ringQ.MulCoeffsMontgomery(u, pk.Value[0], c0)
	ringQ.MulCoeffsMontgomery(u, pk.Value[1], c1)

	// (c0, c1) = (b*u + e0, a*u + e1)
	if ct.IsNTT {
		e := enc.buffQ[0]

		enc.xeSampler.AtLevel(level).Read(e)
		ringQ.NTT(e, e)
		ringQ.Add(c0, e, c0)

		enc.xeSampler.AtLevel(level).Read(e)
		ringQ.NTT(e, e)
		ringQ.Add(c1, e, c1)
	} else {
		ringQ.INTT(c0, c0)
		enc.xeSampler.AtLevel(level).ReadAndAdd(c0)

		ringQ.INTT(c1, c1)
		enc.xeSampler.AtLevel(level).ReadAndAdd(c1)
	}
}

func (enc Encryptor) addPtToCt(level int, pt *Plaintext, ct *Ciphertext) {

	ringQ := enc.params.RingQ().AtLevel(level)

	var buff ring.Poly
	if pt.IsNTT {
		if ct.IsNTT {
			buff = pt.Value
		} else {
			buff = enc.buffQ[0]
			ringQ.INTT(pt.Value, buff)
		}
	} else {
		if ct.IsNTT {
			buff = enc.buffQ[0]
			ringQ.NTT(pt.Value, buff)
		} else {
			buff = pt.Value
		}
	}

	ringQ.Add(ct.Value[0], buff, ct.Value[0])
}

// checkPk checks that a given pk is correct for the parameters.
func (enc Encryptor) checkPk(pk *PublicKey) error {
	if pk.Value[0].N() != enc.params.N() || pk.Value[1].N() != enc.params.N() {
		return fmt.Errorf("pk ring degree does not match params ring degree")
	}
	return nil
}

// checkSk checks that a given sk is correct for the parameters.
func (enc Encryptor) checkSk(sk *SecretKey) error {
	if sk.Value.N() != enc.params.N() {
		return fmt.Errorf("sk ring degree does not match params ring degree")
	}
	return nil
}

// ShallowCopy creates a copy of the receiver with a fresh pseudo-random
// generator and fresh buffers. The receiver and the returned [Encryptor]
// can be used concurrently.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.encKey)
}

// WithKey returns a copy of the receiver with the given encryption key,
// sharing the receiver's pseudo-random generator and buffers. The returned
// encryptor cannot be used concurrently with the receiver.
func (enc Encryptor) WithKey(key EncryptionKey) *Encryptor {
	switch key := key.(type) {
	case *SecretKey:
		if err := enc.checkSk(key); err != nil {
			// Sanity check, this error should not happen.
			panic(fmt.Errorf("cannot WithKey: %w", err))
		}
	case *PublicKey:
		if err := enc.checkPk(key); err != nil {
			// Sanity check, this error should not happen.
			panic(fmt.Errorf("cannot WithKey: %w", err))
		}
	case nil:
		return &enc
	default:
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("invalid key type, want *pke.SecretKey, *pke.PublicKey or nil but have %T", key))
	}
	enc.encKey = key
	return &enc
}

// WithPRNG returns a copy of the receiver whose samplers draw from prng.
// The returned encryptor cannot be used concurrently with the receiver.
func (enc Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	enc.newSamplers(prng)
	return &enc
}
