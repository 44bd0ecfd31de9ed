package pke

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/ring"
)

// sparseDensityDivisor fixes the nonzero-coefficient budget of sparse
// secrets to N/16, i.e. 64 nonzero coefficients at ring degree 1024.
const sparseDensityDivisor = 16

// SparseHammingWeight returns the number of nonzero coefficients of a
// sparse secret for ring degree n.
func SparseHammingWeight(n int) int {
	return n / sparseDensityDivisor
}

// KeyGenerator generates key pairs. It embeds an [Encryptor] to reuse its
// samplers and pseudo-random generator, so the same single-instance
// concurrency rules apply.
type KeyGenerator struct {
	*Encryptor
}

// NewKeyGenerator creates a new [KeyGenerator] for the given parameters.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{
		Encryptor: NewEncryptor(params, nil),
	}
}

// GenKeyPairNew generates a bound (secret key, public key) pair. If
// makeSparse is set, the secret is drawn with exactly
// [SparseHammingWeight](N) nonzero ternary coefficients; otherwise it is
// drawn from the parameters' secret distribution.
func (kgen KeyGenerator) GenKeyPairNew(makeSparse bool) *KeyPair {

	var sk *SecretKey
	if makeSparse {
		sk = kgen.GenSecretKeySparseNew()
	} else {
		sk = kgen.GenSecretKeyNew()
	}

	return &KeyPair{
		Public: kgen.GenPublicKeyNew(sk),
		Secret: sk,
	}
}

// GenSecretKeyNew generates a new [SecretKey] from the parameters' secret
// distribution.
func (kgen KeyGenerator) GenSecretKeyNew() *SecretKey {
	return kgen.genSecretKeyFromSampler(kgen.xsSampler)
}

// GenSecretKeySparseNew generates a new ternary [SecretKey] with exactly
// [SparseHammingWeight](N) nonzero coefficients.
func (kgen KeyGenerator) GenSecretKeySparseNew() *SecretKey {

	sampler, err := ring.NewSampler(kgen.prng, kgen.params.RingQ(), ring.Ternary{H: SparseHammingWeight(kgen.params.N())}, false)
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot GenSecretKeySparseNew: %w", err))
	}

	return kgen.genSecretKeyFromSampler(sampler)
}

func (kgen KeyGenerator) genSecretKeyFromSampler(sampler ring.Sampler) *SecretKey {

	ringQ := kgen.params.RingQ()

	sk := NewSecretKey(kgen.params)
	sampler.Read(sk.Value)
	ringQ.NTT(sk.Value, sk.Value)
	ringQ.MForm(sk.Value, sk.Value)

	return sk
}

// GenPublicKeyNew generates a new [PublicKey] (b, a) bound to sk, with a
// uniform and b = -(a*s) + e.
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) *PublicKey {

	if err := kgen.checkSk(sk); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot GenPublicKeyNew: %w", err))
	}

	ringQ := kgen.params.RingQ()

	pk := NewPublicKey(kgen.params)
	b, a := pk.Value[0], pk.Value[1]

	// A uniform sample is also uniform in the Montgomery and NTT domains,
	// so a is generated directly in the key domain.
	kgen.uniformSampler.Read(a)

	// b = e
	kgen.xeSampler.Read(b)
	ringQ.NTT(b, b)
	ringQ.MForm(b, b)

	// b = -(a*s) + e
	ringQ.MulCoeffsMontgomeryThenSub(a, sk.Value, b)

	return pk
}
