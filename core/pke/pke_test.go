package pke

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/ring"
	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// testParametersLiteral uses NTT-friendly primes taken from lattigo's
// example parameter sets.
var testParametersLiteral = ParametersLiteral{
	LogN: 10,
	Q:    []uint64{0x7fff80001, 0x800280001},
}

func testParameters(t *testing.T) Parameters {
	params, err := NewParametersFromLiteral(testParametersLiteral)
	require.NoError(t, err)
	return params
}

func TestParameters(t *testing.T) {

	t.Run("FromLiteral", func(t *testing.T) {
		params := testParameters(t)
		require.Equal(t, 1024, params.N())
		require.Equal(t, 10, params.LogN())
		require.Equal(t, 1, params.MaxLevel())
		require.Equal(t, testParametersLiteral.Q, params.Q())
		require.Equal(t, DefaultXe, params.Xe())
		require.Equal(t, DefaultXs, params.Xs())
	})

	t.Run("InvalidLogN", func(t *testing.T) {
		_, err := NewParametersFromLiteral(ParametersLiteral{LogN: 0, Q: testParametersLiteral.Q})
		require.Error(t, err)
	})

	t.Run("EmptyModulusChain", func(t *testing.T) {
		_, err := NewParametersFromLiteral(ParametersLiteral{LogN: 10})
		require.Error(t, err)
	})
}

func TestKeyGenerator(t *testing.T) {

	params := testParameters(t)
	ringQ := params.RingQ()
	level := params.MaxLevel()
	kgen := NewKeyGenerator(params)

	t.Run("PublicKeyBinding", func(t *testing.T) {

		kp := kgen.GenKeyPairNew(false)

		// b + a*s must reduce to the sampled error under the matching
		// secret key.
		dec := NewDecryptor(params, kp.Secret)
		raw := ringQ.NewPoly()
		dec.DecryptCore(kp.Public.Value[:], true, raw)
		ringQ.IMForm(raw, raw)
		ringQ.INTT(raw, raw)

		sd := NoiseStandardDeviation(ringQ, level, raw)
		require.Greater(t, sd, 0.0)
		require.Less(t, sd, DefaultXe.Bound)
		require.True(t, InfinityNorm(ringQ, level, raw).Cmp(big.NewInt(int64(DefaultXe.Bound))) <= 0)
	})

	t.Run("CrossPairing", func(t *testing.T) {

		kp0 := kgen.GenKeyPairNew(false)
		kp1 := kgen.GenKeyPairNew(false)

		// A public key reduced under an unrelated secret key leaves a
		// uniform-looking residue.
		dec := NewDecryptor(params, kp1.Secret)
		raw := ringQ.NewPoly()
		dec.DecryptCore(kp0.Public.Value[:], true, raw)
		ringQ.IMForm(raw, raw)
		ringQ.INTT(raw, raw)

		require.True(t, InfinityNorm(ringQ, level, raw).Cmp(new(big.Int).Lsh(big.NewInt(1), 50)) > 0)
	})

	t.Run("SparseSecret", func(t *testing.T) {

		sk := kgen.GenSecretKeySparseNew()

		skCopy := ringQ.NewPoly()
		skCopy.CopyLvl(level, sk.Value)
		ringQ.IMForm(skCopy, skCopy)
		ringQ.INTT(skCopy, skCopy)

		count := NonZeroCount(ringQ, level, skCopy)
		require.Greater(t, count, 0)
		require.LessOrEqual(t, count, SparseHammingWeight(params.N()))
	})

	t.Run("DenseSecret", func(t *testing.T) {

		// A default secret is uniform over {-1, 0, 1}: two thirds of its
		// coefficients are nonzero.
		const keys = 8

		var count int
		skCopy := ringQ.NewPoly()
		for i := 0; i < keys; i++ {
			sk := kgen.GenSecretKeyNew()

			skCopy.CopyLvl(level, sk.Value)
			ringQ.IMForm(skCopy, skCopy)
			ringQ.INTT(skCopy, skCopy)

			count += NonZeroCount(ringQ, level, skCopy)
		}

		density := float64(count) / float64(keys*params.N())
		require.InDelta(t, 2/3.0, density, 0.05)
	})

	t.Run("Erase", func(t *testing.T) {

		kp := kgen.GenKeyPairNew(false)
		kp.Erase()

		for i := range kp.Secret.Value.Coeffs {
			for _, c := range kp.Secret.Value.Coeffs[i] {
				require.Zero(t, c)
			}
		}

		var nilPair *KeyPair
		nilPair.Erase()
	})
}

func TestEncryptZero(t *testing.T) {

	params := testParameters(t)
	ringQ := params.RingQ()
	level := params.MaxLevel()
	kgen := NewKeyGenerator(params)
	kp := kgen.GenKeyPairNew(false)
	dec := NewDecryptor(params, kp.Secret)

	t.Run("SecretKey", func(t *testing.T) {

		enc := NewEncryptor(params, kp.Secret)
		ct := enc.EncryptZeroNew(level)
		raw := dec.DecryptRawNew(ct)

		sd := NoiseStandardDeviation(ringQ, level, raw.Value)
		require.Greater(t, sd, 0.0)
		require.Less(t, sd, DefaultXe.Bound)
	})

	t.Run("PublicKey", func(t *testing.T) {

		enc := NewEncryptor(params, kp.Public)
		ct := enc.EncryptZeroNew(level)
		raw := dec.DecryptRawNew(ct)

		sd := NoiseStandardDeviation(ringQ, level, raw.Value)
		require.Greater(t, sd, 0.0)
		require.Less(t, sd, 1024.0)
		require.True(t, InfinityNorm(ringQ, level, raw.Value).Cmp(big.NewInt(1<<13)) < 0)
	})

	t.Run("Seeded", func(t *testing.T) {

		seed := []byte{0x4a, 0x8d, 0x1f, 0x03}

		prng0, err := sampling.NewKeyedPRNG(seed)
		require.NoError(t, err)
		prng1, err := sampling.NewKeyedPRNG(seed)
		require.NoError(t, err)

		ct0 := NewEncryptor(params, kp.Secret).WithPRNG(prng0).EncryptZeroNew(level)
		ct1 := NewEncryptor(params, kp.Secret).WithPRNG(prng1).EncryptZeroNew(level)

		require.Equal(t, ct0.Value[0].Coeffs, ct1.Value[0].Coeffs)
		require.Equal(t, ct0.Value[1].Coeffs, ct1.Value[1].Coeffs)
	})

	t.Run("NilPlaintext", func(t *testing.T) {

		enc := NewEncryptor(params, kp.Secret)
		res, err := enc.Encrypt(nil, NewCiphertext(params, 1, level))
		require.Error(t, err)
		require.False(t, res.IsValid)
	})

	t.Run("NoKey", func(t *testing.T) {

		enc := NewEncryptor(params, nil)
		require.Error(t, enc.EncryptZero(NewCiphertext(params, 1, level)))
	})

	t.Run("InvalidDegree", func(t *testing.T) {

		enc := NewEncryptor(params, kp.Secret)
		require.Error(t, enc.EncryptZero(NewCiphertext(params, 2, level)))
	})
}

func TestDecryptCore(t *testing.T) {

	params := testParameters(t)
	ringQ := params.RingQ()
	level := params.MaxLevel()
	kgen := NewKeyGenerator(params)
	kp := kgen.GenKeyPairNew(false)
	enc := NewEncryptor(params, kp.Secret)
	dec := NewDecryptor(params, kp.Secret)

	t.Run("Determinism", func(t *testing.T) {

		ct := enc.EncryptZeroNew(level)

		raw0 := ringQ.NewPoly()
		raw1 := ringQ.NewPoly()
		dec.DecryptCore(ct.Value, ct.IsNTT, raw0)
		dec.DecryptCore(ct.Value, ct.IsNTT, raw1)

		require.Equal(t, raw0.Coeffs, raw1.Coeffs)
	})

	t.Run("SingleComponent", func(t *testing.T) {

		// A length-1 vector reduces to the component itself.
		c0 := ringQ.NewPoly()
		enc.uniformSampler.AtLevel(level).Read(c0)

		raw := ringQ.NewPoly()
		dec.DecryptCore([]ring.Poly{c0}, true, raw)

		require.Equal(t, c0.Coeffs, raw.Coeffs)
	})

	t.Run("UnsupportedRepresentation", func(t *testing.T) {

		ct := enc.EncryptZeroNew(level)
		pt := NewPlaintext(params, level)

		res, err := dec.Decrypt(ct, nil, Representation(3), pt)
		require.ErrorIs(t, err, ErrUnsupportedRepresentation)
		require.False(t, res.IsValid)
	})

	t.Run("ShallowCopy", func(t *testing.T) {

		ct := enc.EncryptZeroNew(level)

		raw0 := ringQ.NewPoly()
		raw1 := ringQ.NewPoly()
		dec.DecryptCore(ct.Value, ct.IsNTT, raw0)
		dec.ShallowCopy().DecryptCore(ct.Value, ct.IsNTT, raw1)

		require.Equal(t, raw0.Coeffs, raw1.Coeffs)
	})
}
