package pke

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v5/ring"
)

const (
	// MinLogN is the smallest supported ring degree exponent.
	MinLogN = 4
	// MaxLogN is the largest supported ring degree exponent.
	MaxLogN = 17
)

// Default distributions, matching the ones lattigo uses for its schemes.
var (
	// DefaultXe is the default error distribution.
	DefaultXe = ring.DiscreteGaussian{Sigma: 3.2, Bound: 19.2}
	// DefaultXs is the default secret distribution, uniform over {-1, 0, 1}.
	// P is the probability of a nonzero coefficient.
	DefaultXs = ring.Ternary{P: 2 / 3.0}
)

// ParametersLiteral is a literal representation of ring parameters. It is
// checked once by [NewParametersFromLiteral]; parameter selection itself
// (security, noise budget) is the caller's responsibility.
type ParametersLiteral struct {
	LogN int
	Q    []uint64
	Xe   ring.DistributionParameters
	Xs   ring.DistributionParameters
}

// Parameters is an immutable description of the ring over which keys and
// ciphertexts are defined. Keys and ciphertexts reference it, never own it.
type Parameters struct {
	logN  int
	qi    []uint64
	ringQ *ring.Ring
	xe    ring.DistributionParameters
	xs    ring.DistributionParameters
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral]. Empty distributions default to [DefaultXe] and
// [DefaultXs].
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {

	if lit.LogN < MinLogN || lit.LogN > MaxLogN {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: LogN must be in [%d, %d] but is %d", MinLogN, MaxLogN, lit.LogN)
	}

	if len(lit.Q) == 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: empty modulus chain")
	}

	ringQ, err := ring.NewRing(1<<lit.LogN, lit.Q)
	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	xe := lit.Xe
	if xe == nil {
		xe = DefaultXe
	}

	xs := lit.Xs
	if xs == nil {
		xs = DefaultXs
	}

	qi := make([]uint64, len(lit.Q))
	copy(qi, lit.Q)

	return Parameters{
		logN:  lit.LogN,
		qi:    qi,
		ringQ: ringQ,
		xe:    xe,
		xs:    xs,
	}, nil
}

// N returns the ring degree.
func (p Parameters) N() int {
	return 1 << p.logN
}

// LogN returns the base-two logarithm of the ring degree.
func (p Parameters) LogN() int {
	return p.logN
}

// RingQ returns the underlying ring.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// MaxLevel returns the index of the last prime of the modulus chain.
func (p Parameters) MaxLevel() int {
	return len(p.qi) - 1
}

// Q returns a copy of the modulus chain.
func (p Parameters) Q() []uint64 {
	qi := make([]uint64, len(p.qi))
	copy(qi, p.qi)
	return qi
}

// QBigInt returns the product of the moduli up to the given level.
func (p Parameters) QBigInt(level int) *big.Int {
	return new(big.Int).Set(p.ringQ.AtLevel(level).Modulus())
}

// Xe returns the error distribution.
func (p Parameters) Xe() ring.DistributionParameters {
	return p.xe
}

// Xs returns the secret distribution.
func (p Parameters) Xs() ring.DistributionParameters {
	return p.xs
}
