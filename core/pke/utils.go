package pke

import (
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/lattigo/v5/ring"
)

// CenteredCoefficients reconstructs the coefficients of p (coefficient
// domain) and centers them around zero modulo the level-l modulus.
func CenteredCoefficients(ringQ *ring.Ring, level int, p ring.Poly) []*big.Int {

	coeffs := make([]*big.Int, ringQ.N())
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}

	ringQ.AtLevel(level).PolyToBigintCentered(p, 1, coeffs)

	return coeffs
}

// NoiseStandardDeviation returns the empirical standard deviation of the
// centered coefficients of p. Used to check sampled noise against the
// parameters' error distribution.
func NoiseStandardDeviation(ringQ *ring.Ring, level int, p ring.Poly) float64 {

	coeffs := CenteredCoefficients(ringQ, level, p)

	f := make([]float64, len(coeffs))
	for i := range coeffs {
		f[i], _ = new(big.Float).SetInt(coeffs[i]).Float64()
	}

	sd, err := stats.StandardDeviation(f)
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return sd
}

// InfinityNorm returns the largest absolute centered coefficient of p.
func InfinityNorm(ringQ *ring.Ring, level int, p ring.Poly) *big.Int {

	norm := new(big.Int)
	for _, c := range CenteredCoefficients(ringQ, level, p) {
		if abs := new(big.Int).Abs(c); abs.Cmp(norm) > 0 {
			norm = abs
		}
	}

	return norm
}

// NonZeroCount returns the number of nonzero centered coefficients of p.
func NonZeroCount(ringQ *ring.Ring, level int, p ring.Poly) int {

	var count int
	for _, c := range CenteredCoefficients(ringQ, level, p) {
		if c.Sign() != 0 {
			count++
		}
	}

	return count
}
