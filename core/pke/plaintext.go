package pke

import (
	"github.com/tuneinsight/lattigo/v5/ring"
)

// Plaintext is a single ring element with metadata. The element is assumed
// to be already reduced into the ring's coefficient domain; encoding
// validity is the scheme encoder's contract.
type Plaintext struct {
	Value ring.Poly
	*MetaData
}

// NewPlaintext allocates a [Plaintext] at the given level, in the
// coefficient domain.
func NewPlaintext(params Parameters, level int) *Plaintext {
	return &Plaintext{
		Value:    params.RingQ().AtLevel(level).NewPoly(),
		MetaData: newMetaData(false),
	}
}

// Level returns the level of the plaintext.
func (pt Plaintext) Level() int {
	return pt.Value.Level()
}
