package pke

// MetaData is the scheme-owned metadata attached to plaintexts and
// ciphertexts. This layer copies it between elements but never interprets
// it beyond the NTT flag.
type MetaData struct {

	// Scale is the scaling factor tracked by fixed-point scheme variants.
	// Defaults to the multiplicative identity.
	Scale uint64

	// MessageLength is the byte length of the encoded message, recorded by
	// the scheme encoder.
	MessageLength int

	// IsNTT indicates whether the element coefficients are in the NTT domain.
	IsNTT bool
}

func newMetaData(isNTT bool) *MetaData {
	return &MetaData{Scale: 1, IsNTT: isNTT}
}
