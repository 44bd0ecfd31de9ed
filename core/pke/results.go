package pke

// EncryptResult reports the outcome of a single encryption call. The zero
// value is invalid; use [NewEncryptResult].
type EncryptResult struct {

	// IsValid reports whether the encryption was performed.
	IsValid bool

	// NumBytesEncrypted is the count of message bytes that were encrypted,
	// as recorded by the scheme encoder.
	NumBytesEncrypted int
}

// NewEncryptResult returns a valid [EncryptResult] for the given byte count.
func NewEncryptResult(numBytes int) EncryptResult {
	return EncryptResult{IsValid: true, NumBytesEncrypted: numBytes}
}

// DecryptResult reports the outcome of a single decryption call. Recoverable
// semantic issues (such as a message-length mismatch) are surfaced through
// IsValid=false rather than through an error. The zero value is invalid;
// use [NewDecryptResult] or [NewDecryptResultWithScale].
type DecryptResult struct {

	// IsValid reports whether the decryption was successful.
	IsValid bool

	// MessageLength is the byte length of the decrypted message.
	MessageLength int

	// ScalingFactorInt is the integer scaling factor of the decrypted
	// plaintext. It is the multiplicative identity except for schemes
	// tracking fixed-point integer scaling.
	ScalingFactorInt uint64
}

// NewDecryptResult returns a valid [DecryptResult] with the identity
// scaling factor.
func NewDecryptResult(messageLength int) DecryptResult {
	return DecryptResult{IsValid: true, MessageLength: messageLength, ScalingFactorInt: 1}
}

// NewDecryptResultWithScale returns a valid [DecryptResult] carrying the
// given integer scaling factor.
func NewDecryptResultWithScale(messageLength int, scalingFactorInt uint64) DecryptResult {
	return DecryptResult{IsValid: true, MessageLength: messageLength, ScalingFactorInt: scalingFactorInt}
}
