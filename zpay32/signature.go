package zpay32

// signatureLen is the fixed wire length of a BOLT-11 signature: a 32-byte
// r, a 32-byte s, and a 1-byte recovery id.
const signatureLen = 65

// signatureU5Len is the number of 5-bit groups the 65-byte signature
// occupies once repacked: ceil(65*8/5) = 104.
const signatureU5Len = 104

// Signature is the fixed 65-byte (r, s, recovery_id) framing BOLT-11 lays
// over the tail of the bech32 data region. It is pure wire framing: it
// does not sign or verify anything itself (see MessageSigner/
// MessageVerifier in sign.go for that).
type Signature struct {
	// R is the nonnegative big-endian r component of the signature.
	R [32]byte

	// S is the nonnegative big-endian s component of the signature.
	S [32]byte

	// RecoveryID identifies which of the (up to) four candidate public
	// keys produced this signature; always in [0, 3].
	RecoveryID uint8
}

// DecodeSignature parses a 65-byte buffer into a Signature. Any input
// whose length is not exactly 65 is rejected: shorter buffers can't hold
// the full framing, and longer ones are ambiguous about where padding
// ends and signature begins, so BOLT-11 treats both as fatal.
func DecodeSignature(data []byte) (*Signature, error) {
	if len(data) != signatureLen {
		return nil, wrapf(ErrInvalidLength, "signature must be %d bytes, got %d",
			signatureLen, len(data))
	}

	var sig Signature
	copy(sig.R[:], data[:32])
	copy(sig.S[:], data[32:64])
	sig.RecoveryID = data[64]

	return &sig, nil
}

// Encode serializes the signature back to its 65-byte wire form: r and s
// as 32-byte big-endian integers (the struct already stores them that
// way), followed by the recovery id.
func (s *Signature) Encode() [signatureLen]byte {
	var out [signatureLen]byte
	copy(out[:32], s.R[:])
	copy(out[32:64], s.S[:])
	out[64] = s.RecoveryID
	return out
}

// NewSignature builds a Signature from r and s given as arbitrary-length,
// nonnegative big-endian byte slices (as produced by e.g. big.Int.Bytes or
// a btcec scalar), fixing each to exactly 32 bytes: left-zero-padded if
// shorter, leading bytes truncated if somehow longer than 32.
func NewSignature(r, s []byte, recoveryID uint8) *Signature {
	var sig Signature
	fixSize32(sig.R[:], r)
	fixSize32(sig.S[:], s)
	sig.RecoveryID = recoveryID
	return &sig
}

// fixSize32 copies src into dst (which must be exactly 32 bytes long),
// left-zero-padding a short src and dropping src's leading bytes if it is
// longer than 32.
func fixSize32(dst, src []byte) {
	switch {
	case len(src) == 32:
		copy(dst, src)
	case len(src) < 32:
		copy(dst[32-len(src):], src)
	default:
		copy(dst, src[len(src)-32:])
	}
}
