package zpay32

import (
	"strconv"
	"strings"
)

// PaymentRequest is the top-level, structured form of a BOLT-11 invoice.
type PaymentRequest struct {
	// Prefix is the bech32 human-readable part, e.g. "lnbc", "lntb", or
	// "lnbcrt".
	Prefix string

	// Amount is the invoice's requested amount. HasAmount is false when
	// the invoice carries no amount at all (the "any amount" case).
	Amount    PicoBTC
	HasAmount bool

	// Timestamp is the invoice creation time, as seconds since the
	// Unix epoch; it must fit in 35 bits.
	Timestamp uint64

	// Tags is the ordered sequence of tagged fields between the
	// timestamp and the signature. Order is preserved on round-trip.
	Tags []Tag

	// Signature is the 65-byte recoverable signature framing over the
	// hrp and the preceding data.
	Signature Signature
}

// Encode assembles pr into a bech32 invoice string using codec as the
// bech32 envelope. Use EncodePaymentRequest for the common case of using
// the default, btcutil-backed codec.
func (pr *PaymentRequest) Encode(codec Bech32Codec) (string, error) {
	data, err := pr.taggedDataU5()
	if err != nil {
		return "", err
	}

	sigBytes := pr.Signature.Encode()
	data = append(data, bytesToU5(sigBytes[:])...)

	s, err := codec.Encode(pr.hrp(), data)
	if err != nil {
		return "", wrapf(ErrInvalidPrefix, "bech32 encode: %v", err)
	}

	log.Debugf("encoded payment request for prefix %s with %d tags", pr.Prefix, len(pr.Tags))

	return s, nil
}

// EncodePaymentRequest encodes pr using the default bech32 codec.
func EncodePaymentRequest(pr *PaymentRequest) (string, error) {
	return pr.Encode(DefaultBech32Codec)
}

// taggedDataU5 builds the U5 stream covered by the signature: the
// timestamp followed by every tag, in order. It does not include the
// signature itself.
func (pr *PaymentRequest) taggedDataU5() ([]U5, error) {
	if pr.Timestamp >= 1<<35 {
		return nil, wrapf(ErrInvalidLength, "timestamp %d overflows 35 bits", pr.Timestamp)
	}

	ts := EncodeTimestamp(pr.Timestamp)
	data := make([]U5, 0, timestampU5Len+32)
	data = append(data, ts[:]...)

	for _, tag := range pr.Tags {
		encoded, err := Encode(tag)
		if err != nil {
			return nil, err
		}
		data = append(data, encoded...)
	}

	return data, nil
}

// hrp returns the bech32 human-readable part pr will be framed under:
// its prefix, plus a shortened amount when one is present.
func (pr *PaymentRequest) hrp() string {
	if pr.HasAmount {
		return pr.Prefix + ShortenAmount(pr.Amount)
	}
	return pr.Prefix
}

// SigningDigest returns the hash pr's signature must cover: the SHA-256
// of the hrp concatenated with the base-256 form of the timestamp and
// tags (but not the signature itself), zero-padded to a byte boundary
// the same way the bech32 encoder's 5-to-8 regrouping does. Callers
// building a new PaymentRequest pass this to Sign, then assign the
// result to pr.Signature before calling Encode.
func (pr *PaymentRequest) SigningDigest() ([]byte, error) {
	data, err := pr.taggedDataU5()
	if err != nil {
		return nil, err
	}

	raw := convertBits(data, 5, 8)
	return SigningDigest(pr.hrp(), raw), nil
}

// Decode parses an invoice string using codec as the bech32 envelope. Use
// DecodePaymentRequest for the common case of using the default,
// btcutil-backed codec.
func Decode(invoice string, codec Bech32Codec) (*PaymentRequest, error) {
	hrp, data, err := codec.Decode(invoice)
	if err != nil {
		return nil, err
	}

	prefix, amount, hasAmount, err := splitHRP(hrp)
	if err != nil {
		return nil, err
	}

	if len(data) < timestampU5Len+signatureU5Len {
		return nil, wrapf(ErrInvalidLength,
			"invoice data too short: %d groups", len(data))
	}

	timestamp, err := DecodeTimestamp(data[:timestampU5Len])
	if err != nil {
		return nil, err
	}

	tagData := data[timestampU5Len : len(data)-signatureU5Len]
	tags, err := ParseAllTags(tagData)
	if err != nil {
		return nil, err
	}

	sigU5 := data[len(data)-signatureU5Len:]
	sigBytes, err := u5ToBytes(sigU5)
	if err != nil {
		return nil, err
	}

	sig, err := DecodeSignature(sigBytes)
	if err != nil {
		return nil, err
	}

	log.Debugf("decoded payment request for prefix %s with %d tags", prefix, len(tags))

	return &PaymentRequest{
		Prefix:    prefix,
		Amount:    amount,
		HasAmount: hasAmount,
		Timestamp: timestamp,
		Tags:      tags,
		Signature: *sig,
	}, nil
}

// DecodePaymentRequest parses invoice using the default bech32 codec.
func DecodePaymentRequest(invoice string) (*PaymentRequest, error) {
	return Decode(invoice, DefaultBech32Codec)
}

// splitHRP splits a bech32 human-readable part into "ln" + chain prefix +
// an optional shortened amount, per ln{chain}{amount?}.
func splitHRP(hrp string) (prefix string, amount PicoBTC, hasAmount bool, err error) {
	if len(hrp) < 2 || hrp[:2] != "ln" {
		return "", 0, false, wrapf(ErrInvalidPrefix, "hrp %q does not start with ln", hrp)
	}

	rest := hrp[2:]

	// The chain part is the run of letters immediately after "ln"; the
	// amount, if present, is whatever digits+multiplier trail it.
	i := 0
	for i < len(rest) && !isAmountStart(rest[i]) {
		i++
	}

	chain := rest[:i]
	amountPart := rest[i:]

	if chain == "" {
		return "", 0, false, wrapf(ErrInvalidPrefix, "hrp %q has no chain prefix", hrp)
	}

	prefix = "ln" + chain

	if amountPart == "" {
		return prefix, 0, false, nil
	}

	amount, err = UnshortenAmount(amountPart)
	if err != nil {
		return "", 0, false, err
	}

	return prefix, amount, true, nil
}

// isAmountStart reports whether b could begin the amount part of an hrp:
// either a decimal digit, or (defensively) one of the multiplier letters
// in the unlikely case of a zero-digit amount slipping through upstream
// validation.
func isAmountStart(b byte) bool {
	if b >= '0' && b <= '9' {
		return true
	}
	switch b {
	case 'p', 'n', 'u', 'm':
		return true
	}
	return false
}

// MinFinalCltvExpiry returns the invoice's requested final CLTV delta, or
// the BOLT-11 default of 9 blocks if the 'c' tag wasn't present.
func (pr *PaymentRequest) MinFinalCltvExpiry() uint64 {
	for _, tag := range pr.Tags {
		if c, ok := tag.(MinFinalCltvExpiryTag); ok {
			return c.Blocks
		}
	}
	return 9
}

// Expiry returns the invoice's validity window, or the BOLT-11 default of
// 3600 seconds if the 'x' tag wasn't present.
func (pr *PaymentRequest) Expiry() uint64 {
	for _, tag := range pr.Tags {
		if x, ok := tag.(ExpiryTag); ok {
			return x.Seconds
		}
	}
	return 3600
}

// String renders the invoice's prefix and, when present, its amount in
// pico-bitcoin, for logging/debugging; it does not affect wire encoding.
func (pr *PaymentRequest) String() string {
	var b strings.Builder
	b.WriteString(pr.Prefix)
	if pr.HasAmount {
		b.WriteString(" amount=")
		b.WriteString(strconv.FormatUint(uint64(pr.Amount), 10))
		b.WriteString("pBTC")
	}
	return b.String()
}
