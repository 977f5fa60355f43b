package zpay32

import "unicode/utf8"

// Tag field type letters, numbered by their position in bech32Charset.
const (
	tagTypePaymentHash        byte = 1  // 'p'
	tagTypeRoutingInfo        byte = 3  // 'r'
	tagTypeExpiry             byte = 6  // 'x'
	tagTypeFallbackAddress    byte = 9  // 'f'
	tagTypeDescription        byte = 13 // 'd'
	tagTypeDescriptionHash    byte = 23 // 'h'
	tagTypeMinFinalCltvExpiry byte = 24 // 'c'
)

// hashTagPayloadLen is the declared payload length, in U5 symbols, of a
// repacked 32-byte hash: ceil(32*8/5) = 52.
const hashTagPayloadLen = 52

// maxTagPayloadLen is the largest payload length a tag's 2-symbol,
// base-32 length header can express: 32*32 - 1 = 1023.
const maxTagPayloadLen = 1<<10 - 1

// Tag is a tagged union of the eight payment-request field variants BOLT-11
// defines: an interface with a byte discriminator, implemented by one
// concrete type per variant, rather than a class hierarchy.
type Tag interface {
	// Type returns the bech32-alphabet letter (as its numeric U5 value)
	// identifying this tag's kind on the wire.
	Type() byte

	// payload returns this tag's U5-encoded body, not including the
	// 3-symbol type+length header.
	payload() ([]U5, error)
}

// Encode serializes t into the full wire shape: 1 U5 type, 2 U5 big-endian
// length, then the payload. It fails with ErrInvalidLength if the payload
// is 1024 symbols or longer, since the length header can't express that.
func Encode(t Tag) ([]U5, error) {
	body, err := t.payload()
	if err != nil {
		return nil, err
	}

	if len(body) > maxTagPayloadLen {
		return nil, wrapf(ErrInvalidLength,
			"tag payload of %d groups exceeds the 10-bit length field", len(body))
	}

	out := make([]U5, 0, 3+len(body))
	out = append(out, t.Type(), U5(len(body)/32), U5(len(body)%32))
	out = append(out, body...)
	return out, nil
}

// PaymentHashTag is the 'p' field: the payment hash whose preimage proves
// payment.
type PaymentHashTag struct {
	Hash [32]byte
}

func (p PaymentHashTag) Type() byte { return tagTypePaymentHash }

func (p PaymentHashTag) payload() ([]U5, error) {
	return bytesToU5(p.Hash[:]), nil
}

// DescriptionTag is the 'd' field: a short UTF-8 description of the
// payment's purpose.
type DescriptionTag struct {
	Text string
}

func (d DescriptionTag) Type() byte { return tagTypeDescription }

func (d DescriptionTag) payload() ([]U5, error) {
	return bytesToU5([]byte(d.Text)), nil
}

// DescriptionHashTag is the 'h' field: the SHA-256 hash of an
// out-of-band description.
type DescriptionHashTag struct {
	Hash [32]byte
}

func (d DescriptionHashTag) Type() byte { return tagTypeDescriptionHash }

func (d DescriptionHashTag) payload() ([]U5, error) {
	return bytesToU5(d.Hash[:]), nil
}

// FallbackAddressTag is the 'f' field: an on-chain fallback address,
// represented as a witness/script version and the address's hash.
type FallbackAddressTag struct {
	Version uint8
	Hash    []byte
}

func (f FallbackAddressTag) Type() byte { return tagTypeFallbackAddress }

func (f FallbackAddressTag) payload() ([]U5, error) {
	// The version symbol is emitted raw, not as part of a byte->U5
	// repack of the hash; only the hash bytes get repacked.
	out := make([]U5, 0, 1+len(f.Hash)*8/5+1)
	out = append(out, U5(f.Version))
	out = append(out, bytesToU5(f.Hash)...)
	return out, nil
}

// ExpiryTag is the 'x' field: the invoice's validity window, in seconds.
type ExpiryTag struct {
	Seconds uint64
}

func (e ExpiryTag) Type() byte { return tagTypeExpiry }

func (e ExpiryTag) payload() ([]U5, error) {
	return u64ToU5(e.Seconds), nil
}

// MinFinalCltvExpiryTag is the 'c' field: the minimum CLTV expiry delta
// required for the final hop.
type MinFinalCltvExpiryTag struct {
	Blocks uint64
}

func (m MinFinalCltvExpiryTag) Type() byte { return tagTypeMinFinalCltvExpiry }

func (m MinFinalCltvExpiryTag) payload() ([]U5, error) {
	return u64ToU5(m.Blocks), nil
}

// RoutingInfoTag is the 'r' field: one or more private-route hints.
type RoutingInfoTag struct {
	Path []ExtraHop
}

func (r RoutingInfoTag) Type() byte { return tagTypeRoutingInfo }

func (r RoutingInfoTag) payload() ([]U5, error) {
	raw := make([]byte, 0, len(r.Path)*extraHopLen)
	for _, hop := range r.Path {
		packed := hop.Pack()
		raw = append(raw, packed[:]...)
	}
	return bytesToU5(raw), nil
}

// UnknownTag preserves an unrecognized tag's type and raw U5 payload
// verbatim, so a payment request round-trips byte-for-byte even when it
// carries fields this package doesn't know the semantics of.
type UnknownTag struct {
	TagType byte
	Bytes   []U5
}

func (u UnknownTag) Type() byte { return u.TagType }

func (u UnknownTag) payload() ([]U5, error) {
	return u.Bytes, nil
}

// ParseTag reads exactly one tag from the front of a U5 stream: 1 symbol
// type, 2 symbols big-endian length, then that many symbols of payload.
// The whole stream must be at least that long, or ErrInvalidLength is
// returned; the original reference implementation's length check used
// `len <= len(input)+3`, which accepts a declared length that runs past
// the buffer. This implementation uses the strict `3+len <= len(input)`
// bound instead.
func ParseTag(input []U5) (Tag, error) {
	if len(input) < 3 {
		return nil, wrapf(ErrInvalidLength, "tag header needs 3 groups, got %d", len(input))
	}

	typ := input[0]
	length := int(input[1])*32 + int(input[2])
	if 3+length > len(input) {
		return nil, wrapf(ErrInvalidLength,
			"declared payload of %d groups needs %d total, have %d", length, 3+length, len(input))
	}
	body := input[3 : 3+length]

	switch typ {
	case tagTypePaymentHash:
		return parseHashTag(body, length, func(h [32]byte) Tag { return PaymentHashTag{Hash: h} })

	case tagTypeDescriptionHash:
		return parseHashTag(body, length, func(h [32]byte) Tag { return DescriptionHashTag{Hash: h} })

	case tagTypeDescription:
		raw, err := u5ToBytes(body)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, ErrInvalidUTF8
		}
		return DescriptionTag{Text: string(raw)}, nil

	case tagTypeFallbackAddress:
		if length < 1 {
			return nil, wrapf(ErrInvalidLength, "fallback address tag needs a version symbol")
		}
		version := body[0]
		if version > 18 {
			return UnknownTag{TagType: typ, Bytes: append([]U5(nil), body...)}, nil
		}
		hash, err := u5ToBytes(body[1:])
		if err != nil {
			return nil, err
		}
		return FallbackAddressTag{Version: version, Hash: hash}, nil

	case tagTypeExpiry:
		seconds, err := u5ToU64(body)
		if err != nil {
			return nil, err
		}
		return ExpiryTag{Seconds: seconds}, nil

	case tagTypeMinFinalCltvExpiry:
		blocks, err := u5ToU64(body)
		if err != nil {
			return nil, err
		}
		return MinFinalCltvExpiryTag{Blocks: blocks}, nil

	case tagTypeRoutingInfo:
		raw, err := u5ToBytes(body)
		if err != nil {
			return nil, err
		}
		return RoutingInfoTag{Path: ParseAllExtraHops(raw)}, nil

	default:
		return UnknownTag{TagType: typ, Bytes: append([]U5(nil), body...)}, nil
	}
}

// parseHashTag implements the shared PaymentHash/DescriptionHash parsing
// rule: the declared length must equal the canonical 52-symbol repacking
// of a 32-byte hash, and the 4 padding bits it repacks down to must be
// zero. The reference implementation instead hard-codes input[3:55],
// ignoring the declared length entirely; this implementation verifies it.
func parseHashTag(body []U5, declaredLen int, build func([32]byte) Tag) (Tag, error) {
	if declaredLen != hashTagPayloadLen {
		return nil, wrapf(ErrInvalidLength,
			"hash tag payload must be %d groups, declared %d", hashTagPayloadLen, declaredLen)
	}

	raw, err := u5ToBytes(body)
	if err != nil {
		return nil, err
	}

	var hash [32]byte
	copy(hash[:], raw)
	return build(hash), nil
}

// ParseAllTags repeatedly parses tags from the front of a U5 stream until
// fewer than 3 symbols remain (a padding remnant, not a tag). It returns
// the first error it hits, if any.
func ParseAllTags(input []U5) ([]Tag, error) {
	var tags []Tag

	for len(input) >= 3 {
		length := int(input[1])*32 + int(input[2])
		end := 3 + length
		if end > len(input) {
			return nil, wrapf(ErrInvalidLength,
				"declared payload of %d groups needs %d total, have %d", length, end, len(input))
		}

		tag, err := ParseTag(input[:end])
		if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
		input = input[end:]
	}

	return tags, nil
}
