package zpay32

// timestampU5Len is the number of 5-bit groups needed to encode the 35-bit
// invoice timestamp.
const timestampU5Len = 7

// EncodeTimestamp renders t as exactly seven big-endian U5 symbols.
func EncodeTimestamp(t uint64) [timestampU5Len]U5 {
	var out [timestampU5Len]U5
	for i := timestampU5Len - 1; i >= 0; i-- {
		out[i] = U5(t & 0x1f)
		t >>= 5
	}
	return out
}

// DecodeTimestamp reads exactly seven U5 symbols from the front of data and
// folds them, big-endian, into a uint64. The caller is responsible for
// guaranteeing data's positional slot; DecodeTimestamp only checks that at
// least seven symbols are present.
func DecodeTimestamp(data []U5) (uint64, error) {
	if len(data) < timestampU5Len {
		return 0, wrapf(ErrInvalidLength, "timestamp needs %d groups, got %d",
			timestampU5Len, len(data))
	}

	return u5ToU64(data[:timestampU5Len])
}
