package zpay32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultBech32CodecRoundTrip(t *testing.T) {
	data := []U5{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 31, 30, 29}

	s, err := DefaultBech32Codec.Encode("lnbc", data)
	require.NoError(t, err)

	hrp, decoded, err := DefaultBech32Codec.Decode(s)
	require.NoError(t, err)
	require.Equal(t, "lnbc", hrp)
	require.Equal(t, data, decoded)
}

func TestDefaultBech32CodecAcceptsLongInvoices(t *testing.T) {
	// BOLT-11 invoices routinely exceed BIP-173's 90-character cap;
	// DecodeNoLimit must accept them.
	data := make([]U5, 300)
	for i := range data {
		data[i] = U5(i % 32)
	}

	s, err := DefaultBech32Codec.Encode("lnbc1m", data)
	require.NoError(t, err)
	require.Greater(t, len(s), 90)

	hrp, decoded, err := DefaultBech32Codec.Decode(s)
	require.NoError(t, err)
	require.Equal(t, "lnbc1m", hrp)
	require.Equal(t, data, decoded)
}

func TestDefaultBech32CodecRejectsGarbage(t *testing.T) {
	_, _, err := DefaultBech32Codec.Decode("not-a-bech32-string!!")
	require.ErrorIs(t, err, ErrInvalidPrefix)
}
