package zpay32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	b, err := DecodeHex("deadbeef")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)
}

func TestDecodeHexInvalid(t *testing.T) {
	_, err := DecodeHex("not hex")
	require.ErrorIs(t, err, ErrInvalidHex)
}
