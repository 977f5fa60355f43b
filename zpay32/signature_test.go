package zpay32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	var r, s [32]byte
	for i := range r {
		r[i] = byte(i)
		s[i] = byte(255 - i)
	}

	raw := append(append(append([]byte{}, r[:]...), s[:]...), 2)
	sig, err := DecodeSignature(raw)
	require.NoError(t, err)
	require.Equal(t, r, sig.R)
	require.Equal(t, s, sig.S)
	require.EqualValues(t, 2, sig.RecoveryID)

	encoded := sig.Encode()
	require.True(t, bytes.Equal(raw, encoded[:]))
}

func TestDecodeSignatureWrongLength(t *testing.T) {
	_, err := DecodeSignature(make([]byte, 64))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = DecodeSignature(make([]byte, 66))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestNewSignatureFixSize(t *testing.T) {
	// Shorter than 32 bytes: left-zero-padded.
	short := []byte{0xaa, 0xbb}
	sig := NewSignature(short, short, 1)
	require.Equal(t, append(make([]byte, 30), 0xaa, 0xbb), sig.R[:])
	require.Equal(t, append(make([]byte, 30), 0xaa, 0xbb), sig.S[:])

	// Longer than 32 bytes: leading bytes dropped.
	long := append([]byte{0xff, 0xff}, make([]byte, 32)...)
	sig = NewSignature(long, long, 0)
	require.Equal(t, make([]byte, 32), sig.R[:])
}
