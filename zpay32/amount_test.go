package zpay32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortenAmount(t *testing.T) {
	tests := []struct {
		pico PicoBTC
		want string
	}{
		{10, "10p"},
		{1000, "1n"},
		{1200, "1200p"},
		{123 * picoPerMicro, "123u"},
		{123 * picoPerMilli, "123m"},
		{3 * picoPerBTC, "3"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ShortenAmount(tc.pico))
	}
}

func TestUnshortenAmount(t *testing.T) {
	tests := []struct {
		in   string
		want PicoBTC
	}{
		{"10p", 10},
		{"1n", 1000},
		{"1200p", 1200},
		{"123u", 123 * picoPerMicro},
		{"123m", 123 * picoPerMilli},
		{"3", 3 * picoPerBTC},
	}

	for _, tc := range tests {
		got, err := UnshortenAmount(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	amounts := []PicoBTC{0, 1, 10, 999, 1000, 1200, 123000000, 3000000000000, 1<<64 - 1}
	for _, a := range amounts {
		s := ShortenAmount(a)
		back, err := UnshortenAmount(s)
		require.NoError(t, err)
		require.Equal(t, a, back)
	}
}

func TestUnshortenAmountErrors(t *testing.T) {
	_, err := UnshortenAmount("")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = UnshortenAmount("p")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = UnshortenAmount("abcp")
	require.ErrorIs(t, err, ErrInvalidAmount)
}
