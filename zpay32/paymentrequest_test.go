package zpay32

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

// fakeBech32 is an in-memory Bech32Codec stand-in so PaymentRequest
// round-trip tests don't depend on the checksum polynomial at all: it
// simply records the hrp/data pair and parses it back out of a string
// this package controls, keeping these tests focused on the payment
// request framing rather than the bech32 envelope (which bech32_test.go
// below exercises against the real codec).
type fakeBech32 struct{}

// u5ByteOffset shifts a U5 symbol into a printable single-byte ASCII
// range ('!'..'@') that never collides with the '|' separator, so the
// byte length of the encoded string always equals the symbol count.
const u5ByteOffset = '!'

func (fakeBech32) Encode(hrp string, data []U5) (string, error) {
	buf := make([]byte, len(data))
	for i, d := range data {
		buf[i] = u5ByteOffset + d
	}
	return hrp + "|" + string(buf), nil
}

func (fakeBech32) Decode(s string) (string, []U5, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			tail := s[i+1:]
			out := make([]U5, len(tail))
			for j := 0; j < len(tail); j++ {
				out[j] = tail[j] - u5ByteOffset
			}
			return s[:i], out, nil
		}
	}
	return "", nil, wrapf(ErrInvalidPrefix, "missing separator")
}

func samplePaymentRequest() *PaymentRequest {
	var hash [32]byte
	for i := range hash {
		hash[i] = byte(i)
	}

	var r, s [32]byte
	for i := range r {
		r[i] = byte(i + 1)
		s[i] = byte(255 - i)
	}

	return &PaymentRequest{
		Prefix:    "lnbc",
		Amount:    250000 * picoPerMicro,
		HasAmount: true,
		Timestamp: 1496314658,
		Tags: []Tag{
			PaymentHashTag{Hash: hash},
			DescriptionTag{Text: "1 cup coffee"},
			ExpiryTag{Seconds: 60},
			MinFinalCltvExpiryTag{Blocks: 18},
		},
		Signature: *NewSignature(r[:], s[:], 1),
	}
}

func TestPaymentRequestRoundTrip(t *testing.T) {
	pr := samplePaymentRequest()

	encoded, err := pr.Encode(fakeBech32{})
	require.NoError(t, err)

	decoded, err := Decode(encoded, fakeBech32{})
	require.NoError(t, err)

	require.Equal(t, pr.Prefix, decoded.Prefix)
	require.Equal(t, pr.HasAmount, decoded.HasAmount)
	require.Equal(t, pr.Amount, decoded.Amount)
	require.Equal(t, pr.Timestamp, decoded.Timestamp)
	require.Equal(t, pr.Tags, decoded.Tags)
	require.Equal(t, pr.Signature, decoded.Signature)
}

func TestPaymentRequestRoundTripNoAmount(t *testing.T) {
	pr := samplePaymentRequest()
	pr.HasAmount = false
	pr.Amount = 0

	encoded, err := pr.Encode(fakeBech32{})
	require.NoError(t, err)

	decoded, err := Decode(encoded, fakeBech32{})
	require.NoError(t, err)
	require.False(t, decoded.HasAmount)
	require.Equal(t, PicoBTC(0), decoded.Amount)
}

func TestPaymentRequestTimestampOverflow(t *testing.T) {
	pr := samplePaymentRequest()
	pr.Timestamp = 1 << 35

	_, err := pr.Encode(fakeBech32{})
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPaymentRequestDefaults(t *testing.T) {
	pr := &PaymentRequest{Prefix: "lnbc"}
	require.EqualValues(t, 9, pr.MinFinalCltvExpiry())
	require.EqualValues(t, 3600, pr.Expiry())

	pr.Tags = []Tag{MinFinalCltvExpiryTag{Blocks: 144}, ExpiryTag{Seconds: 7200}}
	require.EqualValues(t, 144, pr.MinFinalCltvExpiry())
	require.EqualValues(t, 7200, pr.Expiry())
}

func TestSplitHRP(t *testing.T) {
	prefix, amount, hasAmount, err := splitHRP("lnbc2500u")
	require.NoError(t, err)
	require.Equal(t, "lnbc", prefix)
	require.True(t, hasAmount)
	require.Equal(t, PicoBTC(2500*picoPerMicro), amount)

	prefix, _, hasAmount, err = splitHRP("lnbcrt")
	require.NoError(t, err)
	require.Equal(t, "lnbcrt", prefix)
	require.False(t, hasAmount)

	_, _, _, err = splitHRP("btc2500u")
	require.ErrorIs(t, err, ErrInvalidPrefix)

	_, _, _, err = splitHRP("ln")
	require.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestPaymentRequestDecodeTooShort(t *testing.T) {
	_, err := Decode("lnbc|", fakeBech32{})
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPaymentRequestSignAndVerify(t *testing.T) {
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	pr := samplePaymentRequest()
	pr.Signature = Signature{}

	digest, err := pr.SigningDigest()
	require.NoError(t, err)

	signer := MessageSigner{
		SignCompact: func(h []byte) ([]byte, error) {
			return ecdsa.SignCompact(privKey, h, true), nil
		},
	}

	sig, err := Sign(signer, digest)
	require.NoError(t, err)
	pr.Signature = *sig

	encoded, err := pr.Encode(fakeBech32{})
	require.NoError(t, err)

	decoded, err := Decode(encoded, fakeBech32{})
	require.NoError(t, err)

	redigest, err := decoded.SigningDigest()
	require.NoError(t, err)
	require.Equal(t, digest, redigest)

	recovered, err := RecoverPubKey(redigest, &decoded.Signature)
	require.NoError(t, err)
	require.True(t, privKey.PubKey().IsEqual(recovered))
}
