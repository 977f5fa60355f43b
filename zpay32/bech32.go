package zpay32

import "github.com/btcsuite/btcd/btcutil/bech32"

// Bech32Codec is the external bech32 envelope collaborator PaymentRequest
// depends on. The core codec never implements the checksum polynomial
// itself; it only ever talks to this interface.
type Bech32Codec interface {
	// Encode wraps hrp and data (5-bit groups) in a checksummed BIP-173
	// string.
	Encode(hrp string, data []U5) (string, error)

	// Decode splits a checksummed BIP-173 string back into its
	// human-readable part and 5-bit data groups.
	Decode(s string) (hrp string, data []U5, err error)
}

// btcutilBech32 is the default Bech32Codec, backed by btcutil/bech32.
type btcutilBech32 struct{}

// DefaultBech32Codec is the Bech32Codec PaymentRequest uses unless a
// caller supplies a different one.
var DefaultBech32Codec Bech32Codec = btcutilBech32{}

func (btcutilBech32) Encode(hrp string, data []U5) (string, error) {
	return bech32.Encode(hrp, data)
}

func (btcutilBech32) Decode(s string) (string, []U5, error) {
	// bech32.Decode caps input length at 90 characters by default,
	// matching BIP-173; BOLT-11 invoices routinely exceed that, so use
	// DecodeNoLimit.
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, wrapf(ErrInvalidPrefix, "bech32 decode: %v", err)
	}
	return hrp, data, nil
}
