package zpay32

import "encoding/hex"

// DecodeHex is a small convenience wrapper around encoding/hex used at
// package boundaries (the CLI, tests) where a caller hands in a hash or
// key as a hex string instead of raw bytes.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wrapf(ErrInvalidHex, "%v", err)
	}
	return b, nil
}
