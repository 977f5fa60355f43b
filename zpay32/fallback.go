package zpay32

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ResolveAddress turns a raw FallbackAddressTag into a concrete
// btcutil.Address for the given network, for display or validation. This
// does not change the tag's wire representation; FallbackAddressTag's
// Version/Hash fields remain the only thing Encode/ParseTag look at.
func (f FallbackAddressTag) ResolveAddress(net *chaincfg.Params) (btcutil.Address, error) {
	switch f.Version {
	case 0:
		switch len(f.Hash) {
		case 20:
			return btcutil.NewAddressWitnessPubKeyHash(f.Hash, net)
		case 32:
			return btcutil.NewAddressWitnessScriptHash(f.Hash, net)
		default:
			return nil, wrapf(ErrInvalidLength,
				"witness program must be 20 or 32 bytes, got %d", len(f.Hash))
		}
	case 17:
		return btcutil.NewAddressPubKeyHash(f.Hash, net)
	case 18:
		return btcutil.NewAddressScriptHashFromHash(f.Hash, net)
	default:
		return nil, wrapf(ErrInvalidPrefix, "unsupported fallback address version %d", f.Version)
	}
}

// NewFallbackAddressTag builds a FallbackAddressTag from a concrete
// on-chain address, inferring the version BOLT-11 expects for its type.
func NewFallbackAddressTag(addr btcutil.Address) (FallbackAddressTag, error) {
	switch a := addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return FallbackAddressTag{Version: 17, Hash: a.ScriptAddress()}, nil
	case *btcutil.AddressScriptHash:
		return FallbackAddressTag{Version: 18, Hash: a.ScriptAddress()}, nil
	case *btcutil.AddressWitnessPubKeyHash:
		return FallbackAddressTag{Version: a.WitnessVersion(), Hash: a.ScriptAddress()}, nil
	case *btcutil.AddressWitnessScriptHash:
		return FallbackAddressTag{Version: a.WitnessVersion(), Hash: a.ScriptAddress()}, nil
	default:
		return FallbackAddressTag{}, wrapf(ErrInvalidPrefix, "unsupported address type %T", addr)
	}
}
