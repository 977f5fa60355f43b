package zpay32

import "encoding/binary"

// extraHopLen is the fixed packed length of a single ExtraHop record:
// 33-byte pubkey + 8-byte short channel id + 4-byte base fee + 4-byte
// proportional fee + 2-byte cltv delta.
const extraHopLen = 33 + 8 + 4 + 4 + 2

// ExtraHop describes one hop of a private route hint carried in a
// RoutingInfo tag.
type ExtraHop struct {
	// PubKey is the 33-byte compressed public key of the node at the
	// start of this channel.
	PubKey [33]byte

	// ShortChanID is the channel id of this hop's channel.
	ShortChanID uint64

	// FeeBaseMsat is the base fee, in millisatoshi, charged for routing
	// across this hop.
	FeeBaseMsat uint32

	// FeeProportionalMillionths is the proportional fee, in millionths
	// of the forwarded amount, charged for routing across this hop.
	FeeProportionalMillionths uint32

	// CltvExpiryDelta is this hop's requested CLTV expiry delta.
	CltvExpiryDelta uint16
}

// Pack serializes h into its fixed 51-byte wire representation.
func (h ExtraHop) Pack() [extraHopLen]byte {
	var out [extraHopLen]byte
	copy(out[0:33], h.PubKey[:])
	binary.BigEndian.PutUint64(out[33:41], h.ShortChanID)
	binary.BigEndian.PutUint32(out[41:45], h.FeeBaseMsat)
	binary.BigEndian.PutUint32(out[45:49], h.FeeProportionalMillionths)
	binary.BigEndian.PutUint16(out[49:51], h.CltvExpiryDelta)
	return out
}

// ParseExtraHop parses exactly one 51-byte window into an ExtraHop.
func ParseExtraHop(data []byte) (ExtraHop, error) {
	if len(data) != extraHopLen {
		return ExtraHop{}, wrapf(ErrInvalidLength,
			"extra hop must be %d bytes, got %d", extraHopLen, len(data))
	}

	var h ExtraHop
	copy(h.PubKey[:], data[0:33])
	h.ShortChanID = binary.BigEndian.Uint64(data[33:41])
	h.FeeBaseMsat = binary.BigEndian.Uint32(data[41:45])
	h.FeeProportionalMillionths = binary.BigEndian.Uint32(data[45:49])
	h.CltvExpiryDelta = binary.BigEndian.Uint16(data[49:51])
	return h, nil
}

// ParseAllExtraHops splits data into consecutive 51-byte chunks and parses
// each one. A trailing chunk shorter than 51 bytes is unknown trailing
// data and is silently dropped, matching BOLT-11's tolerance for it.
func ParseAllExtraHops(data []byte) []ExtraHop {
	hops := make([]ExtraHop, 0, len(data)/extraHopLen)
	for len(data) >= extraHopLen {
		// ParseExtraHop cannot fail on an exactly-sized window.
		hop, _ := ParseExtraHop(data[:extraHopLen])
		hops = append(hops, hop)
		data = data[extraHopLen:]
	}
	return hops
}
