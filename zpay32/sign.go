package zpay32

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MessageSigner produces a 65-byte compact, recoverable signature over a
// hash, exactly like btcec.SignCompact: the first byte is a header byte
// the recovery id is derived from, and the remaining 64 are (r, s).
type MessageSigner struct {
	SignCompact func(hash []byte) ([]byte, error)
}

// MessageVerifier checks a Signature against a hash and a candidate
// public key.
type MessageVerifier interface {
	Verify(hash []byte, sig *Signature, pubKey *btcec.PublicKey) bool
}

// SigningDigest returns the SHA-256 hash of hrp concatenated with the
// base-256 form of the tagged data preceding the signature -- the value
// BOLT-11 actually signs.
func SigningDigest(hrp string, taggedData []byte) []byte {
	return chainhash.HashB(append([]byte(hrp), taggedData...))
}

// Sign produces a Signature over hash using signer, deriving RecoveryID
// from the compact signature's header byte.
func Sign(signer MessageSigner, hash []byte) (*Signature, error) {
	compact, err := signer.SignCompact(hash)
	if err != nil {
		return nil, wrapf(ErrInvalidSignature, "sign: %v", err)
	}
	if len(compact) != signatureLen {
		return nil, wrapf(ErrInvalidSignature,
			"compact signature must be %d bytes, got %d", signatureLen, len(compact))
	}

	// btcec's compact header byte is 27 + recoveryID (+4 if compressed).
	recoveryID := (compact[0] - 27) & 0x3

	return NewSignature(compact[1:33], compact[33:65], recoveryID), nil
}

// secp256k1Verifier verifies BOLT-11 signatures using btcec/ecdsa.
type secp256k1Verifier struct{}

// DefaultVerifier is the package's default MessageVerifier; it performs
// ECDSA verification with btcec.
var DefaultVerifier MessageVerifier = secp256k1Verifier{}

func (secp256k1Verifier) Verify(hash []byte, sig *Signature, pubKey *btcec.PublicKey) bool {
	compact := sig.Encode()

	r := new(btcec.ModNScalar)
	r.SetByteSlice(compact[:32])
	s := new(btcec.ModNScalar)
	s.SetByteSlice(compact[32:64])

	signature := ecdsa.NewSignature(r, s)
	return signature.Verify(hash, pubKey)
}

// RecoverPubKey recovers the public key that produced sig over hash,
// using the recovery id carried in sig.
func RecoverPubKey(hash []byte, sig *Signature) (*btcec.PublicKey, error) {
	compact := sig.Encode()
	header := byte(27 + 4 + sig.RecoveryID)
	full := append([]byte{header}, compact[:64]...)

	pubKey, _, err := ecdsa.RecoverCompact(full, hash)
	if err != nil {
		return nil, wrapf(ErrInvalidSignature, "recover pubkey: %v", err)
	}
	return pubKey, nil
}
