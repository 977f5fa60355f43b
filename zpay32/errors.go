package zpay32

import (
	"fmt"

	"github.com/go-errors/errors"
)

// The sentinel errors below make up the taxonomy returned by the codec.
// They are created with go-errors/errors so that a caller debugging a
// malformed invoice can reach the sentinel's *errors.Error with errors.As
// (most returned errors wrap the sentinel rather than being it), while
// still comparing against the sentinel with errors.Is.
var (
	// ErrInvalidLength is returned when a structural slot (a tag header,
	// a declared tag payload, the timestamp window, the signature
	// window) is shorter or longer than the wire format allows.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidU5 is returned when a byte claiming to be a 5-bit
	// symbol is out of the [0, 31] range.
	ErrInvalidU5 = errors.New("invalid base32 symbol")

	// ErrInvalidPadding is returned by a strict u5-to-byte conversion
	// when the bits that get discarded are non-zero.
	ErrInvalidPadding = errors.New("invalid padding bits")

	// ErrInvalidAmount is returned when the numeric body of a shortened
	// amount string cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUTF8 is returned when a Description tag's payload is
	// not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in description")

	// ErrInvalidPrefix is returned when a payment request's
	// human-readable part doesn't match ln{chain}{amount?}.
	ErrInvalidPrefix = errors.New("invalid invoice prefix")

	// ErrOverflow is returned when decoding a base-32 integer would
	// overflow a uint64.
	ErrOverflow = errors.New("base32 integer overflow")

	// ErrInvalidHex is returned by the hex helpers used at package
	// boundaries and in tests.
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrInvalidSignature is returned by the signer/verifier adapter
	// when a compact signature is malformed or fails to verify.
	ErrInvalidSignature = errors.New("invalid signature")
)

// codecError annotates a sentinel error with context specific to the call
// site that hit it, while still unwrapping to the sentinel so callers can
// use errors.Is against the exported Err* values.
type codecError struct {
	sentinel error
	context  string
}

func (e *codecError) Error() string {
	return fmt.Sprintf("%s: %s", e.sentinel.Error(), e.context)
}

func (e *codecError) Unwrap() error {
	return e.sentinel
}

// wrapf annotates a sentinel error with additional context while keeping it
// comparable with errors.Is against the sentinel. The go-errors/errors
// sentinel already carries a stack trace from where it was declared; this
// only adds the call-site-specific detail.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return &codecError{sentinel: sentinel, context: fmt.Sprintf(format, args...)}
}
