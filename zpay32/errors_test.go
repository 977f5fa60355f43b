package zpay32

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapfUnwrapsToSentinel(t *testing.T) {
	err := wrapf(ErrInvalidLength, "field %s at offset %d", "p", 3)
	require.True(t, errors.Is(err, ErrInvalidLength))
	require.False(t, errors.Is(err, ErrInvalidU5))
	require.Contains(t, err.Error(), "field p at offset 3")
}
