package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		require.NoError(t, At(128, nil))
	})

	t.Run("wraps with offset", func(t *testing.T) {
		inner := fmt.Errorf("%w: length 0", ErrMalformedFraming)
		err := At(128, inner)

		require.ErrorIs(t, err, ErrMalformedFraming)
		require.Contains(t, err.Error(), "offset 128")

		var posErr *PositionError
		require.True(t, errors.As(err, &posErr))
		require.Equal(t, 128, posErr.Offset)
		require.Equal(t, inner, posErr.Unwrap())
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		ErrOutOfBounds, ErrTruncated, ErrMalformedFraming, ErrUnknownItemType,
		ErrMalformedText, ErrInvalidFieldWidth, ErrMissingSourceID,
		ErrUnsupportedCompression, ErrDecompressedTooLarge,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				require.NotErrorIs(t, a, b)
			}
		}
	}
}
