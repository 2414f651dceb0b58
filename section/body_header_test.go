package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/errs"
)

func appendBodyHeader(b []byte, ts uint64, sourceID, barrier uint32) []byte {
	engine := endian.GetLittleEndianEngine()
	b = engine.AppendUint32(b, BodyHeaderSizePresent)
	b = engine.AppendUint64(b, ts)
	b = engine.AppendUint32(b, sourceID)
	b = engine.AppendUint32(b, barrier)

	return b
}

func TestParseBodyHeader_Absent(t *testing.T) {
	// Trailing payload bytes must not leak into the header view.
	data := []byte{0, 0, 0, 0, 0xaa, 0xbb}

	h, err := ParseBodyHeader(data)
	require.NoError(t, err)

	require.False(t, h.Present())
	require.Equal(t, uint32(0), h.Size())
	require.Equal(t, 4, h.Len())
	require.Equal(t, []byte{0, 0, 0, 0}, h.Bytes())

	_, ok := h.Timestamp()
	require.False(t, ok)
	_, ok = h.SourceID()
	require.False(t, ok)
	_, ok = h.BarrierType()
	require.False(t, ok)
}

func TestParseBodyHeader_Present(t *testing.T) {
	data := appendBodyHeader(nil, 0x0102030405060708, 7, 3)
	data = append(data, 0xde, 0xad)

	h, err := ParseBodyHeader(data)
	require.NoError(t, err)

	require.True(t, h.Present())
	require.Equal(t, uint32(20), h.Size())
	require.Equal(t, 20, h.Len())
	require.Len(t, h.Bytes(), 20)

	ts, ok := h.Timestamp()
	require.True(t, ok)
	require.Equal(t, uint64(0x0102030405060708), ts)

	sourceID, ok := h.SourceID()
	require.True(t, ok)
	require.Equal(t, uint32(7), sourceID)

	barrier, ok := h.BarrierType()
	require.True(t, ok)
	require.Equal(t, uint32(3), barrier)
}

func TestParseBodyHeader_PresentZeroValues(t *testing.T) {
	// Zero-valued fields are present, not absent.
	h, err := ParseBodyHeader(appendBodyHeader(nil, 0, 0, 0))
	require.NoError(t, err)

	ts, ok := h.Timestamp()
	require.True(t, ok)
	require.Zero(t, ts)
}

func TestParseBodyHeader_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("empty buffer", func(t *testing.T) {
		_, err := ParseBodyHeader(nil)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("short size field", func(t *testing.T) {
		_, err := ParseBodyHeader([]byte{0, 0})
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("bad sizes", func(t *testing.T) {
		for _, size := range []uint32{4, 12, 19, 21, 0xFFFFFFFF} {
			data := engine.AppendUint32(nil, size)
			data = append(data, make([]byte, 32)...)

			_, err := ParseBodyHeader(data)
			require.ErrorIs(t, err, errs.ErrMalformedFraming, "size %d", size)
		}
	})

	t.Run("present header cut short", func(t *testing.T) {
		data := appendBodyHeader(nil, 1, 2, 3)

		_, err := ParseBodyHeader(data[:16])
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})
}

func TestLayoutConstants(t *testing.T) {
	require.Equal(t, 96, StateChangeSize)
	require.Equal(t, MinEventSize, FrameSize+BodyHeaderSizeField)
	require.Equal(t, 24, ScalersHeaderSize)
}
