package morton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adaptive-mesh/qotree/morton"
)

func TestNewCodec_InvalidDimension(t *testing.T) {
	_, err := morton.NewCodec(4, 4, 3)
	require.ErrorIs(t, err, morton.ErrInvalidDimension)
}

func TestNewCodec_BitOverflow(t *testing.T) {
	_, err := morton.NewCodec(3, 22, 3) // 3*22+3 = 69 > 64
	require.ErrorIs(t, err, morton.ErrBitOverflow)
}

// TestEncode_Interleave2D pins a worked 2-D example: with 4 bits per axis,
// Encode([3,5], level=2) interleaves 0b011 and 0b101 to 0b100111 = 39.
func TestEncode_Interleave2D(t *testing.T) {
	c, err := morton.NewCodec(2, 4, 3)
	require.NoError(t, err)

	idx, err := c.Encode([]uint64{3, 5}, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(39<<3|2), idx)

	coords, level := c.Decode(idx)
	require.Equal(t, []uint64{3, 5}, coords)
	require.Equal(t, uint64(2), level)
}

func TestEncodeDecode_RoundTrip3D(t *testing.T) {
	c, err := morton.NewCodec(3, 10, 5)
	require.NoError(t, err)

	for _, tc := range []struct {
		coords []uint64
		level  uint64
	}{
		{[]uint64{0, 0, 0}, 0},
		{[]uint64{1, 0, 0}, 3},
		{[]uint64{511, 511, 511}, 10},
		{[]uint64{42, 7, 300}, 6},
	} {
		idx, err := c.Encode(tc.coords, tc.level)
		require.NoError(t, err)

		gotCoords, gotLevel := c.Decode(idx)
		require.Equal(t, tc.coords, gotCoords)
		require.Equal(t, tc.level, gotLevel)
	}
}

func TestEncode_RejectsOutOfRange(t *testing.T) {
	c, err := morton.NewCodec(2, 4, 3)
	require.NoError(t, err)

	_, err = c.Encode([]uint64{16, 0}, 0)
	require.ErrorIs(t, err, morton.ErrCoordOutOfRange)

	_, err = c.Encode([]uint64{0, 0}, 8)
	require.ErrorIs(t, err, morton.ErrLevelOutOfRange)

	_, err = c.Encode([]uint64{0, 0, 0}, 0)
	require.ErrorIs(t, err, morton.ErrInvalidDimension)
}

func TestParent(t *testing.T) {
	coords, level := morton.Parent([]uint64{6, 10}, 2, 4)
	require.Equal(t, []uint64{4, 8}, coords)
	require.Equal(t, uint64(1), level)
}
