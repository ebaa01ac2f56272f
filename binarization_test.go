package cabac

import "testing"

import (
	"github.com/stretchr/testify/require"
)

func TestMapUnmapRoundTrip(t *testing.T) {
	for x := 0; x < 200; x++ {
		v := MapSigned(x)
		require.Equal(t, x, UnmapSigned(v), "x=%d v=%d", x, v)
	}
}

func TestMapSignedKnownValues(t *testing.T) {
	require.Equal(t, 0, MapSigned(0))
	require.Equal(t, 1, MapSigned(1))
	require.Equal(t, -1, MapSigned(2))
	require.Equal(t, 2, MapSigned(3))
	require.Equal(t, -2, MapSigned(4))
}

func TestFixedLengthBins(t *testing.T) {
	require.Equal(t, 0, fixedLengthBins(0))
	require.Equal(t, 1, fixedLengthBins(1))
	require.Equal(t, 2, fixedLengthBins(3))
	require.Equal(t, 5, fixedLengthBins(24))
}

func TestReadUnaryCapRaisesMalformedStream(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(64))
	forceMPS(d, 54, true)

	_, err := d.readUnary(func(binIdx int) int { return 54 })
	require.ErrorIs(t, err, ErrMalformedStream)
}

func TestReadTruncatedUnaryStopsAtCMax(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 64, true)

	v, err := d.readTruncatedUnary(3, func(binIdx int) int { return 64 })
	require.NoError(t, err)
	require.Equal(t, 3, v)
}
