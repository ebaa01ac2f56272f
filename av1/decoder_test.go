package av1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSymbolDecoderInitialState(t *testing.T) {
	d, err := NewSymbolDecoder([]byte{0x00}, false)
	require.NoError(t, err)
	require.Equal(t, uint32(1<<15), d.symRange)
	require.Equal(t, uint32(1<<15-1), d.symVal)
}

func TestNewSymbolDecoderShortBuffer(t *testing.T) {
	// A buffer shorter than 15 bits still constructs: the read is
	// clamped to the available bit count and the rest reads as zero.
	d, err := NewSymbolDecoder([]byte{0xFF}, false)
	require.NoError(t, err)
	require.Equal(t, 8, d.numBits)
}

func TestReadSymbolRangeStaysNormalized(t *testing.T) {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xAA
	}
	d, err := NewSymbolDecoder(buf, true)
	require.NoError(t, err)

	cdf := []uint16{10000, 20000, 1 << 15, 0}

	for i := 0; i < 40; i++ {
		symbol, err := d.ReadSymbol(cdf)
		require.NoError(t, err)
		require.GreaterOrEqual(t, symbol, 0)
		require.LessOrEqual(t, symbol, 2)
		require.GreaterOrEqual(t, d.symRange, uint32(1<<14))
		require.Less(t, d.symRange, uint32(1<<15))
		require.Less(t, d.symVal, uint32(1<<15))
	}
}

func TestReadSymbolDeterministic(t *testing.T) {
	buf := []byte{0x5A, 0x3C, 0x91, 0x00, 0xFF, 0x12}

	run := func() []int {
		d, err := NewSymbolDecoder(buf, true)
		require.NoError(t, err)
		cdf := []uint16{12000, 24000, 1 << 15, 0}

		var out []int
		for i := 0; i < 10; i++ {
			symbol, err := d.ReadSymbol(cdf)
			require.NoError(t, err)
			out = append(out, symbol)
		}
		return out
	}

	require.Equal(t, run(), run())
}

func TestReadSymbolCdfTooShort(t *testing.T) {
	d, err := NewSymbolDecoder([]byte{0x00}, false)
	require.NoError(t, err)

	_, err = d.ReadSymbol([]uint16{0})
	require.ErrorIs(t, err, ErrExhausted)
}

func TestReadLiteralBounds(t *testing.T) {
	buf := []byte{0x3D, 0x8B, 0x00, 0xFF}
	d, err := NewSymbolDecoder(buf, false)
	require.NoError(t, err)

	v, err := d.ReadLiteral(4)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0)
	require.Less(t, v, 16)
}

func TestReadBooleanDoesNotMutateCallerCdf(t *testing.T) {
	d, err := NewSymbolDecoder([]byte{0x00, 0xFF}, false)
	require.NoError(t, err)

	before := append([]uint16(nil), booleanCdf...)
	_, err = d.ReadBoolean()
	require.NoError(t, err)
	require.Equal(t, before, booleanCdf)
}

func TestDisableCdfUpdateLeavesCountAtZero(t *testing.T) {
	d, err := NewSymbolDecoder([]byte{0x55, 0x55}, true)
	require.NoError(t, err)

	cdf := []uint16{16384, 1 << 15, 0}
	_, err = d.ReadSymbol(cdf)
	require.NoError(t, err)
	require.Equal(t, uint16(0), cdf[len(cdf)-1])
}

func TestUpdateCdfKnownTransform(t *testing.T) {
	cdf := []uint16{16384, 1 << 15, 0}
	updateCdf(cdf, 0, 2)

	require.Equal(t, uint16(17408), cdf[0])
	require.Equal(t, uint16(1), cdf[2])
}

func TestReadBooleanBoundaryScenario(t *testing.T) {
	// A single-byte tile with only its top bit set, CDF updates
	// disabled: the first bit must decode false, and reading a 4-bit
	// literal immediately after must yield 0. Pinned down by hand
	// tracing NewSymbolDecoder/ReadSymbol/ReadBoolean against this
	// exact input; see DESIGN.md's "AV1 symbol decoder" entry.
	d, err := NewSymbolDecoder([]byte{0b10000000}, true)
	require.NoError(t, err)

	first, err := d.ReadBoolean()
	require.NoError(t, err)
	require.False(t, first)

	lit, err := d.ReadLiteral(4)
	require.NoError(t, err)
	require.Equal(t, 0, lit)
}

func TestB2i(t *testing.T) {
	require.Equal(t, 1, b2i(true))
	require.Equal(t, 0, b2i(false))
}
