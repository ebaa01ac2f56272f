package cabac

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvorion/cabac/bitio"
)

// allOnesStream and allZerosStream build a BitSource of n zero bytes or
// n 0xFF bytes, enough to cover many renormalization cycles in a test.
func allZerosStream(n int) bitio.BitSource {
	return bitio.NewReader(bytes.NewReader(make([]byte, n)))
}

func allOnesStream(n int) bitio.BitSource {
	return bitio.NewReader(bytes.NewReader(bytes.Repeat([]byte{0xFF}, n)))
}

// newTestDecoder builds a Decoder over src. Over an all-zero source
// (allZerosStream), codIOffset stays pinned at 0 for the engine's
// lifetime: every
// context-coded decision then deterministically returns the target
// context's current MPS value, since codIOffset (0) never reaches
// codIRange. Callers force specific ctxIdx models to a known MPS via
// forceMPS before exercising a binarization routine.
func newTestDecoder(t *testing.T, sliceType SliceType, src bitio.BitSource) *Decoder {
	t.Helper()

	provider := NewStaticProvider(4, 4)
	provider.CurrMbAddrValue = 0

	d, err := NewDecoder(sliceType, 26, provider, src)
	require.NoError(t, err)

	return d
}

// forceMPS pins ctxIdx's MPS value directly, bypassing whatever the
// (placeholder) initialization table produced, so binarization tests
// can exercise a specific bin sequence deterministically.
func forceMPS(d *Decoder, ctxIdx int, mps bool) {
	d.ctx.at(ctxIdx).mps = mps
}

func TestDecoderContextAccessor(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))

	got := d.Context(0)
	require.GreaterOrEqual(t, got.PStateIdx(), 0)
	require.LessOrEqual(t, got.PStateIdx(), 63)
}

func TestDecoderSetupMutators(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))

	d.SetMbPartIdx(2)
	d.SetSubMbPartIdx(1)
	d.SetResidualBlockKind(BlockLuma4x4)
	d.SetLevelListIdx(5)
	d.SetNumC8x8(4)
	d.SetNumDecodAbsLevelGt1(1)
	d.SetNumDecodAbsLevelEq1(2)
	d.SetCodedBlockFlagOptions(CodedBlockFlagOptions{NeighborAAvailable: true, NeighborACBF: true})

	require.Equal(t, 2, d.mbPartIdx)
	require.Equal(t, 1, d.subMbPartIdx)
	require.Equal(t, BlockLuma4x4, d.residualBlockKind)
	require.Equal(t, 5, d.levelListIdx)
	require.Equal(t, 4, d.numC8x8)
	require.Equal(t, 1, d.numDecodAbsLevelGt1)
	require.Equal(t, 2, d.numDecodAbsLevelEq1)
	require.True(t, d.codedBlockFlagOptions.NeighborAAvailable)
}

func TestForceGetMacroblockMissingNeighbor(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))

	_, err := d.forceGetMacroblock(99)
	require.ErrorIs(t, err, ErrMissingNeighbor)
}

func TestCondTermFlag01(t *testing.T) {
	require.Equal(t, 0, condTermFlag01(false, false))
	require.Equal(t, 0, condTermFlag01(true, true))
	require.Equal(t, 1, condTermFlag01(true, false))
}

func TestDecodeEndOfSliceFlagOnForcedStream(t *testing.T) {
	// codIOffset starts at 0x1FF (511) from an all-ones stream;
	// codIRange -= 2 gives 508, and 511 >= 508 triggers the probe.
	d := newTestDecoder(t, SliceTypeI, allOnesStream(16))

	done, err := d.DecodeEndOfSliceFlag()
	require.NoError(t, err)
	require.True(t, done)
}

func TestDecodeMbSkipFlagNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(32))
	forceMPS(d, 11, false)

	skip, err := d.DecodeMbSkipFlag()
	require.NoError(t, err)
	require.False(t, skip)
}

func TestDecodeCodedBlockPatternFormula(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(64))

	for ctxIdx := 73; ctxIdx < 73+4; ctxIdx++ {
		forceMPS(d, ctxIdx, false)
	}
	forceMPS(d, 77, false)

	cbp, err := d.DecodeCodedBlockPattern()
	require.NoError(t, err)
	require.Equal(t, 0, cbp)
}
