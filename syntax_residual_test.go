package cabac

import "testing"

import (
	"github.com/stretchr/testify/require"
)

func TestDecodeCodedBlockFlagNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	forceMPS(d, 85, false)

	flag, err := d.DecodeCodedBlockFlag()
	require.NoError(t, err)
	require.False(t, flag)
}

func TestDecodeCodedBlockFlagBothNeighborsSet(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	d.SetCodedBlockFlagOptions(CodedBlockFlagOptions{
		NeighborAAvailable: true, NeighborACBF: false,
		NeighborBAvailable: true, NeighborBCBF: false,
	})
	forceMPS(d, 87, true)

	flag, err := d.DecodeCodedBlockFlag()
	require.NoError(t, err)
	require.True(t, flag)
}

func TestDecodeSignificantCoeffFlagDefaultBlockKind(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	forceMPS(d, 105, false)

	flag, err := d.DecodeSignificantCoeffFlag(MbAffNeither)
	require.NoError(t, err)
	require.False(t, flag)
}

func TestDecodeLastSignificantCoeffFlagDefaultBlockKind(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	forceMPS(d, 166, false)

	flag, err := d.DecodeLastSignificantCoeffFlag(MbAffNeither)
	require.NoError(t, err)
	require.False(t, flag)
}

func TestDecodeCoeffAbsLevelMinus1DefaultBlockKind(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	forceMPS(d, 227, false)

	v, err := d.DecodeCoeffAbsLevelMinus1(MbAffNeither)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodeCoeffSignFlagAllZeros(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))

	sign, err := d.DecodeCoeffSignFlag()
	require.NoError(t, err)
	require.False(t, sign)
}

func TestIs8x8FamilyBlock(t *testing.T) {
	require.True(t, is8x8FamilyBlock(BlockLuma8x8))
	require.True(t, is8x8FamilyBlock(BlockCb8x8))
	require.False(t, is8x8FamilyBlock(BlockLuma4x4))
}

func TestBlockKindFactorMbaffOffsets(t *testing.T) {
	require.Equal(t, 1, blockKindFactor(BlockLumaDCIntra16x16, MbAffNeither))
	require.Equal(t, 7, blockKindFactor(BlockLumaDCIntra16x16, MbAffFrame))
	require.Equal(t, 13, blockKindFactor(BlockLumaDCIntra16x16, MbAffField))
}
