package cabac

import "testing"

import (
	"github.com/stretchr/testify/require"
)

func TestDecodeRefIdxLXNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 54, false)

	v, err := d.DecodeRefIdxLX(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodeMvdCompNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 40, false)

	v, err := d.DecodeMvdComp(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodeMvdCompVerticalUsesOtherBase(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 47, false)

	v, err := d.DecodeMvdComp(1)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodeIntraChromaPredModeNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	forceMPS(d, 64, false)

	v, err := d.DecodeIntraChromaPredMode()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodePrevIntraPredModeFlagAllZeros(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))

	flag, err := d.DecodePrevIntraPredModeFlag()
	require.NoError(t, err)
	require.False(t, flag)
}

func TestDecodeRemIntraPredModeAllZeros(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))

	v, err := d.DecodeRemIntraPredMode()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodeMbQpDeltaNoPriorDelta(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 60, false)

	v, err := d.DecodeMbQpDelta(false)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestRefIdxCondTermIntraNeighborIsZero(t *testing.T) {
	n := NeighborPartition{Available: true, Descriptor: MacroblockDescriptor{Pred: PredModeIntra}}
	require.Equal(t, 0, refIdxCondTerm(n))
}

func TestRefIdxCondTermUnavailableIsZero(t *testing.T) {
	n := NeighborPartition{Available: false}
	require.Equal(t, 0, refIdxCondTerm(n))
}
