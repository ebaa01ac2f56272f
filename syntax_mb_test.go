package cabac

import "testing"

import (
	"github.com/stretchr/testify/require"
)

func TestDecodeMbFieldDecodingFlagNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 70, true)

	flag, err := d.DecodeMbFieldDecodingFlag()
	require.NoError(t, err)
	require.True(t, flag)
}

func TestDecodeTransformSize8x8FlagNoNeighbors(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 399, false)

	flag, err := d.DecodeTransformSize8x8Flag()
	require.NoError(t, err)
	require.False(t, flag)
}

func TestDecodeMbSkipFlagBSlice(t *testing.T) {
	d := newTestDecoder(t, SliceTypeB, allZerosStream(16))
	forceMPS(d, 24, true)

	skip, err := d.DecodeMbSkipFlag()
	require.NoError(t, err)
	require.True(t, skip)
}
