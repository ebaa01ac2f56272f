package cabac

import "testing"

import (
	"github.com/stretchr/testify/require"
)

func TestDecodeMbTypeILeadingZero(t *testing.T) {
	d := newTestDecoder(t, SliceTypeI, allZerosStream(16))
	forceMPS(d, 3, false)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 0, res.Value)
	require.Equal(t, SliceTypeI, res.EffectiveSlice)
}

func TestDecodeMbTypeSILeadingZero(t *testing.T) {
	d := newTestDecoder(t, SliceTypeSI, allZerosStream(16))
	forceMPS(d, 0, false)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 0, res.Value)
	require.Equal(t, SliceTypeSI, res.EffectiveSlice)
}

func TestDecodeMbTypeSIFallsThroughToISuffix(t *testing.T) {
	d := newTestDecoder(t, SliceTypeSI, allZerosStream(16))
	forceMPS(d, 0, true)
	forceMPS(d, 3, false)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 0, res.Value)
	require.Equal(t, SliceTypeI, res.EffectiveSlice)
}

func TestDecodeMbTypePOrSPZero(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 14, false)
	forceMPS(d, 15, false)
	forceMPS(d, 16, false)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 0, res.Value)
	require.Equal(t, SliceTypeP, res.EffectiveSlice)
}

func TestDecodeMbTypePOrSPThree(t *testing.T) {
	d := newTestDecoder(t, SliceTypeSP, allZerosStream(16))
	forceMPS(d, 14, false)
	forceMPS(d, 15, false)
	forceMPS(d, 16, true)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 3, res.Value)
	require.Equal(t, SliceTypeSP, res.EffectiveSlice)
}

func TestDecodeMbTypeBLeadingZero(t *testing.T) {
	d := newTestDecoder(t, SliceTypeB, allZerosStream(16))
	forceMPS(d, 27, false)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 0, res.Value)
	require.Equal(t, SliceTypeB, res.EffectiveSlice)
}

func TestDecodeMbTypeBValueOne(t *testing.T) {
	d := newTestDecoder(t, SliceTypeB, allZerosStream(16))
	forceMPS(d, 27, true)
	forceMPS(d, 28, true)
	forceMPS(d, 29, false)
	forceMPS(d, 30, false)

	res, err := d.DecodeMbType()
	require.NoError(t, err)
	require.Equal(t, 1, res.Value)
	require.Equal(t, SliceTypeB, res.EffectiveSlice)
}

func TestDecodeSubMbTypePOrSPZero(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 36, true)

	v, err := d.DecodeSubMbType()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestDecodeSubMbTypePOrSPOne(t *testing.T) {
	d := newTestDecoder(t, SliceTypeP, allZerosStream(16))
	forceMPS(d, 36, false)
	forceMPS(d, 37, false)

	v, err := d.DecodeSubMbType()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestDecodeSubMbTypeBZero(t *testing.T) {
	d := newTestDecoder(t, SliceTypeB, allZerosStream(16))
	forceMPS(d, 36, false)

	v, err := d.DecodeSubMbType()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestEqualBinsAndMatchBBinString(t *testing.T) {
	require.True(t, equalBins([]int{1, 0}, []int{1, 0}))
	require.False(t, equalBins([]int{1, 0}, []int{1, 1}))
	require.False(t, equalBins([]int{1}, []int{1, 1}))

	v, ok := matchBBinString([]int{1, 0, 1})
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = matchBBinString([]int{1, 1})
	require.False(t, ok)
}
