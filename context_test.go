package cabac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextTableSize(t *testing.T) {
	ct := newContextTable(SliceTypeI, 26, 0)
	require.Equal(t, numContexts, ct.Len())
}

func TestContextTableDeterministic(t *testing.T) {
	a := newContextTable(SliceTypeI, 26, 0)
	b := newContextTable(SliceTypeI, 26, 0)

	for i := 0; i < numContexts; i++ {
		require.Equal(t, a.Context(i), b.Context(i), "ctxIdx %d", i)
	}
}

func TestContextTablePStateIdxInRange(t *testing.T) {
	for _, slice := range []SliceType{SliceTypeI, SliceTypeP, SliceTypeB, SliceTypeSP, SliceTypeSI} {
		for _, qp := range []int{0, 1, 26, 50, 51} {
			ct := newContextTable(slice, qp, 0)
			for i := 0; i < numContexts; i++ {
				p := ct.Context(i).PStateIdx()
				require.GreaterOrEqual(t, p, 0)
				require.LessOrEqual(t, p, 63)
			}
		}
	}
}

func TestContextTableInitFormula(t *testing.T) {
	m, n := mnTableI[0].m, mnTableI[0].n
	qp := 26

	preCtxState := clip3(1, 126, ((m*clip3(0, 51, qp))>>4)+n)

	ct := newContextTable(SliceTypeI, qp, 0)
	got := ct.Context(0)

	if preCtxState <= 63 {
		require.Equal(t, 63-preCtxState, got.PStateIdx())
		require.False(t, got.MPS())
	} else {
		require.Equal(t, preCtxState-64, got.PStateIdx())
		require.True(t, got.MPS())
	}
}

func TestClip3(t *testing.T) {
	require.Equal(t, 0, clip3(0, 51, -5))
	require.Equal(t, 51, clip3(0, 51, 100))
	require.Equal(t, 26, clip3(0, 51, 26))
}
