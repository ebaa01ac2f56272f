package cabac

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvorion/cabac/bitio"
)

func TestNewEngineInitialState(t *testing.T) {
	src := bitio.NewReader(bytes.NewReader([]byte{0xFF, 0xFF}))

	e, err := newEngine(src)
	require.NoError(t, err)
	require.Equal(t, 510, e.codIRange)
	require.Equal(t, 0x1FF, e.codIOffset)
}

func TestEngineExhaustedPropagates(t *testing.T) {
	src := bitio.NewReader(bytes.NewReader(nil))

	_, err := newEngine(src)
	require.ErrorIs(t, err, ErrBitstreamExhausted)
}

func TestReadDecisionKeepsRangeInBounds(t *testing.T) {
	src := bitio.NewReader(bytes.NewReader(bytes.Repeat([]byte{0xAA}, 64)))

	e, err := newEngine(src)
	require.NoError(t, err)

	ctx := &ContextModel{pStateIdx: 0, mps: true}

	for i := 0; i < 100; i++ {
		_, err := e.readDecision(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, e.codIRange, 256)
		require.LessOrEqual(t, e.codIRange, 1023)
		require.GreaterOrEqual(t, ctx.pStateIdx, 0)
		require.LessOrEqual(t, ctx.pStateIdx, 63)
	}
}

func TestReadTerminateEndOfSlice(t *testing.T) {
	// codIOffset starts at 0x1FF (511); after codIRange -= 2 (510-2=508),
	// codIOffset (511) >= codIRange (508), so the probe reports true.
	src := bitio.NewReader(bytes.NewReader([]byte{0xFF, 0xFF}))

	e, err := newEngine(src)
	require.NoError(t, err)

	bin, err := e.readTerminate()
	require.NoError(t, err)
	require.Equal(t, 1, bin)
}

func TestReadBypassNoRenormalization(t *testing.T) {
	src := bitio.NewReader(bytes.NewReader([]byte{0x00, 0x00}))

	e, err := newEngine(src)
	require.NoError(t, err)

	rangeBefore := e.codIRange
	_, err = e.readBypass()
	require.NoError(t, err)
	require.Equal(t, rangeBefore, e.codIRange)
}
