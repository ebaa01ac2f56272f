package bitio

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderMSBFirst(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0b10110010}))

	want := []bool{true, false, true, true, false, false, true, false}
	for i, w := range want {
		bit, err := r.ReadBit()
		require.NoError(t, err, "bit %d", i)
		require.Equal(t, w, bit, "bit %d", i)
	}
}

func TestReaderExhausted(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF}))

	for i := 0; i < 8; i++ {
		_, err := r.ReadBit()
		require.NoError(t, err)
	}

	_, err := r.ReadBit()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestReadBits(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0b11010000}))

	v, err := ReadBits(r, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1101), v)
}

type fakeAsyncSource struct{ bits []bool }

func (f *fakeAsyncSource) ReadBitAsync(ctx context.Context) (bool, error) {
	if len(f.bits) == 0 {
		return false, ErrExhausted
	}
	b := f.bits[0]
	f.bits = f.bits[1:]
	return b, nil
}

func TestAsyncBitSourceContract(t *testing.T) {
	var src AsyncBitSource = &fakeAsyncSource{bits: []bool{true, false}}

	b1, err := src.ReadBitAsync(context.Background())
	require.NoError(t, err)
	require.True(t, b1)

	b2, err := src.ReadBitAsync(context.Background())
	require.NoError(t, err)
	require.False(t, b2)

	_, err = src.ReadBitAsync(context.Background())
	require.ErrorIs(t, err, ErrExhausted)
}
