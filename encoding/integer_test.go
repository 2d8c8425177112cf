package encoding_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grongierisc/dlist/encoding"
)

func TestEncodeDecodePosIntWidths(t *testing.T) {
	cases := []struct {
		value   int64
		wantLen int
	}{
		{0, 0},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
		{1 << 32, 5},
	}

	for _, c := range cases {
		payload, ok := encoding.EncodePosInt(big.NewInt(c.value))
		require.True(t, ok)
		assert.Len(t, payload, c.wantLen, "value %d", c.value)

		got := encoding.DecodePosInt(payload)
		assert.Equal(t, big.NewInt(c.value).String(), got.String())
	}
}

func TestEncodeDecodeNegIntWidths(t *testing.T) {
	cases := []struct {
		value   int64
		wantLen int
	}{
		{-1, 0},
		{-2, 1},
		{-256, 1},
		{-257, 2},
		{-65536, 2},
		{-65537, 3},
	}

	for _, c := range cases {
		payload, ok := encoding.EncodeNegInt(big.NewInt(c.value))
		require.True(t, ok)
		assert.Len(t, payload, c.wantLen, "value %d", c.value)

		got := encoding.DecodeNegInt(payload)
		assert.Equal(t, big.NewInt(c.value).String(), got.String())
	}
}

func TestDecodePosIntZeroLength(t *testing.T) {
	assert.Equal(t, big.NewInt(0).String(), encoding.DecodePosInt(nil).String())
}

func TestDecodeNegIntZeroLength(t *testing.T) {
	assert.Equal(t, big.NewInt(-1).String(), encoding.DecodeNegInt(nil).String())
}

func TestEncodePosIntRejectsNegative(t *testing.T) {
	_, ok := encoding.EncodePosInt(big.NewInt(-1))
	assert.False(t, ok)
}

func TestEncodeNegIntRejectsNonNegative(t *testing.T) {
	_, ok := encoding.EncodeNegInt(big.NewInt(0))
	assert.False(t, ok)
}

func TestEncodePosIntEightByteBoundary(t *testing.T) {
	max64 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	payload, ok := encoding.EncodePosInt(max64)
	require.True(t, ok)
	assert.Len(t, payload, 8)
	assert.Equal(t, max64.String(), encoding.DecodePosInt(payload).String())

	overflow := new(big.Int).Lsh(big.NewInt(1), 64)
	_, ok = encoding.EncodePosInt(overflow)
	assert.False(t, ok)
}
