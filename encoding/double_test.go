package encoding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grongierisc/dlist/encoding"
)

func TestDoubleFullRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.14159265358979, math.Pi, -1e300} {
		payload := encoding.EncodeDoubleFull(v)
		assert.Len(t, payload, 8)

		got, err := encoding.DecodeDoublePayload(payload)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCompactFloat32TrimsAndRestores(t *testing.T) {
	v := float32(2.5)
	payload := encoding.EncodeDoubleCompactFloat32(v)
	assert.LessOrEqual(t, len(payload), 4)

	got, err := encoding.DecodeDoublePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, float64(v), got)
}

func TestCompactDoubleTrimsAndRestores(t *testing.T) {
	v := 123456789.123456
	payload := encoding.EncodeCompactDouble(v)
	assert.LessOrEqual(t, len(payload), 8)

	got, err := encoding.DecodeCompactDoublePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestCompactDoubleOfSimpleIntegerTrimsHeavily(t *testing.T) {
	// 4.0 has an all-zero mantissa; its float32 bit pattern has two
	// leading (low-order) zero bytes.
	payload := encoding.EncodeDoubleCompactFloat32(4.0)
	assert.Len(t, payload, 2)

	got, err := encoding.DecodeDoublePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, float64(4), got)
}

func TestDecodeDoublePayloadRejectsOversizedPayload(t *testing.T) {
	for _, n := range []int{5, 6, 7, 9} {
		_, err := encoding.DecodeDoublePayload(make([]byte, n))
		assert.Error(t, err)
	}
}

func TestDecodeCompactDoublePayloadRejectsOversizedPayload(t *testing.T) {
	_, err := encoding.DecodeCompactDoublePayload(make([]byte, 9))
	assert.Error(t, err)
}
