package frame_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grongierisc/dlist/errs"
	"github.com/grongierisc/dlist/format"
	"github.com/grongierisc/dlist/frame"
)

func TestReadHeaderShortForm(t *testing.T) {
	// "t" as an ASCII payload: 0x03 0x01 't'
	h, err := frame.ReadHeader([]byte{0x03, 0x01, 't'})
	require.NoError(t, err)
	assert.Equal(t, format.ASCII, h.Tag)
	assert.Equal(t, 1, h.PayloadLen)
	assert.Equal(t, 2, h.HeaderLen)
	assert.Equal(t, 3, h.Size())
}

func TestReadHeaderUndef(t *testing.T) {
	h, err := frame.ReadHeader([]byte{0x01, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, format.Undef, h.Tag)
	assert.Equal(t, 1, h.HeaderLen)
	assert.Equal(t, 0, h.PayloadLen)
}

func TestReadHeaderMediumForm(t *testing.T) {
	// 255 'A's: stored length field is 0x0100 (payload 255, +1).
	buf := append([]byte{0x00, 0x00, 0x01, 0x01}, bytes.Repeat([]byte("A"), 255)...)

	h, err := frame.ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, format.ASCII, h.Tag)
	assert.Equal(t, 255, h.PayloadLen)
	assert.Equal(t, 4, h.HeaderLen)
}

func TestReadHeaderLongForm(t *testing.T) {
	payload := strings.Repeat("A", 128000)
	buf, err := frame.AppendHeader(nil, len(payload), format.ASCII, false)
	require.NoError(t, err)
	buf = append(buf, payload...)

	h, err := frame.ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, h.HeaderLen)
	assert.Equal(t, len(payload), h.PayloadLen)
}

func TestReadHeaderByRefBit(t *testing.T) {
	buf, err := frame.AppendHeader(nil, 0, format.PosInt, true)
	require.NoError(t, err)

	h, err := frame.ReadHeader(buf)
	require.NoError(t, err)
	assert.True(t, h.ByRef)
	assert.Equal(t, format.PosInt, h.Tag)
}

func TestReadHeaderTruncated(t *testing.T) {
	_, err := frame.ReadHeader([]byte{0x05, 0x01, 'a'})
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestReadHeaderEmptyBuffer(t *testing.T) {
	_, err := frame.ReadHeader(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestReadHeaderUnknownTag(t *testing.T) {
	_, err := frame.ReadHeader([]byte{0x02, 0x0A})
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestAppendHeaderChoosesShortestForm(t *testing.T) {
	buf, err := frame.AppendHeader(nil, 0, format.ASCII, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01}, buf)

	buf, err = frame.AppendHeader(nil, 1, format.PosInt, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x04}, buf)
}

func TestAppendReadHeaderRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 252, 253, 0xFFFE, 0xFFFF, 70000} {
		buf, err := frame.AppendHeader(nil, n, format.ASCII, false)
		require.NoError(t, err)

		payload := bytes.Repeat([]byte{'x'}, n)
		h, err := frame.ReadHeader(append(buf, payload...))
		require.NoError(t, err)
		assert.Equal(t, n, h.PayloadLen, "payload length %d", n)
	}
}

func TestAppendHeaderNegativeLength(t *testing.T) {
	_, err := frame.AppendHeader(nil, -1, format.ASCII, false)
	require.ErrorIs(t, err, errs.ErrRangeOverflow)
}
