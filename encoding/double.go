package encoding

import (
	"fmt"
	"math"

	"github.com/grongierisc/dlist/endian"
	"github.com/grongierisc/dlist/errs"
)

var le = endian.GetLittleEndianEngine()

// EncodeDoubleFull packs v as a plain 8-byte little-endian IEEE-754
// double, with no leading-zero trimming. This is the DOUBLE tag's
// non-compact form.
func EncodeDoubleFull(v float64) []byte {
	b := make([]byte, 8)
	le.PutUint64(b, math.Float64bits(v))

	return b
}

// EncodeDoubleCompactFloat32 packs v as a 4-byte little-endian float32,
// then trims its leading (low-order) zero bytes. Used for the DOUBLE
// tag's compact-double form when v is exactly representable as a
// float32.
func EncodeDoubleCompactFloat32(v float32) []byte {
	b := make([]byte, 4)
	le.PutUint32(b, math.Float32bits(v))

	return trimLeadingZeros(b)
}

// EncodeCompactDouble packs v as an 8-byte little-endian float64, then
// trims its leading (low-order) zero bytes. Used for the COMPACT_DOUBLE
// tag.
func EncodeCompactDouble(v float64) []byte {
	b := make([]byte, 8)
	le.PutUint64(b, math.Float64bits(v))

	return trimLeadingZeros(b)
}

// DecodeDoublePayload unpacks a DOUBLE tag's payload: a full 8-byte
// payload decodes as float64 directly, any shorter payload is left-padded
// to 4 bytes and decoded as float32. Payloads of 0-4 bytes are valid
// compact-float32 forms; 5-7 bytes and more than 8 bytes are malformed.
func DecodeDoublePayload(payload []byte) (float64, error) {
	if len(payload) == 8 {
		return math.Float64frombits(le.Uint64(payload)), nil
	}

	if len(payload) > 4 {
		return 0, fmt.Errorf("%w: DOUBLE payload of %d bytes is neither 8 (full) nor 0-4 (compact)", errs.ErrTruncatedPayload, len(payload))
	}

	padded := make([]byte, 4)
	copy(padded[4-len(payload):], payload)

	return float64(math.Float32frombits(le.Uint32(padded))), nil
}

// DecodeCompactDoublePayload unpacks a COMPACT_DOUBLE tag's payload by
// left-padding it to 8 bytes and decoding as float64.
func DecodeCompactDoublePayload(payload []byte) (float64, error) {
	if len(payload) > 8 {
		return 0, fmt.Errorf("%w: COMPACT_DOUBLE payload of %d bytes exceeds 8", errs.ErrTruncatedPayload, len(payload))
	}

	padded := make([]byte, 8)
	copy(padded[8-len(payload):], payload)

	return math.Float64frombits(le.Uint64(padded)), nil
}

// trimLeadingZeros drops zero bytes from the start of b (the low-order
// end of a little-endian value), always keeping at least one byte.
func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}

	return b[i:]
}
