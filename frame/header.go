// Package frame implements the $LIST length-and-type header: the
// self-delimiting prefix that precedes every item's payload in the
// short (2-byte), medium (4-byte), and long (8-byte) forms, plus the
// one-byte UNDEF marker.
package frame

import (
	"fmt"
	"math"

	"github.com/grongierisc/dlist/errs"
	"github.com/grongierisc/dlist/format"
)

// maxShortPayload is the largest payload length that still fits the
// short form: the encoder only chooses short form while payload+2 < 0xFF.
const maxShortPayload = 252

// maxMediumPayload is the largest payload length that fits the medium
// form's 16-bit stored length field (stored value is payload+1).
const maxMediumPayload = 0xFFFE

// maxLongPayload bounds payload length to what the long form's 32-bit
// stored length field (payload+1) can hold.
const maxLongPayload = math.MaxUint32 - 1

// Header describes a parsed (or about-to-be-written) length-and-type
// prefix.
type Header struct {
	Tag        format.Tag
	ByRef      bool
	PayloadLen int
	HeaderLen  int
}

// Size is the total number of bytes (header + payload) this item
// occupies on the wire.
func (h Header) Size() int {
	return h.HeaderLen + h.PayloadLen
}

// ReadHeader parses the header at the start of buf. buf must contain
// at least the full header; ReadHeader also validates that buf is long
// enough to hold the declared payload, returning errs.ErrTruncatedHeader
// or errs.ErrTruncatedPayload otherwise.
func ReadHeader(buf []byte) (Header, error) {
	if len(buf) == 0 {
		return Header{}, fmt.Errorf("%w: empty buffer", errs.ErrTruncatedHeader)
	}

	var h Header

	switch b0 := buf[0]; {
	case b0 == 1:
		h = Header{Tag: format.Undef, HeaderLen: 1, PayloadLen: 0}

	case b0 == 0:
		if len(buf) < 3 {
			return Header{}, fmt.Errorf("%w: need 3 bytes to disambiguate medium/long form, have %d", errs.ErrTruncatedHeader, len(buf))
		}

		b1, b2 := buf[1], buf[2]
		if b1 == 0 && b2 == 0 {
			var err error
			h, err = readLongHeader(buf)
			if err != nil {
				return Header{}, err
			}
		} else {
			var err error
			h, err = readMediumHeader(buf)
			if err != nil {
				return Header{}, err
			}
		}

	default:
		var err error
		h, err = readShortHeader(buf)
		if err != nil {
			return Header{}, err
		}
	}

	if h.Size() > len(buf) {
		return Header{}, fmt.Errorf("%w: header declares %d bytes, buffer has %d", errs.ErrTruncatedPayload, h.Size(), len(buf))
	}

	return h, nil
}

func readShortHeader(buf []byte) (Header, error) {
	if len(buf) < 2 {
		return Header{}, fmt.Errorf("%w: short form needs 2 bytes, have %d", errs.ErrTruncatedHeader, len(buf))
	}

	tag, byRef, err := splitTag(buf[1])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Tag:        tag,
		ByRef:      byRef,
		PayloadLen: int(buf[0]) - 2,
		HeaderLen:  2,
	}, nil
}

func readMediumHeader(buf []byte) (Header, error) {
	if len(buf) < 4 {
		return Header{}, fmt.Errorf("%w: medium form needs 4 bytes, have %d", errs.ErrTruncatedHeader, len(buf))
	}

	stored := uint16(buf[1]) | uint16(buf[2])<<8

	tag, byRef, err := splitTag(buf[3])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Tag:        tag,
		ByRef:      byRef,
		PayloadLen: int(stored) - 1,
		HeaderLen:  4,
	}, nil
}

func readLongHeader(buf []byte) (Header, error) {
	if len(buf) < 8 {
		return Header{}, fmt.Errorf("%w: long form needs 8 bytes, have %d", errs.ErrTruncatedHeader, len(buf))
	}

	stored := uint32(buf[3]) | uint32(buf[4])<<8 | uint32(buf[5])<<16 | uint32(buf[6])<<24
	if stored == 0 {
		return Header{}, fmt.Errorf("%w: long form with zero stored length", errs.ErrTruncatedHeader)
	}

	tag, byRef, err := splitTag(buf[7])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Tag:        tag,
		ByRef:      byRef,
		PayloadLen: int(stored) - 1,
		HeaderLen:  8,
	}, nil
}

// splitTag separates the by-reference bit (+32) from the base tag and
// validates the result against the defined tag set.
func splitTag(tagByte byte) (format.Tag, bool, error) {
	base := tagByte
	byRef := false

	if base >= format.ByRefBit && base < 2*format.ByRefBit {
		byRef = true
		base -= format.ByRefBit
	}

	tag := format.Tag(int8(base))
	if !tag.IsValid() {
		return 0, false, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTag, tagByte)
	}

	return tag, byRef, nil
}

// AppendUndef appends the one-byte UNDEF marker to dst.
func AppendUndef(dst []byte) []byte {
	return append(dst, 1)
}

// AppendHeader appends the length-and-type header for a payload of the
// given length and tag to dst, choosing the shortest of the three forms
// that can represent payloadLen.
func AppendHeader(dst []byte, payloadLen int, tag format.Tag, byRef bool) ([]byte, error) {
	if payloadLen < 0 {
		return nil, fmt.Errorf("%w: negative payload length %d", errs.ErrRangeOverflow, payloadLen)
	}

	tagByte := byte(tag)
	if byRef {
		tagByte += format.ByRefBit
	}

	switch {
	case payloadLen <= maxShortPayload:
		return append(dst, byte(payloadLen+2), tagByte), nil

	case payloadLen <= maxMediumPayload:
		stored := uint16(payloadLen + 1)
		return append(dst, 0x00, byte(stored), byte(stored>>8), tagByte), nil

	case payloadLen <= maxLongPayload:
		stored := uint32(payloadLen + 1)
		return append(dst, 0x00, 0x00, 0x00, byte(stored), byte(stored>>8), byte(stored>>16), byte(stored>>24), tagByte), nil

	default:
		return nil, fmt.Errorf("%w: payload length %d exceeds long-form capacity", errs.ErrRangeOverflow, payloadLen)
	}
}
