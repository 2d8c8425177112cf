package dlist

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/grongierisc/dlist/encoding"
	"github.com/grongierisc/dlist/errs"
	"github.com/grongierisc/dlist/format"
	"github.com/grongierisc/dlist/frame"
)

// Decode parses data as a sequence of $LIST items, in order, until the
// buffer is exhausted. An item whose ASCII payload itself parses
// cleanly as a complete $LIST buffer is promoted to a nested List item
// rather than left as text.
func Decode(data []byte, opts ...Option) (List, error) {
	cfg := NewConfig(opts...)
	dec := &decoder{cfg: cfg}

	return dec.decodeSequence(data, 0)
}

type decoder struct {
	cfg *Config
}

func (d *decoder) decodeSequence(buf []byte, depth int) (List, error) {
	if depth > d.cfg.MaxDepth {
		return nil, errs.ErrMaxDepthExceeded
	}

	var items List

	offset := 0
	for offset < len(buf) {
		h, err := frame.ReadHeader(buf[offset:])
		if err != nil {
			return nil, err
		}

		payload := buf[offset+h.HeaderLen : offset+h.HeaderLen+h.PayloadLen]

		item, err := d.decodeItem(h, payload, depth)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		offset += h.Size()
	}

	return items, nil
}

func (d *decoder) decodeItem(h frame.Header, payload []byte, depth int) (Item, error) {
	switch h.Tag {
	case format.Undef:
		return Item{Kind: KindUndef}, nil

	case format.Placeholder:
		return Item{Kind: KindNull, ByRef: h.ByRef}, nil

	case format.ASCII:
		item, err := d.decodeASCIIPayload(payload, depth)
		if err != nil {
			return Item{}, err
		}
		item.ByRef = h.ByRef

		return item, nil

	case format.Unicode:
		s, err := encoding.DecodeUTF16LE(payload)
		if err != nil {
			return Item{}, err
		}

		return Item{Kind: KindString, Str: s, ByRef: h.ByRef}, nil

	case format.PosInt:
		return Item{Kind: KindInt, Int: encoding.DecodePosInt(payload), ByRef: h.ByRef}, nil

	case format.NegInt:
		return Item{Kind: KindInt, Int: encoding.DecodeNegInt(payload), ByRef: h.ByRef}, nil

	case format.PosNum:
		dec, err := decodeNum(payload, encoding.DecodePosInt)
		if err != nil {
			return Item{}, err
		}

		return Item{Kind: KindDecimal, Dec: dec, ByRef: h.ByRef}, nil

	case format.NegNum:
		dec, err := decodeNum(payload, encoding.DecodeNegInt)
		if err != nil {
			return Item{}, err
		}

		return Item{Kind: KindDecimal, Dec: dec, ByRef: h.ByRef}, nil

	case format.Double:
		f, err := encoding.DecodeDoublePayload(payload)
		if err != nil {
			return Item{}, err
		}

		return Item{Kind: KindFloat, Float: f, ByRef: h.ByRef}, nil

	case format.CompactDouble:
		f, err := encoding.DecodeCompactDoublePayload(payload)
		if err != nil {
			return Item{}, err
		}

		return Item{Kind: KindFloat, Float: f, ByRef: h.ByRef}, nil

	case format.OREFAscii:
		item, err := d.decodeASCIIPayload(payload, depth)
		if err != nil {
			return Item{}, err
		}
		item.ByRef = h.ByRef
		item.OREF = true

		return item, nil

	case format.OREFUnicode:
		s, err := encoding.DecodeUTF16LE(payload)
		if err != nil {
			return Item{}, err
		}

		return Item{Kind: KindString, Str: s, ByRef: h.ByRef, OREF: true}, nil

	default:
		return Item{}, fmt.Errorf("%w: tag %s", errs.ErrUnknownTag, h.Tag)
	}
}

// decodeASCIIPayload implements the ASCII tag's decode rule: the
// canonical empty-string encodings short-circuit first, then a
// speculative nested-list re-parse is attempted, and finally the
// payload is decoded as text under the configured locale, falling back
// to raw bytes if even that fails.
func (d *decoder) decodeASCIIPayload(payload []byte, depth int) (Item, error) {
	if len(payload) == 0 || (len(payload) == 1 && payload[0] == 0x00) {
		return Item{Kind: KindString, Str: ""}, nil
	}

	sub, err := d.decodeSequence(payload, depth+1)
	if err == nil {
		return Item{Kind: KindList, List: sub}, nil
	}

	if errors.Is(err, errs.ErrMaxDepthExceeded) {
		return Item{}, err
	}

	if text, ok := encoding.DecodeASCIIText(payload, d.cfg.Locale); ok {
		return Item{Kind: KindString, Str: text}, nil
	}

	return Item{Kind: KindBytes, Bytes: append([]byte(nil), payload...)}, nil
}

func decodeNum(payload []byte, decodeMagnitude func([]byte) *big.Int) (Decimal, error) {
	if len(payload) == 0 {
		return Decimal{}, fmt.Errorf("%w: decimal payload missing scale byte", errs.ErrTruncatedPayload)
	}

	scale := encoding.DecodeScale(payload[0])
	unscaled := decodeMagnitude(payload[1:])

	return Decimal{Unscaled: unscaled, Scale: scale}, nil
}
