package dlist

import (
	"fmt"
	"math"
	"math/big"

	"github.com/grongierisc/dlist/encoding"
	"github.com/grongierisc/dlist/errs"
	"github.com/grongierisc/dlist/format"
	"github.com/grongierisc/dlist/frame"
	"github.com/grongierisc/dlist/internal/pool"
)

var (
	maxInt64 = big.NewInt(math.MaxInt64)
	minInt64 = big.NewInt(math.MinInt64)
)

// Encode serializes list to its $LIST wire representation.
func Encode(list List, opts ...Option) ([]byte, error) {
	cfg := NewConfig(opts...)
	buf := pool.Get()
	defer pool.Put(buf)

	enc := &encoder{cfg: cfg}
	if err := enc.encodeSequence(buf, list); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

type encoder struct {
	cfg *Config
}

func (e *encoder) encodeSequence(buf *pool.Buffer, list List) error {
	for _, it := range list {
		if err := e.encodeItem(buf, it); err != nil {
			return err
		}
	}

	return nil
}

func (e *encoder) encodeItem(buf *pool.Buffer, it Item) error {
	switch it.Kind {
	case KindUndef:
		buf.Write(frame.AppendUndef(nil))
		return nil

	case KindNull:
		return appendHeader(buf, nil, format.Placeholder, it.ByRef)

	case KindBytes:
		return appendHeader(buf, it.Bytes, format.ASCII, it.ByRef)

	case KindString:
		return e.encodeString(buf, it)

	case KindInt:
		return e.encodeInt(buf, it)

	case KindDecimal:
		return e.encodeDecimal(buf, it)

	case KindFloat:
		return e.encodeFloat(buf, it.Float, it.ByRef)

	case KindList:
		inner := pool.Get()
		defer pool.Put(inner)

		if err := e.encodeSequence(inner, it.List); err != nil {
			return err
		}

		return appendHeader(buf, inner.Bytes(), format.ASCII, it.ByRef)

	default:
		return fmt.Errorf("%w: kind %d", errs.ErrUnsupportedValueKind, it.Kind)
	}
}

func (e *encoder) encodeString(buf *pool.Buffer, it Item) error {
	if it.Str == "" {
		if e.cfg.RetainEmptyString {
			return appendHeader(buf, nil, format.ASCII, it.ByRef)
		}

		return appendHeader(buf, []byte{0x00}, format.ASCII, it.ByRef)
	}

	payload, tag, err := encoding.EncodeStringLadder(it.Str, e.cfg.Locale, e.cfg.AllowUnicode)
	if err != nil {
		return err
	}

	if it.OREF {
		switch tag {
		case format.ASCII:
			tag = format.OREFAscii
		case format.Unicode:
			tag = format.OREFUnicode
		}
	}

	return appendHeader(buf, payload, tag, it.ByRef)
}

func (e *encoder) encodeInt(buf *pool.Buffer, it Item) error {
	v := it.Int
	if v.Cmp(maxInt64) > 0 || v.Cmp(minInt64) < 0 {
		return e.encodeString(buf, Item{Kind: KindString, Str: v.String(), ByRef: it.ByRef})
	}

	if v.Sign() >= 0 {
		payload, ok := encoding.EncodePosInt(v)
		if !ok {
			return fmt.Errorf("%w: %s exceeds POSINT capacity", errs.ErrRangeOverflow, v)
		}

		return appendHeader(buf, payload, format.PosInt, it.ByRef)
	}

	payload, ok := encoding.EncodeNegInt(v)
	if !ok {
		return fmt.Errorf("%w: %s exceeds NEGINT capacity", errs.ErrRangeOverflow, v)
	}

	return appendHeader(buf, payload, format.NegInt, it.ByRef)
}

func (e *encoder) encodeDecimal(buf *pool.Buffer, it Item) error {
	u, scale, overflow, err := encoding.Normalize(it.Dec.Unscaled, it.Dec.Scale)
	if err != nil {
		return err
	}

	if overflow {
		f, parseErr := decimalToFloat64(u, scale)
		if parseErr != nil {
			return fmt.Errorf("%w: %v", errs.ErrRangeOverflow, parseErr)
		}

		return e.encodeFloat(buf, f, it.ByRef)
	}

	scaleByte := encoding.WireScaleByte(scale)

	if u.Sign() >= 0 {
		mag, ok := encoding.EncodePosInt(u)
		if !ok {
			return fmt.Errorf("%w: normalized decimal magnitude %s still overflows", errs.ErrRangeOverflow, u)
		}

		return appendHeader(buf, append([]byte{scaleByte}, mag...), format.PosNum, it.ByRef)
	}

	mag, ok := encoding.EncodeNegInt(u)
	if !ok {
		return fmt.Errorf("%w: normalized decimal magnitude %s still overflows", errs.ErrRangeOverflow, u)
	}

	return appendHeader(buf, append([]byte{scaleByte}, mag...), format.NegNum, it.ByRef)
}

func (e *encoder) encodeFloat(buf *pool.Buffer, v float64, byRef bool) error {
	if !e.cfg.CompactDouble {
		return appendHeader(buf, encoding.EncodeDoubleFull(v), format.Double, byRef)
	}

	if v == 0 && !math.Signbit(v) {
		return appendHeader(buf, nil, format.Double, byRef)
	}

	if f32 := float32(v); float64(f32) == v {
		return appendHeader(buf, encoding.EncodeDoubleCompactFloat32(f32), format.Double, byRef)
	}

	return appendHeader(buf, encoding.EncodeCompactDouble(v), format.CompactDouble, byRef)
}

// appendHeader writes the length-and-type header for payload followed
// by payload itself, routing both through buf.Write so the buffer's
// amortized-doubling growth policy governs every allocation.
func appendHeader(buf *pool.Buffer, payload []byte, tag format.Tag, byRef bool) error {
	header, err := frame.AppendHeader(nil, len(payload), tag, byRef)
	if err != nil {
		return err
	}

	buf.Write(header)
	buf.Write(payload)

	return nil
}

// decimalToFloat64 converts unscaled*10^scale to the nearest float64,
// used for the Decimal-to-Float64 overflow fallback. It routes through
// strconv via scientific notation so the conversion is correctly
// rounded rather than built up from lossy big.Float arithmetic.
func decimalToFloat64(unscaled *big.Int, scale int) (float64, error) {
	return parseSciFloat(fmt.Sprintf("%se%d", unscaled.String(), scale))
}
