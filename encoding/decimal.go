package encoding

import (
	"math/big"

	"github.com/grongierisc/dlist/errs"
)

// Decimal is an arbitrary-precision fixed-point value: Unscaled * 10^Scale.
// Scale is the true power-of-ten exponent (not the "digits after the
// point" convention some decimal libraries use), so a Scale of -2 means
// divide by 100.
type Decimal struct {
	Unscaled *big.Int
	Scale    int
}

// overflowThreshold is the magic constant used by the bit-length
// reduction ladder: after rounding to 18 significant digits, a value
// still under this threshold has room for one more digit without
// crossing the 63-bit boundary.
var overflowThreshold = big.NewInt(922337203685477581)

// Normalize reduces (unscaled, scale) to a representation whose
// magnitude fits the POSINT/NEGINT 8-byte wire limit and whose scale
// fits the one-byte wire scale field, following the rounding ladder:
// round to 19 significant digits, then 18, then (if there's room)
// recover one digit by shifting left by a power of ten; finally clamp
// the scale into its representable range, rounding the magnitude to
// compensate.
//
// overflow is true when the magnitude still does not fit after the full
// ladder — callers should fall back to encoding the value as a Float64
// in that case. err is non-nil only for the harder failure where even
// the 18-digit rounding leaves the magnitude over 63 bits with no room
// to recover a digit.
func Normalize(unscaled *big.Int, scale int) (u *big.Int, newScale int, overflow bool, err error) {
	u = new(big.Int).Set(unscaled)
	newScale = scale

	if u.BitLen() > 63 {
		u, newScale = roundToDigits(u, newScale, 19)

		if u.BitLen() > 63 {
			u, newScale = roundToDigits(u, newScale, 18)

			if new(big.Int).Abs(u).Cmp(overflowThreshold) < 0 {
				u = new(big.Int).Mul(u, big.NewInt(10))
				newScale--
			}

			if u.BitLen() > 63 {
				return nil, 0, false, errs.ErrRangeOverflow
			}
		}
	}

	u, newScale = normalizeScaleRange(u, newScale)
	if u.BitLen() > 63 {
		return u, newScale, true, nil
	}

	return u, newScale, false, nil
}

// normalizeScaleRange clamps scale into [-127, 128], the range the
// one-byte wire scale field can represent, adjusting the magnitude to
// compensate: shrinking a too-large scale is exact (multiply), growing
// a too-small scale requires half-up rounding (divide).
func normalizeScaleRange(u *big.Int, scale int) (*big.Int, int) {
	switch {
	case scale > 128:
		k := scale - 128
		u = new(big.Int).Mul(u, pow10(k))
		scale = 128

	case scale < -127:
		k := -127 - scale
		u = roundHalfUpDiv(u, pow10(k))
		scale = -127
	}

	if u.Sign() == 0 {
		scale = 0
	}

	return u, scale
}

// roundToDigits rounds |u| to at most n significant decimal digits,
// half-up, adjusting scale to compensate for the digits dropped.
func roundToDigits(u *big.Int, scale, n int) (*big.Int, int) {
	digits := numDigits(u)
	if digits <= n {
		return u, scale
	}

	drop := digits - n

	return roundHalfUpDiv(u, pow10(drop)), scale + drop
}

// numDigits returns the number of decimal digits in |u|, treating zero
// as one digit.
func numDigits(u *big.Int) int {
	if u.Sign() == 0 {
		return 1
	}

	return len(new(big.Int).Abs(u).String())
}

// pow10 returns 10^n as a big.Int.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// roundHalfUpDiv divides u by div, rounding the quotient half away from
// zero.
func roundHalfUpDiv(u, div *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(u, div, r)

	twiceAbsR := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	if twiceAbsR.Cmp(div) >= 0 {
		if u.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}

	return q
}

// WireScaleByte converts a normalized scale into the one-byte wire
// representation (the two's-complement byte whose signed value is
// -scale).
func WireScaleByte(scale int) byte {
	v := -scale
	v = ((v % 256) + 256) % 256

	return byte(v)
}

// DecodeScale recovers the host scale from a wire scale byte.
func DecodeScale(b byte) int {
	raw := int(b)
	if raw > 127 {
		raw -= 256
	}

	return -raw
}
