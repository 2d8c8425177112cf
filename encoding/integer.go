// Package encoding implements the per-tag value codecs of the $LIST
// format: the POSINT/NEGINT magnitude encoding, the decimal scale
// normalization ladder, the DOUBLE/COMPACT_DOUBLE float packing, and
// the three-tier string encoding ladder.
//
// Every function here is a pure byte-in/byte-out (or value-in/byte-out)
// transform; none of them touch the framing header, which lives in
// package frame.
package encoding

import "math/big"

// EncodePosInt returns the minimal little-endian magnitude bytes (0-8
// bytes) for a non-negative value, per the POSINT rule: value 0 encodes
// to a zero-length payload, and otherwise the minimal L in [1,8] with
// value < 2^(8L) is used.
//
// EncodePosInt reports an error via the ok return if value does not fit
// in 8 bytes (i.e. value >= 2^64).
func EncodePosInt(value *big.Int) (payload []byte, ok bool) {
	if value.Sign() < 0 {
		return nil, false
	}
	if value.Sign() == 0 {
		return nil, true
	}

	for l := 1; l <= 8; l++ {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(8*l))
		if value.Cmp(limit) < 0 {
			return leToLen(value.Bytes(), l), true
		}
	}

	return nil, false
}

// EncodeNegInt returns the minimal little-endian two's-complement bytes
// (0-8 bytes) for a negative value, per the NEGINT rule: value -1
// encodes to a zero-length payload, and otherwise the minimal L in
// [1,8] with value >= -2^(8L) is used.
func EncodeNegInt(value *big.Int) (payload []byte, ok bool) {
	if value.Sign() >= 0 {
		return nil, false
	}
	if value.Cmp(big.NewInt(-1)) == 0 {
		return nil, true
	}

	for l := 1; l <= 8; l++ {
		limit := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(8*l)))
		if value.Cmp(limit) >= 0 {
			mod := new(big.Int).Lsh(big.NewInt(1), uint(8*l))
			twos := new(big.Int).Add(value, mod)

			return leToLen(twos.Bytes(), l), true
		}
	}

	return nil, false
}

// DecodePosInt interprets payload as a little-endian unsigned integer.
// A zero-length payload canonically decodes to 0.
func DecodePosInt(payload []byte) *big.Int {
	if len(payload) == 0 {
		return big.NewInt(0)
	}

	return new(big.Int).SetBytes(reverse(payload))
}

// DecodeNegInt interprets payload as a little-endian unsigned integer
// and subtracts 2^(8*len(payload)). A zero-length payload canonically
// decodes to -1.
func DecodeNegInt(payload []byte) *big.Int {
	if len(payload) == 0 {
		return big.NewInt(-1)
	}

	u := new(big.Int).SetBytes(reverse(payload))
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(payload)))

	return new(big.Int).Sub(u, mod)
}

// leToLen converts the big-endian minimal byte slice produced by
// big.Int.Bytes into a little-endian slice of exactly length l,
// zero-extending on the high end.
func leToLen(bigEndian []byte, l int) []byte {
	out := make([]byte, l)
	for i, b := range bigEndian {
		out[len(bigEndian)-1-i] = b
	}

	return out
}

// reverse returns a new slice with b's bytes in reverse order, used to
// flip between the wire's little-endian payloads and big.Int's
// big-endian byte representation.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}

	return out
}
