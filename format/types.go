// Package format defines the wire-level type tags used by the $LIST
// ($LB) container format: the byte that follows every item's length
// header and tells the decoder how to interpret the payload.
package format

// Tag identifies the wire type of an item's payload. It is carried as a
// single byte immediately after the length header.
//
// Tags in [32, 64) are "by-reference" variants of the base tag in
// [0, 32): the by-reference bit is bit 5 (value 32) of the wire byte,
// given below as ByRefBit. Package frame splits the two apart when it
// reads a header; Tag itself always holds the *base* (un-offset) value
// once decoded.
type Tag int8

const (
	// Undef marks an unassigned output-parameter slot. It has no
	// length header and no payload: the item is the single byte 0x01.
	Undef Tag = -1

	// Placeholder is the "null" scalar: tag 0 with an empty payload,
	// i.e. the two bytes 0x02 0x00.
	Placeholder Tag = 0

	// ASCII is an 8-bit byte string. Its payload may itself be a
	// nested $LIST, recognized on decode by speculative re-parse.
	ASCII Tag = 1

	// Unicode is a UTF-16LE encoded string.
	Unicode Tag = 2

	// PosInt is a little-endian unsigned magnitude, 0-8 bytes.
	PosInt Tag = 4

	// NegInt is a little-endian two's-complement remainder, 0-8 bytes.
	NegInt Tag = 5

	// PosNum is one signed scale byte followed by a PosInt payload.
	PosNum Tag = 6

	// NegNum is one signed scale byte followed by a NegInt payload.
	NegNum Tag = 7

	// Double is 1-8 bytes: a zero-left-padded IEEE-754 float32 when
	// the payload is shorter than 8 bytes, or a full IEEE-754 float64
	// when it is exactly 8 bytes.
	Double Tag = 8

	// CompactDouble is an IEEE-754 float64 with leading zero bytes
	// trimmed from the wire representation.
	CompactDouble Tag = 9

	// OREFAscii is an ASCII payload tagged as an object reference.
	OREFAscii Tag = 25

	// OREFUnicode is a Unicode payload tagged as an object reference.
	OREFUnicode Tag = 26
)

// ByRefBit is added to a base tag to mark an item as "by reference".
// Valid wire tag bytes after applying the bit fall in [32, 63].
const ByRefBit = 32

// IsValid reports whether t is one of the tags this codec understands.
func (t Tag) IsValid() bool {
	switch t {
	case Undef, Placeholder, ASCII, Unicode, PosInt, NegInt, PosNum, NegNum, Double, CompactDouble, OREFAscii, OREFUnicode:
		return true
	default:
		return false
	}
}

// IsOREF reports whether t denotes an object-reference payload.
func (t Tag) IsOREF() bool {
	return t == OREFAscii || t == OREFUnicode
}

func (t Tag) String() string {
	switch t {
	case Undef:
		return "UNDEF"
	case Placeholder:
		return "PLACEHOLDER"
	case ASCII:
		return "ASCII"
	case Unicode:
		return "UNICODE"
	case PosInt:
		return "POSINT"
	case NegInt:
		return "NEGINT"
	case PosNum:
		return "POSNUM"
	case NegNum:
		return "NEGNUM"
	case Double:
		return "DOUBLE"
	case CompactDouble:
		return "COMPACT_DOUBLE"
	case OREFAscii:
		return "OREF_ASCII"
	case OREFUnicode:
		return "OREF_UNICODE"
	default:
		return "UNKNOWN"
	}
}
