// Package dlist decodes and encodes the $LIST ($LB) binary container
// format used by InterSystems IRIS and Caché: a self-delimiting,
// length-prefixed sequence of heterogeneous scalar and nested-list
// items.
package dlist

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/grongierisc/dlist/encoding"
)

// Kind identifies the dynamic type carried by an Item.
type Kind uint8

const (
	// KindUndef marks an unassigned slot: the one-byte UNDEF item.
	KindUndef Kind = iota

	// KindNull marks the PLACEHOLDER scalar, distinct from an empty
	// string: it encodes as tag 0 with an empty payload (02 00), while
	// the ASCII null form 02 01 decodes as an empty KindString.
	KindNull

	// KindBytes holds a string payload that could not be decoded under
	// the configured locale; the raw bytes are preserved verbatim.
	KindBytes

	// KindString holds decoded text.
	KindString

	// KindInt holds an arbitrary-precision signed integer.
	KindInt

	// KindDecimal holds a fixed-point decimal value.
	KindDecimal

	// KindFloat holds an IEEE-754 double.
	KindFloat

	// KindList holds a nested sequence.
	KindList
)

// Decimal is an arbitrary-precision fixed-point value, re-exported from
// package encoding so callers don't need to import it directly.
type Decimal = encoding.Decimal

// Item is one element of a List: a tagged union over the kinds a $LIST
// slot can hold, plus two orthogonal wire modifiers: the by-reference
// bit, and the object-reference tag, which the encoder applies to
// string items only.
type Item struct {
	Kind Kind

	// ByRef marks the item as carrying IRIS's by-reference wire bit.
	ByRef bool

	// OREF marks a string item as an object reference (OREF_ASCII /
	// OREF_UNICODE on the wire) rather than plain text.
	OREF bool

	Str   string
	Bytes []byte
	Int   *big.Int
	Dec   Decimal
	Float float64
	List  List
}

// Undef returns the item for an unassigned slot.
func Undef() Item { return Item{Kind: KindUndef} }

// Null returns the PLACEHOLDER null scalar.
func Null() Item { return Item{Kind: KindNull} }

// NewString returns a plain text item.
func NewString(s string) Item { return Item{Kind: KindString, Str: s} }

// NewBytes returns a raw byte-string item, for payloads that didn't
// decode cleanly as text.
func NewBytes(b []byte) Item { return Item{Kind: KindBytes, Bytes: b} }

// NewInt returns an integer item from an int64.
func NewInt(v int64) Item { return Item{Kind: KindInt, Int: big.NewInt(v)} }

// NewBigInt returns an integer item from an arbitrary-precision value.
func NewBigInt(v *big.Int) Item { return Item{Kind: KindInt, Int: v} }

// NewFloat returns a double item.
func NewFloat(v float64) Item { return Item{Kind: KindFloat, Float: v} }

// NewDecimal returns a fixed-point item: unscaled * 10^scale.
func NewDecimal(unscaled *big.Int, scale int) Item {
	return Item{Kind: KindDecimal, Dec: Decimal{Unscaled: unscaled, Scale: scale}}
}

// NewList returns a nested-list item wrapping items.
func NewList(items ...Item) Item { return Item{Kind: KindList, List: List(items)} }

// List is an ordered, heterogeneous sequence of Items: the decoded form
// of a $LIST buffer, or the input to Encode.
type List []Item

// Len returns the number of items in the list.
func (l List) Len() int { return len(l) }

// At returns the item at index i.
func (l List) At(i int) Item { return l[i] }

// Equal reports whether l and other hold the same items in the same
// order. Decimal comparisons are by scaled value, not by identical
// (unscaled, scale) pairs.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}

	for i := range l {
		if !l[i].equal(other[i]) {
			return false
		}
	}

	return true
}

func (it Item) equal(other Item) bool {
	if it.Kind != other.Kind || it.ByRef != other.ByRef || it.OREF != other.OREF {
		return false
	}

	switch it.Kind {
	case KindUndef, KindNull:
		return true
	case KindString:
		return it.Str == other.Str
	case KindBytes:
		return string(it.Bytes) == string(other.Bytes)
	case KindInt:
		return it.Int.Cmp(other.Int) == 0
	case KindDecimal:
		return decimalEqual(it.Dec, other.Dec)
	case KindFloat:
		return it.Float == other.Float
	case KindList:
		return it.List.Equal(other.List)
	default:
		return false
	}
}

func decimalEqual(a, b Decimal) bool {
	if a.Scale == b.Scale {
		return a.Unscaled.Cmp(b.Unscaled) == 0
	}

	// Cross-multiply to compare unscaled*10^scale without floating point.
	lo, hi := a, b
	if lo.Scale > hi.Scale {
		lo, hi = hi, lo
	}

	shift := hi.Scale - lo.Scale
	scaled := new(big.Int).Mul(hi.Unscaled, pow10(shift))

	return lo.Unscaled.Cmp(scaled) == 0
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// String renders the list in the $lb(...) pretty-printed form: string
// items double-quoted, nested lists rendered recursively.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, it := range l {
		parts[i] = it.String()
	}

	return "$lb(" + strings.Join(parts, ",") + ")"
}

// String renders a single item the way it appears inside a $lb(...) call.
func (it Item) String() string {
	switch it.Kind {
	case KindUndef, KindNull:
		return `""`
	case KindString:
		return `"` + it.Str + `"`
	case KindBytes:
		return `"` + string(it.Bytes) + `"`
	case KindInt:
		return it.Int.String()
	case KindDecimal:
		return decimalString(it.Dec.Unscaled, it.Dec.Scale)
	case KindFloat:
		return strconv.FormatFloat(it.Float, 'g', -1, 64)
	case KindList:
		return it.List.String()
	default:
		return ""
	}
}

// decimalString renders unscaled*10^scale in ordinary decimal notation.
func decimalString(unscaled *big.Int, scale int) string {
	neg := unscaled.Sign() < 0
	digits := new(big.Int).Abs(unscaled).String()

	var s string

	switch {
	case scale >= 0:
		s = digits + strings.Repeat("0", scale)
	default:
		point := len(digits) + scale
		if point <= 0 {
			s = "0." + strings.Repeat("0", -point) + digits
		} else {
			s = digits[:point] + "." + digits[point:]
		}
	}

	if neg {
		s = "-" + s
	}

	return s
}

// GoString gives Items a useful %#v representation for debugging and
// test failure output.
func (it Item) GoString() string {
	return fmt.Sprintf("dlist.Item{Kind:%d, %s}", it.Kind, it.String())
}
