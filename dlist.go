package dlist

import (
	"fmt"
	"strconv"
)

// DecodeOne decodes data as a single item rather than a sequence,
// returning an error if data does not hold exactly one complete item.
func DecodeOne(data []byte, opts ...Option) (Item, error) {
	list, err := Decode(data, opts...)
	if err != nil {
		return Item{}, err
	}

	if len(list) != 1 {
		return Item{}, fmt.Errorf("dlist: expected exactly one item, got %d", len(list))
	}

	return list[0], nil
}

// EncodeOne encodes a single item as its own $LIST buffer.
func EncodeOne(it Item, opts ...Option) ([]byte, error) {
	return Encode(List{it}, opts...)
}

// parseSciFloat parses a base-10 mantissa/exponent string (e.g.
// "12345e-3") into the nearest float64, the same representation
// strconv.ParseFloat accepts natively.
func parseSciFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
