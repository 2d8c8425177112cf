// Package endian provides the byte-order engine used to read and write
// the multi-byte integer and float fields of the $LIST wire format.
//
// The $LIST format is little-endian on the wire with no autodetection
// (see the format specification's Non-goals) — this package exists so
// the rest of the codec never calls encoding/binary directly, keeping
// one seam for byte order the way the rest of this codebase does for
// every other cross-cutting concern.
//
// # Basic usage
//
//	import "github.com/grongierisc/dlist/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, value)
//
// # Thread safety
//
// EndianEngine values are immutable and stateless; they are safe for
// concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine mandated by the
// $LIST wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
