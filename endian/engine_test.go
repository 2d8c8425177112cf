package endian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grongierisc/dlist/endian"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	require.Implements(t, (*endian.EndianEngine)(nil), engine)

	bytes := make([]byte, 2)
	engine.PutUint16(bytes, 0x0102)
	require.Equal(t, byte(0x02), bytes[0], "little endian puts the LSB first")
	require.Equal(t, byte(0x01), bytes[1], "little endian puts the MSB second")
	require.Equal(t, uint16(0x0102), engine.Uint16(bytes))
}

func TestLittleEndianEngineAppend(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	var dst []byte
	dst = engine.AppendUint32(dst, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, dst)
}
