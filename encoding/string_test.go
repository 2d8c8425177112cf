package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grongierisc/dlist/encoding"
	"github.com/grongierisc/dlist/format"
)

func TestEncodeStringLadderLatin1(t *testing.T) {
	payload, tag, err := encoding.EncodeStringLadder("hello", encoding.DefaultLocale, true)
	require.NoError(t, err)
	assert.Equal(t, format.ASCII, tag)
	assert.Equal(t, []byte("hello"), payload)
}

func TestEncodeStringLadderEscalatesToUnicode(t *testing.T) {
	payload, tag, err := encoding.EncodeStringLadder("héllo中", encoding.DefaultLocale, true)
	require.NoError(t, err)
	assert.Equal(t, format.Unicode, tag)

	got, err := encoding.DecodeUTF16LE(payload)
	require.NoError(t, err)
	assert.Equal(t, "héllo中", got)
}

func TestEncodeStringLadderFallsBackToLocaleWhenUnicodeDisabled(t *testing.T) {
	// "€" is outside Latin-1, so the Latin-1 tier is skipped.
	payload, tag, err := encoding.EncodeStringLadder("café €", "windows-1252", false)
	require.NoError(t, err)
	assert.Equal(t, format.ASCII, tag)

	got, ok := encoding.DecodeASCIIText(payload, "windows-1252")
	require.True(t, ok)
	assert.Equal(t, "café €", got)
}

func TestEncodeStringLadderUnencodableUnderLocale(t *testing.T) {
	_, _, err := encoding.EncodeStringLadder("中", "windows-1252", false)
	require.Error(t, err)
}

func TestDecodeASCIITextDefaultLocaleNeverFails(t *testing.T) {
	for b := 0; b < 256; b++ {
		_, ok := encoding.DecodeASCIIText([]byte{byte(b)}, encoding.DefaultLocale)
		assert.True(t, ok, "byte 0x%02x", b)
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	_, err := encoding.DecodeUTF16LE([]byte{0x01})
	require.Error(t, err)
}
