package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grongierisc/dlist/format"
)

func TestTagIsValid(t *testing.T) {
	valid := []format.Tag{
		format.Undef, format.Placeholder, format.ASCII, format.Unicode,
		format.PosInt, format.NegInt, format.PosNum, format.NegNum,
		format.Double, format.CompactDouble, format.OREFAscii, format.OREFUnicode,
	}
	for _, tag := range valid {
		assert.True(t, tag.IsValid(), "%s should be valid", tag)
	}

	assert.False(t, format.Tag(3).IsValid())
	assert.False(t, format.Tag(10).IsValid())
	assert.False(t, format.Tag(99).IsValid())
}

func TestTagIsOREF(t *testing.T) {
	assert.True(t, format.OREFAscii.IsOREF())
	assert.True(t, format.OREFUnicode.IsOREF())
	assert.False(t, format.ASCII.IsOREF())
	assert.False(t, format.Unicode.IsOREF())
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "ASCII", format.ASCII.String())
	assert.Equal(t, "POSNUM", format.PosNum.String())
	assert.Equal(t, "UNKNOWN", format.Tag(77).String())
}
