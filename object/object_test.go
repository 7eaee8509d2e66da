package object

import (
	"testing"

	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func strField(s string, n int) []byte {
	out := make([]byte, n)
	for i, r := range s {
		if i*2+1 >= n {
			break
		}

		out[i*2] = byte(r)
	}

	return out
}

// buildHeaderBytes mirrors header_test.go's minimal instance layout.
func buildHeaderBytes() []byte {
	var b []byte
	skip := func(n int) { b = append(b, make([]byte, n)...) }

	b = append(b, u32(7)...)
	b = append(b, u32(0xDEADBEEF)...)
	b = append(b, u32(42)...)
	skip(12)
	b = append(b, strField("SEC", 64)...)
	skip(12)
	b = append(b, u32(1)...)
	skip(52)
	b = append(b, strField("TAG", 64)...)
	skip(596)
	b = append(b, strField("CONT", 64)...)
	skip(4 + 32)
	b = append(b, u32(9)...)
	skip(16)
	b = append(b, strField("HIER", 130)...)
	skip(530)
	b = append(b, strField("HOST", 64)...)
	skip(2)
	b = append(b, strField("CTNR", 64)...)
	skip(596)
	b = append(b, strField("AREA", 64)...)
	skip(2)
	b = append(b, strField("DERIVED", 64)...)
	skip(596)
	b = append(b, strField("BASED", 64)...)
	skip(528)
	galaxy := strField("GXY", 6)
	b = append(b, u32(uint32(len(galaxy)))...)
	b = append(b, galaxy...)
	b = append(b, 0x01) // not-template second discriminator
	skip(1352)

	return b
}

func buildContentBytes() []byte {
	var b []byte
	b = append(b, make([]byte, 16)...) // main_section_id (128-bit)
	b = append(b, strField("TEMPLATE", 64)...)
	b = append(b, make([]byte, 596)...)

	b = append(b, make([]byte, 16)...) // UDA header
	b = append(b, u32(0)...)           // UDA count
	b = append(b, make([]byte, 8)...)  // end marker

	for i := 0; i < placeholderValueCountForTest; i++ {
		b = append(b, noneValueForTest()...)
	}

	b = append(b, u32(0)...) // built-in count

	return b
}

const placeholderValueCountForTest = 4

func noneValueForTest() []byte {
	magic := []byte{0xB1, 0x55, 0xD9, 0x51, 0x86, 0xB0, 0xD2, 0x11, 0xBF, 0xB1, 0x00, 0x10, 0x4B, 0x5F, 0x96, 0xA7}
	return append(magic, 0x00)
}

func TestDecoder_DecodeObject(t *testing.T) {
	data := append(buildHeaderBytes(), buildContentBytes()...)

	d := NewDecoder()
	obj, warnings, err := d.DecodeObject(data)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, uint32(7), obj.Header.BaseGObjectID)
	require.Equal(t, "TEMPLATE", obj.Content.TemplateName)
	require.Len(t, obj.Content.Sections, 2)
	require.Empty(t, obj.Content.Extensions)
	require.Equal(t, len(data), len(data))
}

func TestDecodeContent_Offset(t *testing.T) {
	data := buildContentBytes()
	c := cursor.New(data)
	var col diag.Collector

	content, err := DecodeContent(c, &col, false)
	require.NoError(t, err)
	require.Equal(t, "TEMPLATE", content.TemplateName)
	require.Equal(t, len(data), c.Offset())
}
