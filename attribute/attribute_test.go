package attribute

import (
	"testing"

	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/galaxyfmt/aadecode/format"
	"github.com/stretchr/testify/require"
)

func magicBytes() []byte {
	return []byte{0xB1, 0x55, 0xD9, 0x51, 0x86, 0xB0, 0xD2, 0x11, 0xBF, 0xB1, 0x00, 0x10, 0x4B, 0x5F, 0x96, 0xA7}
}

func utf16le(s string) []byte {
	b := make([]byte, 0, len(s)*2)
	for _, r := range s {
		b = append(b, byte(r), 0x00)
	}

	return b
}

func charCountStr(s string) []byte {
	data := utf16le(s)
	return append([]byte{byte(len(s)), 0}, data...)
}

func TestDecodeDescriptorRich(t *testing.T) {
	var b []byte
	b = append(b, 0, 0) // skip 2
	b = append(b, 0x05, 0x00) // id=5
	b = append(b, charCountStr("X")...)
	b = append(b, 0x02) // attr_type = Int
	b = append(b, 1, 0, 0, 0) // array=true
	b = append(b, byte(format.PermissionOperate), 0, 0, 0)
	b = append(b, byte(format.WriteabilityUserWriteable), 0, 0, 0)
	b = append(b, byte(format.LockedLocked), 0, 0, 0)
	b = append(b, 9, 0, 0, 0) // parent_gobjectid
	b = append(b, make([]byte, 8)...)
	b = append(b, charCountStr("P")...)
	b = append(b, 0, 0) // skip 2
	b = append(b, magicBytes()...)
	b = append(b, 0x02, 0x2A, 0x00, 0x00, 0x00) // Int 42

	c := cursor.New(b)
	var col diag.Collector

	attr, err := DecodeDescriptorRich(c, &col)
	require.NoError(t, err)
	require.Equal(t, uint16(5), attr.ID)
	require.Equal(t, "X", attr.Name)
	require.Equal(t, format.DataTypeInt, attr.Type)
	require.True(t, attr.Array)
	require.Equal(t, format.PermissionOperate, attr.Permission)
	require.Equal(t, format.WriteabilityUserWriteable, attr.Write)
	require.Equal(t, format.LockedLocked, attr.Locked)
	require.Equal(t, uint32(9), attr.ParentGObjectID)
	require.Equal(t, "P", attr.ParentName)
	require.Equal(t, format.SourceUserDefined, attr.Source)
	require.Equal(t, int32(42), attr.Value.Int)
	require.Equal(t, len(b), c.Offset())
}

func TestDecodeBuiltIn_WithDescriptorPrefix(t *testing.T) {
	var b []byte
	b = append(b, 0x07, 0x00) // id=7
	b = append(b, 0, 0)       // skip 2
	b = append(b, 0xFF, 0xFF, 0xFF, 0xFF) // skip 4 (name length marker)
	b = append(b, 0x01) // attr_type = Bool
	b = append(b, make([]byte, 11)...)
	b = append(b, magicBytes()...)
	b = append(b, 0x01, 0x01) // Bool true

	c := cursor.New(b)
	var col diag.Collector

	attr, err := DecodeBuiltIn(c, &col)
	require.NoError(t, err)
	require.Equal(t, uint16(7), attr.ID)
	require.Equal(t, format.DataTypeBool, attr.Type)
	require.Equal(t, format.SourceBuiltIn, attr.Source)
	require.True(t, attr.Value.Bool)
	require.Equal(t, len(b), c.Offset())
}

func TestDecodeBuiltIn_MagicImmediate(t *testing.T) {
	var b []byte
	b = append(b, 0x03, 0x00) // id=3
	b = append(b, 0, 0)       // skip 2
	b = append(b, magicBytes()...)
	b = append(b, 0x00) // None

	c := cursor.New(b)
	var col diag.Collector

	attr, err := DecodeBuiltIn(c, &col)
	require.NoError(t, err)
	require.Equal(t, uint16(3), attr.ID)
	require.Equal(t, format.DataTypeUndefined, attr.Type)
	require.Equal(t, format.PermissionUndefined, attr.Permission)
	require.Equal(t, len(b), c.Offset())
}
