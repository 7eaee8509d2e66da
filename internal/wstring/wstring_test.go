package wstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	b := []byte{0x41, 0x00, 0x42, 0x00, 0x43, 0x00, 0x44, 0x00}
	s, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, "ABCD", s)
}

func TestDecode_OddLength(t *testing.T) {
	_, err := Decode([]byte{0x41, 0x00, 0x42})
	require.Error(t, err)
}

func TestDecodeNullTrimmed(t *testing.T) {
	b := make([]byte, 64)
	copy(b, []byte{'A', 0, 'r', 0, 'e', 0, 'a', 0, '1', 0})

	s, err := DecodeNullTrimmed(b)
	require.NoError(t, err)
	require.Equal(t, "Area1", s)
	require.Len(t, s, 5)
}

func TestDecodeNullTrimmed_NoTrailingNull(t *testing.T) {
	b := []byte{0x41, 0x00, 0x42, 0x00}
	s, err := DecodeNullTrimmed(b)
	require.NoError(t, err)
	require.Equal(t, "AB", s)
}
