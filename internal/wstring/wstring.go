// Package wstring decodes the little-endian UTF-16 byte strings used
// throughout the AA object format, the way laenix-ewfgo decodes EWF
// header fields: via golang.org/x/text/encoding/unicode rather than a
// hand-rolled UTF-16 code-unit loop.
package wstring

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errOddLength = errors.New("odd byte length for UTF-16 string")

// Decode converts raw little-endian UTF-16 bytes to a UTF-8 string. It
// fails if b has an odd length or contains an unpaired surrogate.
//
// A fresh decoder is constructed per call: transform.Bytes drives it
// statefully, and a shared package-level decoder would race across
// concurrent calls.
func Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errOddLength
	}

	// The x/text decoder replaces unpaired surrogates with U+FFFD rather
	// than failing, so they are rejected here first.
	for i := 0; i < len(b); i += 2 {
		switch b[i+1] & 0xFC {
		case 0xDC:
			return "", errors.New("unpaired UTF-16 low surrogate")
		case 0xD8:
			if i+3 >= len(b) || b[i+3]&0xFC != 0xDC {
				return "", errors.New("unpaired UTF-16 high surrogate")
			}

			i += 2
		}
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

	out, _, err := transform.Bytes(decoder, b)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// DecodeNullTrimmed decodes b as UTF-16LE and strips trailing U+0000
// code units, the convention used by every fixed-width string field in
// the AA object header.
func DecodeNullTrimmed(b []byte) (string, error) {
	s, err := Decode(b)
	if err != nil {
		return "", err
	}

	end := len(s)
	for end > 0 && s[end-1] == 0 {
		end--
	}

	return s[:end], nil
}
