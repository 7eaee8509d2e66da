// Package cursor implements the stream cursor and primitive readers for
// the AA object binary format: fixed-width little-endian integers and
// floats, fixed- and variable-length UTF-16LE strings, length-prefixed
// byte blobs, Windows FILETIME timestamps, 100-ns tick durations, and
// homogeneous fixed-stride arrays.
//
// A Cursor owns an immutable byte buffer and a monotonically
// non-decreasing read offset. Every reader advances the cursor exactly
// by the bytes it consumed; the only exception is LookaheadPattern,
// which compares bytes at the current offset without advancing.
package cursor

import (
	"time"

	"github.com/galaxyfmt/aadecode/errs"
	"github.com/galaxyfmt/aadecode/internal/wstring"
)

// filetimeEpochOffset is the number of 100-ns ticks between the
// Windows FILETIME epoch (1601-01-01 UTC) and the Unix epoch
// (1970-01-01 UTC).
const filetimeEpochOffset = 116444736000000000

// MaxLookahead bounds how far LookaheadPattern may inspect ahead of the
// current offset without advancing the cursor (§9: look-ahead is
// confined to a fixed window of at most 16 bytes).
const MaxLookahead = 16

// Cursor is an immutable byte buffer plus a mutable read offset. Its
// zero value is not usable; construct with New. A Cursor is not safe
// for concurrent use — one decode call owns one cursor.
type Cursor struct {
	buf    []byte
	offset int
}

// New wraps buf in a Cursor starting at offset 0. The Cursor does not
// copy buf; callers must not mutate buf while the Cursor is in use.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current read offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.offset
}

// take returns the next n bytes and advances the offset, or an
// ErrUnexpectedEOF OffsetError if fewer than n bytes remain.
func (c *Cursor) take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, errs.EOF(c.offset, n-c.Remaining())
	}

	b := c.buf[c.offset : c.offset+n]
	c.offset += n

	return b, nil
}

// SeekForward advances the cursor by n bytes, discarding their content.
func (c *Cursor) SeekForward(n int) error {
	_, err := c.take(n)
	return err
}

// ReadInt reads an unsigned little-endian integer of n bytes, where n
// is one of 1, 2, 4, or 8. n=16 does not fit a uint64 and returns an
// error without advancing; 128-bit values are read with ReadInt128.
func (c *Cursor) ReadInt(n int) (uint64, error) {
	if n == 16 {
		return 0, errWrongWidth
	}

	b, err := c.take(n)
	if err != nil {
		return 0, err
	}

	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v, nil
}

// ReadInt128 reads a 16-byte unsigned little-endian integer, returned
// as (low64, high64). It is used purely as an opaque section id.
func (c *Cursor) ReadInt128() (lo uint64, hi uint64, err error) {
	b, err := c.take(16)
	if err != nil {
		return 0, 0, err
	}

	for i := 7; i >= 0; i-- {
		lo = lo<<8 | uint64(b[i])
	}

	for i := 15; i >= 8; i-- {
		hi = hi<<8 | uint64(b[i])
	}

	return lo, hi, nil
}

// ReadBytes reads n raw bytes without interpretation. The returned
// slice aliases the cursor's buffer; callers that need to retain it
// beyond the decode call must copy it.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

// ReadF32 reads an IEEE-754 little-endian 32-bit float.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadInt(4)
	if err != nil {
		return 0, err
	}

	return uint32ToFloat32(uint32(v)), nil
}

// ReadF64 reads an IEEE-754 little-endian 64-bit float.
func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadInt(8)
	if err != nil {
		return 0, err
	}

	return uint64ToFloat64(v), nil
}

// ReadFixedString reads n bytes interpreted as UTF-16LE, with trailing
// U+0000 code units stripped. Invalid UTF-16 fails with
// ErrInvalidEncoding.
func (c *Cursor) ReadFixedString(n int) (string, error) {
	startOffset := c.offset

	b, err := c.take(n)
	if err != nil {
		return "", err
	}

	s, err := wstring.DecodeNullTrimmed(b)
	if err != nil {
		return "", errs.Encoding(startOffset, err.Error())
	}

	return s, nil
}

// VarStringConfig selects the count-prefix width and the unit
// multiplier for a variable-length string read. The two canonical
// settings are {PrefixBytes: 4, Mult: 1} (count is bytes) and
// {PrefixBytes: 2, Mult: 2} (count is UTF-16 code units).
type VarStringConfig struct {
	PrefixBytes int
	Mult        int
}

// ByteCountPrefix is the {4, 1} variable-string configuration: a
// 4-byte count of bytes.
var ByteCountPrefix = VarStringConfig{PrefixBytes: 4, Mult: 1}

// CharCountPrefix is the {2, 2} variable-string configuration: a
// 2-byte count of UTF-16 code units.
var CharCountPrefix = VarStringConfig{PrefixBytes: 2, Mult: 2}

// ReadVarString reads a cfg.PrefixBytes-byte little-endian count, then
// count*cfg.Mult bytes decoded as UTF-16LE, null-trimmed. A zero count
// yields an empty string.
func (c *Cursor) ReadVarString(cfg VarStringConfig) (string, error) {
	count, err := c.ReadInt(cfg.PrefixBytes)
	if err != nil {
		return "", err
	}

	n := int(count) * cfg.Mult
	if n == 0 {
		return "", nil
	}

	startOffset := c.offset

	b, err := c.take(n)
	if err != nil {
		return "", err
	}

	s, err := wstring.DecodeNullTrimmed(b)
	if err != nil {
		return "", errs.Encoding(startOffset, err.Error())
	}

	return s, nil
}

// ReadSubBlob reads a 4-byte byte-length, then carves out that many
// bytes as an independent sub-cursor. The outer cursor advances by
// 4+len regardless of how much of the sub-cursor the caller
// ultimately consumes.
func (c *Cursor) ReadSubBlob() (*Cursor, error) {
	length, err := c.ReadInt(4)
	if err != nil {
		return nil, err
	}

	b, err := c.take(int(length))
	if err != nil {
		return nil, err
	}

	return New(b), nil
}

// ReadFileTimeVar reads a 4-byte length (expected 8), then a 64-bit
// Windows FILETIME (100-ns ticks since 1601-01-01 UTC), returned as a
// UTC time.Time.
func (c *Cursor) ReadFileTimeVar() (time.Time, error) {
	if _, err := c.ReadInt(4); err != nil {
		return time.Time{}, err
	}

	ticks, err := c.ReadInt(8)
	if err != nil {
		return time.Time{}, err
	}

	return filetimeToUTC(ticks), nil
}

// ReadFileTimeFixed reads a raw 64-bit Windows FILETIME with no length
// prefix, as used for fixed-stride array-of-Time elements: each element
// is exactly the 8-byte tick count, unlike the scalar Time payload
// which is length-prefixed.
func (c *Cursor) ReadFileTimeFixed() (time.Time, error) {
	ticks, err := c.ReadInt(8)
	if err != nil {
		return time.Time{}, err
	}

	return filetimeToUTC(ticks), nil
}

// ReadDurationTicks reads an 8-byte 100-ns tick count and returns the
// corresponding duration.
func (c *Cursor) ReadDurationTicks() (time.Duration, error) {
	ticks, err := c.ReadInt(8)
	if err != nil {
		return 0, err
	}

	return time.Duration(ticks) * 100 * time.Nanosecond, nil
}

// ReadArray skips 4 bytes, reads a 2-byte element count and a 4-byte
// element stride, then returns that many stride-byte elements as raw
// slices. The caller decodes each element per its own datatype.
func (c *Cursor) ReadArray() ([][]byte, error) {
	if err := c.SeekForward(4); err != nil {
		return nil, err
	}

	count, err := c.ReadInt(2)
	if err != nil {
		return nil, err
	}

	stride, err := c.ReadInt(4)
	if err != nil {
		return nil, err
	}

	elems := make([][]byte, count)

	for i := range elems {
		b, err := c.take(int(stride))
		if err != nil {
			return nil, err
		}

		elems[i] = b
	}

	return elems, nil
}

// ReadEndMarker reads 8 bytes and reports whether they were all zero.
// A non-zero end marker is not fatal; the caller is expected to turn a
// false result into a Warning.
func (c *Cursor) ReadEndMarker() (allZero bool, err error) {
	b, err := c.take(8)
	if err != nil {
		return false, err
	}

	for _, v := range b {
		if v != 0 {
			return false, nil
		}
	}

	return true, nil
}

// LookaheadPattern compares pattern against bytes at the current
// offset without advancing the cursor. It reports false (never an
// error) if fewer bytes remain than len(pattern). pattern must not
// exceed MaxLookahead bytes.
func (c *Cursor) LookaheadPattern(pattern []byte) bool {
	if len(pattern) > MaxLookahead {
		return false
	}

	if c.Remaining() < len(pattern) {
		return false
	}

	for i, p := range pattern {
		if c.buf[c.offset+i] != p {
			return false
		}
	}

	return true
}

// Slice returns the raw bytes in [start, end) of the underlying
// buffer, regardless of the current offset. It is used for diagnostic
// purposes (e.g. computing a content digest over an already-consumed
// range) and never advances or rewinds the cursor.
func (c *Cursor) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}

	if end > len(c.buf) {
		end = len(c.buf)
	}

	if start >= end {
		return nil
	}

	return c.buf[start:end]
}

// LookaheadBytes returns up to n bytes at the current offset without
// advancing, for diagnostic reporting (e.g. the observed bytes in a
// magic-header mismatch warning). n is clamped to MaxLookahead and to
// the remaining buffer length.
func (c *Cursor) LookaheadBytes(n int) []byte {
	if n > MaxLookahead {
		n = MaxLookahead
	}

	if n > c.Remaining() {
		n = c.Remaining()
	}

	return c.buf[c.offset : c.offset+n]
}
