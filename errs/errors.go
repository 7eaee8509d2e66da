// Package errs defines the sentinel errors and offset-carrying error type
// shared by every decoder layer in aadecode.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every OffsetError produced by the decoder wraps exactly
// one of these, so callers can test with errors.Is regardless of which
// layer raised it.
var (
	// ErrUnexpectedEOF is returned when the cursor is exhausted mid-read.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")
	// ErrInvalidEncoding is returned when bytes do not decode as the
	// declared primitive (notably ill-formed UTF-16).
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrUnknownDataType is returned for an object-value tag outside the
	// known set.
	ErrUnknownDataType = errors.New("unknown object-value data type")
	// ErrUnknownExtension is returned for a section-type code at an
	// extension boundary that is not an enumerated value.
	ErrUnknownExtension = errors.New("unknown extension section type")
	// ErrNotImplemented is returned for a recognised but unsupported
	// payload kind (BigString, and any uninhabited variant).
	ErrNotImplemented = errors.New("recognised but unsupported payload")
)

// OffsetError is a fatal decode error anchored to the cursor offset at
// which it originated. It wraps one of the sentinels above.
type OffsetError struct {
	Offset int
	Needed int // non-zero only for ErrUnexpectedEOF
	Err    error
}

func (e *OffsetError) Error() string {
	if e.Needed > 0 {
		return fmt.Sprintf("%v at offset %d: needed %d more byte(s)", e.Err, e.Offset, e.Needed)
	}

	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}

// EOF builds an OffsetError wrapping ErrUnexpectedEOF.
func EOF(offset, needed int) error {
	return &OffsetError{Offset: offset, Needed: needed, Err: ErrUnexpectedEOF}
}

// Encoding builds an OffsetError wrapping ErrInvalidEncoding.
func Encoding(offset int, kind string) error {
	return &OffsetError{Offset: offset, Err: fmt.Errorf("%w: %s", ErrInvalidEncoding, kind)}
}

// DataType builds an OffsetError wrapping ErrUnknownDataType.
func DataType(offset int, tag byte) error {
	return &OffsetError{Offset: offset, Err: fmt.Errorf("%w: tag %d", ErrUnknownDataType, tag)}
}

// Extension builds an OffsetError wrapping ErrUnknownExtension.
func Extension(offset int, code uint32) error {
	return &OffsetError{Offset: offset, Err: fmt.Errorf("%w: code %d", ErrUnknownExtension, code)}
}

// NotImplemented builds an OffsetError wrapping ErrNotImplemented.
func NotImplemented(offset int, kind string) error {
	return &OffsetError{Offset: offset, Err: fmt.Errorf("%w: %s", ErrNotImplemented, kind)}
}
