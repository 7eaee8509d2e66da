package value

import (
	"time"

	"github.com/galaxyfmt/aadecode/format"
)

// QualifiedEnum is the payload of a tag-13 typed value: an enum text
// label, its ordinal, and two opaque 2-byte ids whose exact meaning is
// not documented (§9 Open Question 3) — named but not interpreted.
type QualifiedEnum struct {
	Text    string
	Ordinal uint16
	ID1     uint16
	ID2     uint16
}

// IntlString is the payload of a tag-15 typed value: a locale-indexed
// string. Only the present locale/string pair is surfaced (§1
// Non-goals: no multi-locale resolution).
type IntlString struct {
	Index    uint32
	LocaleID uint32
	Text     string
}

// TypedValue is the decoded result of the object-value codec (§4.2): a
// closed sum over format.DataType, with exactly one payload field
// populated according to Kind. Implemented as a flat struct rather
// than an interface hierarchy, per §9's explicit guidance against
// polymorphism-by-inheritance for this dispatch.
type TypedValue struct {
	Kind format.DataType

	// RawMagic is the 16-byte magic header as observed on the wire,
	// even when it did not match Magic (MagicMatched reports which).
	RawMagic [16]byte
	// MagicMatched is false when RawMagic differed from Magic; the
	// mismatch itself is recorded as a diag.Warning, not an error.
	MagicMatched bool
	// Digest is the xxHash64 of the raw payload bytes, for round-trip
	// audit (§3).
	Digest uint64

	Bool     bool
	Int      int32
	Float    float32
	Double   float64
	Str      string
	Time     time.Time
	Duration time.Duration
	// Bytes holds the opaque payload of a Reference value.
	Bytes []byte
	Enum  QualifiedEnum
	Intl  IntlString
	// Array holds the decoded elements when Kind.IsArray() is true.
	Array []TypedValue
}
