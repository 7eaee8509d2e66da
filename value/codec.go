// Package value implements the object-value codec (§4.2): a polymorphic
// typed-value reader keyed on a 16-byte magic header plus a 1-byte type
// tag, dispatching to the primitive or array readers.
package value

import (
	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/galaxyfmt/aadecode/errs"
	"github.com/galaxyfmt/aadecode/format"
	"github.com/galaxyfmt/aadecode/internal/audit"
)

// arrayTagOffset is added to a scalar tag to obtain its array variant's
// wire tag, mirroring format.DataType's Array()/Elem() offset.
const arrayTagOffset = 64

// knownScalarKinds are the tags §4.2's table assigns a payload
// encoding to, recognised but not necessarily implemented.
var knownScalarKinds = map[format.DataType]bool{
	format.DataTypeNone:            true,
	format.DataTypeBool:            true,
	format.DataTypeInt:             true,
	format.DataTypeFloat:           true,
	format.DataTypeDouble:          true,
	format.DataTypeString:          true,
	format.DataTypeTime:            true,
	format.DataTypeElapsedTime:     true,
	format.DataTypeReference:       true,
	format.DataTypeStatus:          true,
	format.DataTypeDataType:        true,
	format.DataTypeSecurityClass:   true,
	format.DataTypeDataQuality:     true,
	format.DataTypeQualifiedEnum:   true,
	format.DataTypeQualifiedStruct: true,
	format.DataTypeIntlString:      true,
	format.DataTypeBigString:       true,
}

// unsupportedKinds are recognised DataType values with no payload
// decoder (§7: NotImplemented, not UnknownDataType).
var unsupportedKinds = map[format.DataType]bool{
	format.DataTypeStatus:          true,
	format.DataTypeDataType:        true,
	format.DataTypeSecurityClass:   true,
	format.DataTypeDataQuality:     true,
	format.DataTypeQualifiedStruct: true,
	format.DataTypeBigString:       true,
}

// tagToKind maps a wire tag byte to its DataType, reporting false if
// the tag is outside the known set entirely (§7: UnknownDataType).
func tagToKind(tag byte) (format.DataType, bool) {
	t := int(tag)

	if t >= arrayTagOffset+int(format.DataTypeNone) && t <= arrayTagOffset+int(format.DataTypeBigString) {
		base := format.DataType(t - arrayTagOffset)
		if knownScalarKinds[base] {
			return base.Array(), true
		}

		return 0, false
	}

	dt := format.DataType(t)
	if knownScalarKinds[dt] {
		return dt, true
	}

	return 0, false
}

// Decode reads exactly one typed value from c: the 16-byte magic
// header (a mismatch is a non-fatal warning, not an error), the 1-byte
// type tag, and the tag-selected payload.
func Decode(c *cursor.Cursor, warnings *diag.Collector) (TypedValue, error) {
	startOffset := c.Offset()

	magicBytes, err := c.ReadBytes(len(Magic))
	if err != nil {
		return TypedValue{}, err
	}

	var rawMagic [16]byte
	copy(rawMagic[:], magicBytes)
	matched := rawMagic == Magic

	if !matched {
		warnings.Add(startOffset, "object-value magic mismatch: observed % x", magicBytes)
	}

	tagOffset := c.Offset()

	tagValue, err := c.ReadInt(1)
	if err != nil {
		return TypedValue{}, err
	}

	kind, ok := tagToKind(byte(tagValue))
	if !ok {
		return TypedValue{}, errs.DataType(tagOffset, byte(tagValue))
	}

	if unsupportedKinds[kind] {
		return TypedValue{}, errs.NotImplemented(tagOffset, kind.String())
	}

	payloadStart := c.Offset()

	tv, err := decodeBody(kind, c, warnings)
	if err != nil {
		return TypedValue{}, err
	}

	tv.Kind = kind
	tv.RawMagic = rawMagic
	tv.MagicMatched = matched
	tv.Digest = audit.Digest(c.Slice(payloadStart, c.Offset()))

	return tv, nil
}

// decodeBody decodes the payload for an already-resolved, supported
// kind. It is also used, element by element, by the array decoders.
func decodeBody(kind format.DataType, c *cursor.Cursor, warnings *diag.Collector) (TypedValue, error) {
	if kind.IsArray() {
		return decodeArrayBody(kind, c, warnings)
	}

	switch kind {
	case format.DataTypeNone:
		return TypedValue{}, nil

	case format.DataTypeBool:
		v, err := c.ReadInt(1)
		if err != nil {
			return TypedValue{}, err
		}

		return TypedValue{Bool: v != 0}, nil

	case format.DataTypeInt:
		v, err := c.ReadInt(4)
		if err != nil {
			return TypedValue{}, err
		}

		return TypedValue{Int: int32(v)}, nil

	case format.DataTypeFloat:
		v, err := c.ReadF32()
		if err != nil {
			return TypedValue{}, err
		}

		return TypedValue{Float: v}, nil

	case format.DataTypeDouble:
		v, err := c.ReadF64()
		if err != nil {
			return TypedValue{}, err
		}

		return TypedValue{Double: v}, nil

	case format.DataTypeString:
		return decodeStringBody(c)

	case format.DataTypeTime:
		v, err := c.ReadFileTimeVar()
		if err != nil {
			return TypedValue{}, err
		}

		return TypedValue{Time: v}, nil

	case format.DataTypeElapsedTime:
		v, err := c.ReadDurationTicks()
		if err != nil {
			return TypedValue{}, err
		}

		return TypedValue{Duration: v}, nil

	case format.DataTypeReference:
		return decodeReferenceBody(c)

	case format.DataTypeQualifiedEnum:
		return decodeQualifiedEnumBody(c)

	case format.DataTypeIntlString:
		return decodeIntlStringBody(c)

	default:
		// unsupportedKinds is checked by the caller before reaching
		// here; a new DataType added to knownScalarKinds without a
		// case above would land here.
		return TypedValue{}, errs.NotImplemented(c.Offset(), kind.String())
	}
}

func decodeStringBody(c *cursor.Cursor) (TypedValue, error) {
	sub, err := c.ReadSubBlob()
	if err != nil {
		return TypedValue{}, err
	}

	s, err := sub.ReadVarString(cursor.ByteCountPrefix)
	if err != nil {
		return TypedValue{}, err
	}

	return TypedValue{Str: s}, nil
}

func decodeReferenceBody(c *cursor.Cursor) (TypedValue, error) {
	sub, err := c.ReadSubBlob()
	if err != nil {
		return TypedValue{}, err
	}

	b, err := sub.ReadBytes(sub.Remaining())
	if err != nil {
		return TypedValue{}, err
	}

	return TypedValue{Bytes: b}, nil
}

func decodeQualifiedEnumBody(c *cursor.Cursor) (TypedValue, error) {
	sub, err := c.ReadSubBlob()
	if err != nil {
		return TypedValue{}, err
	}

	text, err := sub.ReadVarString(cursor.ByteCountPrefix)
	if err != nil {
		return TypedValue{}, err
	}

	ordinal, err := sub.ReadInt(2)
	if err != nil {
		return TypedValue{}, err
	}

	id1, err := sub.ReadInt(2)
	if err != nil {
		return TypedValue{}, err
	}

	id2, err := sub.ReadInt(2)
	if err != nil {
		return TypedValue{}, err
	}

	return TypedValue{Enum: QualifiedEnum{Text: text, Ordinal: uint16(ordinal), ID1: uint16(id1), ID2: uint16(id2)}}, nil
}

func decodeIntlStringBody(c *cursor.Cursor) (TypedValue, error) {
	sub, err := c.ReadSubBlob()
	if err != nil {
		return TypedValue{}, err
	}

	index, err := sub.ReadInt(4)
	if err != nil {
		return TypedValue{}, err
	}

	localeID, err := sub.ReadInt(4)
	if err != nil {
		return TypedValue{}, err
	}

	text, err := sub.ReadVarString(cursor.ByteCountPrefix)
	if err != nil {
		return TypedValue{}, err
	}

	return TypedValue{Intl: IntlString{Index: uint32(index), LocaleID: uint32(localeID), Text: text}}, nil
}
