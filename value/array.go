package value

import (
	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/galaxyfmt/aadecode/errs"
	"github.com/galaxyfmt/aadecode/format"
)

// isBlobElem reports whether an array of elem uses the nested-blob
// layout (each element is itself length-prefixed) rather than a fixed
// byte stride.
func isBlobElem(elem format.DataType) bool {
	switch elem {
	case format.DataTypeString, format.DataTypeReference, format.DataTypeQualifiedEnum, format.DataTypeIntlString:
		return true
	default:
		return false
	}
}

// decodeArrayBody decodes an array-of-T typed value (a scalar tag plus 64),
// dispatching to the fixed-stride or nested-blob layout depending on
// the element kind.
func decodeArrayBody(kind format.DataType, c *cursor.Cursor, warnings *diag.Collector) (TypedValue, error) {
	elem := kind.Elem()

	if unsupportedKinds[elem] {
		return TypedValue{}, errs.NotImplemented(c.Offset(), kind.String())
	}

	if isBlobElem(elem) {
		return decodeBlobArray(elem, c, warnings)
	}

	return decodeFixedArray(elem, c, warnings)
}

// decodeFixedArray decodes a homogeneous array of fixed-width elements
// (Bool, Int, Float, Double, Time, ElapsedTime) using the generic
// cursor.ReadArray primitive: each element occupies exactly the
// element stride, and is then decoded per its own datatype.
func decodeFixedArray(elem format.DataType, c *cursor.Cursor, warnings *diag.Collector) (TypedValue, error) {
	raw, err := c.ReadArray()
	if err != nil {
		return TypedValue{}, err
	}

	elems := make([]TypedValue, len(raw))

	for i, b := range raw {
		sub := cursor.New(b)

		var tv TypedValue

		switch elem {
		// Time and ElapsedTime array elements carry no length prefix,
		// unlike their scalar counterparts: _seek_array_datetime hands
		// each raw element_length slice straight to
		// _filetime_to_datetime, so they must bypass the scalar
		// var-length decode path (decodeBody -> ReadFileTimeVar) that
		// expects one.
		case format.DataTypeTime:
			t, err := sub.ReadFileTimeFixed()
			if err != nil {
				return TypedValue{}, err
			}

			tv = TypedValue{Time: t}
		case format.DataTypeElapsedTime:
			d, err := sub.ReadDurationTicks()
			if err != nil {
				return TypedValue{}, err
			}

			tv = TypedValue{Duration: d}
		default:
			tv, err = decodeBody(elem, sub, warnings)
			if err != nil {
				return TypedValue{}, err
			}
		}

		tv.Kind = elem
		elems[i] = tv
	}

	return TypedValue{Array: elems}, nil
}

// decodeBlobArray decodes a homogeneous array of variable-length,
// blob-based elements (String, Reference, QualifiedEnum, IntlString).
// The header is skip(4), u16 count, skip(4) — unlike the fixed-stride
// array header, there is no stride field here: every element is
// self-describing via its own length prefix.
func decodeBlobArray(elem format.DataType, c *cursor.Cursor, warnings *diag.Collector) (TypedValue, error) {
	if err := c.SeekForward(4); err != nil {
		return TypedValue{}, err
	}

	count, err := c.ReadInt(2)
	if err != nil {
		return TypedValue{}, err
	}

	if err := c.SeekForward(4); err != nil {
		return TypedValue{}, err
	}

	elems := make([]TypedValue, count)

	for i := range elems {
		var (
			tv  TypedValue
			err error
		)

		if elem == format.DataTypeString {
			tv, err = decodeArrayStringElem(c)
		} else {
			tv, err = decodeBody(elem, c, warnings)
		}

		if err != nil {
			return TypedValue{}, err
		}

		tv.Kind = elem
		elems[i] = tv
	}

	return TypedValue{Array: elems}, nil
}

// decodeArrayStringElem decodes one element of an array-of-string
// value: an outer sub-blob carrying a 1-byte (unused) element-type tag
// followed by an inner sub-blob holding the var-str(4,1) text. This
// extra layer of nesting is specific to array-of-string and is not
// present in the scalar String payload (decodeStringBody).
func decodeArrayStringElem(c *cursor.Cursor) (TypedValue, error) {
	outer, err := c.ReadSubBlob()
	if err != nil {
		return TypedValue{}, err
	}

	if _, err := outer.ReadInt(1); err != nil { // element-type tag, unused
		return TypedValue{}, err
	}

	inner, err := outer.ReadSubBlob()
	if err != nil {
		return TypedValue{}, err
	}

	s, err := inner.ReadVarString(cursor.ByteCountPrefix)
	if err != nil {
		return TypedValue{}, err
	}

	return TypedValue{Str: s}, nil
}
