// Package section decodes the attribute sections and extension blocks
// that make up an object's content (§4.5): a UDA-shape section and a
// built-in-shape section, followed by zero or more recognised
// extensions.
package section

import (
	"github.com/galaxyfmt/aadecode/attribute"
	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/galaxyfmt/aadecode/errs"
	"github.com/galaxyfmt/aadecode/format"
	"github.com/galaxyfmt/aadecode/value"
)

// placeholderValueCount is the number of opaque typed values between
// the UDA-shape and built-in-shape sections of a section pair, consumed
// without interpretation (§4.5).
const placeholderValueCount = 4

// extensionNameFieldLen is the fixed UTF-16LE width of the section,
// extension, and parent name fields inside an extension header.
const extensionNameFieldLen = 64

// Section is one decoded attribute section: the UDA-shape carries a raw
// 16-byte header, the built-in-shape leaves Header nil.
type Section struct {
	Header     []byte
	Count      uint32
	Attributes []attribute.Attribute
}

// Extension is one decoded extension block (§4.5).
type Extension struct {
	Type          format.ExtensionType
	SectionName   string
	ExtensionName string
	ParentName    string
	Attributes    []attribute.Attribute
	Messages      []value.TypedValue
}

// decodeUDASection reads a UDA-shape section: a 16-byte header, a
// 4-byte count, that many descriptor-rich attributes, and an
// end-marker.
func decodeUDASection(c *cursor.Cursor, warnings *diag.Collector) (Section, error) {
	header, err := c.ReadBytes(16)
	if err != nil {
		return Section{}, err
	}

	count, err := c.ReadInt(4)
	if err != nil {
		return Section{}, err
	}

	attrs := make([]attribute.Attribute, 0, count)

	for i := uint64(0); i < count; i++ {
		attr, err := attribute.DecodeDescriptorRich(c, warnings)
		if err != nil {
			return Section{}, err
		}

		attrs = append(attrs, attr)
	}

	allZero, err := c.ReadEndMarker()
	if err != nil {
		return Section{}, err
	}

	if !allZero {
		warnings.Add(c.Offset()-8, "UDA section end marker was not all-zero")
	}

	return Section{Header: header, Count: uint32(count), Attributes: attrs}, nil
}

// decodeBuiltInSection reads a built-in-shape section: no header, a
// 4-byte count, that many built-in-shape attributes.
func decodeBuiltInSection(c *cursor.Cursor, warnings *diag.Collector) (Section, error) {
	count, err := c.ReadInt(4)
	if err != nil {
		return Section{}, err
	}

	attrs := make([]attribute.Attribute, 0, count)

	for i := uint64(0); i < count; i++ {
		attr, err := attribute.DecodeBuiltIn(c, warnings)
		if err != nil {
			return Section{}, err
		}

		attrs = append(attrs, attr)
	}

	return Section{Count: uint32(count), Attributes: attrs}, nil
}

// skipPlaceholders consumes the fixed run of opaque typed values
// between a UDA-shape and a built-in-shape section.
func skipPlaceholders(c *cursor.Cursor, warnings *diag.Collector) error {
	for i := 0; i < placeholderValueCount; i++ {
		if _, err := value.Decode(c, warnings); err != nil {
			return err
		}
	}

	return nil
}

// DecodeSectionPair reads the main content's UDA-shape/built-in-shape
// section pair. Extensions use their own layout (DecodeExtension).
func DecodeSectionPair(c *cursor.Cursor, warnings *diag.Collector) (uda Section, builtin Section, err error) {
	uda, err = decodeUDASection(c, warnings)
	if err != nil {
		return Section{}, Section{}, err
	}

	if err := skipPlaceholders(c, warnings); err != nil {
		return Section{}, Section{}, err
	}

	builtin, err = decodeBuiltInSection(c, warnings)
	if err != nil {
		return Section{}, Section{}, err
	}

	return uda, builtin, nil
}

// qualifyAttributes rewrites each attribute's Name as
// "<section_name>.<attr_name>" and sets PrimitiveName to
// "<section_name>_<extension_name>" (§4.5), each only when both
// operands are non-empty.
func qualifyAttributes(attrs []attribute.Attribute, sectionName, extensionName string) {
	for i := range attrs {
		if sectionName != "" && attrs[i].Name != "" {
			attrs[i].Name = sectionName + "." + attrs[i].Name
		}

		if sectionName != "" && extensionName != "" {
			attrs[i].PrimitiveName = sectionName + "_" + extensionName
		}
	}
}

// DecodeExtension reads one extension block (§4.5): a section-type
// code (already peeked by the caller), section/extension/parent names,
// a descriptor-rich attribute run terminated by an end-marker, a
// message queue of typed values, and a trailing built-in attribute run.
func DecodeExtension(c *cursor.Cursor, warnings *diag.Collector) (Extension, error) {
	// Pads following the section, extension, and parent name fields.
	const (
		skipAfterSectionName   = 596 + 20
		skipAfterExtensionName = 596 + 20
		skipAfterParentName    = 596 + 16
	)

	typeOffset := c.Offset()

	code, err := c.ReadInt(4)
	if err != nil {
		return Extension{}, err
	}

	extType, ok := format.KnownExtensionType(uint32(code))
	if !ok {
		return Extension{}, errs.Extension(typeOffset, uint32(code))
	}

	sectionName, err := c.ReadFixedString(extensionNameFieldLen)
	if err != nil {
		return Extension{}, err
	}

	if err := c.SeekForward(skipAfterSectionName); err != nil {
		return Extension{}, err
	}

	extensionName, err := c.ReadFixedString(extensionNameFieldLen)
	if err != nil {
		return Extension{}, err
	}

	if err := c.SeekForward(skipAfterExtensionName); err != nil {
		return Extension{}, err
	}

	parentName, err := c.ReadFixedString(extensionNameFieldLen)
	if err != nil {
		return Extension{}, err
	}

	if err := c.SeekForward(skipAfterParentName); err != nil {
		return Extension{}, err
	}

	count, err := c.ReadInt(4)
	if err != nil {
		return Extension{}, err
	}

	attrs := make([]attribute.Attribute, 0, count)

	for i := uint64(0); i < count; i++ {
		attr, err := attribute.DecodeDescriptorRich(c, warnings)
		if err != nil {
			return Extension{}, err
		}

		attrs = append(attrs, attr)
	}

	allZero, err := c.ReadEndMarker()
	if err != nil {
		return Extension{}, err
	}

	if !allZero {
		warnings.Add(c.Offset()-8, "extension attribute end marker was not all-zero")
	}

	var messages []value.TypedValue

	for c.LookaheadPattern(value.Magic[:]) {
		tv, err := value.Decode(c, warnings)
		if err != nil {
			return Extension{}, err
		}

		messages = append(messages, tv)
	}

	builtinCount, err := c.ReadInt(4)
	if err != nil {
		return Extension{}, err
	}

	for i := uint64(0); i < builtinCount; i++ {
		attr, err := attribute.DecodeBuiltIn(c, warnings)
		if err != nil {
			return Extension{}, err
		}

		attrs = append(attrs, attr)
	}

	qualifyAttributes(attrs, sectionName, extensionName)

	return Extension{
		Type:          extType,
		SectionName:   sectionName,
		ExtensionName: extensionName,
		ParentName:    parentName,
		Attributes:    attrs,
		Messages:      messages,
	}, nil
}

// extensionCodeLen is the width of the section-type lookahead that
// decides whether another extension follows.
const extensionCodeLen = 4

// DecodeExtensions reads extensions until the next 4 bytes are not a
// recognised extension-type code (§4.5's `{Extension}*` loop). When
// strict is true, a present-but-unrecognised code is a fatal
// ErrUnknownExtension instead of the signal to stop the loop.
func DecodeExtensions(c *cursor.Cursor, warnings *diag.Collector, strict bool) ([]Extension, error) {
	var extensions []Extension

	for {
		peek := c.LookaheadBytes(extensionCodeLen)
		if len(peek) < extensionCodeLen {
			break
		}

		code := uint32(peek[0]) | uint32(peek[1])<<8 | uint32(peek[2])<<16 | uint32(peek[3])<<24
		if _, ok := format.KnownExtensionType(code); !ok {
			if strict && code != 0 {
				return nil, errs.Extension(c.Offset(), code)
			}

			break
		}

		ext, err := DecodeExtension(c, warnings)
		if err != nil {
			return nil, err
		}

		extensions = append(extensions, ext)
	}

	return extensions, nil
}
