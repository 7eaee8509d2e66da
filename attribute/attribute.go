// Package attribute decodes the two attribute shapes that appear within
// an object's content sections (§4.4): a descriptor-rich shape used for
// user-defined attributes, and a terser built-in shape used for the
// object's inherited/built-in attributes.
package attribute

import (
	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/galaxyfmt/aadecode/format"
	"github.com/galaxyfmt/aadecode/value"
)

// Attribute is one decoded attribute, covering both the descriptor-rich
// and built-in shapes. Fields that a shape does not populate are left
// at their Undefined sentinel (§3).
type Attribute struct {
	ID              uint16
	Name            string
	Type            format.DataType
	Array           bool
	Permission      format.Permission
	Write           format.Writeability
	Locked          format.Locked
	ParentGObjectID uint32
	ParentName      string
	Source          format.Source
	// PrimitiveName qualifies an extension attribute as
	// "<section_name>_<extension_name>"; empty outside an extension.
	PrimitiveName string
	Value         value.TypedValue
}

// objectValueMagic mirrors value.Magic for the built-in shape's
// lookahead test, which must not advance the cursor.
var objectValueMagic = func() []byte {
	return value.Magic[:]
}()

// DecodeDescriptorRich decodes one attribute in the descriptor-rich
// shape (§4.4): skip 2, u16 id, name (var-str 2,2), 1-byte attr_type,
// 4-byte array flag, 4-byte permission, 4-byte writeability, 4-byte
// locked, 4-byte parent_gobjectid, skip 8, parent_name (var-str 2,2),
// skip 2, then one typed value.
func DecodeDescriptorRich(c *cursor.Cursor, warnings *diag.Collector) (Attribute, error) {
	if err := c.SeekForward(2); err != nil {
		return Attribute{}, err
	}

	id, err := c.ReadInt(2)
	if err != nil {
		return Attribute{}, err
	}

	name, err := c.ReadVarString(cursor.CharCountPrefix)
	if err != nil {
		return Attribute{}, err
	}

	attrType, err := c.ReadInt(1)
	if err != nil {
		return Attribute{}, err
	}

	arrayFlag, err := c.ReadInt(4)
	if err != nil {
		return Attribute{}, err
	}

	permission, err := c.ReadInt(4)
	if err != nil {
		return Attribute{}, err
	}

	write, err := c.ReadInt(4)
	if err != nil {
		return Attribute{}, err
	}

	locked, err := c.ReadInt(4)
	if err != nil {
		return Attribute{}, err
	}

	parentID, err := c.ReadInt(4)
	if err != nil {
		return Attribute{}, err
	}

	if err := c.SeekForward(8); err != nil {
		return Attribute{}, err
	}

	parentName, err := c.ReadVarString(cursor.CharCountPrefix)
	if err != nil {
		return Attribute{}, err
	}

	if err := c.SeekForward(2); err != nil {
		return Attribute{}, err
	}

	tv, err := value.Decode(c, warnings)
	if err != nil {
		return Attribute{}, err
	}

	return Attribute{
		ID:              uint16(id),
		Name:            name,
		Type:            format.DataType(attrType),
		Array:           arrayFlag != 0,
		Permission:      format.Permission(permission),
		Write:           format.Writeability(write),
		Locked:          format.Locked(locked),
		ParentGObjectID: uint32(parentID),
		ParentName:      parentName,
		Source:          format.SourceUserDefined,
		Value:           tv,
	}, nil
}

// DecodeBuiltIn decodes one attribute in the built-in shape (§4.4): u16
// id, skip 2. If the next 16 bytes are the object-value magic, the
// descriptor prefix is absent and every descriptor field takes its
// Undefined sentinel; otherwise skip 4, read 1-byte attr_type, skip 11.
// Either way, a typed value follows.
func DecodeBuiltIn(c *cursor.Cursor, warnings *diag.Collector) (Attribute, error) {
	id, err := c.ReadInt(2)
	if err != nil {
		return Attribute{}, err
	}

	if err := c.SeekForward(2); err != nil {
		return Attribute{}, err
	}

	attrType := format.DataTypeUndefined

	if !c.LookaheadPattern(objectValueMagic) {
		if err := c.SeekForward(4); err != nil {
			return Attribute{}, err
		}

		t, err := c.ReadInt(1)
		if err != nil {
			return Attribute{}, err
		}

		attrType = format.DataType(t)

		if err := c.SeekForward(11); err != nil {
			return Attribute{}, err
		}
	}

	tv, err := value.Decode(c, warnings)
	if err != nil {
		return Attribute{}, err
	}

	return Attribute{
		ID:              uint16(id),
		Type:            attrType,
		Permission:      format.PermissionUndefined,
		Write:           format.WriteabilityUndefined,
		Locked:          format.LockedUndefined,
		ParentGObjectID: 0,
		Source:          format.SourceBuiltIn,
		Value:           tv,
	}, nil
}
