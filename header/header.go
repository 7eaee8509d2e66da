// Package header decodes the AA object header (§4.3): a fixed sequence
// of identifiers, pad regions, and fixed-width UTF-16LE name fields
// that precedes an object's attribute content.
package header

import (
	"github.com/galaxyfmt/aadecode/cursor"
)

// templateZeroRun is the 4-byte all-zero lookahead that distinguishes a
// template from an instance immediately after base_gobjectid.
var templateZeroRun = []byte{0x00, 0x00, 0x00, 0x00}

// Header is the decoded object header (§3).
type Header struct {
	BaseGObjectID   uint32
	IsTemplate      bool
	ThisGObjectID   uint32
	SecurityGroup   string
	ParentGObjectID uint32
	Tagname         string
	ContainedName   string
	ConfigVersion   uint32
	HierarchalName  string
	HostName        string
	ContainerName   string
	AreaName        string
	DerivedFrom     string
	BasedOn         string
	GalaxyName      string
}

// Decode reads one Header from c. The second template discriminator
// (a 1-byte flag selecting a 1353- or 1352-byte tail pad) has no
// externally documented meaning beyond the padding it selects; it is
// consumed but not surfaced on Header.
func Decode(c *cursor.Cursor) (Header, error) {
	var h Header

	baseID, err := c.ReadInt(4)
	if err != nil {
		return Header{}, err
	}

	h.BaseGObjectID = uint32(baseID)

	if c.LookaheadPattern(templateZeroRun) {
		h.IsTemplate = true

		if err := c.SeekForward(4); err != nil {
			return Header{}, err
		}
	}

	if err := c.SeekForward(4); err != nil {
		return Header{}, err
	}

	thisID, err := c.ReadInt(4)
	if err != nil {
		return Header{}, err
	}

	h.ThisGObjectID = uint32(thisID)

	if err := c.SeekForward(12); err != nil {
		return Header{}, err
	}

	if h.SecurityGroup, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(12); err != nil {
		return Header{}, err
	}

	parentID, err := c.ReadInt(4)
	if err != nil {
		return Header{}, err
	}

	h.ParentGObjectID = uint32(parentID)

	if err := c.SeekForward(52); err != nil {
		return Header{}, err
	}

	if h.Tagname, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(596); err != nil {
		return Header{}, err
	}

	if h.ContainedName, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(4 + 32); err != nil {
		return Header{}, err
	}

	cfgVersion, err := c.ReadInt(4)
	if err != nil {
		return Header{}, err
	}

	h.ConfigVersion = uint32(cfgVersion)

	if err := c.SeekForward(16); err != nil {
		return Header{}, err
	}

	if h.HierarchalName, err = c.ReadFixedString(130); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(530); err != nil {
		return Header{}, err
	}

	if h.HostName, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(2); err != nil {
		return Header{}, err
	}

	if h.ContainerName, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(596); err != nil {
		return Header{}, err
	}

	if h.AreaName, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(2); err != nil {
		return Header{}, err
	}

	if h.DerivedFrom, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(596); err != nil {
		return Header{}, err
	}

	if h.BasedOn, err = c.ReadFixedString(64); err != nil {
		return Header{}, err
	}

	if err := c.SeekForward(528); err != nil {
		return Header{}, err
	}

	if h.GalaxyName, err = c.ReadVarString(cursor.ByteCountPrefix); err != nil {
		return Header{}, err
	}

	secondDiscriminator, err := c.ReadInt(1)
	if err != nil {
		return Header{}, err
	}

	tailPad := 1352
	if secondDiscriminator == 0 {
		tailPad = 1353
	}

	if err := c.SeekForward(tailPad); err != nil {
		return Header{}, err
	}

	return h, nil
}
