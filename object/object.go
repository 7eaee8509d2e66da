// Package object decodes one AA object end to end: its header followed
// by its ordered content sections and extensions (§4.6), exposed
// through the package's public Decoder.
package object

import (
	"github.com/galaxyfmt/aadecode/cursor"
	"github.com/galaxyfmt/aadecode/diag"
	"github.com/galaxyfmt/aadecode/header"
	"github.com/galaxyfmt/aadecode/internal/decopt"
	"github.com/galaxyfmt/aadecode/section"
)

// Content is the decoded body that follows an object's header: the
// main section id, the template name, the ordered attribute-section
// pairs, and the recognised extensions that follow them.
type Content struct {
	MainSectionIDLow  uint64
	MainSectionIDHigh uint64
	TemplateName      string
	Sections          []section.Section
	Extensions        []section.Extension
}

// Object is the fully decoded object: header plus content (§3).
type Object struct {
	Header   header.Header
	Content  Content
	Warnings []diag.Warning
}

// mainSectionHeaderTrailer is the fixed pad following the content's
// template-name field, before the first attribute section.
const mainSectionHeaderTrailer = 596

// DecodeContent reads an object's content: a 16-byte (128-bit) main
// section id, the template name, a fixed pad, the UDA/built-in section
// pair, and zero or more extensions (§4.5).
func DecodeContent(c *cursor.Cursor, warnings *diag.Collector, strictExtensions bool) (Content, error) {
	lo, hi, err := c.ReadInt128()
	if err != nil {
		return Content{}, err
	}

	templateName, err := c.ReadFixedString(64)
	if err != nil {
		return Content{}, err
	}

	if err := c.SeekForward(mainSectionHeaderTrailer); err != nil {
		return Content{}, err
	}

	uda, builtin, err := section.DecodeSectionPair(c, warnings)
	if err != nil {
		return Content{}, err
	}

	extensions, err := section.DecodeExtensions(c, warnings, strictExtensions)
	if err != nil {
		return Content{}, err
	}

	return Content{
		MainSectionIDLow:  lo,
		MainSectionIDHigh: hi,
		TemplateName:      templateName,
		Sections:          []section.Section{uda, builtin},
		Extensions:        extensions,
	}, nil
}

// Option configures a Decoder.
type Option = decopt.Option[*Decoder]

// Decoder decodes AA object byte buffers. Its zero value is not usable;
// construct with NewDecoder. A Decoder holds no per-call state and is
// safe to reuse and to share across goroutines.
type Decoder struct {
	// strictExtensions, when true, turns an unrecognised extension
	// section-type code into a hard failure instead of ending the
	// extension loop silently. Off by default to favor tolerant
	// reverse-engineering over strictness.
	strictExtensions bool
}

// NewDecoder creates a Decoder configured by opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	_ = decopt.Apply(d, opts...)

	return d
}

// WithStrictExtensions makes an unrecognised extension section-type
// code a fatal error rather than the signal to stop the extension
// loop.
func WithStrictExtensions() Option {
	return decopt.NoError(func(d *Decoder) {
		d.strictExtensions = true
	})
}

// DecodeObject decodes one complete object from data: its header
// followed by its content. All non-fatal observations (magic
// mismatches, non-zero end markers) are returned as Warnings rather
// than failing the decode.
func (d *Decoder) DecodeObject(data []byte) (Object, []diag.Warning, error) {
	c := cursor.New(data)

	var warnings diag.Collector

	h, err := header.Decode(c)
	if err != nil {
		return Object{}, warnings.Warnings(), err
	}

	content, err := DecodeContent(c, &warnings, d.strictExtensions)
	if err != nil {
		return Object{}, warnings.Warnings(), err
	}

	return Object{
		Header:   h,
		Content:  content,
		Warnings: warnings.Warnings(),
	}, warnings.Warnings(), nil
}
