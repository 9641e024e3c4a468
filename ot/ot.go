package ot

import (
	"slices"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Font represents one decoded face of a font file.
// A Font keeps views into the font's binary data; the data must not be
// modified while the Font is in use.
type Font struct {
	Header        FontHeader
	tables        map[Tag]Table
	names         []NameRecord
	cmap          font.Cmap     // nil if the font has no usable cmap
	os2           *tables.Os2   // nil if the font has no usable OS/2 table
	axes          []Axis        // design-variation axes from 'fvar'
	parseErrors   []FontError   // Errors accumulated during parsing
	parseWarnings []FontWarning // Warnings accumulated during parsing
}

// FontHeader is the header of a font's table directory.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// For fonts loaded from a WOFF container, FontType is the flavor of the
// wrapped font. Index is the position of the face within a collection.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
	Index      int
}

// Axis is a design-variation axis of a variable font, as found in table 'fvar'.
type Axis struct {
	Tag     Tag
	Min     float32
	Default float32
	Max     float32
}

// Table returns the font table for a given tag. If a table for a tag cannot
// be found in the font, nil is returned.
//
// Table tag names are case-sensitive, following the names in the OpenType specification,
// e.g.
//
//	os2 := otf.Table(ot.T("OS/2"))
func (otf *Font) Table(tag Tag) Table {
	if t, ok := otf.tables[tag]; ok {
		return t
	}
	return nil
}

// TableTags returns a sorted list of tags, one for each table contained in the font.
func (otf *Font) TableTags() []Tag {
	var tags = make([]Tag, 0, len(otf.tables))
	for tag := range otf.tables {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Names returns the decodable records of the font's 'name' table, in table order.
// A font without a usable 'name' table returns an empty slice.
func (otf *Font) Names() []NameRecord {
	return otf.names
}

// GlyphIndex returns the glyph a code-point is mapped to. Code-points mapped to
// glyph 0 (.notdef) are reported as missing.
func (otf *Font) GlyphIndex(r rune) (GlyphIndex, bool) {
	if otf.cmap == nil {
		return 0, false
	}
	gid, ok := otf.cmap.Lookup(r)
	if !ok || gid == 0 || gid > 0xffff {
		return 0, false
	}
	return GlyphIndex(gid), true
}

// Format returns the sfnt version of a font, e.g. 'OTTO' for CFF outlines.
// For WOFF containers this is the flavor of the wrapped font.
func (otf *Font) Format() Tag {
	return Tag(otf.Header.FontType)
}

// IsVariable is true if the font has at least one design-variation axis.
func (otf *Font) IsVariable() bool {
	return len(otf.axes) > 0
}

// Axes returns the design-variation axes of a variable font.
func (otf *Font) Axes() []Axis {
	return otf.axes
}

// WeightClass returns field usWeightClass of table 'OS/2'.
// If the font has no usable OS/2 table, false is returned.
func (otf *Font) WeightClass() (uint16, bool) {
	if otf.os2 == nil {
		return 0, false
	}
	return otf.os2.USWeightClass, true
}

// Errors returns all errors encountered during font parsing.
func (otf *Font) Errors() []FontError {
	if otf.parseErrors == nil {
		return []FontError{}
	}
	return otf.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that are generally safe to ignore.
func (otf *Font) Warnings() []FontWarning {
	if otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// HasDamagedTables returns true if a table failed to parse and has been
// ignored. Critical errors never show up here, as Parse does not return a
// font for them.
func (otf *Font) HasDamagedTables() bool {
	for _, err := range otf.parseErrors {
		if err.Severity == SeverityMajor {
			return true
		}
	}
	return false
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// Font container signatures.
var (
	tagTrueType = Tag(0x00010000)
	tagCFF      = T("OTTO")
	tagApple    = T("true")
	tagTTC      = T("ttcf")
	tagWOFF     = T("wOFF")
	tagWOFF2    = T("wOF2")
)

// Tags of tables we interpret.
var (
	tagName = T("name")
	tagCmap = T("cmap")
	tagOS2  = T("OS/2")
	tagFvar = T("fvar")
	tagWght = T("wght")
)

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Table -----------------------------------------------------------------

// Table is a raw view onto one of the tables of a font.
type Table interface {
	Tag() Tag
	Extent() (uint32, uint32) // offset and byte size within the font's binary data
	Binary() []byte           // the bytes of this table; should be treated as read-only by clients
}

func newTable(tag Tag, b binarySegm, offset, size uint32) *genericTable {
	return &genericTable{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	}
}

type genericTable struct {
	data   binarySegm // a table is a slice of font data
	name   Tag        // 4-byte name as an integer
	offset uint32     // from offset
	length uint32     // to offset + length
}

func (t *genericTable) Tag() Tag {
	return t.name
}

// Extent returns offset and byte size of this table within the font file.
// For tables loaded from compressed containers, offset is 0.
func (t *genericTable) Extent() (uint32, uint32) {
	return t.offset, t.length
}

// Binary returns the bytes of this table. Should be treated as read-only by
// clients, as it is a view into the original data.
func (t *genericTable) Binary() []byte {
	return t.data
}
