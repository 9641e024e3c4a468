package ot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Code comment often will cite passage from the
// OpenType specification version 1.9;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// Maximum reasonable counts for font file structures.
// These limits prevent malicious fonts from claiming unreasonably large counts.
const (
	MaxCollectionCount = 2048 // faces in a collection
	MaxTableCount      = 512  // tables in a table directory
)

const (
	sfntHeaderSize  = 12
	tableRecordSize = 16
	ttcHeaderSize   = 12
)

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two non-negative integers
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a < 0 || b < 0 || a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// CollectionSize returns the number of faces contained in a font file.
// Simple font files contain one face. If the container is not recognized,
// CollectionSize returns false.
func CollectionSize(data []byte) (int, bool) {
	if len(data) < 4 {
		return 0, false
	}
	switch MakeTag(data[:4]) {
	case tagTTC:
		if c, err := sfnt.ParseCollection(data); err == nil {
			return c.NumFonts(), true
		}
		// x/image rejects collections with unusual table layouts; the header
		// count is all we need.
		n, err := binarySegm(data).u32(8)
		if err != nil || n == 0 || n > MaxCollectionCount {
			return 0, false
		}
		return int(n), true
	case tagTrueType, tagCFF, tagApple, tagWOFF, tagWOFF2:
		return 1, true
	}
	return 0, false
}

// Parse decodes face number index of a font file. For simple font files,
// index has to be 0. For font collections (*.ttc), index selects a face
// from the collection.
//
// Parse returns an error if the font's table directory is damaged. Problems
// within single tables are recorded as warnings, and the table is then
// treated as absent.
//
// The returned Font needs ongoing access to data after Parse returns.
func Parse(data []byte, index int) (*Font, error) {
	ec := &errorCollector{}
	if len(data) < 4 {
		return nil, ec.fail(0, "Header", "file too short", 0)
	}
	var otf *Font
	var err error
	switch sig := MakeTag(data[:4]); sig {
	case tagTTC:
		var offset uint32
		if offset, err = collectionOffset(data, index, ec); err != nil {
			return nil, err
		}
		otf, err = parseSFNT(data, offset, ec)
	case tagWOFF:
		if index != 0 {
			return nil, fmt.Errorf("%w: WOFF font has a single face, got index %d", ErrFaceIndex, index)
		}
		otf, err = parseWOFF(data, ec)
	case tagWOFF2:
		return nil, fmt.Errorf("%w: WOFF2", ErrUnsupportedFormat)
	case tagTrueType, tagCFF, tagApple:
		if index != 0 {
			return nil, fmt.Errorf("%w: font has a single face, got index %d", ErrFaceIndex, index)
		}
		otf, err = parseSFNT(data, 0, ec)
	default:
		ec.addError(0, "Header", fmt.Sprintf("font type not supported: %x", uint32(sig)), SeverityCritical, 0)
		return nil, fmt.Errorf("%w: signature %x", ErrUnsupportedFormat, uint32(sig))
	}
	if err != nil {
		return nil, err
	}
	otf.Header.Index = index
	otf.interpret(ec)
	// Transfer accumulated errors and warnings to the Font
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// collectionOffset reads the offset of a face's table directory from a TTC header.
//
// "The TTC Header … TTCTag, majorVersion, minorVersion, numFonts,
// tableDirectoryOffsets[numFonts]".
func collectionOffset(data []byte, index int, ec *errorCollector) (uint32, error) {
	src := binarySegm(data)
	count, err := src.u32(8)
	if err != nil {
		return 0, ec.fail(tagTTC, "Header", "collection header truncated", 0)
	}
	if count == 0 || count > MaxCollectionCount {
		return 0, ec.fail(tagTTC, "Header", fmt.Sprintf("invalid face count %d", count), 8)
	}
	if index < 0 || index >= int(count) {
		return 0, fmt.Errorf("%w: collection has %d faces, got index %d", ErrFaceIndex, count, index)
	}
	offset, err := src.u32(ttcHeaderSize + 4*index)
	if err != nil {
		return 0, ec.fail(tagTTC, "Offsets", "table directory offsets truncated", ttcHeaderSize)
	}
	if offset >= uint32(len(data)) {
		return 0, ec.fail(tagTTC, "Offsets", fmt.Sprintf("face %d: offset %d out of bounds", index, offset), offset)
	}
	tracer().Debugf("collection of %d faces, face %d at offset %d", count, index, offset)
	return offset, nil
}

// parseSFNT reads a table directory located at offset. Table offsets in the
// directory are relative to the start of the file, for collections as well.
func parseSFNT(data []byte, offset uint32, ec *errorCollector) (*Font, error) {
	src := binarySegm(data)
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	hdr, err := src.view(int(offset), sfntHeaderSize)
	if err != nil {
		return nil, ec.fail(0, "Header", "table directory truncated", offset)
	}
	h := FontHeader{FontType: u32(hdr[0:4]), TableCount: u16(hdr[4:6])}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	switch Tag(h.FontType) {
	case tagTrueType, tagCFF, tagApple:
	default:
		return nil, ec.fail(0, "Header", fmt.Sprintf("font type not supported: %x", h.FontType), offset)
	}
	if h.TableCount > MaxTableCount {
		return nil, ec.fail(0, "TableRecords", fmt.Sprintf("table count too large: %d", h.TableCount), offset+4)
	}
	otf := &Font{Header: h, tables: make(map[Tag]Table, h.TableCount)}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	recordsSize, err := checkedMulInt(tableRecordSize, int(h.TableCount))
	if err != nil {
		return nil, ec.fail(0, "TableRecords", err.Error(), offset+sfntHeaderSize)
	}
	buf, err := src.view(int(offset)+sfntHeaderSize, recordsSize)
	if err != nil {
		return nil, ec.fail(0, "TableRecords", "table record entries truncated", offset+sfntHeaderSize)
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[tableRecordSize:] {
		tag := MakeTag(b)
		if tag < prevTag {
			// Many fonts in the wild do not care about table order.
			ec.addError(tag, "TableRecords", "table order", SeverityMinor, offset+sfntHeaderSize)
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		end, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, ec.fail(tag, "Size", fmt.Sprintf("size calculation overflow: %v", err), off)
		}
		if end > uint32(len(src)) {
			return nil, ec.fail(tag, "Bounds", fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, end, len(src)), off)
		}
		if off&3 != 0 { // "all tables must begin on four byte boundaries"
			ec.addWarning(tag, "table offset not 4-byte aligned", off)
		}
		if _, dup := otf.tables[tag]; dup {
			ec.addWarning(tag, "duplicate table record ignored", off)
			continue
		}
		otf.tables[tag] = newTable(tag, src[off:end], off, size)
	}
	return otf, nil
}

// parseWOFF unpacks a WOFF 1.0 container. Table data may be zlib-compressed
// and is therefore copied out of the container.
func parseWOFF(data []byte, ec *errorCollector) (*Font, error) {
	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, ec.fail(tagWOFF, "Header", err.Error(), 0)
	}
	tags := ld.Tables()
	otf := &Font{
		Header: FontHeader{FontType: uint32(ld.Type), TableCount: uint16(len(tags))},
		tables: make(map[Tag]Table, len(tags)),
	}
	for _, t := range tags {
		tag := Tag(t)
		b, err := ld.RawTable(t)
		if err != nil {
			ec.addWarning(tag, fmt.Sprintf("cannot unpack table: %v", err), 0)
			continue
		}
		otf.tables[tag] = newTable(tag, b, 0, uint32(len(b)))
	}
	return otf, nil
}
