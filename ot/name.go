package ot

import (
	"fmt"

	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// PlatformID is the platform of an OpenType name record.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

// EncodingID is the platform-specific encoding of an OpenType name record.
type EncodingID uint16

const (
	EncodingIDWindowsSymbol EncodingID = 0
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDWindowsFull   EncodingID = 10
	EncodingIDMacRoman      EncodingID = 0
)

// NameRecord is an entry of OpenType table 'name'.
//
// Value holds the decoded string. If a record uses an encoding we cannot
// decode, or its string data is out of bounds, Decoded is false and Value is empty.
type NameRecord struct {
	NameID     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	PlatformID PlatformID
	EncodingID EncodingID
	LanguageID uint16
	IsUnicode  bool // record is UTF-16BE encoded
	Decoded    bool
	Value      string
}

func (r NameRecord) String() string {
	return fmt.Sprintf("name[%d] (%d,%d,0x%04x) = %q", r.NameID, r.PlatformID, r.EncodingID, r.LanguageID, r.Value)
}

// IsUnicodeEncoding reports whether name records of a platform/encoding
// pair carry UTF-16BE strings.
func IsUnicodeEncoding(p PlatformID, e EncodingID) bool {
	switch p {
	case PlatformIDUnicode:
		return true
	case PlatformIDWindows:
		return e == EncodingIDWindowsSymbol || e == EncodingIDWindowsBMP || e == EncodingIDWindowsFull
	}
	return false
}

// parseNames decodes all records of a 'name' table in table order.
// Malformed records are skipped with a warning.
func parseNames(t Table, ec *errorCollector) []NameRecord {
	b := binarySegm(t.Binary())
	if len(b) < nameHeaderSize {
		ec.addWarning(tagName, fmt.Sprintf("name table too short: %d", len(b)), 0)
		return nil
	}
	count := int(u16(b[2:4])) // number of name records
	strOff := int(u16(b[4:6]))
	if strOff > len(b) {
		ec.addWarning(tagName, fmt.Sprintf("invalid string offset: %d", strOff), 4)
		return nil
	}
	records, err := b.view(nameHeaderSize, count*nameRecordSize)
	if err != nil {
		ec.addWarning(tagName, fmt.Sprintf("record section out of bounds: count=%d", count), nameHeaderSize)
		return nil
	}
	names := make([]NameRecord, 0, count)
	for i := range count {
		r := records[i*nameRecordSize : (i+1)*nameRecordSize]
		rec := NameRecord{
			PlatformID: PlatformID(u16(r[0:2])),
			EncodingID: EncodingID(u16(r[2:4])),
			LanguageID: u16(r[4:6]),
			NameID:     sfnt.NameID(u16(r[6:8])),
		}
		rec.IsUnicode = IsUnicodeEncoding(rec.PlatformID, rec.EncodingID)
		length, offset := int(u16(r[8:10])), int(u16(r[10:12]))
		str, err := b.view(strOff+offset, length)
		if err != nil {
			ec.addWarning(tagName, fmt.Sprintf("record %d: string out of bounds", i), uint32(nameHeaderSize+i*nameRecordSize))
			names = append(names, rec)
			continue
		}
		switch {
		case rec.IsUnicode:
			if s, err := decodeNameUTF16(str); err == nil {
				rec.Value, rec.Decoded = s, true
			}
		case rec.PlatformID == PlatformIDMacintosh && rec.EncodingID == EncodingIDMacRoman:
			rec.Value, rec.Decoded = tables.DecodeMacintosh(str), true
		}
		names = append(names, rec)
	}
	tracer().Debugf("name table has %d records", len(names))
	return names
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
