/*
Package fonttest builds small synthetic font binaries for tests.

Fonts built here contain only the tables a test asks for. They are not
renderable, but they are well-formed enough to pass through the
introspection decoders:

	data := fonttest.SFNT(fonttest.Tables{
		"name": fonttest.NameTable(fonttest.EnglishName(1, "Testa")),
		"OS/2": fonttest.OS2Table(700),
	})
*/
package fonttest

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"math"
	"slices"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// Tables maps 4-letter table tags to table data.
type Tables map[string][]byte

// Language IDs used by tests.
const (
	LangEnglishUS  = 0x0409
	LangChinesePRC = 0x0804
	LangChineseSG  = 0x1004
	LangChineseTW  = 0x0404
	LangJapanese   = 0x0411
)

// Name is one record of a synthetic 'name' table.
type Name struct {
	ID       uint16
	Platform uint16
	Encoding uint16
	Language uint16
	Value    string
}

// EnglishName creates a Windows Unicode BMP record for US English.
func EnglishName(id uint16, value string) Name {
	return Name{ID: id, Platform: 3, Encoding: 1, Language: LangEnglishUS, Value: value}
}

// LocalizedName creates a Windows Unicode BMP record for a Windows language ID.
func LocalizedName(id uint16, lang uint16, value string) Name {
	return Name{ID: id, Platform: 3, Encoding: 1, Language: lang, Value: value}
}

// MacName creates a Macintosh Roman record. Only ASCII values are supported.
func MacName(id uint16, value string) Name {
	return Name{ID: id, Platform: 1, Encoding: 0, Language: 0, Value: value}
}

func (n Name) encode() []byte {
	if n.Platform == 1 {
		return []byte(n.Value)
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(n.Value))
	if err != nil {
		panic(err)
	}
	return b
}

// NameTable creates a version 0 'name' table with records in the given order.
func NameTable(names ...Name) []byte {
	var storage []byte
	header := be16(0, uint16(len(names)), uint16(6+12*len(names)))
	for _, n := range names {
		s := n.encode()
		header = append(header, be16(n.Platform, n.Encoding, n.Language, n.ID,
			uint16(len(s)), uint16(len(storage)))...)
		storage = append(storage, s...)
	}
	return append(header, storage...)
}

// OS2Table creates a version 0 'OS/2' table with usWeightClass set to weight.
func OS2Table(weight uint16) []byte {
	b := make([]byte, 78)
	binary.BigEndian.PutUint16(b[4:], weight)
	binary.BigEndian.PutUint16(b[6:], 5) // usWidthClass: medium
	return b
}

// CmapTable creates a 'cmap' table with a single format 12 subtable for
// platform 3, encoding 10. Code-points are mapped to glyphs 1…n in
// ascending code-point order.
func CmapTable(runes ...rune) []byte {
	rs := slices.Clone(runes)
	slices.Sort(rs)
	rs = slices.Compact(rs)
	sub := make([]byte, 16, 16+12*len(rs))
	binary.BigEndian.PutUint16(sub[0:], 12)
	binary.BigEndian.PutUint32(sub[4:], uint32(16+12*len(rs)))
	binary.BigEndian.PutUint32(sub[12:], uint32(len(rs)))
	for i, r := range rs {
		sub = append(sub, be32(uint32(r), uint32(r), uint32(i+1))...)
	}
	head := be16(0, 1, 3, 10)
	head = append(head, be32(12)...)
	return append(head, sub...)
}

// Axis describes a design-variation axis for FvarTable.
type Axis struct {
	Tag               string
	Min, Default, Max float64
}

// FvarTable creates an 'fvar' table without named instances.
func FvarTable(axes ...Axis) []byte {
	b := be16(1, 0, 16, 2, uint16(len(axes)), 20, 0, uint16(4+4*len(axes)))
	for _, a := range axes {
		b = append(b, []byte((a.Tag + "    ")[:4])...)
		b = append(b, be32(fixed(a.Min), fixed(a.Default), fixed(a.Max))...)
		b = append(b, be16(0, 256)...)
	}
	return b
}

// SFNT creates a TrueType-flavored font file from tables.
func SFNT(tables Tables) []byte {
	return layoutFace(0, tables)
}

// Collection creates a TrueType collection. A nil entry in faces produces a
// face whose table directory is garbage, i.e. a face which cannot be decoded.
func Collection(faces ...Tables) []byte {
	header := []byte("ttcf")
	header = append(header, be16(1, 0)...)
	header = append(header, be32(uint32(len(faces)))...)
	start := len(header) + 4*len(faces)
	var body []byte
	for _, face := range faces {
		header = append(header, be32(uint32(start+len(body)))...)
		if face == nil {
			body = append(body, []byte("JUNKJUNKJUNKJUNK")...)
			continue
		}
		body = append(body, layoutFace(start+len(body), face)...)
	}
	return append(header, body...)
}

// layoutFace writes a table directory followed by table data. Table offsets
// are relative to the start of the file, which is start bytes before the
// directory.
func layoutFace(start int, tables Tables) []byte {
	tags := sortedTags(tables)
	n := len(tags)
	searchRange, entrySelector := 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	dir := be32(0x00010000)
	dir = append(dir, be16(uint16(n), uint16(searchRange*16), uint16(entrySelector),
		uint16(n*16-searchRange*16))...)
	offset := start + 12 + 16*n
	var data []byte
	for _, tag := range tags {
		t := tables[tag]
		dir = append(dir, []byte(tag)...)
		dir = append(dir, be32(checksum(t), uint32(offset+len(data)), uint32(len(t)))...)
		data = append(data, pad4(t)...)
	}
	return append(dir, data...)
}

// WOFF wraps tables into a WOFF 1.0 container. If compress is set, tables
// are zlib-compressed wherever this saves space.
func WOFF(tables Tables, compress bool) []byte {
	tags := sortedTags(tables)
	n := len(tags)
	sfntSize := 12 + 16*n
	dir := make([]byte, 0, 20*n)
	var data []byte
	offset := 44 + 20*n
	for _, tag := range tags {
		t := tables[tag]
		sfntSize += len(pad4(t))
		stored := t
		if compress {
			var buf bytes.Buffer
			w := zlib.NewWriter(&buf)
			w.Write(t)
			w.Close()
			if buf.Len() < len(t) {
				stored = buf.Bytes()
			}
		}
		dir = append(dir, []byte(tag)...)
		dir = append(dir, be32(uint32(offset+len(data)), uint32(len(stored)), uint32(len(t)), checksum(t))...)
		data = append(data, pad4(stored)...)
	}
	total := 44 + len(dir) + len(data)
	header := []byte("wOFF")
	header = append(header, be32(0x00010000, uint32(total))...)
	header = append(header, be16(uint16(n), 0)...)
	header = append(header, be32(uint32(sfntSize))...)
	header = append(header, be16(1, 0)...)
	header = append(header, make([]byte, 20)...) // no metadata, no private data
	out := append(header, dir...)
	return append(out, data...)
}

// --- Helpers ---------------------------------------------------------------

// sortedTags returns the table tags in directory order. Tags have to be
// exactly 4 bytes long.
func sortedTags(tables Tables) []string {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		if len(tag) != 4 {
			panic("fonttest: table tag must have 4 bytes: " + tag)
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func be16(v ...uint16) []byte {
	b := make([]byte, 2*len(v))
	for i, x := range v {
		binary.BigEndian.PutUint16(b[2*i:], x)
	}
	return b
}

func be32(v ...uint32) []byte {
	b := make([]byte, 4*len(v))
	for i, x := range v {
		binary.BigEndian.PutUint32(b[4*i:], x)
	}
	return b
}

func fixed(f float64) uint32 {
	return uint32(int32(math.Round(f * 65536)))
}

func pad4(b []byte) []byte {
	if r := len(b) % 4; r != 0 {
		return append(slices.Clone(b), make([]byte, 4-r)...)
	}
	return b
}

func checksum(b []byte) uint32 {
	var sum uint32
	p := pad4(b)
	for i := 0; i < len(p); i += 4 {
		sum += binary.BigEndian.Uint32(p[i:])
	}
	return sum
}
