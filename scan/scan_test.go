package scan

import (
	"errors"
	"sync"
	"time"

	"github.com/Sansui233/Fontscape/internal/fonttest"
	"github.com/Sansui233/Fontscape/ot"
	"golang.org/x/image/font/sfnt"
)

// Helpers shared by the tests of this package.

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func testaTables() fonttest.Tables {
	return fonttest.Tables{
		"name": fonttest.NameTable(fonttest.EnglishName(1, "Testa")),
		"OS/2": fonttest.OS2Table(700),
		"cmap": fonttest.CmapTable('A', 'a'),
	}
}

func namedTables(family, style string, weight uint16) fonttest.Tables {
	return fonttest.Tables{
		"name": fonttest.NameTable(
			fonttest.EnglishName(1, family),
			fonttest.EnglishName(2, style),
		),
		"OS/2": fonttest.OS2Table(weight),
		"cmap": fonttest.CmapTable('A', 'a'),
	}
}

// fakeFace is a decoded face without a font binary behind it.
type fakeFace struct {
	names    []ot.NameRecord
	weight   uint16
	hasOS2   bool
	axes     []ot.Axis
	coverage string
}

func (f fakeFace) Names() []ot.NameRecord { return f.names }

func (f fakeFace) GlyphIndex(r rune) (ot.GlyphIndex, bool) {
	for _, c := range f.coverage {
		if c == r {
			return 1, true
		}
	}
	return 0, false
}

func (f fakeFace) IsVariable() bool { return len(f.axes) > 0 }

func (f fakeFace) WeightClass() (uint16, bool) { return f.weight, f.hasOS2 }

func (f fakeFace) Axes() []ot.Axis { return f.axes }

func familyFace(family string) fakeFace {
	return fakeFace{
		names: []ot.NameRecord{{
			NameID:     sfnt.NameIDFamily,
			PlatformID: ot.PlatformIDWindows,
			EncodingID: ot.EncodingIDWindowsBMP,
			LanguageID: fonttest.LangEnglishUS,
			IsUnicode:  true,
			Decoded:    true,
			Value:      family,
		}},
		weight:   400,
		hasOS2:   true,
		coverage: "Aa",
	}
}

var errBrokenFace = errors.New("broken face")

// fakeDecoder hands out prepared faces and records which faces are parsed.
// A nil face fails to decode.
type fakeDecoder struct {
	faces   []Face
	count   int
	countOK bool
	mx      sync.Mutex
	parsed  []int
}

func (d *fakeDecoder) Parse(data []byte, index int) (Face, error) {
	d.mx.Lock()
	d.parsed = append(d.parsed, index)
	d.mx.Unlock()
	if index >= len(d.faces) || d.faces[index] == nil {
		return nil, errBrokenFace
	}
	return d.faces[index], nil
}

func (d *fakeDecoder) FaceCount(data []byte) (int, bool) {
	return d.count, d.countOK
}
