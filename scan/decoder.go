package scan

import (
	"github.com/Sansui233/Fontscape/ot"
)

// Face is a decoded font face, as far as scanning is concerned.
type Face interface {
	Names() []ot.NameRecord
	GlyphIndex(rune) (ot.GlyphIndex, bool)
	IsVariable() bool
	WeightClass() (uint16, bool)
	Axes() []ot.Axis
}

// Decoder decodes faces from font binaries.
type Decoder interface {
	// Parse decodes the face at position index. For non-collection data
	// index has to be 0.
	Parse(data []byte, index int) (Face, error)
	// FaceCount returns the number of faces in a collection. If the count
	// cannot be determined, false is returned.
	FaceCount(data []byte) (int, bool)
}

// OpenTypeDecoder decodes faces with package ot.
type OpenTypeDecoder struct{}

var _ Decoder = OpenTypeDecoder{}

// Parse decodes a face with ot.Parse. Warnings of the face are traced by
// the Materializer.
func (OpenTypeDecoder) Parse(data []byte, index int) (Face, error) {
	otf, err := ot.Parse(data, index)
	if err != nil {
		return nil, err
	}
	return otf, nil
}

// FaceCount returns ot.CollectionSize.
func (OpenTypeDecoder) FaceCount(data []byte) (int, bool) {
	return ot.CollectionSize(data)
}
