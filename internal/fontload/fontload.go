/*
Package fontload reads font files into memory.

Font files are read in one piece: every decoder of this module works on
byte slices, and collections need random access to all of their faces.
*/
package fontload

import (
	"fmt"
	"os"

	"github.com/Sansui233/Fontscape"
)

// FontFile is a font file with its original bytes.
type FontFile struct {
	Path   string
	Format fontscape.FontFormat
	Size   int64 // size on disk
	Binary []byte
}

// LoadFontFile reads a font file. The font format is derived from the file
// extension; files without a font extension are rejected.
func LoadFontFile(path string) (*FontFile, error) {
	format, ok := fontscape.FormatFromPath(path)
	if !ok {
		return nil, fmt.Errorf("not a font file: %s", path)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("is a directory: %s", path)
	}
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFontFile(path, bytez, format), nil
}

// ParseFontFile wraps font bytes already in memory.
func ParseFontFile(path string, bytez []byte, format fontscape.FontFormat) *FontFile {
	return &FontFile{
		Path:   path,
		Format: format,
		Size:   int64(len(bytez)),
		Binary: bytez,
	}
}
