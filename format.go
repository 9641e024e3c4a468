package fontscape

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FontFormat is the container format of a font file.
type FontFormat int

const (
	TrueType FontFormat = iota
	OpenType
	TrueTypeCollection
	WOFF
	WOFF2
)

var formatNames = [...]string{"TrueType", "OpenType", "TrueTypeCollection", "WOFF", "WOFF2"}

// extensions maps lower-case file extensions to formats. Files with other
// extensions are not considered font files.
var extensions = map[string]FontFormat{
	".ttf":   TrueType,
	".otf":   OpenType,
	".ttc":   TrueTypeCollection,
	".woff":  WOFF,
	".woff2": WOFF2,
}

// FormatFromPath determines a font format from a file name extension.
// Extensions are matched case-insensitively.
func FormatFromPath(path string) (FontFormat, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// IsCollection is true for formats which may contain more than one face.
func (f FontFormat) IsCollection() bool {
	return f == TrueTypeCollection
}

func (f FontFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("FontFormat(%d)", int(f))
	}
	return formatNames[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f FontFormat) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(formatNames) {
		return nil, fmt.Errorf("invalid font format %d", int(f))
	}
	return []byte(formatNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FontFormat) UnmarshalText(text []byte) error {
	for i, name := range formatNames {
		if name == string(text) {
			*f = FontFormat(i)
			return nil
		}
	}
	return fmt.Errorf("unknown font format %q", text)
}

// FontStatus classifies a font for display. It has no effect on scanning.
type FontStatus int

const (
	Enabled FontStatus = iota
	Disabled
	SystemFont
)

var statusNames = [...]string{"Enabled", "Disabled", "SystemFont"}

func (s FontStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("FontStatus(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s FontStatus) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("invalid font status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FontStatus) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = FontStatus(i)
			return nil
		}
	}
	return fmt.Errorf("unknown font status %q", text)
}

// Weight bounds and the weight of a "Regular" face.
const (
	MinWeight     = 100
	MaxWeight     = 900
	RegularWeight = 400
)

var weightNames = [...]string{
	"Thin", "ExtraLight", "Light", "Regular", "Medium",
	"SemiBold", "Bold", "ExtraBold", "Black",
}

// WeightName returns the common name of a weight, e.g. "Bold" for 700.
// Weights in between are named after the nearest hundred, rounding down.
func WeightName(weight int) string {
	weight = min(max(weight, MinWeight), MaxWeight)
	return weightNames[weight/100-1]
}
