/*
Package fontscape describes installed fonts for user interfaces.

A scan of font files yields one FontRecord per usable face. Records are
grouped into CSS-facing font families (CssFontFamily), each with a default
member whose weight is closest to "Regular". A ScanState bundles the records
and families of one scan and answers read-only queries.

We stick to the following nomenclature:

▪︎ A "font file" may contain more than one face, e.g. a TrueType collection (*.ttc).

▪︎ A "face" is a single font within a file, e.g. "Noto Sans CJK SC Bold".
Each face becomes a FontRecord.

▪︎ A "CSS font family" is the name used to group faces for display and for
CSS 'font-family' declarations. Fonts which carry a typographic family name
(name ID 16) are grouped by it, others by their legacy family name.

Scanning is done by package scan; decoding of font binaries by package ot.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontscape

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontscape'
func tracer() tracing.Trace {
	return tracing.Select("fontscape")
}

// FontRecord describes one face of a font file.
type FontRecord struct {
	ID             string       `json:"id"`
	Family         string       `json:"family"`
	FullName       string       `json:"full_name"`
	PostScriptName string       `json:"postscript_name"`
	Style          string       `json:"style"`
	FamilyZh       string       `json:"family_zh,omitempty"`
	FullNameZh     string       `json:"full_name_zh,omitempty"`
	CssFontFamily  string       `json:"css_font_family"`
	Path           string       `json:"path"`
	FaceIndex      int          `json:"face_index"`
	FileSize       int64        `json:"file_size"`
	Format         FontFormat   `json:"format"`
	IsVariable     bool         `json:"is_variable"`
	Weight         int          `json:"weight"`
	Languages      []string     `json:"languages"`
	Scripts        []string     `json:"scripts"`
	Metadata       FontMetadata `json:"metadata"`
	Status         FontStatus   `json:"status"`
	CreatedAt      int64        `json:"created_at"` // unix seconds
}

// FontMetadata holds the strings of the standard OpenType name IDs.
// Missing names are empty.
type FontMetadata struct {
	Copyright            string `json:"copyright,omitempty"`
	FamilyName           string `json:"family_name,omitempty"`
	SubfamilyName        string `json:"subfamily_name,omitempty"`
	UniqueID             string `json:"unique_id,omitempty"`
	FullName             string `json:"full_name,omitempty"`
	Version              string `json:"version,omitempty"`
	PostScriptName       string `json:"postscript_name,omitempty"`
	Trademark            string `json:"trademark,omitempty"`
	Manufacturer         string `json:"manufacturer,omitempty"`
	Designer             string `json:"designer,omitempty"`
	Description          string `json:"description,omitempty"`
	VendorURL            string `json:"vendor_url,omitempty"`
	DesignerURL          string `json:"designer_url,omitempty"`
	License              string `json:"license,omitempty"`
	LicenseURL           string `json:"license_url,omitempty"`
	TypographicFamily    string `json:"typographic_family,omitempty"`
	TypographicSubfamily string `json:"typographic_subfamily,omitempty"`
	CompatibleFullName   string `json:"compatible_full_name,omitempty"`
	SampleText           string `json:"sample_text,omitempty"`
	PostScriptCID        string `json:"postscript_cid,omitempty"`
}

// metadataNameIDs lists the name IDs held by FontMetadata. Name ID 15 is
// reserved by OpenType.
var metadataNameIDs = [...]sfnt.NameID{
	sfnt.NameIDCopyright,
	sfnt.NameIDFamily,
	sfnt.NameIDSubfamily,
	sfnt.NameIDUniqueIdentifier,
	sfnt.NameIDFull,
	sfnt.NameIDVersion,
	sfnt.NameIDPostScript,
	sfnt.NameIDTrademark,
	sfnt.NameIDManufacturer,
	sfnt.NameIDDesigner,
	sfnt.NameIDDescription,
	sfnt.NameIDVendorURL,
	sfnt.NameIDDesignerURL,
	sfnt.NameIDLicense,
	sfnt.NameIDLicenseURL,
	sfnt.NameIDTypographicFamily,
	sfnt.NameIDTypographicSubfamily,
	sfnt.NameIDCompatibleFull,
	sfnt.NameIDSampleText,
	sfnt.NameIDPostScriptCID,
}

// MetadataNameIDs returns the name IDs held by FontMetadata, in field order.
func MetadataNameIDs() []sfnt.NameID {
	return metadataNameIDs[:]
}

func (m *FontMetadata) slot(id sfnt.NameID) *string {
	switch id {
	case sfnt.NameIDCopyright:
		return &m.Copyright
	case sfnt.NameIDFamily:
		return &m.FamilyName
	case sfnt.NameIDSubfamily:
		return &m.SubfamilyName
	case sfnt.NameIDUniqueIdentifier:
		return &m.UniqueID
	case sfnt.NameIDFull:
		return &m.FullName
	case sfnt.NameIDVersion:
		return &m.Version
	case sfnt.NameIDPostScript:
		return &m.PostScriptName
	case sfnt.NameIDTrademark:
		return &m.Trademark
	case sfnt.NameIDManufacturer:
		return &m.Manufacturer
	case sfnt.NameIDDesigner:
		return &m.Designer
	case sfnt.NameIDDescription:
		return &m.Description
	case sfnt.NameIDVendorURL:
		return &m.VendorURL
	case sfnt.NameIDDesignerURL:
		return &m.DesignerURL
	case sfnt.NameIDLicense:
		return &m.License
	case sfnt.NameIDLicenseURL:
		return &m.LicenseURL
	case sfnt.NameIDTypographicFamily:
		return &m.TypographicFamily
	case sfnt.NameIDTypographicSubfamily:
		return &m.TypographicSubfamily
	case sfnt.NameIDCompatibleFull:
		return &m.CompatibleFullName
	case sfnt.NameIDSampleText:
		return &m.SampleText
	case sfnt.NameIDPostScriptCID:
		return &m.PostScriptCID
	}
	return nil
}

// Get returns the string for a name ID, if present.
func (m FontMetadata) Get(id sfnt.NameID) (string, bool) {
	if s := m.slot(id); s != nil && *s != "" {
		return *s, true
	}
	return "", false
}

// Set stores the string for a name ID. Name IDs without a metadata field
// are ignored.
func (m *FontMetadata) Set(id sfnt.NameID, value string) {
	if s := m.slot(id); s != nil {
		*s = value
	} else {
		tracer().Debugf("no metadata field for name ID %d", id)
	}
}
