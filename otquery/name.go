package otquery

import (
	"github.com/Sansui233/Fontscape/ot"
	"golang.org/x/image/font/sfnt"
)

// Unknown is substituted for names a font does not provide.
const Unknown = "Unknown"

// Face is a font face carrying an OpenType naming table.
type Face interface {
	Names() []ot.NameRecord
}

// Locale is a Windows language ID as used in OpenType name records.
type Locale uint16

const (
	LocaleEnglishUS        Locale = 0x0409
	LocaleChinesePRC       Locale = 0x0804
	LocaleChineseSingapore Locale = 0x1004
	LocaleChineseTaiwan    Locale = 0x0404
)

// ChineseLocales is the lookup order for Chinese name variants.
var ChineseLocales = [...]Locale{LocaleChinesePRC, LocaleChineseSingapore, LocaleChineseTaiwan}

// usable reports whether a name record is a candidate for name resolution.
// Only Unicode-encoded records count; empty strings count as absent.
func usable(r ot.NameRecord, id sfnt.NameID) bool {
	return r.NameID == id && r.IsUnicode && r.Decoded && r.Value != ""
}

// Name returns the best string for a name ID. A US English record wins;
// otherwise the first Unicode record in table order is returned.
func Name(face Face, id sfnt.NameID) (string, bool) {
	fallback, found := "", false
	for _, r := range face.Names() {
		if !usable(r, id) {
			continue
		}
		if Locale(r.LanguageID) == LocaleEnglishUS {
			return r.Value, true
		}
		if !found {
			fallback, found = r.Value, true
		}
	}
	return fallback, found
}

// NameByLocale returns the first Unicode string for a name ID in a given locale.
func NameByLocale(face Face, id sfnt.NameID, locale Locale) (string, bool) {
	for _, r := range face.Names() {
		if usable(r, id) && Locale(r.LanguageID) == locale {
			return r.Value, true
		}
	}
	return "", false
}

// NameWithFallback is like Name, but never fails. If the name is missing,
// the font's family name is substituted, and if the family is missing too,
// Unknown is returned.
func NameWithFallback(face Face, id sfnt.NameID) string {
	if s, ok := Name(face, id); ok {
		return s
	}
	if id != sfnt.NameIDFamily {
		if fam, ok := Name(face, sfnt.NameIDFamily); ok {
			tracer().Debugf("name %d missing, using family name %q", id, fam)
			return fam
		}
	}
	return Unknown
}

// ChineseName returns a name string for a Chinese locale, trying the PRC,
// Singapore and Taiwan locales in this order. Names for other locales are
// never substituted.
func ChineseName(face Face, id sfnt.NameID) (string, bool) {
	for _, loc := range ChineseLocales {
		if s, ok := NameByLocale(face, id, loc); ok {
			return s, true
		}
	}
	return "", false
}
