package otquery

import (
	"github.com/Sansui233/Fontscape/ot"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// GlyphMapper maps code-points to glyphs.
type GlyphMapper interface {
	GlyphIndex(rune) (ot.GlyphIndex, bool)
}

// LanguageCoverage is a language a font plausibly supports.
type LanguageCoverage struct {
	Language language.Tag
	Name     string          // English display name of Language
	Script   language.Script // ISO 15924 script
}

type coverageProbe struct {
	lang   language.Tag
	script language.Script
	runes  []rune
}

// Probes are tried in this order, which is also the order of results.
// A font supports a language if it maps every probe code-point.
var coverageProbes = [...]coverageProbe{
	{language.English, language.MustParseScript("Latn"), []rune{'A', 'a'}},
	{language.Chinese, language.MustParseScript("Hans"), []rune{'觉'}},
	{language.Japanese, language.MustParseScript("Jpan"), []rune{'あ'}},
	{language.Korean, language.MustParseScript("Kore"), []rune{'가'}},
	{language.Russian, language.MustParseScript("Cyrl"), []rune{'А', 'я'}},
	{language.Arabic, language.MustParseScript("Arab"), []rune{'ا'}},
}

// Coverage tests a face for the languages of a fixed probe set. The result
// is a cheap heuristic: one or two representative code-points per language
// are looked up in the face's cmap.
func Coverage(face GlyphMapper) []LanguageCoverage {
	var cov []LanguageCoverage
	namer := display.English.Languages()
	for _, p := range coverageProbes {
		if !hasGlyphs(face, p.runes) {
			continue
		}
		cov = append(cov, LanguageCoverage{
			Language: p.lang,
			Name:     namer.Name(p.lang),
			Script:   p.script,
		})
	}
	return cov
}

// Probe returns parallel lists of language names and script tags a face
// supports. If no probe matches, both lists consist of Unknown.
func Probe(face GlyphMapper) (languages []string, scripts []string) {
	cov := Coverage(face)
	if len(cov) == 0 {
		tracer().Debugf("no coverage probe matched")
		return []string{Unknown}, []string{Unknown}
	}
	languages = make([]string, len(cov))
	scripts = make([]string, len(cov))
	for i, c := range cov {
		languages[i] = c.Name
		scripts[i] = c.Script.String()
	}
	return
}

func hasGlyphs(face GlyphMapper, runes []rune) bool {
	for _, r := range runes {
		if _, ok := face.GlyphIndex(r); !ok {
			return false
		}
	}
	return true
}
