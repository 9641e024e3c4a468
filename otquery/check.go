package otquery

import "unicode"

// GlyphCheck is the result of looking up one character of a text.
type GlyphCheck struct {
	Glyph  string `json:"glyph"`
	Exists bool   `json:"exists"`
}

// CheckGlyphs looks up every character of text in a face. Results are in
// text order, one per character, duplicates included.
func CheckGlyphs(face GlyphMapper, text string) []GlyphCheck {
	results := make([]GlyphCheck, 0, len(text))
	for _, r := range text {
		_, ok := face.GlyphIndex(r)
		results = append(results, GlyphCheck{Glyph: string(r), Exists: ok})
	}
	return results
}

// Missing returns the distinct characters without a glyph, in text order.
func Missing(checks []GlyphCheck) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, c := range checks {
		if !c.Exists && !seen[c.Glyph] {
			seen[c.Glyph] = true
			missing = append(missing, c.Glyph)
		}
	}
	return missing
}

// Supported is true if every character of a check, except white space, has
// a glyph.
func Supported(checks []GlyphCheck) bool {
	for _, c := range checks {
		if c.Exists {
			continue
		}
		for _, r := range c.Glyph {
			if !unicode.IsSpace(r) {
				return false
			}
		}
	}
	return true
}
