package fontscape

import (
	"slices"
	"strings"
)

// CssFontFamily groups the fonts sharing a CSS font family name.
type CssFontFamily struct {
	Name          string `json:"name"`
	FontCount     int    `json:"font_count"`
	DefaultFontID string `json:"default_font_id"`
}

type familyGroup struct {
	family   CssFontFamily
	distance int // |weight - 400| of the current default
}

// AggregateFamilies groups records by CSS font family. Within each family,
// the default font is the one with a weight closest to 400; between equally
// close fonts, the one occurring first in records wins.
//
// Families are sorted by name, ignoring case. AggregateFamilies does not
// modify records.
func AggregateFamilies(records []FontRecord) []CssFontFamily {
	var groups []familyGroup
	index := make(map[string]int)
	for _, r := range records {
		d := weightDistance(r.Weight)
		i, ok := index[r.CssFontFamily]
		if !ok {
			index[r.CssFontFamily] = len(groups)
			groups = append(groups, familyGroup{
				family:   CssFontFamily{Name: r.CssFontFamily, FontCount: 1, DefaultFontID: r.ID},
				distance: d,
			})
			continue
		}
		g := &groups[i]
		g.family.FontCount++
		if d < g.distance {
			g.family.DefaultFontID = r.ID
			g.distance = d
		}
	}
	families := make([]CssFontFamily, len(groups))
	for i, g := range groups {
		families[i] = g.family
	}
	slices.SortStableFunc(families, func(a, b CssFontFamily) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	tracer().Debugf("aggregated %d fonts into %d families", len(records), len(families))
	return families
}

func weightDistance(w int) int {
	if w < RegularWeight {
		return RegularWeight - w
	}
	return w - RegularWeight
}
