package fontscape

import (
	"encoding/json"
	"slices"
)

// ScanState is the result of one font scan: the font records together with
// their CSS font families. A ScanState is immutable; a new scan creates a
// new state.
//
// All methods return copies, so clients may not alter the state.
type ScanState struct {
	fonts    []FontRecord
	families []CssFontFamily
	byID     map[string]int
	byFamily map[string]int
}

// NewScanState creates a state from a list of font records. The families are
// derived from the records with AggregateFamilies.
func NewScanState(records []FontRecord) *ScanState {
	s := &ScanState{
		fonts:    cloneRecords(records),
		byID:     make(map[string]int, len(records)),
		byFamily: make(map[string]int),
	}
	for i, r := range s.fonts {
		if _, dup := s.byID[r.ID]; dup {
			tracer().Errorf("duplicate font id %s for %s", r.ID, r.Path)
			continue
		}
		s.byID[r.ID] = i
	}
	s.families = AggregateFamilies(s.fonts)
	for i, f := range s.families {
		s.byFamily[f.Name] = i
	}
	return s
}

// Fonts returns all font records, in scan order.
func (s *ScanState) Fonts() []FontRecord {
	return cloneRecords(s.fonts)
}

// Families returns all CSS font families, sorted by name.
func (s *ScanState) Families() []CssFontFamily {
	return slices.Clone(s.families)
}

// Font looks up a font record by its ID.
func (s *ScanState) Font(id string) (FontRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return FontRecord{}, false
	}
	return cloneRecord(s.fonts[i]), true
}

// Family looks up a CSS font family by name. Names are case-sensitive.
func (s *ScanState) Family(name string) (CssFontFamily, bool) {
	i, ok := s.byFamily[name]
	if !ok {
		return CssFontFamily{}, false
	}
	return s.families[i], true
}

// FontsByCssFamily returns the font records of a CSS font family, in scan order.
func (s *ScanState) FontsByCssFamily(name string) []FontRecord {
	var fonts []FontRecord
	for _, r := range s.fonts {
		if r.CssFontFamily == name {
			fonts = append(fonts, cloneRecord(r))
		}
	}
	return fonts
}

// DefaultFont returns the default font record of a CSS font family.
func (s *ScanState) DefaultFont(name string) (FontRecord, bool) {
	f, ok := s.Family(name)
	if !ok {
		return FontRecord{}, false
	}
	return s.Font(f.DefaultFontID)
}

// FontCount returns the number of font records.
func (s *ScanState) FontCount() int {
	return len(s.fonts)
}

// FamilyCount returns the number of CSS font families.
func (s *ScanState) FamilyCount() int {
	return len(s.families)
}

type scanStateJSON struct {
	Fonts    []FontRecord    `json:"fonts"`
	Families []CssFontFamily `json:"css_font_families"`
}

// MarshalJSON implements json.Marshaler.
func (s *ScanState) MarshalJSON() ([]byte, error) {
	doc := scanStateJSON{Fonts: s.fonts, Families: s.families}
	if doc.Fonts == nil {
		doc.Fonts = []FontRecord{}
	}
	if doc.Families == nil {
		doc.Families = []CssFontFamily{}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Families are always re-derived
// from the font records; families contained in data are ignored.
func (s *ScanState) UnmarshalJSON(data []byte) error {
	var doc scanStateJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*s = *NewScanState(doc.Fonts)
	return nil
}

func cloneRecord(r FontRecord) FontRecord {
	r.Languages = slices.Clone(r.Languages)
	r.Scripts = slices.Clone(r.Scripts)
	return r
}

func cloneRecords(records []FontRecord) []FontRecord {
	if records == nil {
		return nil
	}
	c := make([]FontRecord, len(records))
	for i, r := range records {
		c[i] = cloneRecord(r)
	}
	return c
}
