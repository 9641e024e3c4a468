package fontscape

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() *ScanState {
	return NewScanState([]FontRecord{
		testRecord("1", "Roboto", 400),
		testRecord("2", "Roboto", 700),
		testRecord("3", "Open Sans", 400),
	})
}

func TestScanStateQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape")
	defer teardown()
	//
	s := testState()
	assert.Equal(t, 3, s.FontCount())
	assert.Equal(t, 2, s.FamilyCount())

	f, ok := s.Font("2")
	require.True(t, ok)
	assert.Equal(t, 700, f.Weight)
	_, ok = s.Font("nope")
	assert.False(t, ok)

	fam, ok := s.Family("Roboto")
	require.True(t, ok)
	assert.Equal(t, 2, fam.FontCount)
	_, ok = s.Family("roboto")
	assert.False(t, ok, "expected family lookup to be case-sensitive")

	roboto := s.FontsByCssFamily("Roboto")
	require.Len(t, roboto, 2)
	assert.Equal(t, "1", roboto[0].ID)
	assert.Equal(t, "2", roboto[1].ID)
	assert.Empty(t, s.FontsByCssFamily("Comic Sans"))

	def, ok := s.DefaultFont("Roboto")
	require.True(t, ok)
	assert.Equal(t, "1", def.ID)
}

func TestScanStateIsImmutable(t *testing.T) {
	records := []FontRecord{testRecord("1", "Roboto", 400)}
	s := NewScanState(records)
	records[0].Family = "Changed"
	fonts := s.Fonts()
	fonts[0].Languages[0] = "Klingon"
	fams := s.Families()
	fams[0].Name = "Changed"

	f, _ := s.Font("1")
	assert.Equal(t, "Roboto", f.Family)
	assert.Equal(t, "English", f.Languages[0])
	assert.Equal(t, "Roboto", s.Families()[0].Name)
}

func TestScanStateJSON(t *testing.T) {
	s := testState()
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "fonts")
	assert.Contains(t, doc, "css_font_families")

	var fonts []map[string]any
	require.NoError(t, json.Unmarshal(doc["fonts"], &fonts))
	require.Len(t, fonts, 3)
	assert.Equal(t, "TrueType", fonts[0]["format"])
	assert.Equal(t, "Enabled", fonts[0]["status"])
	assert.Equal(t, "Roboto", fonts[0]["css_font_family"])
	assert.NotContains(t, fonts[0], "family_zh", "expected absent Chinese names to be omitted")

	restored := &ScanState{}
	require.NoError(t, json.Unmarshal(data, restored))
	if diff := cmp.Diff(s.Fonts(), restored.Fonts()); diff != "" {
		t.Errorf("fonts differ after round trip:\n%s", diff)
	}
	if diff := cmp.Diff(s.Families(), restored.Families()); diff != "" {
		t.Errorf("families differ after round trip:\n%s", diff)
	}
}

func TestEmptyScanStateJSON(t *testing.T) {
	data, err := json.Marshal(NewScanState(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"fonts":[],"css_font_families":[]}`, string(data))
}
