package fontscape

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id, cssFamily string, weight int) FontRecord {
	return FontRecord{
		ID:             id,
		Family:         cssFamily,
		FullName:       fmt.Sprintf("%s %d", cssFamily, weight),
		PostScriptName: fmt.Sprintf("%s-%d", cssFamily, weight),
		Style:          "Regular",
		CssFontFamily:  cssFamily,
		Path:           "/test/path",
		FileSize:       1000,
		Format:         TrueType,
		Weight:         weight,
		Languages:      []string{"English"},
		Scripts:        []string{"Latn"},
		Status:         Enabled,
	}
}

func TestAggregateFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape")
	defer teardown()
	//
	records := []FontRecord{
		testRecord("1", "Roboto", 400),
		testRecord("2", "Roboto", 700),
		testRecord("3", "Roboto", 300),
		testRecord("4", "Open Sans", 400),
		testRecord("5", "Open Sans", 600),
	}
	families := AggregateFamilies(records)
	want := []CssFontFamily{
		{Name: "Open Sans", FontCount: 2, DefaultFontID: "4"},
		{Name: "Roboto", FontCount: 3, DefaultFontID: "1"},
	}
	if diff := cmp.Diff(want, families); diff != "" {
		t.Errorf("unexpected families (-want +got):\n%s", diff)
	}
}

func TestAggregateTieBreak(t *testing.T) {
	families := AggregateFamilies([]FontRecord{
		testRecord("light", "X", 300),
		testRecord("medium", "X", 500),
	})
	require.Len(t, families, 1)
	assert.Equal(t, "light", families[0].DefaultFontID, "expected first of equally distant weights to win")

	families = AggregateFamilies([]FontRecord{
		testRecord("medium", "X", 500),
		testRecord("light", "X", 300),
		testRecord("bold", "X", 700),
	})
	assert.Equal(t, "medium", families[0].DefaultFontID, "expected input order to decide ties")
}

func TestAggregateCaseInsensitiveOrder(t *testing.T) {
	families := AggregateFamilies([]FontRecord{
		testRecord("1", "zeta", 400),
		testRecord("2", "Alpha", 400),
		testRecord("3", "beta", 400),
		testRecord("4", "ALPHA", 400),
	})
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Alpha", "ALPHA", "beta", "zeta"}, names,
		"expected case-insensitive order, ties in order of first appearance")
}

func TestAggregateInvariants(t *testing.T) {
	var records []FontRecord
	weights := []int{100, 900, 450, 350, 400, 800, 200}
	for i, w := range weights {
		records = append(records, testRecord(fmt.Sprintf("f%d", i), fmt.Sprintf("Family %d", i%3), w))
	}
	input := cloneRecords(records)
	families := AggregateFamilies(records)
	if diff := cmp.Diff(input, records); diff != "" {
		t.Errorf("expected input to be unchanged (-before +after):\n%s", diff)
	}
	for _, fam := range families {
		count := 0
		isMember := false
		for _, r := range records {
			if r.CssFontFamily == fam.Name {
				count++
				isMember = isMember || r.ID == fam.DefaultFontID
			}
		}
		assert.Equal(t, count, fam.FontCount, "font count of %s", fam.Name)
		assert.True(t, isMember, "default font of %s is not a member", fam.Name)
	}
	if diff := cmp.Diff(families, AggregateFamilies(records)); diff != "" {
		t.Errorf("expected aggregation to be idempotent:\n%s", diff)
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, AggregateFamilies(nil))
}
