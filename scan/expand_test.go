package scan

import (
	"errors"
	"testing"

	"github.com/Sansui233/Fontscape"
	"github.com/Sansui233/Fontscape/internal/fonttest"
	"github.com/Sansui233/Fontscape/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandStopsAtBrokenFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	d := &fakeDecoder{
		faces:   []Face{familyFace("Zero"), nil, familyFace("Two")},
		count:   3,
		countOK: true,
	}
	x := NewExpander(d, fixedClock(testTime))
	records, err := x.Expand(nil, FileInfo{Path: "/c.ttc"}, fontscape.TrueTypeCollection)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Zero", records[0].Family)
	assert.Equal(t, []int{0, 1}, d.parsed, "expected face 2 never to be attempted")
}

func TestExpandFirstFaceFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	d := &fakeDecoder{faces: []Face{nil, familyFace("One")}, count: 2, countOK: true}
	x := NewExpander(d, fixedClock(testTime))
	records, err := x.Expand(nil, FileInfo{Path: "/c.ttc"}, fontscape.TrueTypeCollection)
	assert.Nil(t, records)
	var se *ScanError
	require.True(t, errors.As(err, &se), "expected a scan error, is %v", err)
	assert.Equal(t, "/c.ttc", se.Path)
	var de *DecodeError
	require.True(t, errors.As(err, &de), "expected scan error to wrap decode error")
	assert.Equal(t, 0, de.Index)
	assert.ErrorIs(t, err, errBrokenFace)
	assert.Equal(t, []int{0}, d.parsed)
}

func TestExpandFaceCount(t *testing.T) {
	tests := []struct {
		name    string
		format  fontscape.FontFormat
		count   int
		countOK bool
		parsed  []int
	}{
		{"simple font", fontscape.TrueType, 3, true, []int{0}},
		{"collection", fontscape.TrueTypeCollection, 3, true, []int{0, 1, 2}},
		{"unknown count", fontscape.TrueTypeCollection, 3, false, []int{0}},
		{"zero count", fontscape.TrueTypeCollection, 0, true, []int{0}},
	}
	for _, tt := range tests {
		d := &fakeDecoder{
			faces:   []Face{familyFace("A"), familyFace("B"), familyFace("C")},
			count:   tt.count,
			countOK: tt.countOK,
		}
		x := NewExpander(d, fixedClock(testTime))
		records, err := x.Expand(nil, FileInfo{Path: "/f"}, tt.format)
		require.NoError(t, err, tt.name)
		assert.Len(t, records, len(tt.parsed), tt.name)
		assert.Equal(t, tt.parsed, d.parsed, tt.name)
	}
}

func TestExpandCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	x := NewExpander(nil, fixedClock(testTime))
	second := namedTables("Second", "Italic", 400)
	data := fonttest.Collection(testaTables(), second)
	records, err := x.Expand(data, FileInfo{Path: "/pair.ttc"}, fontscape.TrueTypeCollection)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Testa", records[0].Family)
	assert.Equal(t, 0, records[0].FaceIndex)
	assert.Equal(t, "Second", records[1].Family)
	assert.Equal(t, "Italic", records[1].Style)
	assert.Equal(t, 1, records[1].FaceIndex)
	assert.Equal(t, FontID("/pair.ttc", 1, "Second", "Italic"), records[1].ID)

	data = fonttest.Collection(testaTables(), nil, second)
	records, err = x.Expand(data, FileInfo{Path: "/broken.ttc"}, fontscape.TrueTypeCollection)
	require.NoError(t, err)
	require.Len(t, records, 1, "expected expansion to stop at broken face 1")
	assert.Equal(t, "Testa", records[0].Family)
}

func TestExpandWOFF(t *testing.T) {
	x := NewExpander(nil, fixedClock(testTime))
	for _, compress := range []bool{false, true} {
		data := fonttest.WOFF(testaTables(), compress)
		records, err := x.Expand(data, FileInfo{Path: "/testa.woff"}, fontscape.WOFF)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Testa", records[0].Family)
		assert.Equal(t, 700, records[0].Weight)
		assert.Equal(t, fontscape.WOFF, records[0].Format)
	}
}

func TestExpandRejectsWOFF2(t *testing.T) {
	x := NewExpander(nil, fixedClock(testTime))
	data := append([]byte("wOF2"), make([]byte, 44)...)
	_, err := x.Expand(data, FileInfo{Path: "/f.woff2"}, fontscape.WOFF2)
	var se *ScanError
	assert.True(t, errors.As(err, &se))
	assert.ErrorIs(t, err, ot.ErrUnsupportedFormat)
}
