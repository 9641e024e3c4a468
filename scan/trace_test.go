package scan

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Sansui233/Fontscape"
	"github.com/Sansui233/Fontscape/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTrace keeps every trace line, prefixed by its level.
type recordingTrace struct {
	lines []string
}

func (r *recordingTrace) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingTrace) Errorf(f string, args ...interface{}) { r.add("ERROR", f, args...) }
func (r *recordingTrace) Infof(f string, args ...interface{})  { r.add("INFO", f, args...) }
func (r *recordingTrace) Debugf(f string, args ...interface{}) { r.add("DEBUG", f, args...) }
func (r *recordingTrace) P(string, interface{}) tracing.Trace  { return r }
func (r *recordingTrace) SetTraceLevel(tracing.TraceLevel)     {}
func (r *recordingTrace) GetTraceLevel() tracing.TraceLevel    { return tracing.LevelDebug }
func (r *recordingTrace) SetOutput(io.Writer)                  {}

func TestTraceBufferReplay(t *testing.T) {
	var b traceBuffer
	b.Debugf("one %d", 1)
	b.Infof("two %s", "2")
	b.Debugf("100%% done")
	rec := &recordingTrace{}
	b.replay(rec)
	assert.Equal(t, []string{"DEBUG one 1", "INFO two 2", "DEBUG 100% done"}, rec.lines)
	assert.Empty(t, b.lines, "expected buffer to be drained")
	b.replay(rec)
	assert.Len(t, rec.lines, 3)
}

func TestExpandTracesToBuffer(t *testing.T) {
	d := &fakeDecoder{
		faces:   []Face{familyFace("Zero"), nil},
		count:   2,
		countOK: true,
	}
	x := NewExpander(d, fixedClock(testTime))
	var b traceBuffer
	records, err := x.expand(nil, FileInfo{Path: "/c.ttc"}, fontscape.TrueTypeCollection, &b)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := &recordingTrace{}
	b.replay(rec)
	require.Len(t, rec.lines, 2)
	assert.True(t, strings.HasPrefix(rec.lines[0], "DEBUG materialized /c.ttc #0"), rec.lines[0])
	assert.True(t, strings.HasPrefix(rec.lines[1], "INFO skipping remaining faces of /c.ttc"), rec.lines[1])
}

// warningFace is a face reporting decoding warnings, like an ot.Font does.
type warningFace struct {
	fakeFace
	warnings []ot.FontWarning
}

func (f warningFace) Warnings() []ot.FontWarning { return f.warnings }

func TestMaterializeTracesWarnings(t *testing.T) {
	face := warningFace{
		fakeFace: familyFace("Warned"),
		warnings: []ot.FontWarning{{Table: ot.T("name"), Issue: "odd record"}},
	}
	m := NewMaterializer(&fakeDecoder{faces: []Face{face}}, fixedClock(testTime))
	var b traceBuffer
	_, err := m.materialize(nil, 0, FileInfo{Path: "/w.ttf"}, fontscape.TrueType, &b)
	require.NoError(t, err)
	rec := &recordingTrace{}
	b.replay(rec)
	require.Len(t, rec.lines, 2)
	assert.Contains(t, rec.lines[0], "/w.ttf #0")
	assert.Contains(t, rec.lines[0], "odd record")
}
