package scan

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// logger is the part of tracing.Trace used while expanding files.
type logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
}

var _ logger = tracing.Trace(nil)

// traceBuffer collects trace lines written on a worker goroutine. Trace
// adapters need not be safe for concurrent use, so lines are replayed on the
// goroutine folding the scan results.
type traceBuffer struct {
	lines []traceLine
}

type traceLine struct {
	level tracing.TraceLevel
	msg   string
}

func (b *traceBuffer) Debugf(format string, args ...interface{}) {
	b.lines = append(b.lines, traceLine{tracing.LevelDebug, fmt.Sprintf(format, args...)})
}

func (b *traceBuffer) Infof(format string, args ...interface{}) {
	b.lines = append(b.lines, traceLine{tracing.LevelInfo, fmt.Sprintf(format, args...)})
}

// replay writes the collected lines to t, in the order they were written.
func (b *traceBuffer) replay(t tracing.Trace) {
	for _, l := range b.lines {
		switch l.level {
		case tracing.LevelDebug:
			t.Debugf("%s", l.msg)
		default:
			t.Infof("%s", l.msg)
		}
	}
	b.lines = nil
}
