/*
Package otquery answers questions about a decoded font face: which name
strings it carries, which languages its glyph set plausibly covers, whether
it has glyphs for a given text, and some general font information.

Query functions operate on small interfaces rather than on *ot.Font, so
they may be tested against synthetic faces.
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontscape.query'
func tracer() tracing.Trace {
	return tracing.Select("fontscape.query")
}
