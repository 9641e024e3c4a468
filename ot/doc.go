/*
Package ot decodes the parts of an OpenType font binary which are needed to
describe a font to a user: the table directory, the naming table, the
character-to-glyph mapping, the weight class and the variation axes.

Supported containers are plain SFNT fonts (TrueType outlines, CFF outlines
'OTTO' and Apple 'true'), TrueType collections ('ttcf') and WOFF 1.0.
WOFF2 is recognized but not decoded.

Package ot does not interpret glyph outlines, layout tables or metrics.
Tables which are not needed for introspection are kept as raw byte views and
are accessible with

	otf.Table(ot.T("GSUB")).Binary()

Fonts in the wild frequently contain tables which are slightly off. Only
damage to the table directory is fatal. A broken optional table is recorded
as a warning and the font is treated as if the table were absent:

	otf, err := ot.Parse(data, 0)
	...
	for _, w := range otf.Warnings() {
		log.Println(w)
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontscape.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontscape.ot")
}
