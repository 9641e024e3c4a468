package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "family", "families", "fonts":
		pterm.Info.Println("Font families")
		pterm.Println(`
	Fonts are grouped into CSS font families. Fonts carrying a typographic
	family name (name ID 16) are grouped by it, all others by their family
	name (name ID 1). The default font of a family is the one with a weight
	closest to 400 (Regular).

	families [TEXT]   list families, optionally those containing TEXT
	family NAME       show a family and its fonts; NAME is case-sensitive
	fonts [FAMILY]    list all fonts, or the fonts of a family
	`)
	case "font", "id":
		pterm.Info.Println("Font records")
		pterm.Println(`
	Every face of a font file is a font record, identified by an ID.
	Tables show abbreviated IDs; any unambiguous prefix will do.

	font ID           show all fields of a font record
	`)
	case "check":
		pterm.Info.Println("Glyph check")
		pterm.Println(`
	check FILE TEXT   check which characters of TEXT the faces of FILE cover
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	families [TEXT]   list font families
	family NAME       show a family
	fonts [FAMILY]    list fonts
	font ID           show a font
	check FILE TEXT   check glyph coverage of a font file
	rescan            scan font directories again
	help [TOPIC]      help on family, font or check
	quit              leave (or <ctrl>D)
	`)
	}
}
