package ot

import (
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// interpret decodes the tables needed for font introspection. None of them
// is mandatory: a table which is missing or fails to parse is left empty.
func (otf *Font) interpret(ec *errorCollector) {
	if t := otf.Table(tagName); t != nil {
		otf.names = parseNames(t, ec)
	}
	if t := otf.Table(tagOS2); t != nil {
		if os2, _, err := tables.ParseOs2(t.Binary()); err != nil {
			ec.addError(tagOS2, "Header", err.Error(), SeverityMajor, 0)
		} else {
			otf.os2 = &os2
		}
	}
	if t := otf.Table(tagCmap); t != nil {
		otf.cmap = parseCmap(t, otf.os2, ec)
	}
	if t := otf.Table(tagFvar); t != nil {
		otf.axes = parseAxes(t, ec)
	}
}

func parseCmap(t Table, os2 *tables.Os2, ec *errorCollector) font.Cmap {
	cmap, _, err := tables.ParseCmap(t.Binary())
	if err != nil {
		ec.addError(tagCmap, "EncodingRecords", err.Error(), SeverityMajor, 0)
		return nil
	}
	page := tables.FPNone
	if os2 != nil {
		page = os2.FontPage()
	}
	cm, _, err := font.ProcessCmap(cmap, page)
	if err != nil {
		ec.addError(tagCmap, "Subtable", err.Error(), SeverityMajor, 0)
		return nil
	}
	return cm
}

func parseAxes(t Table, ec *errorCollector) []Axis {
	fvar, _, err := tables.ParseFvar(t.Binary())
	if err != nil {
		ec.addError(tagFvar, "Axes", err.Error(), SeverityMajor, 0)
		return nil
	}
	axes := make([]Axis, 0, len(fvar.FvarRecords.Axis))
	for _, a := range fvar.FvarRecords.Axis {
		axes = append(axes, Axis{
			Tag:     Tag(a.Tag),
			Min:     a.Minimum,
			Default: a.Default,
			Max:     a.Maximum,
		})
	}
	return axes
}

// WeightAxis returns the 'wght' design-variation axis of a variable font.
func (otf *Font) WeightAxis() (Axis, bool) {
	return FindAxis(otf.axes, tagWght)
}

// FindAxis returns the first axis with a given tag.
func FindAxis(axes []Axis, tag Tag) (Axis, bool) {
	for _, a := range axes {
		if a.Tag == tag {
			return a, true
		}
	}
	return Axis{}, false
}

func (a Axis) String() string {
	return fmt.Sprintf("%s[%g…%g, default %g]", a.Tag, a.Min, a.Max, a.Default)
}
