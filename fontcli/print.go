package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Sansui233/Fontscape"
	"github.com/Sansui233/Fontscape/scan"
	"github.com/pterm/pterm"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(data [][]string) {
	if len(data) <= 1 {
		pterm.Info.Println("nothing to show")
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSummary(res *scan.Result) {
	renderTable(summaryData(res))
	for _, e := range res.Errors {
		pterm.Error.Println(e)
	}
	if more := res.ErrorCount - len(res.Errors); more > 0 {
		pterm.Printf("… and %d more errors\n", more)
	}
}

func summaryData(res *scan.Result) [][]string {
	return [][]string{
		{"Scan", res.ScanID.String()},
		{"Files", strconv.Itoa(res.FileCount)},
		{"Fonts", strconv.Itoa(res.State.FontCount())},
		{"Families", strconv.Itoa(res.State.FamilyCount())},
		{"Errors", strconv.Itoa(res.ErrorCount)},
		{"Elapsed", res.Elapsed.Round(time.Millisecond).String()},
	}
}

func familyData(families []fontscape.CssFontFamily) [][]string {
	data := [][]string{{"Family", "Fonts", "Default"}}
	for _, f := range families {
		data = append(data, []string{f.Name, strconv.Itoa(f.FontCount), shortID(f.DefaultFontID)})
	}
	return data
}

func fontListData(fonts []fontscape.FontRecord) [][]string {
	data := [][]string{{"ID", "Name", "Style", "Weight", "Format", "Path"}}
	for _, f := range fonts {
		data = append(data, []string{
			shortID(f.ID),
			f.FullName,
			f.Style,
			fmt.Sprintf("%d %s", f.Weight, fontscape.WeightName(f.Weight)),
			f.Format.String(),
			pathWithFace(f),
		})
	}
	return data
}

func fontDetailData(f fontscape.FontRecord) [][]string {
	data := [][]string{
		{"Field", "Value"},
		{"ID", f.ID},
		{"Family", f.Family},
		{"Full name", f.FullName},
		{"PostScript name", f.PostScriptName},
		{"Style", f.Style},
	}
	if f.FamilyZh != "" {
		data = append(data, []string{"Family (zh)", f.FamilyZh})
	}
	if f.FullNameZh != "" {
		data = append(data, []string{"Full name (zh)", f.FullNameZh})
	}
	data = append(data,
		[]string{"CSS family", f.CssFontFamily},
		[]string{"Weight", fmt.Sprintf("%d %s", f.Weight, fontscape.WeightName(f.Weight))},
		[]string{"Variable", strconv.FormatBool(f.IsVariable)},
		[]string{"Format", f.Format.String()},
		[]string{"Path", pathWithFace(f)},
		[]string{"Size", strconv.FormatInt(f.FileSize, 10)},
		[]string{"Languages", strings.Join(f.Languages, ", ")},
		[]string{"Scripts", strings.Join(f.Scripts, ", ")},
		[]string{"Status", f.Status.String()},
	)
	for _, id := range fontscape.MetadataNameIDs() {
		if s, ok := f.Metadata.Get(id); ok {
			data = append(data, []string{fmt.Sprintf("Name %d", id), truncate(s, 60)})
		}
	}
	return data
}

func checkData(checks []faceCheck) [][]string {
	data := [][]string{{"Face", "Name", "Covered", "Missing"}}
	for _, c := range checks {
		covered := len(c.Glyphs)
		for _, g := range c.Glyphs {
			if !g.Exists {
				covered--
			}
		}
		data = append(data, []string{
			strconv.Itoa(c.Index),
			c.Family,
			fmt.Sprintf("%d/%d", covered, len(c.Glyphs)),
			strings.Join(c.Missing, " "),
		})
	}
	return data
}

func printFamily(fam fontscape.CssFontFamily, fonts []fontscape.FontRecord) {
	pterm.Info.Printf("%s: %d fonts, default %s\n", fam.Name, fam.FontCount, shortID(fam.DefaultFontID))
	renderTable(fontListData(fonts))
}

func printInspection(fi faceInspection, showIssues bool) {
	pterm.Info.Printf("%s, face %d\n", fi.Path, fi.Index)
	pterm.Printf("Tables (%d): %s\n", len(fi.Tables), strings.Join(fi.Tables, " "))
	if fi.Info != nil {
		pterm.Printf("Revision %s, %d units/em, %d glyphs, created %s\n", fi.Info.Revision,
			fi.Info.UnitsPerEm, fi.Info.NumGlyphs, fi.Info.Created.Format(time.DateOnly))
	}
	if len(fi.Axes) > 0 {
		pterm.Printf("Axes: %s\n", strings.Join(fi.Axes, ", "))
	}
	pterm.Printf("Languages: %s\n", strings.Join(fi.Coverage, ", "))
	names := [][]string{{"ID", "Platform", "Encoding", "Language", "Value"}}
	for _, r := range fi.Names {
		value := r.Value
		if !r.Decoded {
			value = "<undecodable>"
		}
		names = append(names, []string{
			strconv.Itoa(int(r.NameID)),
			strconv.Itoa(int(r.PlatformID)),
			strconv.Itoa(int(r.EncodingID)),
			fmt.Sprintf("0x%04x", r.LanguageID),
			truncate(value, 50),
		})
	}
	renderTable(names)
	pterm.Printf("Issues: errors=%d warnings=%d\n", len(fi.Errors), len(fi.Warnings))
	if showIssues {
		for _, e := range fi.Errors {
			pterm.Error.Println(e)
		}
		for _, w := range fi.Warnings {
			pterm.Printf("warning: %s\n", w)
		}
	}
}

// --- Helpers ---------------------------------------------------------------

// shortID abbreviates a font ID for tables. The shell accepts abbreviations.
func shortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}

func pathWithFace(f fontscape.FontRecord) string {
	if f.Format.IsCollection() {
		return fmt.Sprintf("%s#%d", f.Path, f.FaceIndex)
	}
	return f.Path
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
