package main

import (
	"github.com/Sansui233/Fontscape/internal/fontload"
	"github.com/Sansui233/Fontscape/ot"
	"github.com/Sansui233/Fontscape/otquery"
	"github.com/Sansui233/Fontscape/scan"
	"golang.org/x/image/font/sfnt"
)

// loadFaces decodes all faces of a font file, with the face rules of a
// scan: a broken first face fails, a broken later face ends the list.
func loadFaces(path string) ([]*ot.Font, error) {
	file, err := fontload.LoadFontFile(path)
	if err != nil {
		return nil, err
	}
	var faces []*ot.Font
	x := scan.NewExpander(nil, nil)
	err = x.ExpandFaces(file.Binary, path, file.Format, func(i int) error {
		otf, err := ot.Parse(file.Binary, i)
		if err != nil {
			return err
		}
		faces = append(faces, otf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s: %d faces", path, len(faces))
	return faces, nil
}

type faceCheck struct {
	Index     int                  `json:"face_index"`
	Family    string               `json:"family"`
	Supported bool                 `json:"supported"`
	Glyphs    []otquery.GlyphCheck `json:"glyphs"`
	Missing   []string             `json:"missing"`
}

// checkFile looks up the characters of text in every face of a font file.
func checkFile(path, text string) ([]faceCheck, error) {
	faces, err := loadFaces(path)
	if err != nil {
		return nil, err
	}
	checks := make([]faceCheck, len(faces))
	for i, otf := range faces {
		glyphs := otquery.CheckGlyphs(otf, text)
		checks[i] = faceCheck{
			Index:     i,
			Family:    otquery.NameWithFallback(otf, sfnt.NameIDFull),
			Supported: otquery.Supported(glyphs),
			Glyphs:    glyphs,
			Missing:   otquery.Missing(glyphs),
		}
		if checks[i].Missing == nil {
			checks[i].Missing = []string{}
		}
	}
	return checks, nil
}

type faceInspection struct {
	Path     string            `json:"path"`
	Index    int               `json:"face_index"`
	Tables   []string          `json:"tables"`
	Names    []ot.NameRecord   `json:"names"`
	Axes     []string          `json:"axes,omitempty"`
	Info     *otquery.FontInfo `json:"info,omitempty"`
	Coverage []string          `json:"languages"`
	Errors   []string          `json:"errors,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// inspectFile collects structural information about every face of a font file.
func inspectFile(path string) ([]faceInspection, error) {
	faces, err := loadFaces(path)
	if err != nil {
		return nil, err
	}
	result := make([]faceInspection, len(faces))
	for i, otf := range faces {
		fi := faceInspection{Path: path, Index: i, Names: otf.Names()}
		for _, tag := range otf.TableTags() {
			fi.Tables = append(fi.Tables, tag.String())
		}
		for _, axis := range otf.Axes() {
			fi.Axes = append(fi.Axes, axis.String())
		}
		if info, ok := otquery.Info(otf); ok {
			fi.Info = &info
		}
		fi.Coverage, _ = otquery.Probe(otf)
		for _, e := range otf.Errors() {
			fi.Errors = append(fi.Errors, e.Error())
		}
		for _, w := range otf.Warnings() {
			fi.Warnings = append(fi.Warnings, w.String())
		}
		result[i] = fi
	}
	return result, nil
}
