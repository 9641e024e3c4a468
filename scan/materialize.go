package scan

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Sansui233/Fontscape"
	"github.com/Sansui233/Fontscape/ot"
	"github.com/Sansui233/Fontscape/otquery"
	"golang.org/x/image/font/sfnt"
)

// FileInfo describes the font file a face is materialized from.
type FileInfo struct {
	Path         string
	Size         int64
	DiscoveredAt time.Time // zero for "now"
}

// systemFamilies are family name fragments of fonts shipped with the
// operating system.
var systemFamilies = [...]string{"Segoe UI", "Microsoft YaHei", "SimSun", "Tahoma"}

var tagWght = ot.T("wght")

// Materializer builds font records from single faces.
type Materializer struct {
	decoder Decoder
	clock   Clock
}

// NewMaterializer creates a Materializer. A nil decoder selects the
// OpenTypeDecoder, a nil clock the SystemClock.
func NewMaterializer(decoder Decoder, clock Clock) *Materializer {
	if decoder == nil {
		decoder = OpenTypeDecoder{}
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Materializer{decoder: decoder, clock: clock}
}

// Materialize decodes face index of data and builds its font record.
// If the face cannot be decoded, a *DecodeError is returned.
func (m *Materializer) Materialize(data []byte, index int, info FileInfo,
	format fontscape.FontFormat) (fontscape.FontRecord, error) {
	//
	return m.materialize(data, index, info, format, tracer())
}

func (m *Materializer) materialize(data []byte, index int, info FileInfo,
	format fontscape.FontFormat, log logger) (fontscape.FontRecord, error) {
	//
	face, err := m.decoder.Parse(data, index)
	if err != nil {
		return fontscape.FontRecord{}, &DecodeError{Path: info.Path, Index: index, Err: err}
	}
	if w, ok := face.(interface{ Warnings() []ot.FontWarning }); ok {
		for _, warning := range w.Warnings() {
			log.Debugf("%s #%d: %s", info.Path, index, warning)
		}
	}
	rec := fontscape.FontRecord{
		Family:         otquery.NameWithFallback(face, sfnt.NameIDFamily),
		FullName:       otquery.NameWithFallback(face, sfnt.NameIDFull),
		PostScriptName: otquery.NameWithFallback(face, sfnt.NameIDPostScript),
		Path:           info.Path,
		FaceIndex:      index,
		FileSize:       info.Size,
		Format:         format,
		IsVariable:     face.IsVariable(),
		Weight:         resolveWeight(face),
	}
	rec.Style = "Regular"
	if style, ok := otquery.Name(face, sfnt.NameIDSubfamily); ok {
		rec.Style = style
	}
	rec.FamilyZh, _ = otquery.ChineseName(face, sfnt.NameIDFamily)
	rec.FullNameZh, _ = otquery.ChineseName(face, sfnt.NameIDFull)
	rec.CssFontFamily = rec.Family
	if typo, ok := otquery.Name(face, sfnt.NameIDTypographicFamily); ok {
		rec.CssFontFamily = typo
	}
	rec.Languages, rec.Scripts = otquery.Probe(face)
	for _, id := range fontscape.MetadataNameIDs() {
		if s, ok := otquery.Name(face, id); ok {
			rec.Metadata.Set(id, s)
		}
	}
	rec.Status = fontscape.Enabled
	if isSystemFamily(rec.Family) {
		rec.Status = fontscape.SystemFont
	}
	rec.ID = FontID(info.Path, index, rec.Family, rec.Style)
	created := info.DiscoveredAt
	if created.IsZero() {
		created = m.clock.Now()
	}
	rec.CreatedAt = created.Unix()
	log.Debugf("materialized %s #%d as %q/%q, weight %d", info.Path, index,
		rec.Family, rec.Style, rec.Weight)
	return rec, nil
}

// FontID derives the identifier of a face. It is the lower-case hex MD5 of
// "path-family-style"; faces other than the first one of a file insert
// their index as "path#index-family-style".
func FontID(path string, index int, family, style string) string {
	src := path
	if index > 0 {
		src = fmt.Sprintf("%s#%d", path, index)
	}
	sum := md5.Sum([]byte(src + "-" + family + "-" + style))
	return hex.EncodeToString(sum[:])
}

// resolveWeight takes the weight from OS/2, then from the default of a
// 'wght' design axis, then assumes regular weight.
func resolveWeight(face Face) int {
	w := float64(fontscape.RegularWeight)
	if wc, ok := face.WeightClass(); ok && wc >= 1 && wc <= 1000 {
		w = float64(wc)
		if wc < 10 { // legacy 1…9 scale
			w *= 100
		}
	} else if axis, ok := ot.FindAxis(face.Axes(), tagWght); ok && face.IsVariable() {
		w = float64(axis.Default)
	}
	weight := int(math.Round(w))
	return min(max(weight, fontscape.MinWeight), fontscape.MaxWeight)
}

func isSystemFamily(family string) bool {
	for _, s := range systemFamilies {
		if strings.Contains(family, s) {
			return true
		}
	}
	return false
}
