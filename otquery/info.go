package otquery

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/Sansui233/Fontscape/ot"
)

// FontInfo is general information about a font, decoded from tables 'head'
// and 'maxp'.
type FontInfo struct {
	Revision   string    // font revision, e.g. "2.010"
	UnitsPerEm uint16    // values 16 … 16384 are valid
	NumGlyphs  uint16    // 0 if table 'maxp' is missing
	Created    time.Time // zero if table 'head' is missing
	Modified   time.Time
	MacStyle   uint16 // bit 0 = bold, bit 1 = italic
}

const (
	headTableSize = 54
	maxpMinSize   = 6
)

// Seconds between 1904-01-01 (the OpenType epoch) and 1970-01-01.
const epochDelta = 2082844800

// Info decodes table 'head' and 'maxp' from raw bytes.
// Returns (info, false) if table 'head' is missing or too short.
func Info(otf *ot.Font) (FontInfo, bool) {
	var info FontInfo
	if otf == nil {
		return info, false
	}
	if maxp := otf.Table(ot.T("maxp")); maxp != nil && len(maxp.Binary()) >= maxpMinSize {
		info.NumGlyphs = binary.BigEndian.Uint16(maxp.Binary()[4:6])
	}
	head := otf.Table(ot.T("head"))
	if head == nil || len(head.Binary()) < headTableSize {
		tracer().Debugf("table 'head' missing or too short")
		return info, false
	}
	b := head.Binary()
	rev := binary.BigEndian.Uint32(b[4:8])
	info.Revision = fmt.Sprintf("%.3f", float64(int32(rev))/65536)
	info.UnitsPerEm = binary.BigEndian.Uint16(b[18:20])
	info.Created = longDateTime(b[20:28])
	info.Modified = longDateTime(b[28:36])
	info.MacStyle = binary.BigEndian.Uint16(b[44:46])
	return info, true
}

// longDateTime converts an OpenType LONGDATETIME to UTC time.
func longDateTime(b []byte) time.Time {
	secs := int64(binary.BigEndian.Uint64(b))
	if secs == 0 {
		return time.Time{}
	}
	return time.Unix(secs-epochDelta, 0).UTC()
}
