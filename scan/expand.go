package scan

import (
	"github.com/Sansui233/Fontscape"
)

// Expander turns a font file into the records of all of its faces.
type Expander struct {
	decoder      Decoder
	materializer *Materializer
}

// NewExpander creates an Expander. A nil decoder selects the
// OpenTypeDecoder, a nil clock the SystemClock.
func NewExpander(decoder Decoder, clock Clock) *Expander {
	m := NewMaterializer(decoder, clock)
	return &Expander{decoder: m.decoder, materializer: m}
}

// Expand materializes the faces of a font file, in face order.
//
// If the first face fails to decode, the file is unusable and a *ScanError
// is returned. A failure of any later face ends the expansion: the faces
// materialized so far are returned without an error.
func (x *Expander) Expand(data []byte, info FileInfo, format fontscape.FontFormat) ([]fontscape.FontRecord, error) {
	return x.expand(data, info, format, tracer())
}

func (x *Expander) expand(data []byte, info FileInfo, format fontscape.FontFormat,
	log logger) ([]fontscape.FontRecord, error) {
	//
	var records []fontscape.FontRecord
	err := x.expandFaces(data, info.Path, format, log, func(i int) error {
		rec, err := x.materializer.materialize(data, i, info, format, log)
		if err == nil {
			records = append(records, rec)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ExpandFaces calls visit for every face of a font file, in face order, and
// applies the failure rules of Expand to the errors visit returns: an error
// for the first face is returned as a *ScanError, an error for a later face
// ends the iteration without an error.
func (x *Expander) ExpandFaces(data []byte, path string, format fontscape.FontFormat,
	visit func(index int) error) error {
	//
	return x.expandFaces(data, path, format, tracer(), visit)
}

func (x *Expander) expandFaces(data []byte, path string, format fontscape.FontFormat,
	log logger, visit func(index int) error) error {
	//
	n := x.faceCount(data, path, format, log)
	visited := 0
	for i := 0; i < n; i++ {
		if err := visit(i); err != nil {
			if i == 0 {
				return &ScanError{Path: path, Err: err}
			}
			log.Infof("skipping remaining faces of %s: %v", path, err)
			break
		}
		visited++
	}
	if visited == 0 {
		return &ScanError{Path: path, Err: ErrNoFaces}
	}
	return nil
}

func (x *Expander) faceCount(data []byte, path string, format fontscape.FontFormat, log logger) int {
	if !format.IsCollection() {
		return 1
	}
	n, ok := x.decoder.FaceCount(data)
	if !ok || n < 1 {
		log.Debugf("cannot determine face count of %s, assuming 1", path)
		return 1
	}
	return n
}
