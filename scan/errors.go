package scan

import (
	"errors"
	"fmt"
)

// ErrNoSources is returned if none of the source locations of a scan could
// be enumerated.
var ErrNoSources = errors.New("no font source location could be read")

// ErrNoFaces is reported for font files which did not yield a single face.
var ErrNoFaces = errors.New("no usable font face")

// DecodeError is the failure to decode a single face of a font file.
type DecodeError struct {
	Path  string
	Index int // face index within the file
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (face %d): %v", e.Path, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ScanError is reported for a font file which is unusable as a whole.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// DirectoryError is reported for a source location which could not be read.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}
