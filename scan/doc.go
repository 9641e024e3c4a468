/*
Package scan turns font files into font records.

A Scanner discovers font files in a set of directories (or takes an explicit
list of files), reads each file into memory and hands it to an Expander. The
Expander asks a Decoder how many faces a file holds and materializes one
fontscape.FontRecord per face. The records of all files are collected, in
discovery order, into a fontscape.ScanState.

Failures are contained: a broken face inside a collection ends expansion of
that collection, a broken file is reported and skipped, an unreadable
directory is reported and skipped. Only a scan without any readable source
location fails as a whole.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontscape.scan'
func tracer() tracing.Trace {
	return tracing.Select("fontscape.scan")
}
