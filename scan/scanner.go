package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Sansui233/Fontscape"
	"github.com/Sansui233/Fontscape/internal/fontload"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxErrorSummaries is the number of error messages a Result keeps.
const DefaultMaxErrorSummaries = 10

// Result is the outcome of a scan.
type Result struct {
	ScanID     uuid.UUID
	StartedAt  time.Time
	Elapsed    time.Duration
	State      *fontscape.ScanState
	Errors     []string // first error messages, up to the configured maximum
	ErrorCount int      // number of all errors
	FileCount  int      // number of font files found
}

// Scanner scans font files. A Scanner holds no scan state and may be
// re-used. Worker goroutines do not write to the 'fontscape.scan' tracer;
// decoding still traces to 'fontscape.ot' and 'fontscape.query' at level
// Debug, which needs a trace adapter safe for concurrent use when scanning
// with more than one worker.
type Scanner struct {
	decoder   Decoder
	clock     Clock
	workers   int
	maxErrors int
	expander  *Expander
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDecoder sets the decoder for font binaries.
func WithDecoder(d Decoder) Option {
	return func(s *Scanner) {
		s.decoder = d
	}
}

// WithClock sets the source of scan timestamps.
func WithClock(c Clock) Option {
	return func(s *Scanner) {
		s.clock = c
	}
}

// WithWorkers sets the number of files decoded in parallel. Values below 1
// are treated as 1.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		s.workers = n
	}
}

// WithMaxErrorSummaries sets the number of error messages a Result keeps.
// Negative values select the default.
func WithMaxErrorSummaries(n int) Option {
	return func(s *Scanner) {
		s.maxErrors = n
	}
}

// NewScanner creates a Scanner. Without options it decodes with the
// OpenTypeDecoder, one file at a time.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		decoder:   OpenTypeDecoder{},
		clock:     SystemClock,
		workers:   1,
		maxErrors: DefaultMaxErrorSummaries,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.decoder == nil {
		s.decoder = OpenTypeDecoder{}
	}
	if s.clock == nil {
		s.clock = SystemClock
	}
	s.workers = max(s.workers, 1)
	if s.maxErrors < 0 {
		s.maxErrors = DefaultMaxErrorSummaries
	}
	s.expander = NewExpander(s.decoder, s.clock)
	return s
}

// ScanDirs scans the font files in a set of directories and all of their
// sub-directories. Unreadable directories are reported in the result and
// skipped. If not a single directory could be read, ErrNoSources is
// returned.
func (s *Scanner) ScanDirs(ctx context.Context, dirs []string) (*Result, error) {
	started := s.clock.Now()
	var diag diagnostics
	var files fileList
	readable := 0
	for _, root := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := s.walk(ctx, root, &files, &diag)
		if err != nil {
			return nil, err
		}
		if ok {
			readable++
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if readable == 0 {
		tracer().Errorf("none of %d font directories could be read", len(dirs))
		return nil, ErrNoSources
	}
	tracer().Infof("found %d font files in %d directories", len(files.paths), readable)
	return s.scan(ctx, started, files.paths, diag)
}

// ScanFiles scans a list of font files. Paths without a font file
// extension are ignored, as are repeated paths.
func (s *Scanner) ScanFiles(ctx context.Context, paths []string) (*Result, error) {
	started := s.clock.Now()
	var files fileList
	for _, p := range paths {
		if !files.add(p) {
			tracer().Debugf("ignoring %s", p)
		}
	}
	return s.scan(ctx, started, files.paths, diagnostics{})
}

// walk collects the font files below root. It returns false if root could
// not be read at all. Unreadable entries are diagnostics, not errors; an
// error is returned only if ctx ends the walk.
func (s *Scanner) walk(ctx context.Context, root string, files *fileList, diag *diagnostics) (bool, error) {
	fi, err := os.Stat(root)
	if err == nil && !fi.IsDir() {
		err = errors.New("not a directory")
	}
	if err != nil {
		diag.add(&DirectoryError{Path: root, Err: err})
		return false, nil
	}
	rootReadable := true
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			diag.add(&DirectoryError{Path: path, Err: err})
			if path == root {
				rootReadable = false
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files.add(path)
		}
		return nil
	})
	if err != nil {
		tracer().Infof("walking %s stopped: %v", root, err)
		return false, err
	}
	return rootReadable, nil
}

// slot is the outcome of scanning one file.
type slot struct {
	records []fontscape.FontRecord
	err     error
	trace   traceBuffer
}

// scan expands all files and folds the outcomes, in file order, into a
// Result. Files are expanded in parallel if the scanner has more than one
// worker; every worker writes only the slot of its file, trace output
// included. Tracing happens during the fold.
func (s *Scanner) scan(ctx context.Context, started time.Time, paths []string, diag diagnostics) (*Result, error) {
	slots := make([]slot, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sl := &slots[i]
			sl.records, sl.err = s.scanFile(path, started, &sl.trace)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []fontscape.FontRecord
	for i := range slots {
		sl := &slots[i]
		sl.trace.replay(tracer())
		if sl.err != nil {
			tracer().Errorf("%v", sl.err)
			diag.add(sl.err)
			continue
		}
		tracer().Debugf("%s: %d faces", paths[i], len(sl.records))
		records = append(records, sl.records...)
	}
	state := fontscape.NewScanState(records)
	result := &Result{
		ScanID:     uuid.New(),
		StartedAt:  started,
		Elapsed:    s.clock.Now().Sub(started),
		State:      state,
		Errors:     diag.summaries(s.maxErrors),
		ErrorCount: len(diag.errs),
		FileCount:  len(paths),
	}
	tracer().Infof("scan %s: %d fonts in %d families, %d errors", result.ScanID,
		state.FontCount(), state.FamilyCount(), result.ErrorCount)
	return result, nil
}

func (s *Scanner) scanFile(path string, discovered time.Time, log logger) ([]fontscape.FontRecord, error) {
	file, err := fontload.LoadFontFile(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}
	info := FileInfo{Path: path, Size: file.Size, DiscoveredAt: discovered}
	return s.expander.expand(file.Binary, info, file.Format, log)
}

// --- Helpers ---------------------------------------------------------------

// fileList is a list of font file paths without duplicates.
type fileList struct {
	paths []string
	seen  map[string]bool
}

// add appends a path if it has a font extension and has not been added
// before.
func (l *fileList) add(path string) bool {
	if _, ok := fontscape.FormatFromPath(path); !ok {
		return false
	}
	path = filepath.Clean(path)
	if l.seen == nil {
		l.seen = make(map[string]bool)
	}
	if l.seen[path] {
		return false
	}
	l.seen[path] = true
	l.paths = append(l.paths, path)
	return true
}

type diagnostics struct {
	errs []error
}

func (d *diagnostics) add(err error) {
	if _, ok := err.(*DirectoryError); ok {
		tracer().Errorf("%v", err)
	}
	d.errs = append(d.errs, err)
}

func (d diagnostics) summaries(n int) []string {
	n = min(n, len(d.errs))
	s := make([]string, n)
	for i := range n {
		s[i] = d.errs[i].Error()
	}
	return s
}
