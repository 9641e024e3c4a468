package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sansui233/Fontscape/internal/fonttest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// fontDir creates a directory of font files:
//
//	Go-Medium.ttf Go-Regular.ttf broken.ttf font.woff2 notes.txt pair.ttc
//	sub/Go-Bold.TTF testa.woff
func fontDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string][]byte{
		"Go-Regular.ttf":  goregular.TTF,
		"Go-Medium.ttf":   gomedium.TTF,
		"sub/Go-Bold.TTF": gobold.TTF,
		"pair.ttc":        fonttest.Collection(testaTables(), namedTables("Second", "Italic", 400)),
		"testa.woff":      fonttest.WOFF(testaTables(), true),
		"broken.ttf":      []byte("this is not a font"),
		"font.woff2":      append([]byte("wOF2"), make([]byte, 44)...),
		"notes.txt":       []byte("hello"),
	}
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return dir
}

func TestScanDirs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	dir := fontDir(t)
	s := NewScanner(WithClock(fixedClock(testTime)))
	result, err := s.ScanDirs(context.Background(), []string{dir})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ScanID)
	assert.Equal(t, testTime, result.StartedAt)
	assert.Equal(t, 7, result.FileCount)
	assert.Equal(t, 2, result.ErrorCount, "errors: %v", result.Errors)
	assert.Len(t, result.Errors, 2)

	state := result.State
	assert.Equal(t, 6, state.FontCount())
	assert.Equal(t, 4, state.FamilyCount())
	names := []string{}
	for _, f := range state.Families() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Go", "Go Medium", "Second", "Testa"}, names)

	def, ok := state.DefaultFont("Go")
	require.True(t, ok)
	assert.Equal(t, "Regular", def.Style)
	testa, _ := state.Family("Testa")
	assert.Equal(t, 2, testa.FontCount)

	ids := map[string]bool{}
	for _, f := range state.Fonts() {
		assert.False(t, ids[f.ID], "duplicate id %s", f.ID)
		ids[f.ID] = true
		assert.NotEmpty(t, f.Style)
		assert.Equal(t, len(f.Languages), len(f.Scripts))
		assert.NotEmpty(t, f.Languages)
		assert.Equal(t, testTime.Unix(), f.CreatedAt)
	}
}

func TestScanParallelEqualsSequential(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	dir := fontDir(t)
	seq, err := NewScanner(WithClock(fixedClock(testTime))).ScanDirs(context.Background(), []string{dir})
	require.NoError(t, err)
	for _, workers := range []int{2, 4, 8} {
		par, err := NewScanner(WithClock(fixedClock(testTime)), WithWorkers(workers)).
			ScanDirs(context.Background(), []string{dir})
		require.NoError(t, err)

		if diff := cmp.Diff(seq.State.Fonts(), par.State.Fonts()); diff != "" {
			t.Errorf("scan with %d workers differs in fonts:\n%s", workers, diff)
		}
		if diff := cmp.Diff(seq.State.Families(), par.State.Families()); diff != "" {
			t.Errorf("scan with %d workers differs in families:\n%s", workers, diff)
		}
		assert.Equal(t, seq.Errors, par.Errors)
		assert.NotEqual(t, seq.ScanID, par.ScanID)
	}
}

func TestScanErrorTruncation(t *testing.T) {
	dir := t.TempDir()
	for i := range 5 {
		name := filepath.Join(dir, fmt.Sprintf("broken%d.otf", i))
		require.NoError(t, os.WriteFile(name, []byte("junk"), 0o644))
	}
	s := NewScanner(WithMaxErrorSummaries(2))
	result, err := s.ScanDirs(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 5, result.ErrorCount)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "broken0.otf")
	assert.Equal(t, 0, result.State.FontCount())

	result, err = NewScanner().ScanDirs(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Len(t, result.Errors, 5, "expected default limit to keep all 5 errors")
}

func TestScanMissingDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	dir := fontDir(t)
	missing := filepath.Join(dir, "does-not-exist")
	s := NewScanner()
	result, err := s.ScanDirs(context.Background(), []string{missing, dir})
	require.NoError(t, err)
	assert.Equal(t, 6, result.State.FontCount())
	assert.Equal(t, 3, result.ErrorCount)
	assert.Contains(t, result.Errors[0], "does-not-exist", "expected directory error first")

	_, err = s.ScanDirs(context.Background(), []string{missing})
	assert.ErrorIs(t, err, ErrNoSources)
	_, err = s.ScanDirs(context.Background(), []string{filepath.Join(dir, "notes.txt")})
	assert.ErrorIs(t, err, ErrNoSources, "expected a plain file not to count as a directory")
	_, err = s.ScanDirs(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestScanFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontscape.scan")
	defer teardown()
	//
	dir := fontDir(t)
	regular := filepath.Join(dir, "Go-Regular.ttf")
	result, err := NewScanner().ScanFiles(context.Background(), []string{
		regular,
		filepath.Join(dir, ".", "Go-Regular.ttf"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, "sub", "Go-Bold.TTF"),
		filepath.Join(dir, "gone.ttf"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.FileCount, "expected duplicates and non-font files to be dropped")
	assert.Equal(t, 2, result.State.FontCount())
	assert.Equal(t, 1, result.ErrorCount)
	fam, ok := result.State.Family("Go")
	require.True(t, ok)
	assert.Equal(t, 2, fam.FontCount)
}

func TestScanCancelled(t *testing.T) {
	dir := fontDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewScanner().ScanDirs(ctx, []string{dir})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewScanner(WithWorkers(3)).ScanFiles(ctx, []string{filepath.Join(dir, "Go-Regular.ttf")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalkCancelled(t *testing.T) {
	dir := fontDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var files fileList
	var diag diagnostics
	ok, err := NewScanner().walk(ctx, dir, &files, &diag)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, files.paths)
	assert.Empty(t, diag.errs, "expected cancellation not to be a diagnostic")

	ok, err = NewScanner().walk(context.Background(), dir, &files, &diag)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, files.paths)
}

func TestScanDecoderOption(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ttc"), nil, 0o644))
	d := &fakeDecoder{faces: []Face{familyFace("Fake"), familyFace("Fake")}, count: 2, countOK: true}
	result, err := NewScanner(WithDecoder(d)).ScanDirs(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 2, result.State.FontCount())
	fam, _ := result.State.Family("Fake")
	assert.Equal(t, 2, fam.FontCount)
}

func TestDefaultFontDirs(t *testing.T) {
	dirs := DefaultFontDirs()
	assert.NotEmpty(t, dirs)
	for _, d := range dirs {
		assert.True(t, filepath.IsAbs(d), "expected absolute directory, is %s", d)
	}
}
