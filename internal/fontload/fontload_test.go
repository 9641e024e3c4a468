package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sansui233/Fontscape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Go-Regular.TTF")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	f, err := LoadFontFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, fontscape.TrueType, f.Format)
	assert.Equal(t, int64(len(goregular.TTF)), f.Size)
	assert.Equal(t, goregular.TTF, f.Binary)
}

func TestLoadFontFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFontFile(filepath.Join(dir, "missing.otf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0o644))
	_, err = LoadFontFile(txt)
	assert.Error(t, err)

	sub := filepath.Join(dir, "fonts.ttf")
	require.NoError(t, os.Mkdir(sub, 0o755))
	_, err = LoadFontFile(sub)
	assert.Error(t, err)
}
