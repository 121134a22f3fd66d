package imaging

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byos/trmnl-go/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), NativeEncoder{})
	require.NoError(t, err)
	return s
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")

	s, err := NewStore(dir, NativeEncoder{})

	require.NoError(t, err)
	info, err := os.Stat(s.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStoreSave(t *testing.T) {
	s := newTestStore(t)
	c := domain.NewCanvas(16, 16)

	art, err := s.Save(c, "my-file")

	require.NoError(t, err)
	assert.Equal(t, "my-file", art.Filename)
	assert.Equal(t, filepath.Join(s.Dir(), "my-file.png"), art.Path)

	f, err := os.Open(art.Path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestStoreSaveDerivesFilename(t *testing.T) {
	s := newTestStore(t)
	c := domain.NewCanvas(8, 8)

	art, err := s.Save(c, "")

	require.NoError(t, err)
	assert.Regexp(t, `^generated-\d{4}-\d{2}-\d{2}-T\d{2}-\d{2}-\d{2}Z-[0-9a-f]{8}$`, art.Filename)
}

func TestStoreSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	first := domain.NewCanvas(8, 8)
	_, err := s.Save(first, "same")
	require.NoError(t, err)

	second := domain.NewCanvas(8, 8)
	second.Fill(domain.Black)
	art, err := s.Save(second, "same")
	require.NoError(t, err)

	f, err := os.Open(art.Path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestDeriveFilename(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	name := DeriveFilename("hello", now)

	assert.Regexp(t, `^generated-2025-06-01-T12-30-45Z-[0-9a-f]{8}$`, name)
	// Deterministic for identical input.
	assert.Equal(t, name, DeriveFilename("hello", now))
	// Different content hashes differently.
	assert.NotEqual(t, name, DeriveFilename("other", now))
}

func TestDeriveFilenameEmptyContent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, DeriveFilename("default", now), DeriveFilename("", now))
}

func TestLatest(t *testing.T) {
	var latest Latest

	_, ok := latest.Get()
	assert.False(t, ok)

	latest.Set("first")
	name, ok := latest.Get()
	assert.True(t, ok)
	assert.Equal(t, "first", name)

	latest.Set("second")
	name, _ = latest.Get()
	assert.Equal(t, "second", name)
}
