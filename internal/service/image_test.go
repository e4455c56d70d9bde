package service

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadDecodesImage(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "a.png", 12, 8)

	svc := NewImageService()
	img, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestLoadMissingFile(t *testing.T) {
	svc := NewImageService()
	_, err := svc.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoadRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	svc := NewImageService()
	_, err := svc.Load(path)
	assert.Error(t, err)
}

func TestGetImageInfo(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "a.png", 20, 10)

	svc := NewImageService()
	info, img, err := svc.GetImageInfo(path)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, 20, info.Width)
	assert.Equal(t, 10, info.Height)
	assert.Positive(t, info.Size)
	assert.False(t, info.ModTime.IsZero())
	// PNGs carry no EXIF; the map is simply empty.
	assert.Empty(t, info.EXIFData)
}
