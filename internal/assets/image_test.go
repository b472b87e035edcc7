package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImageJPEG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 6))
	img.SetNRGBA(1, 1, color.NRGBA{R: 0xff, G: 0x66, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	path := filepath.Join(t.TempDir(), "logo.jpg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	res, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "logo.jpg", res.Name())
	assert.Equal(t, buf.Bytes(), res.Content())
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "logo.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadImage(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}
