package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// LoadImage reads a PNG or JPEG picture for display inside the window.
// Files that do not decode are rejected here rather than drawn blank.
func LoadImage(path string) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return fyne.NewStaticResource(filepath.Base(path), data), nil
}
