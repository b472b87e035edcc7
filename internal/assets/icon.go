// Package assets loads the branding pictures shown by the window.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"liquido-calc/internal/iconconv"

	"fyne.io/fyne/v2"
)

// LoadIcon reads an .ico produced by makeicon and returns its largest entry
// as a PNG resource usable with Window.SetIcon
func LoadIcon(path string) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}

	entries, err := iconconv.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	largest, ok := iconconv.Largest(entries)
	if !ok {
		return nil, errors.New("icon has no entries")
	}

	pngData, err := largest.PNG()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	return fyne.NewStaticResource(name, pngData), nil
}
