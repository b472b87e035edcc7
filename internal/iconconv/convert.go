package iconconv

import (
	"fmt"
	"image"
	"io"
	"sort"
)

// DefaultSizes are the edges written when the caller does not choose any
var DefaultSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Source produces square renditions of one picture
type Source interface {
	Fit(size int) (image.Image, error)
	Close() error
}

// NormalizeSizes validates sizes, drops duplicates and sorts them. An empty
// list yields DefaultSizes.
func NormalizeSizes(sizes []int) ([]int, error) {
	if len(sizes) == 0 {
		return append([]int(nil), DefaultSizes...), nil
	}

	seen := make(map[int]bool, len(sizes))
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s < 1 || s > MaxSize {
			return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, s, MaxSize)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Ints(out)
	return out, nil
}

// Convert renders src at every size and writes the icon to w
func Convert(src Source, sizes []int, w io.Writer) ([]int, error) {
	sizes, err := NormalizeSizes(sizes)
	if err != nil {
		return nil, err
	}

	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, err := src.Fit(size)
		if err != nil {
			return nil, fmt.Errorf("render %dpx: %w", size, err)
		}
		images = append(images, img)
	}

	if err := Encode(w, images); err != nil {
		return nil, err
	}
	return sizes, nil
}
