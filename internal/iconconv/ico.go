// Package iconconv writes and reads Windows icon (.ico) files whose entries
// are PNG-compressed images.
package iconconv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

const (
	headerSize = 6
	entrySize  = 16

	// MaxSize is the largest edge an ICO directory entry can describe
	MaxSize = 256
)

var (
	// ErrNotICO reports data without a valid icon directory
	ErrNotICO = errors.New("not an ico file")

	// ErrUnsupportedEntry reports an entry stored as a bitmap instead of PNG
	ErrUnsupportedEntry = errors.New("unsupported icon entry")

	// ErrInvalidSize reports an icon edge outside 1..MaxSize
	ErrInvalidSize = errors.New("invalid icon size")
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// Entry is one image stored in an icon file
type Entry struct {
	Width  int
	Height int
	Data   []byte
}

// IsPNG reports whether the entry holds PNG data
func (e Entry) IsPNG() bool {
	return bytes.HasPrefix(e.Data, pngSignature)
}

// PNG returns the entry's PNG bytes
func (e Entry) PNG() ([]byte, error) {
	if !e.IsPNG() {
		return nil, fmt.Errorf("%w: %dx%d entry is not png", ErrUnsupportedEntry, e.Width, e.Height)
	}
	return e.Data, nil
}

// Encode writes images as one icon file. Every image must be at most
// MaxSize pixels on each edge.
func Encode(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return errors.New("no images to encode")
	}

	payloads := make([][]byte, 0, len(images))
	entries := make([]iconDirEntry, 0, len(images))
	offset := uint32(headerSize + entrySize*len(images))

	for _, img := range images {
		b := img.Bounds()
		if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > MaxSize || b.Dy() > MaxSize {
			return fmt.Errorf("%w: %dx%d", ErrInvalidSize, b.Dx(), b.Dy())
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode %dx%d png: %w", b.Dx(), b.Dy(), err)
		}

		entries = append(entries, iconDirEntry{
			Width:      dimensionByte(b.Dx()),
			Height:     dimensionByte(b.Dy()),
			Planes:     1,
			BitCount:   32,
			BytesInRes: uint32(buf.Len()),
			Offset:     offset,
		})
		payloads = append(payloads, buf.Bytes())
		offset += uint32(buf.Len())
	}

	header := iconDir{Type: 1, Count: uint16(len(images))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write icon header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return fmt.Errorf("write icon directory: %w", err)
	}
	for _, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return fmt.Errorf("write icon image: %w", err)
		}
	}
	return nil
}

// Decode reads every entry of an icon file
func Decode(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotICO, len(data))
	}

	var header iconDir
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotICO, err)
	}
	if header.Reserved != 0 || header.Type != 1 || header.Count == 0 {
		return nil, fmt.Errorf("%w: bad header", ErrNotICO)
	}

	dirEnd := headerSize + entrySize*int(header.Count)
	if len(data) < dirEnd {
		return nil, fmt.Errorf("%w: truncated directory", ErrNotICO)
	}

	dir := make([]iconDirEntry, header.Count)
	if err := binary.Read(bytes.NewReader(data[headerSize:dirEnd]), binary.LittleEndian, dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotICO, err)
	}

	entries := make([]Entry, 0, len(dir))
	for i, d := range dir {
		start, end := uint64(d.Offset), uint64(d.Offset)+uint64(d.BytesInRes)
		if start < uint64(dirEnd) || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d out of bounds", ErrNotICO, i)
		}
		entries = append(entries, Entry{
			Width:  dimensionInt(d.Width),
			Height: dimensionInt(d.Height),
			Data:   data[start:end],
		})
	}
	return entries, nil
}

// Largest returns the entry with the biggest area
func Largest(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Width*e.Height > best.Width*best.Height {
			best = e
		}
	}
	return best, true
}

// 256 is stored as 0 in the directory
func dimensionByte(n int) uint8 {
	if n >= MaxSize {
		return 0
	}
	return uint8(n)
}

func dimensionInt(b uint8) int {
	if b == 0 {
		return MaxSize
	}
	return int(b)
}
