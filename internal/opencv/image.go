// Package opencv loads branding pictures with OpenCV and renders the square
// sizes an icon needs.
package opencv

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"gocv.io/x/gocv"
)

// ErrUndecodable reports a file OpenCV could not read as an image
var ErrUndecodable = errors.New("image could not be decoded")

// Image is a picture held as an 8-bit RGBA matrix
type Image struct {
	mat    gocv.Mat
	path   string
	closed bool
}

// Open reads a PNG or JPEG file, keeping its alpha channel when present
func Open(path string) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	src := gocv.IMRead(path, gocv.IMReadUnchanged)
	defer src.Close()
	if src.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrUndecodable, path)
	}

	rgba, err := toRGBA8(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Image{mat: rgba, path: path}, nil
}

// Path returns the file the image was read from
func (im *Image) Path() string {
	return im.path
}

// Bounds returns the original dimensions
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.mat.Cols(), im.mat.Rows())
}

// Fit scales the picture to fit a size×size square, keeping its aspect ratio,
// and centres it on a transparent background
func (im *Image) Fit(size int) (image.Image, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	if im.closed {
		return nil, errors.New("image is closed")
	}

	w, h := im.mat.Cols(), im.mat.Rows()
	scale := float64(size) / float64(max(w, h))
	tw := max(1, int(math.Round(float64(w)*scale)))
	th := max(1, int(math.Round(float64(h)*scale)))

	interpolation := gocv.InterpolationArea
	if scale > 1 {
		interpolation = gocv.InterpolationCubic
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(im.mat, &resized, image.Pt(tw, th), 0, 0, interpolation)
	if resized.Empty() {
		return nil, fmt.Errorf("resize to %dx%d failed", tw, th)
	}

	scaled, err := matToNRGBA(resized)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	offset := image.Pt((size-tw)/2, (size-th)/2)
	draw.Draw(dst, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(tw, th))}, scaled, image.Point{}, draw.Src)

	return dst, nil
}

// Close releases the OpenCV matrix
func (im *Image) Close() error {
	if im.closed {
		return nil
	}
	im.closed = true
	return im.mat.Close()
}

// toRGBA8 converts any supported matrix to 8-bit, 4-channel RGBA
func toRGBA8(src gocv.Mat) (gocv.Mat, error) {
	eight := src
	if src.Type()&0x7 == gocv.MatTypeCV16U {
		eight = gocv.NewMat()
		defer eight.Close()
		src.ConvertToWithParams(&eight, gocv.MatTypeCV8U, 1.0/257, 0)
	}

	dst := gocv.NewMat()
	switch eight.Channels() {
	case 1:
		gocv.CvtColor(eight, &dst, gocv.ColorGrayToBGRA)
	case 3:
		gocv.CvtColor(eight, &dst, gocv.ColorBGRToRGBA)
	case 4:
		gocv.CvtColor(eight, &dst, gocv.ColorBGRAToRGBA)
	default:
		dst.Close()
		return gocv.Mat{}, fmt.Errorf("unsupported channel count: %d", eight.Channels())
	}

	if dst.Empty() {
		dst.Close()
		return gocv.Mat{}, errors.New("colour conversion failed")
	}
	return dst, nil
}

// matToNRGBA copies an 8-bit RGBA matrix into a Go image
func matToNRGBA(m gocv.Mat) (*image.NRGBA, error) {
	if m.Channels() != 4 {
		return nil, fmt.Errorf("expected 4 channels, got %d", m.Channels())
	}

	data := m.ToBytes()
	w, h := m.Cols(), m.Rows()
	if len(data) != w*h*4 {
		return nil, fmt.Errorf("unexpected buffer size %d for %dx%d", len(data), w, h)
	}

	return &image.NRGBA{
		Pix:    data,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}
